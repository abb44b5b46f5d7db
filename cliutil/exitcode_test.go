package cliutil

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"paypalquery/models"
	"paypalquery/service"
)

func TestUnitExitCode(t *testing.T) {
	Convey("API errors exit by status category", t, func() {
		So(ExitCode(&models.APIError{StatusCode: 401}), ShouldEqual, ExitNoPerm)
		So(ExitCode(&models.APIError{StatusCode: 403}), ShouldEqual, ExitNoPerm)
		So(ExitCode(&models.APIError{StatusCode: 404}), ShouldEqual, ExitSoftware)
		So(ExitCode(&models.APIError{StatusCode: 422}), ShouldEqual, ExitSoftware)
		So(ExitCode(&models.APIError{StatusCode: 500}), ShouldEqual, ExitUnavailable)
		So(ExitCode(&models.APIError{StatusCode: 503}), ShouldEqual, ExitUnavailable)
	})

	Convey("Wrapped errors still map by their cause", t, func() {
		wrapped := fmt.Errorf("looking up subscription: [%w]", &models.APIError{StatusCode: 503})
		So(ExitCode(wrapped), ShouldEqual, ExitUnavailable)
	})

	Convey("Usage, file and OS errors get their own codes", t, func() {
		So(ExitCode(&service.UnknownFieldNameError{Kind: "transaction", Name: "bogus"}), ShouldEqual, ExitUsage)
		So(ExitCode(&fs.PathError{Op: "open", Path: "config.ini", Err: syscall.ENOENT}), ShouldEqual, ExitIOErr)
		So(ExitCode(syscall.ECONNREFUSED), ShouldEqual, ExitOSErr)
	})

	Convey("Everything else is an internal error", t, func() {
		So(ExitCode(errors.New("boom")), ShouldEqual, ExitSoftware)
		So(ExitCode(&service.NotFoundError{TransactionID: "X"}), ShouldEqual, ExitSoftware)
	})

	Convey("No error exits cleanly", t, func() {
		So(ExitCode(nil), ShouldEqual, ExitOK)
	})
}
