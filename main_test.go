package main

import (
	"bytes"
	"net/http"
	"os"
	"testing"

	"github.com/jarcoal/httpmock"
	. "github.com/smartystreets/goconvey/convey"

	"paypalquery/cliutil"
	"paypalquery/fixtures"
)

const testAPIBase = "https://api.test.paypal.localhost"

func setTestEnvironment() {
	os.Setenv("PAYPAL_CLIENT_ID", "client-id")
	os.Setenv("PAYPAL_CLIENT_SECRET", "client-secret")
	os.Setenv("PAYPAL_SITE", testAPIBase)
}

func TestUnitRunUsageErrors(t *testing.T) {
	setTestEnvironment()

	Convey("Bad flags exit with a usage code", t, func() {
		var stdout bytes.Buffer
		So(run([]string{"-no-such-flag"}, &stdout), ShouldEqual, cliutil.ExitUsage)
		So(run([]string{"-loglevel", "verbose"}, &stdout), ShouldEqual, cliutil.ExitUsage)
		So(run([]string{"-begin", "whenever"}, &stdout), ShouldEqual, cliutil.ExitUsage)
		So(run([]string{"-txn-fields", "bogus"}, &stdout), ShouldEqual, cliutil.ExitUsage)
	})
}

func TestUnitRunListTransactions(t *testing.T) {
	setTestEnvironment()

	Convey("Listing a range prints a summary per transaction", t, func() {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()

		response, _ := httpmock.NewJsonResponder(http.StatusOK,
			fixtures.GetSearchResponse(1, 1, fixtures.GetTransactionDetail()))
		httpmock.RegisterResponder("GET", testAPIBase+"/v1/reporting/transactions", response)

		var stdout bytes.Buffer
		code := run([]string{"-begin", "2023-04-01", "-end", "2023-04-02"}, &stdout)

		So(code, ShouldEqual, cliutil.ExitOK)
		So(stdout.String(), ShouldContainSubstring, "8XC12345AB6789012\tSuccessful")
		So(stdout.String(), ShouldContainSubstring, "Widget │ 15.98 USD (2 @ 7.99 USD)")
	})
}

func TestUnitRunLookups(t *testing.T) {
	setTestEnvironment()

	Convey("A transaction id dumps the matching transaction as YAML", t, func() {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()

		response, _ := httpmock.NewJsonResponder(http.StatusOK,
			fixtures.GetSearchResponse(1, 1, fixtures.GetTransactionDetail()))
		httpmock.RegisterResponder("GET", testAPIBase+"/v1/reporting/transactions", response)

		var stdout bytes.Buffer
		code := run([]string{"-begin", "2023-04-01", "-end", "2023-04-02", "8xc12345ab6789012"}, &stdout)

		So(code, ShouldEqual, cliutil.ExitOK)
		So(stdout.String(), ShouldContainSubstring, "transaction_info:")
		So(stdout.String(), ShouldContainSubstring, "transaction_id: 8XC12345AB6789012")
	})

	Convey("An I- prefixed id is looked up as a subscription", t, func() {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()

		response, _ := httpmock.NewJsonResponder(http.StatusOK, map[string]interface{}{
			"id":     "I-TEST",
			"status": "ACTIVE",
		})
		httpmock.RegisterResponder("GET", testAPIBase+"/v1/billing/subscriptions/I-TEST", response)

		var stdout bytes.Buffer
		code := run([]string{"i-test"}, &stdout)

		So(code, ShouldEqual, cliutil.ExitOK)
		So(stdout.String(), ShouldContainSubstring, "id: I-TEST")
	})

	Convey("An auth failure maps to the no-permission exit code", t, func() {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()

		httpmock.RegisterResponder("GET", testAPIBase+"/v1/billing/subscriptions/I-TEST",
			httpmock.NewStringResponder(http.StatusForbidden,
				`{"name":"NOT_AUTHORIZED","message":"Authorization failed"}`))

		var stdout bytes.Buffer
		code := run([]string{"i-test"}, &stdout)

		So(code, ShouldEqual, cliutil.ExitNoPerm)
	})
}
