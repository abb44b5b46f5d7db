package utils

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitParseDatetime(t *testing.T) {
	Convey("Accepted layouts all parse to the same instant", t, func() {
		expected := time.Date(2023, 4, 1, 9, 30, 0, 0, time.UTC)
		for _, input := range []string{
			"2023-04-01T09:30:00Z",
			"2023-04-01T09:30:00+00:00",
			"2023-04-01T09:30:00+0000",
			"2023-04-01T09:30:00",
			"2023-04-01T10:30:00+01:00",
		} {
			parsed, err := ParseDatetime(input)
			So(err, ShouldBeNil)
			So(parsed.Equal(expected), ShouldBeTrue)
		}
	})

	Convey("Date-only input parses as midnight UTC", t, func() {
		parsed, err := ParseDatetime("2023-04-01")
		So(err, ShouldBeNil)
		So(parsed.Equal(time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC)), ShouldBeTrue)
	})

	Convey("Garbage is rejected", t, func() {
		_, err := ParseDatetime("last tuesday")
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, "invalid datetime")
	})
}

func TestUnitFormatDatetime(t *testing.T) {
	Convey("Datetimes format as UTC with second precision", t, func() {
		zone := time.FixedZone("CET", 3600)
		value := time.Date(2023, 4, 1, 10, 30, 0, 500000000, zone)
		So(FormatDatetime(value), ShouldEqual, "2023-04-01T09:30:00Z")
	})
}
