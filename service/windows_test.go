package service

import (
	"net/url"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func collectWindows(windows *DateWindows) []url.Values {
	var collected []url.Values
	for {
		params, ok := windows.Next()
		if !ok {
			return collected
		}
		collected = append(collected, params)
	}
}

func TestUnitDateWindows(t *testing.T) {
	base := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

	Convey("Forward windows are contiguous and cover the whole range", t, func() {
		end := base.Add(75 * 24 * time.Hour)
		windows := collectWindows(NewDateWindows(base, end, defaultWindowSpan, nil))

		So(windows, ShouldHaveLength, 3)
		So(windows[0].Get("start_date"), ShouldEqual, "2023-01-01T00:00:00Z")
		So(windows[len(windows)-1].Get("end_date"), ShouldEqual, "2023-03-17T00:00:00Z")
		for i := 0; i < len(windows)-1; i++ {
			So(windows[i].Get("end_date"), ShouldEqual, windows[i+1].Get("start_date"))
			So(windows[i].Get("start_date"), ShouldBeLessThan, windows[i].Get("end_date"))
		}
	})

	Convey("Window count for D days at a 30 day span is floor(D/30)+1", t, func() {
		for days, expected := range map[int]int{1: 1, 29: 1, 31: 2, 75: 3, 100: 4} {
			end := base.Add(time.Duration(days) * 24 * time.Hour)
			windows := collectWindows(NewDateWindows(base, end, defaultWindowSpan, nil))
			So(windows, ShouldHaveLength, expected)
		}
	})

	Convey("Backward windows run newest first and floor at the early bound", t, func() {
		start := base.Add(75 * 24 * time.Hour)
		windows := collectWindows(NewDateWindows(start, base, defaultWindowSpan, nil))

		So(windows, ShouldHaveLength, 3)
		So(windows[0].Get("end_date"), ShouldEqual, "2023-03-17T00:00:00Z")
		So(windows[len(windows)-1].Get("start_date"), ShouldEqual, "2023-01-01T00:00:00Z")
		for i := 0; i < len(windows)-1; i++ {
			So(windows[i].Get("start_date"), ShouldEqual, windows[i+1].Get("end_date"))
		}
	})

	Convey("A zero-length range still yields exactly one window", t, func() {
		windows := collectWindows(NewDateWindows(base, base, defaultWindowSpan, nil))

		So(windows, ShouldHaveLength, 1)
		So(windows[0].Get("start_date"), ShouldEqual, "2023-01-01T00:00:00Z")
		So(windows[0].Get("end_date"), ShouldEqual, "2023-01-01T00:00:00Z")
	})

	Convey("A range shorter than the span yields one window spanning it", t, func() {
		end := base.Add(10 * 24 * time.Hour)
		windows := collectWindows(NewDateWindows(base, end, defaultWindowSpan, nil))

		So(windows, ShouldHaveLength, 1)
		So(windows[0].Get("start_date"), ShouldEqual, "2023-01-01T00:00:00Z")
		So(windows[0].Get("end_date"), ShouldEqual, "2023-01-11T00:00:00Z")
	})

	Convey("Extra parameters are merged into every window", t, func() {
		extra := url.Values{}
		extra.Set("transaction_id", "8XC12345AB6789012")
		end := base.Add(45 * 24 * time.Hour)

		windows := collectWindows(NewDateWindows(base, end, defaultWindowSpan, extra))

		So(windows, ShouldHaveLength, 2)
		for _, params := range windows {
			So(params.Get("transaction_id"), ShouldEqual, "8XC12345AB6789012")
		}
	})

	Convey("Datetimes are normalised to UTC with second precision", t, func() {
		zone := time.FixedZone("CET", 3600)
		start := time.Date(2023, 6, 1, 12, 30, 45, 0, zone)
		windows := collectWindows(NewDateWindows(start, start.Add(time.Hour), defaultWindowSpan, nil))

		So(windows, ShouldHaveLength, 1)
		So(windows[0].Get("start_date"), ShouldEqual, "2023-06-01T11:30:45Z")
		So(windows[0].Get("end_date"), ShouldEqual, "2023-06-01T12:30:45Z")
	})
}
