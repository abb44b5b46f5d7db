package service

import (
	"net/url"
	"time"

	"paypalquery/utils"
)

// defaultWindowSpan is the widest date window a single transaction search
// request may cover. The API caps requests at 31 days.
const defaultWindowSpan = 30 * 24 * time.Hour

// DateWindows decomposes an arbitrary date range into a lazy sequence of
// bounded sub-range parameter sets. Direction follows argument order: when
// start is after end the windows run backward in time (newest first),
// otherwise forward. The sequence is finite, forward-only and not
// restartable, since consuming it normally drives paged HTTP requests.
type DateWindows struct {
	cursor   time.Time
	bound    time.Time
	span     time.Duration
	extra    url.Values
	backward bool
	done     bool
}

// NewDateWindows builds a window sequence over [start, end] with windows of
// at most span. Each produced parameter set is a copy of extra plus
// start_date and end_date. A zero-length range yields exactly one window.
func NewDateWindows(start, end time.Time, span time.Duration, extra url.Values) *DateWindows {
	return &DateWindows{
		cursor:   start,
		bound:    end,
		span:     span,
		extra:    extra,
		backward: start.After(end),
	}
}

// Next returns the next window's parameters, or false when the range is
// exhausted.
func (w *DateWindows) Next() (url.Values, bool) {
	if w.done {
		return nil, false
	}
	var windowStart, windowEnd time.Time
	if w.backward {
		windowEnd = w.cursor
		windowStart = w.cursor.Add(-w.span)
		if windowStart.Before(w.bound) {
			windowStart = w.bound
		}
		w.cursor = windowStart
		if !w.cursor.After(w.bound) {
			w.done = true
		}
	} else {
		windowStart = w.cursor
		windowEnd = w.cursor.Add(w.span)
		if windowEnd.After(w.bound) {
			windowEnd = w.bound
		}
		w.cursor = windowEnd
		if !w.cursor.Before(w.bound) {
			w.done = true
		}
	}
	params := url.Values{}
	for key, values := range w.extra {
		params[key] = values
	}
	params.Set("start_date", utils.FormatDatetime(windowStart))
	params.Set("end_date", utils.FormatDatetime(windowEnd))
	return params, true
}
