package models

import (
	"fmt"
	"time"
)

const MINUTES_PER_DAY = 1440
const MINUTES_PER_WEEK = 10080

// MinuteSpan is a half-open [Start, End) interval over minute-of-week
// values. End may exceed MINUTES_PER_WEEK, in which case the span wraps
// past the week boundary into the following Monday.
type MinuteSpan struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// NewMinuteSpan rejects negative bounds and starts past the week end.
func NewMinuteSpan(start, end int) (MinuteSpan, error) {
	if start < 0 || end < 0 {
		return MinuteSpan{}, fmt.Errorf("minute span bounds must be non-negative, got (%d, %d)", start, end)
	}
	if start >= MINUTES_PER_WEEK {
		return MinuteSpan{}, fmt.Errorf("minute span start must be < %d, got %d", MINUTES_PER_WEEK, start)
	}
	return MinuteSpan{Start: start, End: end}, nil
}

// Covers reports whether minute-of-week m falls inside the span.
// Inclusive at Start, exclusive at End. For wrap-around spans
// (End > MINUTES_PER_WEEK) the tail [0, End-MINUTES_PER_WEEK) of the
// following week also counts.
func (s MinuteSpan) Covers(m int) bool {
	if s.Start <= m && m < s.End {
		return true
	}
	return s.End > MINUTES_PER_WEEK && m < s.End-MINUTES_PER_WEEK
}

// WeeklySchedule is one recurring open-hours entry for an activity.
// WeekOf nil means the standing default schedule; a non-nil WeekOf pins
// the entry to the specific week starting on that Monday, where it fully
// replaces the default for that week.
type WeeklySchedule struct {
	Spans  []MinuteSpan `json:"spans"`
	WeekOf *time.Time   `json:"week_of,omitempty"`
}

// MinuteOfWeek converts a local wall-clock time into minutes since
// Monday 00:00, in [0, 10080).
func MinuteOfWeek(t time.Time) int {
	day := (int(t.Weekday()) + 6) % 7 // time.Weekday starts on Sunday
	return day*MINUTES_PER_DAY + t.Hour()*60 + t.Minute()
}

// WeekStart returns the Monday 00:00 that opens the week containing t.
func WeekStart(t time.Time) time.Time {
	day := (int(t.Weekday()) + 6) % 7
	y, m, d := t.AddDate(0, 0, -day).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// OpenAt evaluates a schedule set against a local time.
//
// An empty schedule set means the activity is evergreen and always open.
// Otherwise the entries pinned to the week containing at (if any) are
// authoritative and the defaults are ignored for that week; a schedule
// set whose authoritative entries cover no spans is closed.
func OpenAt(schedules []WeeklySchedule, at time.Time) bool {
	if len(schedules) == 0 {
		return true
	}

	weekStart := WeekStart(at)
	var authoritative []WeeklySchedule
	for _, s := range schedules {
		if s.WeekOf != nil && sameDate(*s.WeekOf, weekStart) {
			authoritative = append(authoritative, s)
		}
	}
	if len(authoritative) == 0 {
		for _, s := range schedules {
			if s.WeekOf == nil {
				authoritative = append(authoritative, s)
			}
		}
	}

	target := MinuteOfWeek(at)
	for _, s := range authoritative {
		for _, span := range s.Spans {
			if span.Covers(target) {
				return true
			}
		}
	}
	return false
}
