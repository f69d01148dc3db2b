package models

import (
	"fmt"
	"time"
)

const (
	// DateLayout formats processing dates (DD.MM.YYYY). Persisted dates use it verbatim.
	DateLayout = "02.01.2006"
	// TimestampLayout formats raw-event timestamps (YYYY-MM-DD HH:MM:SS).
	TimestampLayout = "2006-01-02 15:04:05"
)

// RawEvent is one immutable row of the append-only webhook log.
type RawEvent struct {
	ID                 int64    `json:"id"`
	HookType           HookType `json:"hookType"`
	Name               string   `json:"name"`
	RawAmount          string   `json:"rawAmount"`
	Amount             int64    `json:"amount"`
	ReceivedAtUTC      string   `json:"receivedAt"`
	ReceivedAtLocal    string   `json:"receivedAtLocal"`
	ReceivedSecondsDay int      `json:"-"` // local seconds since midnight, used by time-of-day filters
	ProcessingDate     string   `json:"processingDate"`
	RawPayload         string   `json:"rawPayload"`
}

// Deal is the dashboard projection of a raw event.
type Deal struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Amount    int64  `json:"amount"`
	Timestamp string `json:"timestamp"`
}

// ToDeal projects e into a Deal; the timestamp is the local receive time.
func (e *RawEvent) ToDeal() Deal {
	return Deal{
		ID:        e.ID,
		Name:      e.Name,
		Amount:    e.Amount,
		Timestamp: e.ReceivedAtLocal,
	}
}

// TimeOfDay is a wall-clock offset from local midnight.
type TimeOfDay time.Duration

// ParseTimeOfDay parses "HH:MM" or "HH:MM:SS".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	for _, layout := range []string{"15:04", time.TimeOnly} {
		if t, err := time.Parse(layout, s); err == nil {
			return TimeOfDay(time.Duration(t.Hour())*time.Hour +
				time.Duration(t.Minute())*time.Minute +
				time.Duration(t.Second())*time.Second), nil
		}
	}
	return 0, fmt.Errorf("invalid time of day %q", s)
}

// TimeOfDayOf returns the wall-clock offset of t in its own location.
func TimeOfDayOf(t time.Time) TimeOfDay {
	return TimeOfDay(time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second +
		time.Duration(t.Nanosecond()))
}

// Seconds truncates to whole seconds since midnight.
func (d TimeOfDay) Seconds() int {
	return int(time.Duration(d) / time.Second)
}

// TimeWindow is an inclusive time-of-day predicate in whole seconds.
// Both bounds nil means "no time filter".
type TimeWindow struct {
	FromSeconds *int
	ToSeconds   *int
}

// IsZero reports whether the window filters nothing.
func (w TimeWindow) IsZero() bool {
	return w.FromSeconds == nil && w.ToSeconds == nil
}

// Contains reports whether seconds-of-day falls inside the window.
func (w TimeWindow) Contains(seconds int) bool {
	if w.FromSeconds != nil && seconds < *w.FromSeconds {
		return false
	}
	if w.ToSeconds != nil && seconds > *w.ToSeconds {
		return false
	}
	return true
}

// PointWindow selects events at or before the given minute (HH:MM includes its whole minute).
func PointWindow(at TimeOfDay) TimeWindow {
	to := minuteEnd(at)
	return TimeWindow{ToSeconds: &to}
}

// RangeWindow selects events within [from, to], both minutes inclusive.
func RangeWindow(from, to TimeOfDay) TimeWindow {
	f := from.Seconds()
	t := minuteEnd(to)
	return TimeWindow{FromSeconds: &f, ToSeconds: &t}
}

// LastMinuteOfDay is the start of the final minute of a local day, 23:59.
const LastMinuteOfDay = TimeOfDay(23*time.Hour + 59*time.Minute)

// FullDayWindow spans the entire local day. Replaying a date over it yields the
// same per-hook counters as the stored aggregate.
func FullDayWindow() TimeWindow {
	return RangeWindow(0, LastMinuteOfDay)
}

func minuteEnd(d TimeOfDay) int {
	s := d.Seconds()
	return s - s%60 + 59
}

// EventFilter selects raw events. Zero values mean "any".
type EventFilter struct {
	ProcessingDate string
	HookType       HookType
	Window         TimeWindow
	Limit          int // <= 0 means unbounded
}
