package statistics

import (
	"strings"

	"deal-analytics/internal/models"
)

// TimeQuery carries the optional time-of-day parameters of a dashboard query
// as received: At is a point ("HH:MM"), From/To a range.
type TimeQuery struct {
	At   string
	From string
	To   string
}

// Window resolves q into a time-of-day filter.
//
// At wins over a range. A range with one side missing is open on that side.
// Values that do not parse as HH:MM[:SS] are ignored, so a malformed time
// degrades to the unfiltered view instead of an error.
func (q TimeQuery) Window() models.TimeWindow {
	if at, ok := parseTimeOfDay(q.At); ok {
		return models.PointWindow(at)
	}

	from, hasFrom := parseTimeOfDay(q.From)
	to, hasTo := parseTimeOfDay(q.To)
	switch {
	case hasFrom && hasTo:
		return models.RangeWindow(from, to)
	case hasFrom:
		return models.RangeWindow(from, models.LastMinuteOfDay)
	case hasTo:
		return models.PointWindow(to)
	default:
		return models.TimeWindow{}
	}
}

// IsZero reports whether q carries no usable time parameter.
func (q TimeQuery) IsZero() bool {
	return q.Window().IsZero()
}

func parseTimeOfDay(s string) (models.TimeOfDay, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	t, err := models.ParseTimeOfDay(s)
	if err != nil {
		return 0, false
	}
	return t, true
}
