package clocks

import (
	"fmt"
	"time"
	_ "time/tzdata"

	"deal-analytics/internal/models"
)

const (
	DefaultTimezone = "Europe/Moscow"
	DefaultCutoff   = "21:00:00"
)

// BusinessClock assigns events to a processing date.
//
// The business day does not end at midnight: anything received strictly after
// the local cutoff (21:00:00 by default) belongs to the next calendar day.
//
//	20:59:59 on 15.10 -> 15.10
//	21:00:00 on 15.10 -> 15.10
//	21:00:01 on 15.10 -> 16.10
//
//go:generate mockgen -source=business_clock.go -destination=./mocks/business_clock_mock.go -package=mocks
type BusinessClock interface {
	// Now returns the current instant.
	Now() time.Time
	// ProcessingDate returns the DD.MM.YYYY business date of now.
	ProcessingDate(now time.Time) string
	// Local converts now to the business timezone.
	Local(now time.Time) time.Time
}

type businessClock struct {
	location *time.Location
	cutoff   time.Duration
	nowFunc  func() time.Time
}

// NewBusinessClock builds a clock for the named zone and "HH:MM:SS" cutoff.
func NewBusinessClock(timezone, cutoff string) (BusinessClock, error) {
	location, err := loadLocation(timezone)
	if err != nil {
		return nil, err
	}
	cutoffTime, err := time.Parse(time.TimeOnly, cutoff)
	if err != nil {
		return nil, fmt.Errorf("invalid cutoff %q: %w", cutoff, err)
	}
	return &businessClock{
		location: location,
		cutoff: time.Duration(cutoffTime.Hour())*time.Hour +
			time.Duration(cutoffTime.Minute())*time.Minute +
			time.Duration(cutoffTime.Second())*time.Second,
		nowFunc: time.Now,
	}, nil
}

// NewFixedBusinessClock is NewBusinessClock with Now pinned to now. Used by tests and replays.
func NewFixedBusinessClock(timezone, cutoff string, now time.Time) (BusinessClock, error) {
	clock, err := NewBusinessClock(timezone, cutoff)
	if err != nil {
		return nil, err
	}
	clock.(*businessClock).nowFunc = func() time.Time { return now }
	return clock, nil
}

func (c *businessClock) Now() time.Time {
	return c.nowFunc()
}

func (c *businessClock) Local(now time.Time) time.Time {
	return now.In(c.location)
}

func (c *businessClock) ProcessingDate(now time.Time) string {
	local := c.Local(now)
	if time.Duration(models.TimeOfDayOf(local)) > c.cutoff {
		local = local.AddDate(0, 0, 1)
	}
	return local.Format(models.DateLayout)
}

// loadLocation resolves the zone; the default zone falls back to a fixed UTC+3
// offset so a host without zoneinfo still gets the right business day.
func loadLocation(timezone string) (*time.Location, error) {
	location, err := time.LoadLocation(timezone)
	if err == nil {
		return location, nil
	}
	if timezone == DefaultTimezone {
		return time.FixedZone("MSK", 3*60*60), nil
	}
	return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
}
