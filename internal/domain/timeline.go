package domain

import (
	"math"
	"time"
)

const secondsPerDay = 86400

// Timeline maps wall-clock time onto the collection's day counter. Today is
// the number of days since the collection was created; DayCutoff is the
// moment the current day ends.
type Timeline struct {
	Today     int
	DayCutoff time.Time
}

// NewTimeline computes the timeline at now for a collection created at
// created, whose days roll over at rolloverHour in loc.
func NewTimeline(created, now time.Time, loc *time.Location, rolloverHour int) Timeline {
	start := dayStart(created, loc, rolloverHour)
	current := dayStart(now, loc, rolloverHour)

	// Rounded so a 23h or 25h DST day still counts as one.
	today := int(math.Round(current.Sub(start).Hours() / 24))
	return Timeline{Today: today, DayCutoff: current.AddDate(0, 0, 1).UTC()}
}

// dayStart returns the most recent rollover at or before t.
func dayStart(t time.Time, loc *time.Location, rolloverHour int) time.Time {
	local := t.In(loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), rolloverHour, 0, 0, 0, loc)
	if local.Before(start) {
		start = start.AddDate(0, 0, -1)
	}
	return start
}

// DayOf returns the collection day a timestamp falls on.
func (tl Timeline) DayOf(t time.Time) int {
	secs := float64(t.Unix() - tl.DayCutoff.Unix())
	return int(math.Ceil(secs/secondsPerDay)) + tl.Today
}

// WindowStart returns the unix second that opens a window covering today
// and the days before it.
func (tl Timeline) WindowStart(days int) int64 {
	return tl.DayCutoff.Unix() - int64(days+1)*secondsPerDay
}
