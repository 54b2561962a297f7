package domain

import "time"

// ReviewEvent is one entry of a card's append-only review history. ID is
// the epoch millisecond of the review and orders the history.
type ReviewEvent struct {
	ID     int64
	CardID int64
	Grade  Grade
	// Interval is the interval given by the answer; negative values are
	// learning steps in seconds.
	Interval int
	// LastInterval is the interval the card had before the answer.
	LastInterval int
	// Factor is the ease factor after the answer, per mille. Zero means not set.
	Factor     int
	DurationMs int
	Kind       ReviewKind
}

// ReviewedAt returns the review time.
func (e ReviewEvent) ReviewedAt() time.Time {
	return time.UnixMilli(e.ID)
}

// ReviewFactorSnapshot keeps a logged factor that a bulk operation rewrote.
type ReviewFactorSnapshot struct {
	ReviewID int64
	Factor   int
}
