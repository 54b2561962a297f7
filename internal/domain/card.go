package domain

import (
	"time"
)

// Card is the scheduling state of one card. Due is a day number on the
// collection Timeline. Cards in a filtered deck keep their home deck and
// due day in OriginalDeckID and OriginalDue.
type Card struct {
	ID             int64
	NoteID         int64
	DeckID         int64
	OriginalDeckID int64
	Type           CardType
	Queue          CardQueue
	Due            int
	OriginalDue    int
	Interval       int
	Factor         int
	Reps           int
	Lapses         int
	CustomData     CustomData
	UpdatedAt      time.Time
}

// InFilteredDeck reports whether the card is borrowed by a filtered deck.
func (c *Card) InFilteredDeck() bool {
	return c.OriginalDeckID != 0
}

// HomeDeckID returns the deck whose configuration applies to the card.
func (c *Card) HomeDeckID() int64 {
	if c.InFilteredDeck() {
		return c.OriginalDeckID
	}
	return c.DeckID
}

// TrueDue returns the due day in the card's home deck.
func (c *Card) TrueDue() int {
	if c.InFilteredDeck() {
		return c.OriginalDue
	}
	return c.Due
}

// SetTrueDue moves the due day in the home deck. Filtered cards never get an
// original due before day 1.
func (c *Card) SetTrueDue(day int) {
	if c.InFilteredDeck() {
		c.OriginalDue = max(day, 1)
		return
	}
	c.Due = day
}

// CardQuery selects cards for a bulk operation. Empty fields do not filter.
type CardQuery struct {
	IDs     []int64
	NoteIDs []int64
	DeckIDs []int64
	Queues  []CardQueue
	Types   []CardType
	// ReviewedSinceID keeps cards with a review log id >= this value.
	ReviewedSinceID int64
	DueOnOrBefore   *int
	DueAfter        *int
}

// CardStateSnapshot captures the mutable scheduling fields of a card so a
// bulk operation can be undone.
type CardStateSnapshot struct {
	CardID      int64      `json:"card_id"`
	Due         int        `json:"due"`
	OriginalDue int        `json:"odue"`
	Interval    int        `json:"ivl"`
	Factor      int        `json:"factor"`
	CustomData  CustomData `json:"data"`
}

// Snapshot returns the card's current scheduling fields.
func (c *Card) Snapshot() CardStateSnapshot {
	return CardStateSnapshot{
		CardID:      c.ID,
		Due:         c.Due,
		OriginalDue: c.OriginalDue,
		Interval:    c.Interval,
		Factor:      c.Factor,
		CustomData:  c.CustomData,
	}
}

// Restore puts back the fields captured by Snapshot.
func (c *Card) Restore(s CardStateSnapshot) {
	c.Due = s.Due
	c.OriginalDue = s.OriginalDue
	c.Interval = s.Interval
	c.Factor = s.Factor
	c.CustomData = s.CustomData
}
