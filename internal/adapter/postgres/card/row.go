package card

import (
	"time"

	"github.com/heartmarshall/myenglish-scheduler/internal/domain"
)

type cardRow struct {
	ID             int64     `db:"id"`
	NoteID         int64     `db:"note_id"`
	DeckID         int64     `db:"deck_id"`
	OriginalDeckID int64     `db:"original_deck_id"`
	Type           int       `db:"type"`
	Queue          int       `db:"queue"`
	Due            int       `db:"due"`
	OriginalDue    int       `db:"original_due"`
	Interval       int       `db:"interval"`
	Factor         int       `db:"factor"`
	Reps           int       `db:"reps"`
	Lapses         int       `db:"lapses"`
	CustomData     string    `db:"custom_data"`
	UpdatedAt      time.Time `db:"updated_at"`
}

func (r cardRow) toDomain() domain.Card {
	return domain.Card{
		ID:             r.ID,
		NoteID:         r.NoteID,
		DeckID:         r.DeckID,
		OriginalDeckID: r.OriginalDeckID,
		Type:           domain.CardType(r.Type),
		Queue:          domain.CardQueue(r.Queue),
		Due:            r.Due,
		OriginalDue:    r.OriginalDue,
		Interval:       r.Interval,
		Factor:         r.Factor,
		Reps:           r.Reps,
		Lapses:         r.Lapses,
		CustomData:     domain.CustomData(r.CustomData),
		UpdatedAt:      r.UpdatedAt,
	}
}
