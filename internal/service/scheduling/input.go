package scheduling

import (
	"fmt"

	"github.com/heartmarshall/myenglish-scheduler/internal/domain"
)

// RescheduleInput selects the cards to reschedule. Without any field the
// whole collection is rescheduled.
type RescheduleInput struct {
	DeckID *int64
	// Recent keeps cards reviewed within the configured number of days.
	Recent  bool
	CardIDs []int64
}

// Validate checks all fields and collects all errors.
func (i *RescheduleInput) Validate() error {
	var errs []domain.FieldError
	errs = validateDeckID(errs, i.DeckID)
	errs = validateIDs(errs, "card_ids", i.CardIDs)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// AdjustEaseInput selects the cards whose ease is recomputed. When CardIDs
// is set only cards last touched by a live review are adjusted.
type AdjustEaseInput struct {
	DeckID  *int64
	Recent  bool
	CardIDs []int64
}

// Validate checks all fields and collects all errors.
func (i *AdjustEaseInput) Validate() error {
	var errs []domain.FieldError
	errs = validateDeckID(errs, i.DeckID)
	errs = validateIDs(errs, "card_ids", i.CardIDs)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ShiftInput selects the cards to postpone or advance: either the Count
// cards that suffer least from the shift, or every card whose interval is
// at least MinInterval.
type ShiftInput struct {
	DeckID      *int64
	Count       *int
	MinInterval *int
}

// Validate checks all fields and collects all errors.
func (i *ShiftInput) Validate() error {
	var errs []domain.FieldError
	errs = validateDeckID(errs, i.DeckID)

	switch {
	case i.Count == nil && i.MinInterval == nil:
		errs = append(errs, domain.FieldError{Field: "count", Message: "either count or min_interval is required"})
	case i.Count != nil && i.MinInterval != nil:
		errs = append(errs, domain.FieldError{Field: "count", Message: "count and min_interval are mutually exclusive"})
	case i.Count != nil && *i.Count <= 0:
		errs = append(errs, domain.FieldError{Field: "count", Message: "must be positive"})
	case i.MinInterval != nil && *i.MinInterval <= 0:
		errs = append(errs, domain.FieldError{Field: "min_interval", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// DisperseInput selects the notes whose siblings are spread apart.
type DisperseInput struct {
	DeckID  *int64
	NoteIDs []int64
}

// Validate checks all fields and collects all errors.
func (i *DisperseInput) Validate() error {
	var errs []domain.FieldError
	errs = validateDeckID(errs, i.DeckID)
	errs = validateIDs(errs, "note_ids", i.NoteIDs)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validateDeckID(errs []domain.FieldError, id *int64) []domain.FieldError {
	if id != nil && *id <= 0 {
		errs = append(errs, domain.FieldError{Field: "deck_id", Message: "must be positive"})
	}
	return errs
}

func validateIDs(errs []domain.FieldError, field string, ids []int64) []domain.FieldError {
	for i, id := range ids {
		if id <= 0 {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("%s[%d]", field, i), Message: "must be positive"})
		}
	}
	return errs
}
