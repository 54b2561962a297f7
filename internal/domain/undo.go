package domain

import (
	"time"

	"github.com/google/uuid"
)

// UndoEntry groups every write of one bulk operation so it can be reverted
// as a single step.
type UndoEntry struct {
	ID        uuid.UUID
	Label     string
	CreatedAt time.Time
	UndoneAt  *time.Time
	Cards     []CardStateSnapshot
	Factors   []ReviewFactorSnapshot
}

// IsUndone reports whether the entry was already reverted.
func (e *UndoEntry) IsUndone() bool {
	return e.UndoneAt != nil
}
