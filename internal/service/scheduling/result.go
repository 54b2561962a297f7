package scheduling

import (
	"fmt"

	"github.com/google/uuid"
)

// Operation names a bulk operation.
type Operation string

const (
	OpReschedule Operation = "reschedule"
	OpPostpone   Operation = "postpone"
	OpAdvance    Operation = "advance"
	OpDisperse   Operation = "disperse"
	OpAdjustEase Operation = "adjust-ease"
	OpImportEase Operation = "import-ease"
)

// IsValid reports whether op names a known operation.
func (op Operation) IsValid() bool {
	switch op {
	case OpReschedule, OpPostpone, OpAdvance, OpDisperse, OpAdjustEase, OpImportEase:
		return true
	}
	return false
}

// undoLabel is the name the undo entry of the operation carries.
func (op Operation) undoLabel() string {
	switch op {
	case OpReschedule:
		return "Reschedule"
	case OpPostpone:
		return "Postpone"
	case OpAdvance:
		return "Advance"
	case OpDisperse:
		return "Disperse siblings"
	case OpAdjustEase:
		return "Adjust ease"
	case OpImportEase:
		return "Import ease"
	}
	return string(op)
}

// progressLabel describes n processed cards.
func (op Operation) progressLabel(n int) string {
	switch op {
	case OpReschedule:
		return fmt.Sprintf("%d cards rescheduled", n)
	case OpPostpone:
		return fmt.Sprintf("%d cards postponed", n)
	case OpAdvance:
		return fmt.Sprintf("%d cards advanced", n)
	case OpDisperse:
		return fmt.Sprintf("%d cards dispersed", n)
	case OpAdjustEase:
		return fmt.Sprintf("Adjusted ease for %d cards", n)
	case OpImportEase:
		return fmt.Sprintf("Imported ease for %d cards", n)
	}
	return fmt.Sprintf("%d cards processed", n)
}

// Result is the outcome of a bulk operation.
type Result struct {
	Operation Operation
	Processed int
	Skipped   int
	// Problems are warnings and per-card failures that did not stop the run.
	Problems  []string
	Cancelled bool
	// UndoID is uuid.Nil when nothing was written.
	UndoID  uuid.UUID
	Summary string
}

// CandidateCounts guides how many cards to postpone or advance.
type CandidateCounts struct {
	Total int
	// Safe is the number of cards that can be shifted with little harm.
	Safe int
	// AtLeastInterval counts the cards whose interval is at least the
	// requested threshold; zero when no threshold was given.
	AtLeastInterval int
}
