package domain

import (
	"strconv"
	"strings"
)

// CardType is the learning stage a card has reached.
type CardType int

const (
	CardTypeNew        CardType = 0
	CardTypeLearning   CardType = 1
	CardTypeReview     CardType = 2
	CardTypeRelearning CardType = 3
)

func (t CardType) String() string {
	switch t {
	case CardTypeNew:
		return "new"
	case CardTypeLearning:
		return "learn"
	case CardTypeReview:
		return "review"
	case CardTypeRelearning:
		return "relearn"
	}
	return "unknown"
}

// CardQueue is the queue a card is currently served from. Negative values
// take the card out of rotation.
type CardQueue int

const (
	QueueManuallyBuried CardQueue = -3
	QueueSiblingBuried  CardQueue = -2
	QueueSuspended      CardQueue = -1
	QueueNew            CardQueue = 0
	QueueLearning       CardQueue = 1
	QueueReview         CardQueue = 2
	QueueDayLearning    CardQueue = 3
	QueuePreview        CardQueue = 4
)

func (q CardQueue) String() string {
	switch q {
	case QueueManuallyBuried:
		return "manually buried"
	case QueueSiblingBuried:
		return "sibling buried"
	case QueueSuspended:
		return "suspended"
	case QueueNew:
		return "new"
	case QueueLearning:
		return "learn"
	case QueueReview:
		return "review"
	case QueueDayLearning:
		return "day (re)lrn"
	case QueuePreview:
		return "preview"
	}
	return "unknown"
}

// ActiveQueues are the queues bulk operations pick cards from.
var ActiveQueues = []CardQueue{QueueLearning, QueueReview, QueueDayLearning}

// Grade is the answer button recorded for a review. GradeManual marks a
// manual reschedule or reset rather than an actual answer.
type Grade int

const (
	GradeManual Grade = 0
	GradeAgain  Grade = 1
	GradeHard   Grade = 2
	GradeGood   Grade = 3
	GradeEasy   Grade = 4
)

func (g Grade) String() string {
	switch g {
	case GradeManual:
		return "manual"
	case GradeAgain:
		return "again"
	case GradeHard:
		return "hard"
	case GradeGood:
		return "good"
	case GradeEasy:
		return "easy"
	}
	return "unknown"
}

func (g Grade) IsValid() bool {
	return g >= GradeManual && g <= GradeEasy
}

// IsAnswer reports whether the grade came from an answer button.
func (g Grade) IsAnswer() bool {
	return g >= GradeAgain && g <= GradeEasy
}

// ParseAnswer accepts an answer button by name or by number.
func ParseAnswer(raw string) (Grade, bool) {
	if n, err := strconv.Atoi(raw); err == nil {
		g := Grade(n)
		return g, g.IsAnswer()
	}
	for g := GradeAgain; g <= GradeEasy; g++ {
		if strings.EqualFold(raw, g.String()) {
			return g, true
		}
	}
	return 0, false
}

// ReviewKind classifies a review log entry.
type ReviewKind int

const (
	ReviewKindLearning   ReviewKind = 0
	ReviewKindReview     ReviewKind = 1
	ReviewKindRelearning ReviewKind = 2
	ReviewKindCram       ReviewKind = 3
	ReviewKindManual     ReviewKind = 4
)

func (k ReviewKind) String() string {
	switch k {
	case ReviewKindLearning:
		return "learning"
	case ReviewKindReview:
		return "review"
	case ReviewKindRelearning:
		return "relearning"
	case ReviewKindCram:
		return "cram"
	case ReviewKindManual:
		return "manual"
	}
	return "unknown"
}

// IsAttempt reports whether the entry was an actual study attempt, as
// opposed to a manual reschedule.
func (k ReviewKind) IsAttempt() bool {
	return k >= ReviewKindLearning && k <= ReviewKindCram
}
