package interval

import "github.com/heartmarshall/myenglish-scheduler/internal/domain"

// LastReviewDay returns the day of the card's most recent answered review.
// Without one it is derived from the due day and the current interval.
// history must be ordered oldest first.
func LastReviewDay(tl domain.Timeline, history []domain.ReviewEvent, card *domain.Card) int {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Grade.IsAnswer() {
			return tl.DayOf(history[i].ReviewedAt())
		}
	}
	return card.TrueDue() - card.Interval
}

// ApplyInterval moves the card's due day to lastReviewDay+ivl. The stored
// interval is left alone so repeated runs do not compound.
func ApplyInterval(card *domain.Card, lastReviewDay, ivl int) {
	card.SetTrueDue(lastReviewDay + ivl)
}
