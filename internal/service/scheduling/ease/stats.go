package ease

import (
	"math"
	"slices"

	"github.com/heartmarshall/myenglish-scheduler/internal/domain"
)

const statsRecentGrades = 10

// Stats explains how the factor of a card would be recomputed.
type Stats struct {
	SuccessRate   float64
	AverageFactor float64
	DeltaRatio    float64
	// LastLoggedFactor is the factor of the last review entry, 0 if none.
	LastLoggedFactor int
	StoredFactor     int
	// Changed is false when the calculator leaves the card alone.
	Changed         bool
	NewFactor       int
	UnleashedFactor int
	// RecentGrades holds at most the last ten answers; Truncated is set
	// when older answers were cut.
	RecentGrades []domain.Grade
	Truncated    bool
}

// Stats computes the explanation for one card. allGrades is the unfiltered
// answer history; in is what Suggest would receive. inReview reports whether
// the card sits in the review queue, which matters in reviews-only mode.
func (c *Calculator) Stats(startingEase int, allGrades []domain.Grade, in SuggestInput, inReview bool) Stats {
	grades := slices.Clone(allGrades)
	if in.NewAnswer != nil {
		grades = append(grades, *in.NewAnswer)
	}

	st := Stats{
		SuccessRate:   c.successRate(grades),
		AverageFactor: float64(startingEase),
		StoredFactor:  in.StoredFactor,
	}
	st.DeltaRatio = math.Log(c.cfg.Target) / math.Log(st.SuccessRate)

	valid := History{Factors: in.Factors}.validFactors()
	if len(valid) > 0 {
		st.AverageFactor, _ = MovingAverage(intsToFloats(valid), c.cfg.Weight)
		st.LastLoggedFactor = valid[len(valid)-1]
	}

	if len(grades) > statsRecentGrades {
		st.Truncated = true
		grades = grades[len(grades)-statsRecentGrades:]
	}
	st.RecentGrades = grades

	if c.cfg.ReviewsOnly && !inReview {
		return st
	}
	st.Changed = true
	st.NewFactor, _ = c.Suggest(startingEase, in, true)
	st.UnleashedFactor, _ = c.Suggest(startingEase, in, false)
	return st
}
