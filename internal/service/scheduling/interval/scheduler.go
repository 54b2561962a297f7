// Package interval computes the next interval of a review card under a
// damped growth model and spreads the results over the coming days.
package interval

import (
	"math"
	"time"

	"github.com/heartmarshall/myenglish-scheduler/internal/domain"
	"github.com/heartmarshall/myenglish-scheduler/internal/service/scheduling/deckparams"
)

// RunContext is the state of one batch. It is created per batch and must
// not be shared between batches.
type RunContext struct {
	Today int
	// Now is used to find the weekday of candidate days.
	Now time.Time
	// MaxInterval caps every result. Zero means the card's deck limit.
	MaxInterval int
	FreeDays    map[time.Weekday]bool
	LoadBalance bool
	Buckets     *DayBuckets
	// FuzzDelta, when set, replaces the seeded fuzz with the host's own
	// per-card offset.
	FuzzDelta func(cardID int64, ivl int) int
}

// Decision is the outcome of one computation.
type Decision struct {
	// Raw is the interval before fuzz and clamping.
	Raw float64
	// Interval is the final interval, within [1, max interval].
	Interval int
	// ModFactor is the damped multiplier; zero when the grade kept the
	// current interval.
	ModFactor float64
}

// Scheduler computes intervals. It holds no state; everything a batch
// mutates lives in the RunContext.
type Scheduler struct{}

// NewScheduler creates a Scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Next computes the interval of a review card from its history, which must
// be ordered oldest first. elapsedDays is the number of days since the last
// review.
func (s *Scheduler) Next(rc *RunContext, card *domain.Card, history []domain.ReviewEvent, p deckparams.Params, elapsedDays int) Decision {
	maxIvl := p.MaxInterval
	if rc.MaxInterval > 0 {
		maxIvl = rc.MaxInterval
	}
	maxIvl = max(maxIvl, 1)

	keep := func(raw float64) Decision {
		return Decision{Raw: raw, Interval: s.finish(rc, card, raw, elapsedDays, maxIvl)}
	}

	if len(history) < 2 {
		return keep(float64(card.Interval))
	}
	last := history[len(history)-1]
	mult := float64(last.Factor) / 1000

	switch last.Grade {
	case domain.GradeManual:
		return keep(float64(card.Interval))
	case domain.GradeAgain:
		sr, ok := card.CustomData.Float(domain.KeySuccessRate)
		if !ok {
			return keep(float64(card.Interval))
		}
		shrink := math.Max(p.AgainMult-(1-sr), p.MinAgainMult)
		return keep(math.Max(float64(card.Interval)*shrink, 1))
	case domain.GradeHard:
		if p.HardFactor <= 1 {
			return keep(float64(card.Interval))
		}
		// The closer the hard multiplier is to the good one, the closer
		// the blend gets to 1.
		ratio := 1.0
		if mult > 0 {
			ratio = math.Min(p.HardFactor/mult, 1)
		}
		mult = p.HardFactor*(1-ratio) + ratio
	case domain.GradeGood:
	case domain.GradeEasy:
		mult *= p.EasyFactor
	default:
		return keep(float64(card.Interval))
	}

	mod := modFactor(mult, float64(last.LastInterval), p.DaysUpper)
	raw := math.Min(float64(card.Interval), float64(last.LastInterval)*mod)
	return Decision{
		Raw:       raw,
		Interval:  s.finish(rc, card, raw, elapsedDays, maxIvl),
		ModFactor: mod,
	}
}

// modFactor damps mult towards its square root as prevIvl approaches
// daysUpper*mult.
func modFactor(mult, prevIvl, daysUpper float64) float64 {
	minMod := math.Sqrt(math.Max(mult, 0))
	adjDaysUpper := daysUpper * mult

	ratio := 1.0
	if adjDaysUpper > 0 {
		ratio = math.Min(prevIvl/adjDaysUpper, 1)
	}
	return math.Min(mult, mult*(1-ratio)+minMod*ratio)
}

func (s *Scheduler) finish(rc *RunContext, card *domain.Card, raw float64, elapsedDays, maxIvl int) int {
	ivl := s.fuzz(rc, card, raw, elapsedDays)
	return min(max(ivl, 1), maxIvl)
}

func (s *Scheduler) fuzz(rc *RunContext, card *domain.Card, raw float64, elapsedDays int) int {
	if raw < minFuzzInterval {
		return roundHalfEven(raw)
	}
	ivl := roundHalfEven(raw)
	minIvl, maxIvl := FuzzRange(ivl, elapsedDays)

	if rc.LoadBalance && rc.Buckets != nil {
		return s.balance(rc, card, ivl, minIvl, maxIvl)
	}
	if rc.FuzzDelta != nil {
		return ivl + rc.FuzzDelta(card.ID, ivl)
	}
	return randomFuzz(minIvl, maxIvl, Seed(card.ID, card.Reps))
}

// balance picks the candidate in [minIvl, maxIvl] whose due day carries the
// smallest load. Candidates are scanned from the longest down and only a
// strictly smaller load replaces the current pick, so ties keep the longest
// interval. Days on a free weekday are never picked.
func (s *Scheduler) balance(rc *RunContext, card *domain.Card, ivl, minIvl, maxIvl int) int {
	step := (maxIvl-minIvl)/100 + 1
	due := card.TrueDue()

	// Candidates follow range(min, max+step, step), so the top one may
	// overshoot maxIvl by less than a step.
	top := minIvl
	for c := minIvl; c < maxIvl+step; c += step {
		top = c
	}

	best, bestLoad := ivl, math.MaxInt
	for c := top; c >= minIvl; c -= step {
		checkDue := due + c - card.Interval
		offset := checkDue - rc.Today
		if rc.FreeDays[rc.Now.AddDate(0, 0, offset).Weekday()] {
			continue
		}
		if load := rc.Buckets.Load(checkDue); load < bestLoad {
			best, bestLoad = c, load
		}
	}
	return best
}
