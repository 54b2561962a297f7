package ease

import (
	"math"
	"slices"

	"github.com/heartmarshall/myenglish-scheduler/internal/domain"
)

// Success rates are kept away from 0 and 1, where ln() of the rate blows up
// the delta ratio.
const (
	minSuccessRate = 0.01
	maxSuccessRate = 0.99
)

// Config holds the knobs of the ease calculation.
type Config struct {
	// Leash limits how far one recomputation may move the factor, in per-mille points.
	Leash   int
	MinEase int
	MaxEase int
	// Weight is the moving-average weight in (0, 1].
	Weight float64
	// Target is the success ratio the factor is steered towards, in (0, 1).
	Target float64
	// ReviewsOnly restricts the grade history to review answers.
	ReviewsOnly bool
}

// History is the input of one ease computation. Factors may contain zeros
// for entries that never had a factor; they are ignored.
type History struct {
	Grades  []domain.Grade
	Factors []int
}

func (h History) validFactors() []int {
	out := make([]int, 0, len(h.Factors))
	for _, f := range h.Factors {
		if f > 0 {
			out = append(out, f)
		}
	}
	return out
}

// Calculator computes next ease factors.
type Calculator struct {
	cfg Config
}

// NewCalculator creates a Calculator.
func NewCalculator(cfg Config) *Calculator {
	return &Calculator{cfg: cfg}
}

// Config returns the calculator's configuration.
func (c *Calculator) Config() Config {
	return c.cfg
}

// NextEaseFactor returns the next ease factor for a card and the success
// rate it was derived from. The result always lies in [MinEase, MaxEase].
func (c *Calculator) NextEaseFactor(startingEase int, h History, leashed bool) (int, float64) {
	valid := h.validFactors()

	current := startingEase
	if len(valid) > 0 {
		current = valid[len(valid)-1]
	}

	successRate := c.successRate(h.Grades)
	deltaRatio := math.Log(c.cfg.Target) / math.Log(successRate)

	averageEase := float64(startingEase)
	if len(valid) > 0 {
		averageEase, _ = MovingAverage(intsToFloats(valid), c.cfg.Weight)
	}
	suggested := averageEase * deltaRatio
	if suggested == 0 {
		return clampInt(current, c.cfg.MinEase, c.cfg.MaxEase), successRate
	}

	if leashed {
		suggested = c.leash(suggested, float64(current), float64(startingEase))
	}

	return clampInt(roundHalfEven(suggested), c.cfg.MinEase, c.cfg.MaxEase), successRate
}

// leash clamps suggested into a band around current. The band above shrinks
// as current nears MaxEase and widens while current is below the starting
// ease; the band below mirrors that towards MinEase.
func (c *Calculator) leash(suggested, current, start float64) float64 {
	maxEase := float64(c.cfg.MaxEase)
	minEase := float64(c.cfg.MinEase)
	leash := float64(c.cfg.Leash)

	up := math.Cbrt(maxEase/current) *
		math.Pow(suggested/start, 0.25) *
		(1 - current/maxEase) *
		(start / current)

	down := (current/minEase - 1) *
		math.Cbrt(start/suggested) *
		(current / start)

	ceiling := math.Min(maxEase, current+leash*up)
	if suggested > ceiling {
		suggested = ceiling
	}

	floor := math.Max(minEase, current-leash*down)
	if suggested < floor {
		suggested = floor
	}
	return suggested
}

func (c *Calculator) successRate(grades []domain.Grade) float64 {
	if len(grades) == 0 {
		return c.cfg.Target
	}
	rate, _ := SuccessRate(grades, c.cfg.Weight, c.cfg.Target)
	return clampFloat(rate, minSuccessRate, maxSuccessRate)
}

// SuggestInput is the logged state of a card plus an optional answer that
// has not been logged yet.
type SuggestInput struct {
	// Grades are the logged answers, already filtered to reviews when the
	// calculator runs in reviews-only mode.
	Grades  []domain.Grade
	Factors []int
	// NewAnswer is the answer being recorded right now, nil for bulk runs.
	NewAnswer *domain.Grade
	// StoredFactor is the factor currently stored on the card; it replaces
	// the last logged factor. Zero means none.
	StoredFactor int
}

// Suggest computes the factor for a card from its logged history. The stored
// card factor stands in for the last non-zero logged factor. Without a new answer the
// last factor is the one the computation replaces, so it is dropped.
func (c *Calculator) Suggest(startingEase int, in SuggestInput, leashed bool) (int, float64) {
	grades := slices.Clone(in.Grades)
	if in.NewAnswer != nil {
		grades = append(grades, *in.NewAnswer)
	}

	factors := History{Factors: in.Factors}.validFactors()
	if len(factors) > 0 {
		factors[len(factors)-1] = in.StoredFactor
	}
	if in.NewAnswer == nil && len(factors) > 1 {
		factors = factors[:len(factors)-1]
	}

	return c.NextEaseFactor(startingEase, History{Grades: grades, Factors: factors}, leashed)
}

// Replay recomputes the factor after every answer of a card, as if the
// calculator had been active from the first review. The i-th result is the
// factor logged with grades[i].
func (c *Calculator) Replay(startingEase int, grades []domain.Grade, leashed bool) []int {
	factors := make([]int, 1, len(grades)+1)
	factors[0] = startingEase

	out := make([]int, len(grades))
	for i := range grades {
		f, _ := c.NextEaseFactor(startingEase, History{Grades: grades[:i], Factors: factors}, leashed)
		out[i] = f
		factors = append(factors, f)
	}
	return out
}

// roundHalfEven rounds ties to the even neighbour.
func roundHalfEven(v float64) int {
	return int(math.RoundToEven(v))
}

func clampInt(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

func clampFloat(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
