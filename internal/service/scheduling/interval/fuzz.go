package interval

import (
	"math"
	"math/rand"
	"strconv"
)

// Intervals below minFuzzInterval are never fuzzed.
const minFuzzInterval = 7

// seedRotation is how many decimal places the card id is rotated by.
const seedRotation = 8

// FuzzRange returns the window a fuzzed interval may land in: about 5% either
// side with at least one day, never below 2 and, when the card is not
// overdue, never on or before the day already elapsed.
func FuzzRange(ivl, elapsedDays int) (minIvl, maxIvl int) {
	minIvl = max(2, roundHalfEven(float64(ivl)*0.95-1))
	maxIvl = roundHalfEven(float64(ivl)*1.05 + 1)
	if ivl > elapsedDays {
		minIvl = max(minIvl, elapsedDays+1)
	}
	return minIvl, maxIvl
}

// Seed derives the fuzz seed of a card. The same card with the same number
// of repetitions always gets the same seed, so reruns are idempotent.
func Seed(cardID int64, reps int) int64 {
	return rotateDigits(cardID, seedRotation) + int64(reps)
}

// rotateDigits moves the first k decimal digits of n to its end.
func rotateDigits(n int64, k int) int64 {
	if n < 0 {
		n = -n
	}
	s := strconv.FormatInt(n, 10)
	k %= len(s)
	out, err := strconv.ParseInt(s[k:]+s[:k], 10, 64)
	if err != nil {
		return n
	}
	return out
}

// fuzzFactor returns the uniform [0, 1) draw for a seed.
func fuzzFactor(seed int64) float64 {
	//nolint:gosec // deterministic fuzz, not cryptographic
	return rand.New(rand.NewSource(seed)).Float64()
}

// randomFuzz places ivl inside its window using the card's seed.
func randomFuzz(minIvl, maxIvl int, seed int64) int {
	f := fuzzFactor(seed)
	return int(f*float64(maxIvl-minIvl+1) + float64(minIvl))
}

// roundHalfEven rounds ties to the even neighbour.
func roundHalfEven(v float64) int {
	return int(math.RoundToEven(v))
}

// Fuzzable reports whether an interval is long enough to be fuzzed.
func Fuzzable(ivl int) bool {
	return ivl >= minFuzzInterval
}
