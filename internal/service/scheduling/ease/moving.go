// Package ease computes per-card ease factors from answer history.
package ease

import (
	"errors"

	"github.com/heartmarshall/myenglish-scheduler/internal/domain"
)

// ErrEmptySeries is returned when a moving average is asked for no values.
var ErrEmptySeries = errors.New("moving average of empty series")

// gradeScores weights a hard answer halfway between a failure and a success.
var gradeScores = map[domain.Grade]float64{
	domain.GradeManual: 0,
	domain.GradeAgain:  0,
	domain.GradeHard:   0.5,
	domain.GradeGood:   1,
	domain.GradeEasy:   1.25,
}

// MovingAverage returns the exponentially weighted moving average of series,
// seeded with the series mean.
func MovingAverage(series []float64, weight float64) (float64, error) {
	if len(series) == 0 {
		return 0, ErrEmptySeries
	}
	var sum float64
	for _, v := range series {
		sum += v
	}
	return MovingAverageFrom(sum/float64(len(series)), series, weight)
}

// MovingAverageFrom is MovingAverage with an explicit seed.
func MovingAverageFrom(seed float64, series []float64, weight float64) (float64, error) {
	if len(series) == 0 {
		return 0, ErrEmptySeries
	}
	acc := seed
	for _, v := range series {
		acc = acc*(1-weight) + v*weight
	}
	return acc, nil
}

// SuccessRate scores each grade and averages the scores starting from target.
func SuccessRate(grades []domain.Grade, weight, target float64) (float64, error) {
	scores := make([]float64, len(grades))
	for i, g := range grades {
		scores[i] = gradeScores[g]
	}
	return MovingAverageFrom(target, scores, weight)
}

func intsToFloats(values []int) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = float64(v)
	}
	return out
}
