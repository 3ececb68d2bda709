package analytics

import (
	"math"

	"mindgym/internal/models"
)

// distribution holds the assumed population mean and standard deviation
// of raw scores for one game type
type distribution struct {
	mean   float64
	stdDev float64
}

// scoreDistributions approximates the score population per game type.
// These are fixed estimates, not derived from live player data.
var scoreDistributions = map[models.GameType]distribution{
	models.GameMemoryGrid:       {mean: 65, stdDev: 20},
	models.GameSequenceMemory:   {mean: 8, stdDev: 3},
	models.GameWordRecall:       {mean: 12, stdDev: 4},
	models.GameMentalMath:       {mean: 55, stdDev: 25},
	models.GameNumberComparison: {mean: 70, stdDev: 15},
	models.GameEstimation:       {mean: 60, stdDev: 20},
	models.GamePatternMatch:     {mean: 70, stdDev: 18},
	models.GameLogicPuzzle:      {mean: 50, stdDev: 20},
	models.GameTowerOfHanoi:     {mean: 40, stdDev: 15},
	models.GameWordScramble:     {mean: 65, stdDev: 18},
	models.GameVerbalAnalogies:  {mean: 55, stdDev: 20},
	models.GameVocabulary:       {mean: 60, stdDev: 22},
}

// Percentile estimates the population rank of a raw score within a game
// type, always in [1, 99]. Unknown game types report the 50th percentile.
func Percentile(score int, gameType models.GameType) int {
	dist, ok := scoreDistributions[gameType]
	if !ok {
		return 50
	}

	zScore := (float64(score) - dist.mean) / dist.stdDev
	percentile := int(normalCDF(zScore) * 100)

	if percentile < 1 {
		return 1
	}
	if percentile > 99 {
		return 99
	}
	return percentile
}

func normalCDF(x float64) float64 {
	return 0.5 * (1 + erf(x/math.Sqrt2))
}

// erf is the Abramowitz and Stegun 7.1.26 polynomial approximation of
// the error function (max error ~1.5e-7)
func erf(x float64) float64 {
	const (
		a1 = 0.254829592
		a2 = -0.284496736
		a3 = 1.421413741
		a4 = -1.453152027
		a5 = 1.061405429
		p  = 0.3275911
	)

	sign := 1.0
	if x < 0 {
		sign = -1.0
	}
	absX := math.Abs(x)

	t := 1.0 / (1.0 + p*absX)
	y := 1.0 - (((((a5*t+a4)*t)+a3)*t+a2)*t+a1)*t*math.Exp(-absX*absX)

	return sign * y
}
