// Package sa implements the simulated-annealing placement driver:
// warm-up, cooling, radius-limiting and done schedules wrapped around the
// move/swap acceptance loop (spec.md §4.F).
package sa

import "math"

// Cooler derives the next temperature from the current temperature and
// the acceptance ratio observed over the last round.
type Cooler func(temperature, acceptRatio float64) float64

// DefaultCooler implements `T ← α·T` with
// `α = 0.5 + 0.44·acceptRatio` clamped to [0.5, 0.94].
func DefaultCooler(temperature, acceptRatio float64) float64 {
	alpha := 0.5 + 0.44*acceptRatio
	if alpha < 0.5 {
		alpha = 0.5
	}
	if alpha > 0.94 {
		alpha = 0.94
	}
	return alpha * temperature
}

// Limiter derives the next move radius from the current radius, the
// acceptance ratio, and the maximum allowed hop distance.
type Limiter func(radius int, acceptRatio float64, maxHop int) int

// DefaultLimiter scales the radius to drive acceptance toward 0.44,
// `r ← r · (1 − 0.44 + acceptRatio)`, clamped to [1, maxHop].
func DefaultLimiter(radius int, acceptRatio float64, maxHop int) int {
	scaled := float64(radius) * (1 - 0.44 + acceptRatio)
	r := int(math.Round(scaled))
	if r < 1 {
		r = 1
	}
	if r > maxHop {
		r = maxHop
	}
	return r
}

// Doner reports whether the SA run should stop, given the current round
// number, temperature, and acceptance ratio of the round just completed.
type Doner func(round int, temperature, acceptRatio float64) bool

// DefaultDoner halts once the temperature drops below minTemperature or
// the round cap is reached, whichever comes first.
func DefaultDoner(minTemperature float64, maxRounds int) Doner {
	return func(round int, temperature, acceptRatio float64) bool {
		return temperature < minTemperature || round >= maxRounds
	}
}

// Warmer reports whether the warm-up phase has reached its target
// acceptance ratio and should hand off to RUN.
type Warmer func(acceptRatio float64) bool

// DefaultWarmer targets the literal default acceptance ratio of 0.96.
func DefaultWarmer(acceptRatio float64) bool {
	return acceptRatio >= 0.96
}
