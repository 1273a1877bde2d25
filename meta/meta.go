// meta/meta.go
package meta

// GOAL_SCORE defines the score a player must reach to win.
const GOAL_SCORE = 100

// SIDES defines the number of sides of the fair dice used in experiments.
const SIDES = 6

// SAMPLES defines the number of trials averaged per estimate.
const SAMPLES = 1000

// GO_ROUTINES defines the number of goroutines to use.
const GO_ROUTINES = 8

// MAX_GOAL bounds the goal so Hefty Hogs values stay within float64 range.
const MAX_GOAL = 100000

// BASELINE defines the strategy every other strategy is measured against.
const BASELINE = "always_roll(6)"
