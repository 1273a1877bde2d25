package dice

import (
	"fmt"
	"math/rand/v2"
)

// Dice returns the outcome of a single roll. Outcomes are positive integers.
type Dice func() int

// Factory returns the dice stream to use for the given trial. Streams for
// different trials must be independent of each other.
type Factory func(trial uint64) Dice

// Fair returns dice that roll uniformly over 1..sides using rng.
func Fair(sides int, rng *rand.Rand) Dice {
	if sides < 1 {
		panic(fmt.Sprintf("dice must have at least one side, got %d", sides))
	}
	return func() int {
		return rng.IntN(sides) + 1
	}
}

func SixSided(rng *rand.Rand) Dice {
	return Fair(6, rng)
}

func FourSided(rng *rand.Rand) Dice {
	return Fair(4, rng)
}

// NewFairFactory returns a factory of fair dice where trial i rolls from the
// PCG stream (seed, i). The same seed always reproduces the same trials,
// regardless of the order in which they run.
func NewFairFactory(sides int, seed uint64) Factory {
	return func(trial uint64) Dice {
		return Fair(sides, rand.New(rand.NewPCG(seed, trial)))
	}
}

// Shared returns a factory handing the same dice to every trial. The trials
// are then only as independent as the dice itself, and d must not be rolled
// from more than one goroutine.
func Shared(d Dice) Factory {
	return func(uint64) Dice {
		return d
	}
}

// NewTestDice returns dice that roll the given outcomes in order, starting
// over once all of them have been rolled.
func NewTestDice(outcomes ...int) Dice {
	if len(outcomes) == 0 {
		panic("test dice need at least one outcome")
	}
	script := append([]int(nil), outcomes...)
	next := 0
	return func() int {
		outcome := script[next]
		next = (next + 1) % len(script)
		return outcome
	}
}

// NewStrictTestDice is like NewTestDice but panics when rolled more times
// than there are outcomes.
func NewStrictTestDice(outcomes ...int) Dice {
	script := append([]int(nil), outcomes...)
	next := 0
	return func() int {
		if next >= len(script) {
			panic(fmt.Sprintf("test dice exhausted after %d rolls", len(script)))
		}
		outcome := script[next]
		next++
		return outcome
	}
}
