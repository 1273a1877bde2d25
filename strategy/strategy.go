// Package strategy provides reference strategies for Hog.
package strategy

import "hog/game"

const (
	DefaultThreshold = 8 // Fewest Hefty Hogs points worth rolling zero dice for
	DefaultNumRolls  = 6 // Dice rolled when not using Hefty Hogs
)

// AlwaysRoll returns a strategy that always rolls n dice.
func AlwaysRoll(n int) game.Strategy {
	return func(score, opponentScore int) int {
		return n
	}
}

// HeftyHogs returns a strategy that rolls 0 dice if that gives at least
// threshold points, and numRolls dice otherwise.
func HeftyHogs(threshold, numRolls int) game.Strategy {
	return func(score, opponentScore int) int {
		if game.HeftyHogs(score, opponentScore) >= threshold {
			return 0
		}
		return numRolls
	}
}

// HogPile returns a strategy that rolls 0 dice whenever the resulting score
// would earn a Hog Pile bonus, and otherwise plays like HeftyHogs.
func HogPile(threshold, numRolls int) game.Strategy {
	fallback := HeftyHogs(threshold, numRolls)
	return func(score, opponentScore int) int {
		newScore := score + game.HeftyHogs(score, opponentScore)
		if game.HogPile(newScore, opponentScore) != 0 {
			return 0
		}
		return fallback(score, opponentScore)
	}
}
