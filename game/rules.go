package game

import (
	"fmt"
	"math/big"

	"hog/dice"
)

// RollDice rolls the dice numRolls times and returns their sum, unless any
// outcome is a 1, in which case the whole turn scores 1.
func RollDice(numRolls int, d dice.Dice) (int, error) {
	if numRolls < 1 {
		return 0, fmt.Errorf("%w: must roll at least once, got %d", ErrInvalidNumRolls, numRolls)
	}
	sum := 0
	sowSad := false
	for i := 0; i < numRolls; i++ {
		outcome := d()
		if outcome == 1 {
			sowSad = true
			continue
		}
		sum += outcome
	}
	if sowSad {
		return 1, nil
	}
	return sum, nil
}

// TakeTurn returns the points scored by the current player for a turn of
// numRolls dice, where 0 dice means scoring by Hefty Hogs.
func TakeTurn(numRolls, score, opponentScore int, d dice.Dice, goal int) (int, error) {
	if numRolls < 0 || numRolls > MaxRolls {
		return 0, fmt.Errorf("%w: %d is not in [0, %d]", ErrInvalidNumRolls, numRolls, MaxRolls)
	}
	if max(score, opponentScore) >= goal {
		return 0, fmt.Errorf("%w: scores %d and %d already reach goal %d", ErrGameOver, score, opponentScore, goal)
	}
	if numRolls == 0 {
		return HeftyHogs(score, opponentScore), nil
	}
	return RollDice(numRolls, d)
}

// HogPile returns the bonus for matching ones digits: the shared digit when
// both scores end in the same digit, 0 otherwise.
func HogPile(score, opponentScore int) int {
	if score%10 == opponentScore%10 {
		return score % 10
	}
	return 0
}

var (
	big4  = big.NewInt(4)
	big5  = big.NewInt(5)
	big6  = big.NewInt(6)
	big7  = big.NewInt(7)
	big30 = big.NewInt(30)
	big99 = big.NewInt(99)
)

// digitFn transforms the running Hefty Hogs value in place.
type digitFn func(v *big.Int)

// digitFns maps each digit of the opponent's score to its transformation.
// Division and modulo round toward negative infinity.
var digitFns = [10]digitFn{
	func(v *big.Int) { v.Add(v, big.NewInt(1)) },
	func(v *big.Int) { v.Mul(v, v) },
	func(v *big.Int) { v.Mul(v, big.NewInt(3)) },
	func(v *big.Int) { v.Div(v, big4) },
	func(v *big.Int) { v.Sub(v, big5) },
	func(v *big.Int) { v.Mod(v, big6) },
	func(v *big.Int) { v.Mul(v.Mod(v, big7), big.NewInt(8)) },
	func(v *big.Int) {
		f, _ := new(big.Float).SetInt(v).Float64()
		truncate(v, f*8.8)
	},
	func(v *big.Int) {
		q, _ := new(big.Rat).SetFrac(v, big99).Float64()
		truncate(v, q*15)
		v.Add(v, big.NewInt(10))
	},
	func(v *big.Int) {},
}

// truncate sets v to f rounded toward zero.
func truncate(v *big.Int, f float64) {
	big.NewFloat(f).Int(v)
}

// HeftyHogs returns the points scored by rolling zero dice. Starting from the
// player's score, each digit of the opponent's score, ones digit first,
// transforms the running value; the result is taken modulo 30. An opponent
// score of 0 always yields 1.
func HeftyHogs(score, opponentScore int) int {
	if opponentScore == 0 {
		return 1
	}
	v := big.NewInt(int64(score))
	for opponentScore > 0 {
		digitFns[opponentScore%10](v)
		opponentScore /= 10
	}
	return int(v.Mod(v, big30).Int64())
}
