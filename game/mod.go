package game

import "errors"

const (
	GoalScore = 100 // The game ends once a player reaches this score
	MaxRolls  = 10  // Most dice a player can roll in a turn
)

var (
	ErrInvalidNumRolls = errors.New("invalid number of rolls")
	ErrGameOver        = errors.New("the game should be over")
)

// Strategy decides how many dice to roll given the current player's score and
// the opponent's score. A strategy keeps no state between calls; 0 means the
// player scores by Hefty Hogs instead of rolling.
type Strategy func(score, opponentScore int) int

// Player identifies one of the two players, or neither.
type Player int

const (
	NoPlayer Player = iota - 1
	PlayerZero
	PlayerOne
)

// Other returns the opponent of p.
func (p Player) Other() Player {
	return 1 - p
}

// Result holds the final scores of a game, player 0 first.
type Result struct {
	Score0 int
	Score1 int
}

// Winner returns PlayerZero if player 0 finished strictly ahead, and PlayerOne
// otherwise.
func (r Result) Winner() Player {
	if r.Score0 > r.Score1 {
		return PlayerZero
	}
	return PlayerOne
}
