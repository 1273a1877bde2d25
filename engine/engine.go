package engine

import "hog/game"

type Runner interface {
	// Run plays the game until either player reaches the goal and returns the final scores
	Run() (game.Result, error)
}

var _ Runner = (*Engine)(nil)
