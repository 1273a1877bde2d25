package engine

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	"github.com/rs/zerolog/log"

	"hog/dice"
	"hog/game"
)

var ErrTurnLimit = errors.New("turn limit reached")

type Option func(e *Engine)

// Engine plays a game of Hog between two strategies, player 0 first.
type Engine struct {
	State      *game.State
	strategies [2]game.Strategy
	dice       dice.Dice
	say        game.Commentary
	out        io.Writer
	score0     int
	score1     int
	goal       int
	maxTurns   int
}

func WithDice(d dice.Dice) Option {
	return func(e *Engine) {
		if d != nil {
			e.dice = d
		}
	}
}

func WithGoal(goal int) Option {
	return func(e *Engine) {
		e.goal = goal
	}
}

// WithScores sets the scores the players start from.
func WithScores(score0, score1 int) Option {
	return func(e *Engine) {
		e.score0 = score0
		e.score1 = score1
	}
}

func WithCommentary(say game.Commentary) Option {
	return func(e *Engine) {
		if say != nil {
			e.say = say
		}
	}
}

// WithOutput sets where commentary messages are written.
func WithOutput(out io.Writer) Option {
	return func(e *Engine) {
		if out != nil {
			e.out = out
		}
	}
}

// WithMaxTurns stops the game with ErrTurnLimit after the given number of
// turns. Games are unlimited by default.
func WithMaxTurns(turns int) Option {
	return func(e *Engine) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

func New(strategy0, strategy1 game.Strategy, options ...Option) *Engine {
	if strategy0 == nil || strategy1 == nil {
		panic("both players need a strategy")
	}
	e := &Engine{ // Default values
		strategies: [2]game.Strategy{strategy0, strategy1},
		say:        game.Silence,
		out:        os.Stdout,
		goal:       game.GoalScore,
	}
	for _, option := range options {
		option(e)
	}
	if e.goal <= 0 {
		panic(fmt.Sprintf("goal must be positive, got %d", e.goal))
	}
	if e.score0 < 0 || e.score1 < 0 {
		panic(fmt.Sprintf("scores cannot be negative, got %d and %d", e.score0, e.score1))
	}
	if e.dice == nil {
		e.dice = dice.SixSided(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
	}
	e.State = game.NewState(e.score0, e.score1, e.goal)
	return e
}

// Step plays a single turn for the player to move.
func (e *Engine) Step() error {
	s := e.State
	player := s.CurrentPlayer()
	if player == game.NoPlayer {
		return fmt.Errorf("%w: scores are %d and %d", game.ErrGameOver, s.Score0, s.Score1)
	}

	score, opponentScore := s.Scores(player)
	numRolls := e.strategies[player](score, opponentScore)
	points, err := game.TakeTurn(numRolls, score, opponentScore, e.dice, s.Goal)
	if err != nil {
		return fmt.Errorf("player %d: %w", player, err)
	}
	s.Add(player, points)

	// Hog Pile compares the mover's new score against the opponent's current one
	score, opponentScore = s.Scores(player)
	s.Add(player, game.HogPile(score, opponentScore))

	leader, message := e.say(s.Score0, s.Score1, s.Leader)
	s.Leader = leader
	log.Debug().Msgf("turn %d: player %d rolled %d dice, scores %d-%d, leader %d", s.Turns+1, player, numRolls, s.Score0, s.Score1, leader)
	if message != "" {
		fmt.Fprintln(e.out, message)
	}

	s.EndTurn()
	return nil
}

// Run executes the entire game loop until a player reaches the goal.
func (e *Engine) Run() (game.Result, error) {
	log.Debug().Msgf("starting game at %d-%d with goal %d", e.State.Score0, e.State.Score1, e.State.Goal)

	for e.State.Phase != game.GameOver {
		if e.maxTurns > 0 && e.State.Turns >= e.maxTurns {
			return e.State.Result(), fmt.Errorf("%w: stopped after %d turns at %d-%d", ErrTurnLimit, e.State.Turns, e.State.Score0, e.State.Score1)
		}
		if err := e.Step(); err != nil {
			return e.State.Result(), err
		}
	}

	log.Debug().Msgf("game over after %d turns: %d-%d", e.State.Turns, e.State.Score0, e.State.Score1)
	return e.State.Result(), nil
}

// Play runs a silent game between two strategies and returns the final
// scores.
func Play(strategy0, strategy1 game.Strategy, d dice.Dice, goal int) (game.Result, error) {
	return New(strategy0, strategy1, WithDice(d), WithGoal(goal)).Run()
}
