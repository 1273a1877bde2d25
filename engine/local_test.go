package engine

import (
	"bytes"
	"io"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"hog/dice"
	"hog/game"
	"hog/strategy"
)

func TestRunScriptedGame(t *testing.T) {
	// P0 rolls 3+4 = 7; P1 rolls 1,6 = 1; P0 rolls 3+4 = 7 and reaches 14
	e := New(strategy.AlwaysRoll(2), strategy.AlwaysRoll(2),
		WithDice(dice.NewTestDice(3, 4, 1, 6)),
		WithGoal(10),
		WithOutput(io.Discard),
	)

	got, err := e.Run()

	require.NoError(t, err)
	require.Equal(t, game.Result{Score0: 14, Score1: 1}, got)
	require.Equal(t, 3, e.State.Turns)
	require.Equal(t, game.GameOver, e.State.Phase)
}

func TestRunAppliesHogPile(t *testing.T) {
	// P0 rolls 3 (3-0); P1 rolls 3, matches P0's 3 and earns 3 more (3-6);
	// P0 rolls 3 to 6, matches P1's 6 and earns 6 more (12-6)
	e := New(strategy.AlwaysRoll(1), strategy.AlwaysRoll(1),
		WithDice(dice.NewTestDice(3)),
		WithGoal(10),
		WithOutput(io.Discard),
	)

	got, err := e.Run()

	require.NoError(t, err)
	require.Equal(t, game.Result{Score0: 12, Score1: 6}, got)
}

func TestRunHeftyHogs(t *testing.T) {
	// P0 scores HeftyHogs(0, 0) = 1 (1-0); P1 rolls 2+2+2 (1-6);
	// P0 scores HeftyHogs(1, 6) = 8 (9-6); P1 rolls 6 more (9-12)
	e := New(strategy.AlwaysRoll(0), strategy.AlwaysRoll(3),
		WithDice(dice.NewTestDice(2)),
		WithGoal(12),
		WithOutput(io.Discard),
	)

	got, err := e.Run()

	require.NoError(t, err)
	require.Equal(t, game.Result{Score0: 9, Score1: 12}, got)
	require.Equal(t, game.PlayerOne, got.Winner())
}

func TestRunCommentary(t *testing.T) {
	var out bytes.Buffer
	e := New(strategy.AlwaysRoll(2), strategy.AlwaysRoll(2),
		WithDice(dice.NewTestDice(3, 4, 1, 6)),
		WithGoal(10),
		WithCommentary(game.AnnounceLeadChanges),
		WithOutput(&out),
	)

	_, err := e.Run()

	require.NoError(t, err)
	require.Equal(t, "Player 0 takes the lead by 7\n", out.String(), "Should only print non-empty messages")
	require.Equal(t, game.PlayerZero, e.State.Leader, "Should thread the commentary's leader")
}

func TestRunBothCommentary(t *testing.T) {
	var out bytes.Buffer
	e := New(strategy.AlwaysRoll(2), strategy.AlwaysRoll(2),
		WithDice(dice.NewTestDice(3, 4, 1, 6)),
		WithGoal(10),
		WithCommentary(game.Both(game.SayScores, game.AnnounceLeadChanges)),
		WithOutput(&out),
	)

	_, err := e.Run()

	require.NoError(t, err)
	require.Equal(t, "Player 0 now has 7 and now Player 1 has 0\n"+
		"Player 0 takes the lead by 7\n"+
		"Player 0 now has 7 and now Player 1 has 1\n"+
		"Player 0 now has 14 and now Player 1 has 1\n", out.String())
}

func TestRunInvalidStrategy(t *testing.T) {
	for _, numRolls := range []int{-1, 11} {
		e := New(strategy.AlwaysRoll(2), strategy.AlwaysRoll(numRolls),
			WithDice(dice.NewTestDice(3)),
			WithOutput(io.Discard),
		)

		got, err := e.Run()

		require.ErrorIs(t, err, game.ErrInvalidNumRolls, "Should report %d dice immediately", numRolls)
		require.Equal(t, game.Result{Score0: 6, Score1: 0}, got, "Should stop on player 1's first turn")
		require.Equal(t, game.PlayerOne, e.State.CurrentPlayer())
	}
}

func TestRunStartingScores(t *testing.T) {
	t.Run("game already over", func(t *testing.T) {
		e := New(strategy.AlwaysRoll(2), strategy.AlwaysRoll(2),
			WithScores(100, 3),
			WithDice(dice.NewStrictTestDice()),
		)

		got, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, game.Result{Score0: 100, Score1: 3}, got)
		require.Equal(t, 0, e.State.Turns)
	})

	t.Run("stepping after game over", func(t *testing.T) {
		e := New(strategy.AlwaysRoll(2), strategy.AlwaysRoll(2), WithScores(3, 100))
		require.ErrorIs(t, e.Step(), game.ErrGameOver)
	})
}

func TestRunMaxTurns(t *testing.T) {
	// Both players always roll a 1 and gain a point per turn
	e := New(strategy.AlwaysRoll(1), strategy.AlwaysRoll(1),
		WithDice(dice.NewTestDice(1)),
		WithMaxTurns(5),
		WithOutput(io.Discard),
	)

	_, err := e.Run()

	require.ErrorIs(t, err, ErrTurnLimit)
	require.Equal(t, 5, e.State.Turns)
}

func TestNewPanics(t *testing.T) {
	require.Panics(t, func() { New(nil, strategy.AlwaysRoll(1)) })
	require.Panics(t, func() { New(strategy.AlwaysRoll(1), strategy.AlwaysRoll(1), WithGoal(0)) })
	require.Panics(t, func() { New(strategy.AlwaysRoll(1), strategy.AlwaysRoll(1), WithScores(-1, 0)) })
}

func TestPlayTerminates(t *testing.T) {
	strategies := []game.Strategy{
		strategy.AlwaysRoll(0),
		strategy.AlwaysRoll(1),
		strategy.AlwaysRoll(6),
		strategy.AlwaysRoll(10),
		strategy.HeftyHogs(strategy.DefaultThreshold, strategy.DefaultNumRolls),
		strategy.HogPile(strategy.DefaultThreshold, strategy.DefaultNumRolls),
	}
	rng := rand.New(rand.NewPCG(7, 11))
	for i, s0 := range strategies {
		for j, s1 := range strategies {
			if i == 0 && j == 0 {
				continue // Both always scoring by Hefty Hogs can stall on a fixed pair of scores
			}
			for k := 0; k < 5; k++ {
				got, err := Play(s0, s1, dice.SixSided(rng), game.GoalScore)

				require.NoError(t, err)
				require.GreaterOrEqual(t, max(got.Score0, got.Score1), game.GoalScore)
				require.GreaterOrEqual(t, got.Score0, 0)
				require.GreaterOrEqual(t, got.Score1, 0)
			}
		}
	}
}
