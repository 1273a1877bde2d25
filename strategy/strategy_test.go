package strategy

import (
	"testing"

	"github.com/stretchr/testify/require"

	"hog/game"
)

func TestAlwaysRoll(t *testing.T) {
	s := AlwaysRoll(4)
	for score := 0; score < game.GoalScore; score += 7 {
		require.Equal(t, 4, s(score, game.GoalScore-1-score))
	}
}

func TestHeftyHogs(t *testing.T) {
	s := HeftyHogs(DefaultThreshold, DefaultNumRolls)

	require.Equal(t, 0, s(7, 21), "Should roll 0 when Hefty Hogs scores 27")
	require.Equal(t, 6, s(0, 21), "Should roll 6 when Hefty Hogs scores 0")
	require.Equal(t, 6, s(0, 0), "Should roll 6 when Hefty Hogs scores 1")
	require.Equal(t, 0, HeftyHogs(1, 3)(0, 0), "Should roll 0 when 1 meets the threshold")
}

func TestHogPile(t *testing.T) {
	s := HogPile(DefaultThreshold, DefaultNumRolls)

	tests := []struct {
		name                 string
		score, opponentScore int
		want                 int
	}{
		// HeftyHogs(3, 3) = 0 and 3 + 0 matches the opponent's 3
		{"bonus without points", 3, 3, 0},
		// HeftyHogs(5, 21) = 15 and 5 + 15 = 20 does not match 21
		{"points without bonus", 5, 21, 0},
		// HeftyHogs(1, 2) = 3 and 1 + 3 = 4 does not match 2
		{"neither bonus nor points", 1, 2, 6},
		// HeftyHogs(8, 30) = 2 and 8 + 2 = 10 shares a 0 with 30
		{"shared 0 is no bonus", 8, 30, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, s(tt.score, tt.opponentScore))
		})
	}

	require.Equal(t, 6, HeftyHogs(DefaultThreshold, DefaultNumRolls)(3, 3), "Hefty Hogs alone should roll")
}

func TestParse(t *testing.T) {
	t.Run("named strategies", func(t *testing.T) {
		for _, name := range []string{"hefty_hogs", "hog_pile", " hog_pile "} {
			s, err := Parse(name)
			require.NoError(t, err)
			require.NotNil(t, s)
		}
	})

	t.Run("constant strategies", func(t *testing.T) {
		s, err := Parse("always_roll(6)")
		require.NoError(t, err)
		require.Equal(t, 6, s(0, 0))

		s, err = Parse("always_roll(0)")
		require.NoError(t, err)
		require.Equal(t, 0, s(50, 50))
	})

	t.Run("unknown strategies", func(t *testing.T) {
		for _, name := range []string{"", "final", "always_roll(11)", "always_roll(-1)", "always_roll(x)", "always_roll(6"} {
			_, err := Parse(name)
			require.ErrorIs(t, err, ErrUnknownStrategy, "Should reject %q", name)
		}
	})
}
