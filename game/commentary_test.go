package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSayScores(t *testing.T) {
	leader, message := SayScores(12, 7, PlayerOne)

	require.Equal(t, PlayerOne, leader, "Should pass the leader through")
	require.Equal(t, "Player 0 now has 12 and now Player 1 has 7", message)
}

func TestAnnounceLeadChanges(t *testing.T) {
	t.Run("announcing a new leader", func(t *testing.T) {
		leader, message := AnnounceLeadChanges(5, 0, NoPlayer)
		require.Equal(t, PlayerZero, leader)
		require.Equal(t, "Player 0 takes the lead by 5", message)

		leader, message = AnnounceLeadChanges(5, 12, PlayerZero)
		require.Equal(t, PlayerOne, leader)
		require.Equal(t, "Player 1 takes the lead by 7", message)
	})

	t.Run("staying silent while the leader holds", func(t *testing.T) {
		leader, message := AnnounceLeadChanges(5, 12, PlayerOne)
		require.Equal(t, PlayerOne, leader)
		require.Empty(t, message)
	})

	t.Run("tie has no leader", func(t *testing.T) {
		leader, message := AnnounceLeadChanges(8, 8, PlayerZero)
		require.Equal(t, NoPlayer, leader)
		require.Empty(t, message)
	})
}

func TestBoth(t *testing.T) {
	t.Run("joining both messages", func(t *testing.T) {
		say := Both(SayScores, AnnounceLeadChanges)

		leader, message := say(10, 0, NoPlayer)

		require.Equal(t, PlayerZero, leader, "Should return g's leader")
		require.Equal(t, "Player 0 now has 10 and now Player 1 has 0\nPlayer 0 takes the lead by 10", message)
	})

	t.Run("only f has a message", func(t *testing.T) {
		say := Both(SayScores, AnnounceLeadChanges)

		leader, message := say(10, 3, PlayerZero)

		require.Equal(t, PlayerZero, leader, "Should return g's leader")
		require.Equal(t, "Player 0 now has 10 and now Player 1 has 3", message, "Should return f's message unchanged")
	})

	t.Run("only g has a message", func(t *testing.T) {
		say := Both(Silence, AnnounceLeadChanges)

		leader, message := say(1, 3, NoPlayer)

		require.Equal(t, PlayerOne, leader)
		require.Equal(t, "Player 1 takes the lead by 2", message)
	})

	t.Run("leader always comes from g", func(t *testing.T) {
		say := Both(AnnounceLeadChanges, Silence)

		leader, message := say(1, 3, NoPlayer)

		require.Equal(t, NoPlayer, leader, "Should ignore f's leader")
		require.Equal(t, "Player 1 takes the lead by 2", message)
	})

	t.Run("nothing to say", func(t *testing.T) {
		leader, message := Both(Silence, Silence)(4, 4, PlayerOne)

		require.Equal(t, PlayerOne, leader)
		require.Empty(t, message)
	})
}
