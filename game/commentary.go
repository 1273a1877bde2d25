package game

import "fmt"

// Commentary observes the scores after a turn along with the leader it
// returned after the previous turn. It returns the leader to pass on to the
// next turn and a message, which is empty when there is nothing to say.
type Commentary func(score0, score1 int, leader Player) (Player, string)

// Silence announces nothing.
func Silence(score0, score1 int, leader Player) (Player, string) {
	return leader, ""
}

// SayScores announces the score of each player.
func SayScores(score0, score1 int, leader Player) (Player, string) {
	return leader, fmt.Sprintf("Player 0 now has %d and now Player 1 has %d", score0, score1)
}

// AnnounceLeadChanges announces whenever a player takes the lead. A tie has
// no leader.
func AnnounceLeadChanges(score0, score1 int, lastLeader Player) (Player, string) {
	var leader Player
	var lead int
	switch {
	case score0 > score1:
		leader, lead = PlayerZero, score0-score1
	case score1 > score0:
		leader, lead = PlayerOne, score1-score0
	default:
		return NoPlayer, ""
	}
	if leader == lastLeader {
		return leader, ""
	}
	return leader, fmt.Sprintf("Player %d takes the lead by %d", leader, lead)
}

// Both returns a commentary that says what f says, then what g says. The
// returned leader is always the one g returns.
func Both(f, g Commentary) Commentary {
	return func(score0, score1 int, leader Player) (Player, string) {
		_, fMessage := f(score0, score1, leader)
		gLeader, gMessage := g(score0, score1, leader)
		switch {
		case fMessage != "" && gMessage != "":
			return gLeader, fMessage + "\n" + gMessage
		case fMessage != "":
			return gLeader, fMessage
		default:
			return gLeader, gMessage
		}
	}
}
