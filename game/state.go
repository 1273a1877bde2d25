package game

type Phase int

const (
	PlayerZeroTurn Phase = iota
	PlayerOneTurn
	GameOver
)

func (p Phase) String() string {
	switch p {
	case PlayerZeroTurn:
		return "player 0 turn"
	case PlayerOneTurn:
		return "player 1 turn"
	case GameOver:
		return "game over"
	default:
		return "unknown phase"
	}
}

// State is the state of a single game between two players. It is owned by
// one game and must not be shared between concurrent games.
type State struct {
	Score0 int
	Score1 int
	Phase  Phase
	Leader Player // Leader as last reported by the commentary
	Turns  int    // Turns completed so far
	Goal   int
}

// NewState returns the state of a game that starts from the given scores
// with player 0 to move.
func NewState(score0, score1, goal int) *State {
	s := &State{
		Score0: score0,
		Score1: score1,
		Phase:  PlayerZeroTurn,
		Leader: NoPlayer,
		Goal:   goal,
	}
	if s.reachedGoal() {
		s.Phase = GameOver
	}
	return s
}

// CurrentPlayer returns the player to move, or NoPlayer once the game is over.
func (s *State) CurrentPlayer() Player {
	switch s.Phase {
	case PlayerZeroTurn:
		return PlayerZero
	case PlayerOneTurn:
		return PlayerOne
	default:
		return NoPlayer
	}
}

// Scores returns the score of player p followed by the score of the opponent.
func (s *State) Scores(p Player) (score, opponentScore int) {
	if p == PlayerOne {
		return s.Score1, s.Score0
	}
	return s.Score0, s.Score1
}

// Add adds points to the score of player p.
func (s *State) Add(p Player, points int) {
	if p == PlayerOne {
		s.Score1 += points
	} else {
		s.Score0 += points
	}
}

// EndTurn hands the move to the other player, or ends the game if either
// score has reached the goal.
func (s *State) EndTurn() {
	s.Turns++
	if s.reachedGoal() {
		s.Phase = GameOver
		return
	}
	if s.Phase == PlayerZeroTurn {
		s.Phase = PlayerOneTurn
	} else {
		s.Phase = PlayerZeroTurn
	}
}

func (s *State) reachedGoal() bool {
	return s.Score0 >= s.Goal || s.Score1 >= s.Goal
}

func (s *State) Result() Result {
	return Result{Score0: s.Score0, Score1: s.Score1}
}
