package game

import (
	"blindpoker/pkg/deck"
	"blindpoker/pkg/handrank"
)

// State is the externally visible state of a session
type State string

// State constants
const (
	// StateNewGame is before the game has started
	StateNewGame State = "new-game"

	// StatePlayerTurn means the player may select cards, play, or discard
	StatePlayerTurn State = "player-turn"

	// StateCalculatingScore means a play is pending and its result may be
	// displayed; the score has not been committed yet
	StateCalculatingScore State = "calculating-score"

	// StateRoundEnded means the blind was beaten and the next round awaits
	StateRoundEnded State = "round-ended"

	// StateGameOver means the game was won or lost
	StateGameOver State = "game-over"
)

// SortMethod determines how the held hand is ordered
type SortMethod string

// SortMethod constants
const (
	SortByRank SortMethod = "rank"
	SortBySuit SortMethod = "suit"
)

// PendingPlay is a computed but uncommitted play
type PendingPlay struct {
	Result *handrank.Hand `json:"result"`
	Cards  []*deck.Card   `json:"cards"`
	Delta  int            `json:"delta"`
}

// GameState is a read-only snapshot of the session for the presentation layer
type GameState struct {
	State      State          `json:"state"`
	Round      int            `json:"round"`
	Blind      Blind          `json:"blind"`
	Score      int            `json:"score"`
	Hands      int            `json:"hands"`
	Draws      int            `json:"draws"`
	CardsLeft  int            `json:"cardsLeft"`
	Hand       deck.Hand      `json:"hand"`
	Selected   []*deck.Card   `json:"selected"`
	LastResult *handrank.Hand `json:"lastResult"`
	Pending    *PendingPlay   `json:"pending"`
	SortMethod SortMethod     `json:"sortMethod"`
	Outcome    string         `json:"outcome"`
	Won        bool           `json:"won"`
}

// GameState returns a snapshot of the current session state
func (s *Session) GameState() *GameState {
	return &GameState{
		State:      s.state,
		Round:      s.Round(),
		Blind:      s.CurrentBlind(),
		Score:      s.score,
		Hands:      s.hands,
		Draws:      s.draws,
		CardsLeft:  s.CardsLeft(),
		Hand:       s.hand.Clone(),
		Selected:   s.Selected(),
		LastResult: s.lastResult,
		Pending:    s.pendingPlay,
		SortMethod: s.sortMethod,
		Outcome:    s.outcome,
		Won:        s.won,
	}
}
