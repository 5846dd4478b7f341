package game

import (
	"errors"
	"fmt"

	"blindpoker/internal/rng"
	"blindpoker/pkg/deck"
	"blindpoker/pkg/handrank"

	"github.com/sirupsen/logrus"
)

// Session is a single-player game owned by the state machine.
// All mutation goes through the command methods; illegal commands are
// guarded no-ops that return false and leave the session unchanged.
// A Session is not safe for concurrent use; a multi-threaded host must
// serialize access to it.
type Session struct {
	options Options
	logger  logrus.FieldLogger
	logChan chan []*LogMessage
	rng     rng.Generator

	state      State
	blindIndex int
	score      int
	hands      int
	draws      int

	deck     *deck.Deck
	hand     deck.Hand
	selected map[int]*deck.Card

	pendingPlay    *PendingPlay
	pendingDiscard []*deck.Card
	lastResult     *handrank.Hand

	sortMethod SortMethod
	outcome    string
	won        bool
}

// NewSession returns a new session in the new-game state
func NewSession(logger logrus.FieldLogger, options Options) (*Session, error) {
	if len(options.Blinds) == 0 {
		return nil, errors.New("at least one blind is required")
	}

	for i := 1; i < len(options.Blinds); i++ {
		if options.Blinds[i].Score <= options.Blinds[i-1].Score {
			return nil, errors.New("blind scores must be in increasing order")
		}
	}

	if options.HandSize < 1 || options.HandSize > 52 {
		return nil, errors.New("hand size must be between 1 and 52")
	}

	if options.MaxSelected < 1 || options.MaxSelected > options.HandSize {
		return nil, errors.New("max selected must be between 1 and the hand size")
	}

	if options.HandsPerRound < 1 {
		return nil, errors.New("hands per round must be at least 1")
	}

	if options.DrawsPerRound < 0 {
		return nil, errors.New("draws per round cannot be negative")
	}

	if logger == nil {
		logger = logrus.StandardLogger()
	}

	var generator rng.Generator
	if options.Seed != 0 {
		generator = rng.NewSeeded(options.Seed)
	}

	return &Session{
		rng:        generator,
		options:    options,
		logger:     logger,
		logChan:    make(chan []*LogMessage, 256),
		state:      StateNewGame,
		selected:   make(map[int]*deck.Card),
		sortMethod: SortByRank,
	}, nil
}

// StartGame starts the first round
func (s *Session) StartGame() bool {
	if s.state != StateNewGame {
		return false
	}

	s.startRound()
	return true
}

// Restart begins a fresh game after a game over
func (s *Session) Restart() bool {
	if s.state != StateGameOver {
		return false
	}

	s.blindIndex = 0
	s.won = false
	s.startRound()
	return true
}

// AdvanceRound proceeds to the next round after a blind was beaten
func (s *Session) AdvanceRound() bool {
	if s.state != StateRoundEnded {
		return false
	}

	s.startRound()
	return true
}

// startRound is the round entry action: fresh shuffled deck, new deal,
// counters and round score reset
func (s *Session) startRound() {
	d := deck.New()
	if s.rng != nil {
		d.SetRNG(s.rng)
	}
	d.Shuffle()

	cards, err := d.DrawCount(s.options.HandSize)
	if err != nil {
		// cannot happen; the hand size is validated against the deck size
		panic(err)
	}

	s.deck = d
	s.hand = cards
	s.hand.SortByRank()

	s.score = 0
	s.hands = s.options.HandsPerRound
	s.draws = s.options.DrawsPerRound
	s.selected = make(map[int]*deck.Card)
	s.pendingPlay = nil
	s.pendingDiscard = nil
	s.lastResult = nil
	s.outcome = ""
	s.state = StatePlayerTurn

	blind := s.CurrentBlind()
	s.logger.WithFields(logrus.Fields{
		"round": s.Round(),
		"blind": blind.Name,
	}).Debug("round started")
	s.sendLogMessages(newLogMessage(s.hand.Clone(), "Round %d started. Beat the %s (%d)", s.Round(), blind.Name, blind.Score))
}

// ToggleSelect adds the card to the selection, or removes it if already
// selected. Selecting past the limit is a no-op.
func (s *Session) ToggleSelect(card *deck.Card) bool {
	if s.state != StatePlayerTurn || s.pendingDiscard != nil || card == nil {
		return false
	}

	held := s.heldCard(card)
	if held == nil {
		return false
	}

	index := held.Index()
	if _, ok := s.selected[index]; ok {
		delete(s.selected, index)
		return true
	}

	if len(s.selected) >= s.options.MaxSelected {
		return false
	}

	s.selected[index] = held
	return true
}

// PlaySelected evaluates the selection and enters the calculating-score
// state. The score is not applied until AcknowledgePlay is called.
func (s *Session) PlaySelected() bool {
	if s.state != StatePlayerTurn || s.pendingDiscard != nil || s.hands == 0 || len(s.selected) == 0 {
		return false
	}

	cards := s.Selected()
	result := handrank.Evaluate(cards)
	delta := handrank.Score(result, cards)

	s.pendingPlay = &PendingPlay{
		Result: result,
		Cards:  cards,
		Delta:  delta,
	}
	s.lastResult = result
	s.state = StateCalculatingScore

	s.sendLogMessages(newLogMessage(cards, "Played %s for %d points", result.Name, delta))
	return true
}

// AcknowledgePlay commits a pending play: the score is applied, the played
// cards are replaced from the top of the deck and returned to the bottom,
// and the round outcome is determined
func (s *Session) AcknowledgePlay() bool {
	if s.state != StateCalculatingScore || s.pendingPlay == nil {
		return false
	}

	pending := s.pendingPlay
	s.pendingPlay = nil

	s.score += pending.Delta
	s.replaceCards(pending.Cards)
	s.hands--
	s.selected = make(map[int]*deck.Card)

	blind := s.CurrentBlind()
	switch {
	case s.score >= blind.Score:
		if s.blindIndex == len(s.options.Blinds)-1 {
			s.won = true
			s.outcome = "Congratulations! You have won the game!"
			s.state = StateGameOver
			s.sendLogMessages(newLogMessage(nil, "Beat the %s and won the game", blind.Name))
		} else {
			s.blindIndex++
			s.outcome = "You beat the blind!"
			s.state = StateRoundEnded
			s.sendLogMessages(newLogMessage(nil, "Beat the %s", blind.Name))
		}
	case s.hands == 0:
		s.outcome = "GAME OVER"
		s.state = StateGameOver
		s.sendLogMessages(newLogMessage(nil, "Out of hands at %d points. Game over", s.score))
	default:
		s.state = StatePlayerTurn
	}

	return true
}

// DiscardSelected stages the selection for a discard-and-draw. The swap is
// not applied until AcknowledgeDiscard is called.
func (s *Session) DiscardSelected() bool {
	if s.state != StatePlayerTurn || s.pendingDiscard != nil || s.draws == 0 || len(s.selected) == 0 {
		return false
	}

	s.pendingDiscard = s.Selected()
	s.sendLogMessages(newLogMessage(s.pendingDiscard, "Discarded %d cards", len(s.pendingDiscard)))
	return true
}

// AcknowledgeDiscard commits a pending discard: the discarded cards are
// replaced from the top of the deck and returned to the bottom
func (s *Session) AcknowledgeDiscard() bool {
	if s.state != StatePlayerTurn || s.pendingDiscard == nil {
		return false
	}

	cards := s.pendingDiscard
	s.pendingDiscard = nil

	s.replaceCards(cards)
	s.draws--
	s.selected = make(map[int]*deck.Card)

	return true
}

// replaceCards swaps the cards out of the hand for an equal number drawn
// from the top of the deck, then returns them to the bottom and reshuffles
func (s *Session) replaceCards(cards []*deck.Card) {
	for _, card := range cards {
		if !s.hand.Remove(card) {
			panic(fmt.Sprintf("card %s is not in the hand", card))
		}
	}

	drawn, err := s.deck.DrawCount(len(cards))
	if err != nil {
		// cannot happen; the deck always holds at least 52 minus the hand size
		panic(err)
	}

	for _, card := range drawn {
		s.hand.AddCard(card)
	}

	s.deck.ReturnToBottom(cards)
	s.deck.Shuffle()
	s.sortHand()
}

// SetSortMethod re-sorts the held hand. Sorting is idempotent and has no
// effect on game state beyond the hand order.
func (s *Session) SetSortMethod(method SortMethod) bool {
	if method != SortByRank && method != SortBySuit {
		return false
	}

	s.sortMethod = method
	s.sortHand()
	return true
}

func (s *Session) sortHand() {
	if s.sortMethod == SortBySuit {
		s.hand.SortBySuit()
		return
	}

	s.hand.SortByRank()
}

func (s *Session) heldCard(card *deck.Card) *deck.Card {
	for _, held := range s.hand {
		if held.Equal(card) {
			return held
		}
	}

	return nil
}

// State returns the current state
func (s *Session) State() State {
	return s.state
}

// Hand returns the held hand in display order
func (s *Session) Hand() deck.Hand {
	return s.hand.Clone()
}

// Selected returns the selected cards in hand order
func (s *Session) Selected() []*deck.Card {
	cards := make([]*deck.Card, 0, len(s.selected))
	for _, card := range s.hand {
		if _, ok := s.selected[card.Index()]; ok {
			cards = append(cards, card)
		}
	}

	return cards
}

// Score returns the cumulative score for the current round
func (s *Session) Score() int {
	return s.score
}

// HandsLeft returns how many plays remain this round
func (s *Session) HandsLeft() int {
	return s.hands
}

// DrawsLeft returns how many discard-and-draws remain this round
func (s *Session) DrawsLeft() int {
	return s.draws
}

// Round returns the 1-based round number
func (s *Session) Round() int {
	return s.blindIndex + 1
}

// CurrentBlind returns the blind the player must beat
func (s *Session) CurrentBlind() Blind {
	return s.options.Blinds[s.blindIndex]
}

// Blinds returns the full blind progression
func (s *Session) Blinds() []Blind {
	blinds := make([]Blind, len(s.options.Blinds))
	copy(blinds, s.options.Blinds)

	return blinds
}

// LastResult returns the most recently evaluated hand, or nil
func (s *Session) LastResult() *handrank.Hand {
	return s.lastResult
}

// PendingPlay returns the computed but uncommitted play, or nil
func (s *Session) PendingPlay() *PendingPlay {
	return s.pendingPlay
}

// PendingDiscard returns the staged but uncommitted discard, or nil
func (s *Session) PendingDiscard() []*deck.Card {
	return s.pendingDiscard
}

// CardsLeft returns how many cards remain in the deck
func (s *Session) CardsLeft() int {
	if s.deck == nil {
		return 0
	}

	return s.deck.CardsLeft()
}

// Outcome returns the end-of-round or end-of-game message
func (s *Session) Outcome() string {
	return s.outcome
}

// Won returns true if the player beat the final blind
func (s *Session) Won() bool {
	return s.won
}
