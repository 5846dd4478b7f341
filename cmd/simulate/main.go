package main

import (
	"flag"
	"fmt"
	"strings"

	"blindpoker/internal/config"
	"blindpoker/pkg/deck"
	"blindpoker/pkg/game"

	"github.com/sirupsen/logrus"
)

var games = flag.Int("games", 0, "number of games to simulate (overrides the configuration)")

func main() {
	flag.Parse()
	setupLogger()

	opts, err := gameOptions()
	if err != nil {
		logrus.WithError(err).Fatal("invalid rules configuration")
	}

	n := config.Instance().Simulation.Games
	if *games > 0 {
		n = *games
	}

	wins := 0
	baseSeed := config.Instance().Simulation.Seed
	for i := 0; i < n; i++ {
		if baseSeed != 0 {
			opts.Seed = baseSeed + int64(i)
		}

		won, err := playGame(logrus.WithField("game", i+1), opts)
		if err != nil {
			logrus.WithError(err).Fatal("could not play game")
		}

		if won {
			wins++
		}
	}

	logrus.WithFields(logrus.Fields{
		"games": n,
		"wins":  wins,
	}).Info("simulation complete")
}

// gameOptions maps the rules configuration onto game options, keeping the
// defaults for anything unset
func gameOptions() (game.Options, error) {
	opts := game.DefaultOptions()
	rules := config.Instance().Rules

	if rules.HandSize > 0 {
		opts.HandSize = rules.HandSize
	}

	if rules.HandsPerRound > 0 {
		opts.HandsPerRound = rules.HandsPerRound
	}

	if rules.DrawsPerRound > 0 {
		opts.DrawsPerRound = rules.DrawsPerRound
	}

	if rules.MaxSelected > 0 {
		opts.MaxSelected = rules.MaxSelected
	}

	if len(rules.Blinds) > 0 {
		blinds := make([]game.Blind, len(rules.Blinds))
		for i, score := range rules.Blinds {
			blinds[i] = game.Blind{
				Name:  defaultBlindName(i),
				Score: score,
			}
		}

		opts.Blinds = blinds
	}

	// fail fast on a bad rules configuration
	if _, err := game.NewSession(logrus.StandardLogger(), opts); err != nil {
		return game.Options{}, err
	}

	return opts, nil
}

var blindNames = []string{"Small Blind", "Big Blind", "Super Blind"}

func defaultBlindName(index int) string {
	if index < len(blindNames) {
		return blindNames[index]
	}

	return fmt.Sprintf("Blind %d", index+1)
}

// playGame runs a single game to completion with a naive policy,
// acknowledging every pending play and discard immediately
func playGame(logger logrus.FieldLogger, opts game.Options) (bool, error) {
	session, err := game.NewSession(logger, opts)
	if err != nil {
		return false, err
	}

	session.StartGame()

	for session.State() != game.StateGameOver {
		switch session.State() {
		case game.StatePlayerTurn:
			takeTurn(session)
		case game.StateCalculatingScore:
			session.AcknowledgePlay()
		case game.StateRoundEnded:
			logger.WithField("round", session.Round()).Debug("blind beaten")
			session.AdvanceRound()
		}
	}

	logger.WithFields(logrus.Fields{
		"won":     session.Won(),
		"outcome": session.Outcome(),
	}).Debug("game finished")

	return session.Won(), nil
}

// takeTurn plays the largest same-rank group, or discards the lowest cards
// while draws remain and no pair is held
func takeTurn(session *game.Session) {
	hand := session.Hand()
	best := bestGroup(session)

	if len(best) >= 2 || session.DrawsLeft() == 0 {
		for _, card := range best {
			session.ToggleSelect(card)
		}

		session.PlaySelected()
		return
	}

	// the hand is sorted ascending; dump the three lowest cards
	dump := 3
	if len(hand) < dump {
		dump = len(hand)
	}
	for _, card := range hand[0:dump] {
		session.ToggleSelect(card)
	}

	session.DiscardSelected()
	session.AcknowledgeDiscard()
}

// bestGroup returns the cards of the most frequent rank, preferring the
// higher rank on ties
func bestGroup(session *game.Session) []*deck.Card {
	counts := make(map[deck.Rank][]*deck.Card)
	for _, card := range session.Hand() {
		counts[card.Rank] = append(counts[card.Rank], card)
	}

	var best []*deck.Card
	for _, cards := range counts {
		if len(cards) > len(best) || (len(cards) == len(best) && cards[0].Rank > best[0].Rank) {
			best = cards
		}
	}

	return best
}

func setupLogger() {
	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(config.Instance().Log.Format) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
