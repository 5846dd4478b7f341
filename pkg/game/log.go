package game

import (
	"fmt"
	"time"

	"blindpoker/pkg/deck"

	"github.com/google/uuid"
)

// LogMessage is an entry in the session's game log
type LogMessage struct {
	UUID    string       `json:"uuid"`
	Cards   []*deck.Card `json:"cards"`
	Message string       `json:"message"`
	Time    time.Time    `json:"time"`
}

// LogChan returns a channel that receives game log messages
func (s *Session) LogChan() <-chan []*LogMessage {
	return s.logChan
}

func (s *Session) sendLogMessages(msgs ...*LogMessage) {
	select {
	case s.logChan <- msgs:
	default:
		s.logger.Warn("log channel is full; dropping message")
	}
}

func newLogMessage(cards []*deck.Card, format string, a ...interface{}) *LogMessage {
	return &LogMessage{
		UUID:    uuid.New().String(),
		Cards:   cards,
		Message: fmt.Sprintf(format, a...),
		Time:    time.Now(),
	}
}
