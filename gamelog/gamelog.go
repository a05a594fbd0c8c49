// Package gamelog appends game events to a log file, one line per event.
package gamelog

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"warzone/game"
)

// FileSink writes every event it is notified of as a single log line.
// It is safe to share between concurrent games.
type FileSink struct {
	logger zerolog.Logger
	closer io.Closer
}

// New logs to w.
func New(w io.Writer) *FileSink {
	return &FileSink{
		logger: zerolog.New(zerolog.SyncWriter(w)).With().Timestamp().Logger(),
	}
}

// Open appends to the file at path, creating it if needed.
func Open(path string) (*FileSink, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open game log: %w", err)
	}
	s := New(f)
	s.closer = f
	return s, nil
}

func (s *FileSink) Notify(e game.Event) {
	entry := s.logger.Log().Str("event", e.Kind.String()).Int("round", e.Round)
	if e.Player != "" {
		entry = entry.Str("player", e.Player)
	}
	entry.Msg(e.LogLine())
}

func (s *FileSink) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}
