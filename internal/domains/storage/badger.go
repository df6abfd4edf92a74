package storage

import (
	"fmt"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog/log"
)

// Open opens the local key-value store. An empty dir opens an in-memory store.
func Open(dir string) (db *badger.DB, err error) {
	options := badger.DefaultOptions(dir).
		WithLogger(newLogger()).
		WithMemTableSize(64 << 17) // ~8MB

	if dir == "" {
		options = options.WithInMemory(true)
	}

	if db, err = badger.Open(options); err != nil {
		return nil, fmt.Errorf("Open: %w", err)
	}

	return db, nil
}

// logger routes badger messages to zerolog.
type logger struct{}

func newLogger() *logger {
	return new(logger)
}

func (l *logger) Errorf(format string, args ...any) {
	log.Error().Msg(l.format(format, args...))
}

func (l *logger) Warningf(format string, args ...any) {
	log.Warn().Msg(l.format(format, args...))
}

func (l *logger) Infof(format string, args ...any) {
	log.Debug().Msg(l.format(format, args...))
}

func (l *logger) Debugf(format string, args ...any) {
	log.Trace().Msg(l.format(format, args...))
}

func (l *logger) format(format string, args ...any) string {
	return "badger: " + strings.TrimSpace(fmt.Sprintf(format, args...))
}
