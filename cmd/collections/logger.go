package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger builds a human readable logger writing to out, at the given level name.
// Writes are serialized, the logger is shared by concurrently running experiments.
func NewLogger(out io.Writer, levelName string) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(levelName))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %s: %w", levelName, err)
	}

	var writer io.Writer = zerolog.ConsoleWriter{Out: zerolog.SyncWriter(out), TimeFormat: time.RFC3339}
	return zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Logger(), nil
}
