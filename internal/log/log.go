/*
Copyright 2024 The pzhf Authors
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package log wraps github.com/rs/zerolog to give cmd/pzhf structured,
// leveled log lines without forcing stdlib log semantics on an embedding
// program. The codec core (entropy, container) never imports this package
// and never logs on its own; only the CLI and this package's event bridge
// do.
package log

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/mofkat/pzhf"
)

// Logger is a thin, leveled wrapper around a zerolog.Logger.
type Logger struct {
	zl zerolog.Logger
}

// New returns a Logger writing to w at the named level
// (debug|info|warn|error); an unrecognized level falls back to info.
func New(w io.Writer, level string) *Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return &Logger{zl: zerolog.New(w).With().Timestamp().Logger().Level(lvl)}
}

// ProcessEvent implements pzhf.Listener, bridging codec progress events
// into structured log lines via zerolog.
func (l *Logger) ProcessEvent(evt *pzhf.Event) {
	l.zl.Info().
		Int("event", evt.Type()).
		Int64("size", evt.Size()).
		Msg(evt.String())
}

// Infof logs a formatted message at info level.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.zl.Info().Msgf(format, args...)
}

// Errorf logs a formatted message at error level.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.zl.Error().Msgf(format, args...)
}

var _ pzhf.Listener = (*Logger)(nil)
