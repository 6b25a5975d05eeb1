// Package logging configures the zerolog console logger shared by the
// flattice command and the search package.
package logging

import (
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
)

// TimeFormat is the console timestamp layout.
const TimeFormat = "15:04:05.000"

// New returns a console logger writing to w at the given level. A nil w
// writes to a colorable stderr; colors are disabled when stderr is not a
// terminal.
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	noColor := true
	if w == nil {
		w = colorable.NewColorableStderr()
		noColor = !isatty.IsTerminal(os.Stderr.Fd()) && !isatty.IsCygwinTerminal(os.Stderr.Fd())
	}

	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: TimeFormat,
		NoColor:    noColor,
	}).Level(level).With().Timestamp().Logger()
}

// Setup builds a logger with New and installs it as the global zerolog
// logger, so code without a context-carried logger shares its settings.
func Setup(w io.Writer, level zerolog.Level) zerolog.Logger {
	l := New(w, level)
	zlog.Logger = l

	return l
}
