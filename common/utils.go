package common

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

const logTimeFormat = "2006-01-02 15:04:05.000"

// ExitWithError prints an error message and exits
func ExitWithError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	os.Exit(1)
}

// IsTTY checks if the given file is a TTY
func IsTTY(file *os.File) bool {
	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}

// LogLevel returns the log level selected by the verbose and debug flags
func LogLevel(c *cli.Context) zerolog.Level {
	switch {
	case c.Bool("debug"):
		return zerolog.DebugLevel
	case c.Bool("verbose"):
		return zerolog.InfoLevel
	default:
		return zerolog.FatalLevel
	}
}

// NewLogger creates a new zerolog logger with appropriate settings
// It configures colorful output when stderr is a TTY and sets the log level
// based on the verbose and debug flags. If file is not nil, events of at
// least info level are written to it as JSON as well.
func NewLogger(c *cli.Context, file io.Writer) zerolog.Logger {
	// Set time format with millisecond precision
	zerolog.TimeFieldFormat = logTimeFormat

	// Set global time function to use UTC
	zerolog.TimestampFunc = func() time.Time {
		return time.Now().UTC()
	}

	// Create console writer with colors if stderr is a TTY
	var consoleWriter io.Writer
	if IsTTY(os.Stderr) {
		consoleWriter = zerolog.ConsoleWriter{
			Out:        colorable.NewColorableStderr(),
			TimeFormat: logTimeFormat,
			NoColor:    false,
		}
	} else {
		consoleWriter = os.Stderr
	}

	// The console honors the flags, the log file always receives info events
	level := LogLevel(c)
	var out io.Writer = consoleWriter
	if file != nil {
		out = zerolog.MultiLevelWriter(
			&zerolog.FilteredLevelWriter{Writer: zerolog.LevelWriterAdapter{Writer: consoleWriter}, Level: level},
			file,
		)
		if level > zerolog.InfoLevel {
			level = zerolog.InfoLevel
		}
	}

	name := AppName
	if c.Command != nil && c.Command.Name != "" {
		name = c.Command.Name
	}

	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("component", name).
		Logger()
}
