package prompt

import (
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
)

// Prompter asks the operator for input and raises alerts.
type Prompter interface {
	// Prompt blocks until the operator answers. ok is false when the
	// operator cancelled or supplied nothing.
	Prompt(message string) (answer string, ok bool)
	// Alert reports a condition to the operator. context names the
	// subsystem raising it.
	Alert(level Level, context, message string)
}

type Level int

const (
	LevelInfo Level = iota
	LevelWarning
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelWarning:
		return "WARNING"
	case LevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// Options configures New.
type Options struct {
	// NoPrompt makes every prompt decline without reading input.
	NoPrompt bool
	Logger   *slog.Logger
}

// New returns the prompter suited to in: Console for a terminal, Line
// otherwise, Disabled when NoPrompt is set.
func New(in *os.File, out *os.File, opts Options) Prompter {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if opts.NoPrompt {
		return &Disabled{Logger: logger}
	}

	fd := in.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return &Console{In: in, Out: out, Logger: logger}
	}
	return NewLine(in, out, logger)
}

// logAlert writes an alert through logger at the matching slog level.
func logAlert(logger *slog.Logger, level Level, context, message string) {
	if logger == nil {
		logger = slog.Default()
	}
	switch level {
	case LevelError:
		logger.Error(message, "context", context)
	case LevelWarning:
		logger.Warn(message, "context", context)
	default:
		logger.Info(message, "context", context)
	}
}

// Disabled declines every prompt. Alerts are still logged.
type Disabled struct {
	Logger *slog.Logger
}

// Prompt logs the question it skipped and reports a cancellation.
func (d *Disabled) Prompt(message string) (string, bool) {
	logger := d.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Debug("prompt skipped", "message", message)
	return "", false
}

// Alert logs the alert.
func (d *Disabled) Alert(level Level, context, message string) {
	logAlert(d.Logger, level, context, message)
}
