package prompt

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Line reads answers one line at a time from a non-interactive reader, such
// as stdin redirected from a file or a pipe.
type Line struct {
	r      *bufio.Reader
	w      io.Writer
	logger *slog.Logger
}

// NewLine creates a Line prompter. A nil w discards the prompt text.
func NewLine(r io.Reader, w io.Writer, logger *slog.Logger) *Line {
	if w == nil {
		w = io.Discard
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Line{r: bufio.NewReader(r), w: w, logger: logger}
}

// Prompt writes message and reads the next line. EOF without data and a
// blank line both count as a cancellation.
func (l *Line) Prompt(message string) (string, bool) {
	_, _ = fmt.Fprint(l.w, message)

	line, err := l.r.ReadString('\n')
	if err != nil && line == "" {
		if err != io.EOF {
			l.logger.Warn("read prompt answer", "err", err)
		}
		return "", false
	}

	answer := strings.TrimSpace(line)
	if answer == "" {
		return "", false
	}
	return answer, true
}

// Alert logs the alert.
func (l *Line) Alert(level Level, context, message string) {
	logAlert(l.logger, level, context, message)
}
