package prompt

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
)

// Console prompts on an interactive terminal.
// Multi-line messages are printed as-is except for the last line, which
// becomes the prompt label.
type Console struct {
	In     io.ReadCloser
	Out    io.WriteCloser
	Logger *slog.Logger
}

// Prompt runs a single promptui prompt. Ctrl+C, Ctrl+D and an empty answer
// all count as a cancellation.
func (c *Console) Prompt(message string) (string, bool) {
	lines := strings.Split(strings.TrimRight(message, " \n"), "\n")
	label := strings.TrimSuffix(strings.TrimSpace(lines[len(lines)-1]), ":")

	var out io.Writer = os.Stdout
	if c.Out != nil {
		out = c.Out
	}
	for _, line := range lines[:len(lines)-1] {
		_, _ = fmt.Fprintln(out, line)
	}

	p := promptui.Prompt{
		Label:  label,
		Stdin:  c.In,
		Stdout: c.Out,
	}

	answer, err := p.Run()
	if err != nil {
		if !errors.Is(err, promptui.ErrInterrupt) && !errors.Is(err, promptui.ErrEOF) && !errors.Is(err, promptui.ErrAbort) {
			c.logger().Warn("prompt failed", "err", err)
		}
		return "", false
	}

	answer = strings.TrimSpace(answer)
	if answer == "" {
		return "", false
	}
	return answer, true
}

// Alert logs the alert.
func (c *Console) Alert(level Level, context, message string) {
	logAlert(c.logger(), level, context, message)
}

func (c *Console) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.Default()
	}
	return c.Logger
}
