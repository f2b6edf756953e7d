// Package prompt provides the operator-facing surface used while the
// configuration is bootstrapped: a blocking question/answer prompt and
// level-tagged alerts.
//
// # Implementations
//
//   - Console: interactive terminal prompt built on promptui
//   - Line: plain line reader for piped or redirected stdin
//   - Disabled: declines every prompt, for unattended starts
//   - Scripted: canned answers for tests
//
// New picks Console or Line depending on whether stdin is a terminal:
//
//	p := prompt.New(os.Stdin, os.Stdout, prompt.Options{})
//	token, ok := p.Prompt("Bot token: ")
//	if !ok {
//	    p.Alert(prompt.LevelError, "Config", "no token provided")
//	}
//
// Every implementation reports alerts through log/slog.
package prompt
