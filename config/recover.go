package config

import (
	"fmt"
	"strings"

	"golang.org/x/text/message"

	"github.com/sagarc03/jukebox"
	"github.com/sagarc03/jukebox/prompt"
)

type recoveryState int

const (
	stateCheckField recoveryState = iota
	statePromptOperator
	stateAcceptValue
	stateNextField
	stateAbortInvalid
)

// recoverable is a required field the operator can supply at startup.
type recoverable struct {
	field    Field
	question string
	helpURL  string
	abort    string
	valid    func(*Config) bool
	// accept stores input into the config. It reports false when the input
	// does not satisfy the field's rule.
	accept func(cfg *Config, input string) bool
}

var recoverables = map[Field]recoverable{
	FieldToken: {
		field:    FieldToken,
		question: msgTokenPrompt,
		helpURL:  tokenHelpURL,
		abort:    msgTokenAbort,
		valid:    func(cfg *Config) bool { return ValidToken(cfg.token) },
		accept: func(cfg *Config, input string) bool {
			if !ValidToken(input) {
				return false
			}
			cfg.token = input
			return true
		},
	},
	FieldOwner: {
		field:    FieldOwner,
		question: msgOwnerPrompt,
		helpURL:  ownerHelpURL,
		abort:    msgOwnerAbort,
		valid:    func(cfg *Config) bool { return ValidOwner(cfg.owner) },
		accept: func(cfg *Config, input string) bool {
			owner := ParseOwner(input)
			if !ValidOwner(owner) {
				return false
			}
			cfg.owner = owner
			return true
		},
	},
}

// recovery asks the operator for each failed field, once. There is no retry:
// a cancelled or unusable answer ends the bootstrap.
type recovery struct {
	prompter prompt.Prompter
	printer  *message.Printer
	location string
	dirty    bool
}

// run repairs failures in order. It returns an error wrapping
// jukebox.ErrCancelled or jukebox.ErrInvalidInput when a field could not be
// recovered; the abort alert has been raised by then.
func (r *recovery) run(cfg *Config, failures []Failure) error {
	for _, failure := range failures {
		field, ok := recoverables[failure.Field]
		if !ok {
			return fmt.Errorf("%s: %w", failure.Field, jukebox.ErrInvalidConfig)
		}
		if err := r.recoverField(cfg, field); err != nil {
			return err
		}
	}
	return nil
}

func (r *recovery) recoverField(cfg *Config, field recoverable) error {
	var (
		input string
		cause error
	)

	state := stateCheckField
	for {
		switch state {
		case stateCheckField:
			if field.valid(cfg) {
				state = stateNextField
			} else {
				state = statePromptOperator
			}

		case statePromptOperator:
			answer, ok := r.prompter.Prompt(r.printer.Sprintf(field.question, field.helpURL))
			if !ok {
				cause = jukebox.ErrCancelled
				state = stateAbortInvalid
				continue
			}
			input = strings.TrimSpace(answer)
			state = stateAcceptValue

		case stateAcceptValue:
			if !field.accept(cfg, input) {
				cause = jukebox.ErrInvalidInput
				state = stateAbortInvalid
				continue
			}
			r.dirty = true
			state = stateNextField

		case stateAbortInvalid:
			r.prompter.Alert(prompt.LevelError, AlertContext, r.printer.Sprintf(field.abort, r.location))
			return fmt.Errorf("%s: %w", field.field, cause)

		case stateNextField:
			return nil
		}
	}
}
