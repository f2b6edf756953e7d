package config

import (
	"fmt"
	"io/fs"
	"log/slog"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/sagarc03/jukebox"
	"github.com/sagarc03/jukebox/prompt"
)

// Options configures Bootstrap.
type Options struct {
	// Path is the config file location. It is made absolute; empty falls
	// back to the JUKEBOX_CONFIG_FILE and JUKEBOX_CONFIG variables.
	Path string
	// Prompter is asked for missing fields. Nil declines every prompt.
	Prompter prompt.Prompter
	// Templates holds the reference template. Nil uses the bundled one.
	Templates fs.FS
	// Language selects the prompt and alert language. Zero means English.
	Language language.Tag
	// Loader builds the configuration source. Nil uses a fresh Loader.
	Loader *Loader
	// Write persists the rewritten file. Nil uses os.WriteFile.
	Write  WriteFunc
	Logger *slog.Logger
}

// Outcome is the result of Bootstrap. When Valid is false the service must
// not start; Reason says why and Err wraps one of the jukebox sentinel
// errors.
type Outcome struct {
	Valid  bool
	Reason string
	Err    error
	Config *Config
	// Rewritten is set when recovered values were written back to disk.
	Rewritten bool
}

func invalid(err error) Outcome {
	return Outcome{Reason: err.Error(), Err: err}
}

// Bootstrap loads, validates and, if needed, interactively repairs the
// configuration. It never panics and never exits the process: every failure
// ends in an alert and an invalid Outcome, except a failed rewrite, which
// only raises a warning.
func Bootstrap(opts Options) (out Outcome) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	prompter := opts.Prompter
	if prompter == nil {
		prompter = &prompt.Disabled{Logger: logger}
	}
	templates := opts.Templates
	if templates == nil {
		templates = reference
	}
	loader := opts.Loader
	if loader == nil {
		loader = NewLoader()
	}
	tag := opts.Language
	if tag == language.Und {
		tag = language.English
	}
	printer := newPrinter(tag)

	path, err := PathFromEnv(opts.Path)
	if err != nil {
		prompter.Alert(prompt.LevelError, AlertContext, printer.Sprintf(msgLoadFailed, DefaultConfigFile, err))
		return invalid(fmt.Errorf("%w: %w", jukebox.ErrInvalidConfig, err))
	}

	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("%w: %v", jukebox.ErrInvalidConfig, r)
			prompter.Alert(prompt.LevelError, AlertContext, printer.Sprintf(msgLoadFailed, path, err))
			out = invalid(err)
		}
	}()

	raw, err := loader.Build(path)
	if err != nil {
		prompter.Alert(prompt.LevelError, AlertContext, printer.Sprintf(msgLoadFailed, path, err))
		return invalid(fmt.Errorf("%w: %w", jukebox.ErrInvalidConfig, err))
	}

	cfg, failures := Validate(raw)
	cfg.location = path

	rec := &recovery{prompter: prompter, printer: printer, location: path}
	if err := rec.run(cfg, failures); err != nil {
		logger.Debug("config recovery aborted", "path", path, "err", err)
		return invalid(err)
	}

	rewritten := false
	if rec.dirty {
		rewritten = persist(cfg, templates, opts.Write, prompter, printer, logger)
	}

	logger.Debug("config loaded", "path", path, "recovered", rec.dirty, "rewritten", rewritten)
	return Outcome{Valid: true, Config: cfg, Rewritten: rewritten}
}

// persist writes the recovered values back. Failures are downgraded to a
// warning alert.
func persist(cfg *Config, templates fs.FS, write WriteFunc, prompter prompt.Prompter, printer *message.Printer, logger *slog.Logger) bool {
	plan, err := NewRewritePlan(cfg.location, templates, cfg.token, cfg.owner)
	if err == nil {
		if plan.Fallback {
			logger.Debug("reference template unavailable, writing minimal config", "path", plan.Path)
		}
		err = plan.Persist(write)
	}
	if err != nil {
		prompter.Alert(prompt.LevelWarning, AlertContext, printer.Sprintf(msgWriteFailed, cfg.location, err))
		return false
	}
	return true
}
