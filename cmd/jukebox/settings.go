package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sagarc03/jukebox/config"
	"github.com/sagarc03/jukebox/prompt"
	"github.com/sagarc03/jukebox/report"
)

func init() {
	setDefaults()
}

// setDefaults covers the command line's own settings. The bot's
// configuration is loaded separately by config.Bootstrap.
func setDefaults() {
	viper.SetDefault("lang", "en")
	viper.SetDefault("prompt.disabled", false)
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "text")
	viper.SetDefault("output.format", "table")
	viper.SetDefault("output.quiet", false)
}

func readSettings(cmd *cobra.Command) {
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		slog.Warn("failed to bind flags", "err", err)
	}

	viper.SetEnvPrefix("JUKEBOX")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}

// configPath resolves the config location from --config and the
// environment.
func configPath(cmd *cobra.Command) (string, error) {
	flagValue, _ := cmd.Flags().GetString("config")
	return config.PathFromEnv(flagValue)
}

// bootstrapOptions builds the options shared by every command that loads
// the configuration. interactive is false for commands that must never
// block on input.
func bootstrapOptions(path string, interactive bool) config.Options {
	logger := slog.Default()

	var prompter prompt.Prompter = &prompt.Disabled{Logger: logger}
	if interactive {
		prompter = prompt.New(os.Stdin, os.Stdout, prompt.Options{
			NoPrompt: viper.GetBool("prompt.disabled"),
			Logger:   logger,
		})
	}

	return config.Options{
		Path:     path,
		Prompter: prompter,
		Language: config.ParseLanguage(viper.GetString("lang")),
		Logger:   logger,
	}
}

func getFormatter() (report.Formatter, error) {
	return report.NewFormatter(viper.GetString("output.format"), viper.GetBool("output.quiet"))
}

// reportedError marks an error that was already written in the selected
// output format.
type reportedError struct {
	err error
}

func (e reportedError) Error() string { return e.err.Error() }

func (e reportedError) Unwrap() error { return e.err }

// fail writes err to the command's error stream with formatter and returns
// it marked as reported.
func fail(cmd *cobra.Command, formatter report.Formatter, err error) error {
	_ = formatter.FormatError(cmd.ErrOrStderr(), err)
	return reportedError{err: err}
}
