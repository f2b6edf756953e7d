package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/sagarc03/jukebox/report"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Version: version,
	Use:     "jukebox",
	Short:   "Configuration bootstrap for the jukebox music bot",
	Long: `Jukebox loads its configuration from a YAML file, checks the bot token
and owner ID, and asks for them when they are missing.

Values the operator supplies are written back to the config file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		readSettings(cmd)
		setupLogging()
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file path (default: ./config.yaml, env: JUKEBOX_CONFIG_FILE, JUKEBOX_CONFIG)")
	rootCmd.PersistentFlags().String("lang", "", "prompt language: en, ja (default: en, env: JUKEBOX_LANG)")
	rootCmd.PersistentFlags().Bool("no-prompt", false, "never ask for missing values (env: JUKEBOX_PROMPT_DISABLED)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error (default: info, env: JUKEBOX_LOG_LEVEL)")
	rootCmd.PersistentFlags().String("log-format", "", "log format: text, json (default: text, env: JUKEBOX_LOG_FORMAT)")
	rootCmd.PersistentFlags().StringP("output", "o", "", "output format: table, json, yaml (default: table)")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress non-essential output")

	bindSettings(rootCmd.PersistentFlags())
}

// settingFlags maps setting keys to the flags that override them.
var settingFlags = map[string]string{
	"lang":            "lang",
	"prompt.disabled": "no-prompt",
	"log.level":       "log-level",
	"log.format":      "log-format",
	"output.format":   "output",
	"output.quiet":    "quiet",
}

func bindSettings(flags *pflag.FlagSet) {
	for key, name := range settingFlags {
		_ = viper.BindPFlag(key, flags.Lookup(name))
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Flag and format errors fail before a formatter is chosen
		var reported reportedError
		if !errors.As(err, &reported) {
			_ = (&report.HumanFormatter{}).FormatError(os.Stderr, err)
		}
		os.Exit(1)
	}
}
