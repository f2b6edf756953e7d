package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/sagarc03/jukebox"
	"github.com/sagarc03/jukebox/config"
	"github.com/sagarc03/jukebox/report"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Load and validate the configuration",
	Long: `Load the configuration the way the bot does at startup.

When the bot token or owner ID is missing or invalid, you are asked for it
once. Supplied values are written back to the config file. Use --no-prompt
to fail instead of asking.

Exits with status 1 when the configuration cannot be used.`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	formatter, err := getFormatter()
	if err != nil {
		return err
	}

	path, err := configPath(cmd)
	if err != nil {
		return fail(cmd, formatter, fmt.Errorf("resolve config path: %w", err))
	}

	out := config.Bootstrap(bootstrapOptions(path, true))
	if err := formatter.FormatCheck(cmd.OutOrStdout(), report.NewCheckResult(out, path)); err != nil {
		return fmt.Errorf("format result: %w", err)
	}
	if !out.Valid {
		return fail(cmd, formatter, fmt.Errorf("%w: %s", jukebox.ErrInvalidConfig, out.Reason))
	}

	slog.Info("configuration ready",
		"path", out.Config.Location(),
		"owner", out.Config.OwnerID(),
		"prefix", out.Config.Prefix(),
		"rewritten", out.Rewritten,
	)
	return nil
}
