package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/sagarc03/jukebox"
	"github.com/sagarc03/jukebox/config"
	"github.com/sagarc03/jukebox/filesystem"
	"github.com/sagarc03/jukebox/report"
)

// errConfigExists is returned by config init when the file is already there.
var errConfigExists = errors.New("config file already exists")

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the config file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the reference configuration",
	Long: `Write the reference configuration to the config file path.

The file is only created when it does not exist yet, unless --force is given.
Fill in the token and owner afterwards, or run "jukebox check" to be asked
for them.`,
	RunE: runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	RunE:  runConfigPath,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Long: `Load and validate the configuration without asking for anything and print
the effective values, defaults included. The token is masked unless
--show-secrets is given.`,
	RunE: runConfigShow,
}

var (
	initForce   bool
	showSecrets bool
)

func init() {
	configInitCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing config file")
	configShowCmd.Flags().BoolVar(&showSecrets, "show-secrets", false, "show the bot token")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	formatter, err := getFormatter()
	if err != nil {
		return err
	}

	path, err := configPath(cmd)
	if err != nil {
		return fail(cmd, formatter, fmt.Errorf("resolve config path: %w", err))
	}

	if err := writeReference(path, initForce); err != nil {
		return fail(cmd, formatter, err)
	}

	slog.Info("config file created", "path", path)
	return formatter.FormatPath(cmd.OutOrStdout(), report.PathResult{Path: path, Exists: true, Created: true})
}

// writeReference writes the reference configuration to path. An existing
// file is kept unless force is set.
func writeReference(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%w: %s", errConfigExists, path)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat config: %w", err)
	}

	region, err := config.ReferenceRegion()
	if err != nil {
		return fmt.Errorf("load reference config: %w", err)
	}

	if err := filesystem.WriteFile(path, []byte(region+"\n"), 0o600); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	formatter, err := getFormatter()
	if err != nil {
		return err
	}

	path, err := configPath(cmd)
	if err != nil {
		return fail(cmd, formatter, fmt.Errorf("resolve config path: %w", err))
	}

	_, statErr := os.Stat(path)
	return formatter.FormatPath(cmd.OutOrStdout(), report.PathResult{Path: path, Exists: statErr == nil})
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	formatter, err := getFormatter()
	if err != nil {
		return err
	}

	path, err := configPath(cmd)
	if err != nil {
		return fail(cmd, formatter, fmt.Errorf("resolve config path: %w", err))
	}

	out := config.Bootstrap(bootstrapOptions(path, false))
	if !out.Valid {
		_ = formatter.FormatCheck(cmd.OutOrStdout(), report.NewCheckResult(out, path))
		return fail(cmd, formatter, fmt.Errorf("%w: %s", jukebox.ErrInvalidConfig, out.Reason))
	}

	return formatter.FormatConfig(cmd.OutOrStdout(), out.Config.Summary(showSecrets))
}
