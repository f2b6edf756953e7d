package report

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sagarc03/jukebox/config"
)

// Formatter formats results for output.
type Formatter interface {
	FormatCheck(w io.Writer, result CheckResult) error
	FormatConfig(w io.Writer, summary config.Summary) error
	FormatPath(w io.Writer, result PathResult) error
	FormatError(w io.Writer, err error) error
}

// NewFormatter returns the formatter for format: "table" (or empty), "json"
// or "yaml". quiet only affects table output.
func NewFormatter(format string, quiet bool) (Formatter, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "table":
		return &HumanFormatter{Quiet: quiet}, nil
	case "json":
		return &JSONFormatter{}, nil
	case "yaml", "yml":
		return &YAMLFormatter{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// HumanFormatter outputs human-readable text.
type HumanFormatter struct {
	Quiet bool
}

// FormatCheck formats a bootstrap result as human-readable text.
func (f *HumanFormatter) FormatCheck(w io.Writer, result CheckResult) error {
	if !result.Valid {
		_, _ = fmt.Fprintf(w, "Invalid: %s\n", result.Reason)
		_, _ = fmt.Fprintf(w, "  Config: %s\n", result.Location)
		return nil
	}
	if f.Quiet {
		return nil
	}
	_, _ = fmt.Fprintf(w, "Valid: %s\n", result.Location)
	if result.Rewritten {
		_, _ = fmt.Fprintln(w, "  Recovered values were written to the config file")
	}
	return nil
}

// FormatConfig formats a configuration summary as tables.
func (f *HumanFormatter) FormatConfig(w io.Writer, summary config.Summary) error {
	if !f.Quiet {
		_, _ = fmt.Fprintf(w, "Config: %s\n\n", summary.Location)
	}

	game := "(none)"
	if summary.Game != nil {
		game = summary.Game.String()
	}
	altPrefix := summary.AltPrefix
	if altPrefix == "" {
		altPrefix = "(none)"
	}
	owner := strconv.FormatInt(summary.Owner, 10)
	if summary.KnownOwner {
		owner += " (known owner)"
	}

	settings := [][]string{
		{config.KeyToken, summary.Token},
		{config.KeyOwner, owner},
		{config.KeyPrefix, summary.Prefix},
		{config.KeyAltPrefix, altPrefix},
		{config.KeyHelp, summary.Help},
		{config.KeyGame, game},
		{config.KeyStatus, summary.Status},
		{config.KeyStayInChannel, strconv.FormatBool(summary.StayInChannel)},
		{config.KeySongInStatus, strconv.FormatBool(summary.SongInStatus)},
		{config.KeyNPImages, strconv.FormatBool(summary.NPImages)},
		{config.KeyUpdateAlerts, strconv.FormatBool(summary.UpdateAlerts)},
		{config.KeyEval, strconv.FormatBool(summary.Eval)},
		{config.KeyMaxTime, formatLimit(summary.MaxTime, summary.MaxSeconds <= 0)},
		{config.KeyAloneTimeUntilStop, formatLimit(strconv.FormatInt(summary.AloneTimeUntilStop, 10)+"s", summary.AloneTimeUntilStop <= 0)},
		{config.KeyPlaylistsFolder, summary.PlaylistsFolder},
	}
	for _, key := range []string{config.KeySuccess, config.KeyWarning, config.KeyError, config.KeyLoading, config.KeySearching} {
		settings = append(settings, []string{key, summary.Emoji[key]})
	}
	_, _ = fmt.Fprintln(w, renderTable([]string{"SETTING", "VALUE"}, settings))

	if len(summary.Aliases) == 0 {
		return nil
	}

	commands := make([]string, 0, len(summary.Aliases))
	for command := range summary.Aliases {
		commands = append(commands, command)
	}
	slices.Sort(commands)

	rows := make([][]string, 0, len(commands))
	for _, command := range commands {
		aliases := summary.Aliases[command]
		rows = append(rows, []string{command, strings.Join(aliases, ", "), strconv.Itoa(len(aliases))})
	}
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, renderTable([]string{"COMMAND", "ALIASES", "COUNT"}, rows, 3))
	return nil
}

// FormatPath formats the resolved config location.
func (f *HumanFormatter) FormatPath(w io.Writer, result PathResult) error {
	if result.Created && !f.Quiet {
		_, _ = fmt.Fprintf(w, "Created: %s\n", result.Path)
		return nil
	}
	if f.Quiet || result.Exists {
		_, _ = fmt.Fprintln(w, result.Path)
		return nil
	}
	_, _ = fmt.Fprintf(w, "%s (not created yet)\n", result.Path)
	return nil
}

// FormatError formats an error as human-readable text.
func (f *HumanFormatter) FormatError(w io.Writer, err error) error {
	_, _ = fmt.Fprintf(w, "Error: %v\n", err)
	return nil
}

// JSONFormatter outputs JSON.
type JSONFormatter struct{}

// FormatCheck formats a bootstrap result as JSON.
func (f *JSONFormatter) FormatCheck(w io.Writer, result CheckResult) error {
	return writeJSON(w, result)
}

// FormatConfig formats a configuration summary as JSON.
func (f *JSONFormatter) FormatConfig(w io.Writer, summary config.Summary) error {
	return writeJSON(w, summary)
}

// FormatPath formats the resolved config location as JSON.
func (f *JSONFormatter) FormatPath(w io.Writer, result PathResult) error {
	return writeJSON(w, result)
}

// FormatError formats an error as JSON.
func (f *JSONFormatter) FormatError(w io.Writer, err error) error {
	output := struct {
		Error string `json:"error"`
	}{
		Error: err.Error(),
	}
	return writeJSON(w, output)
}

// YAMLFormatter outputs YAML.
type YAMLFormatter struct{}

// FormatCheck formats a bootstrap result as YAML.
func (f *YAMLFormatter) FormatCheck(w io.Writer, result CheckResult) error {
	return writeYAML(w, result)
}

// FormatConfig formats a configuration summary as YAML.
func (f *YAMLFormatter) FormatConfig(w io.Writer, summary config.Summary) error {
	return writeYAML(w, summary)
}

// FormatPath formats the resolved config location as YAML.
func (f *YAMLFormatter) FormatPath(w io.Writer, result PathResult) error {
	return writeYAML(w, result)
}

// FormatError formats an error as YAML.
func (f *YAMLFormatter) FormatError(w io.Writer, err error) error {
	output := struct {
		Error string `yaml:"error"`
	}{
		Error: err.Error(),
	}
	return writeYAML(w, output)
}

// writeJSON writes a value as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// formatLimit shows "(no limit)" for a disabled limit.
func formatLimit(value string, disabled bool) string {
	if disabled {
		return "(no limit)"
	}
	return value
}
