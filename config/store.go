package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	// EnvConfigFile names the config file explicitly.
	EnvConfigFile = "JUKEBOX_CONFIG_FILE"
	// EnvConfig names the config file when EnvConfigFile is unset.
	EnvConfig = "JUKEBOX_CONFIG"
	// DefaultConfigFile is used when no override is set.
	DefaultConfigFile = "config.yaml"

	envPrefix = "JUKEBOX"
)

// RawConfig is the merged configuration source decoded into Go values.
// Owner stays in its textual form so the validator decides whether it is a
// usable id. Aliases is collected per command, so a malformed aliases value
// never fails the decode.
type RawConfig struct {
	Token              string         `mapstructure:"token"`
	Owner              string         `mapstructure:"owner"`
	Prefix             string         `mapstructure:"prefix"`
	AltPrefix          string         `mapstructure:"altprefix"`
	Help               string         `mapstructure:"help"`
	Success            string         `mapstructure:"success"`
	Warning            string         `mapstructure:"warning"`
	Error              string         `mapstructure:"error"`
	Loading            string         `mapstructure:"loading"`
	Searching          string         `mapstructure:"searching"`
	Game               string         `mapstructure:"game"`
	Status             string         `mapstructure:"status"`
	StayInChannel      bool           `mapstructure:"stayinchannel"`
	SongInStatus       bool           `mapstructure:"songinstatus"`
	NPImages           bool           `mapstructure:"npimages"`
	UpdateAlerts       bool           `mapstructure:"updatealerts"`
	Eval               bool           `mapstructure:"eval"`
	MaxTime            int64          `mapstructure:"maxtime"`
	AloneTimeUntilStop int64          `mapstructure:"alonetimeuntilstop"`
	PlaylistsFolder    string         `mapstructure:"playlistsfolder"`
	Aliases            map[string]any `mapstructure:"-"`
}

// ResolvePath picks the config location: explicit, then secondary, then
// DefaultConfigFile. The result is absolute with "~" expanded.
func ResolvePath(explicit, secondary string) (string, error) {
	path := DefaultConfigFile
	switch {
	case strings.TrimSpace(explicit) != "":
		path = explicit
	case strings.TrimSpace(secondary) != "":
		path = secondary
	}
	return expandPath(strings.TrimSpace(path))
}

// PathFromEnv resolves the config location with flagValue taking the place
// of the explicit override when set, then JUKEBOX_CONFIG_FILE, then
// JUKEBOX_CONFIG.
func PathFromEnv(flagValue string) (string, error) {
	explicit := flagValue
	if explicit == "" {
		explicit = os.Getenv(EnvConfigFile)
	}
	return ResolvePath(explicit, os.Getenv(EnvConfig))
}

func expandPath(pathValue string) (string, error) {
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	absolute, err := filepath.Abs(filepath.Clean(pathValue))
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", pathValue, err)
	}
	return absolute, nil
}

// Loader builds the configuration source. It keeps the last source it built
// and reuses it while no config file exists; once a file shows up the cache
// is dropped so the file is always read.
type Loader struct {
	cached     *viper.Viper
	cachedPath string
}

// NewLoader creates a Loader with an empty cache.
func NewLoader() *Loader {
	return &Loader{}
}

// Invalidate drops the cached source.
func (l *Loader) Invalidate() {
	l.cached = nil
	l.cachedPath = ""
}

// Load returns the source for path: defaults, overridden by the file at path
// when it exists, overridden by JUKEBOX_* environment variables.
func (l *Loader) Load(path string) (*viper.Viper, error) {
	exists, err := fileExists(path)
	if err != nil {
		return nil, err
	}
	if exists {
		l.Invalidate()
	}
	if l.cached != nil && l.cachedPath == path {
		return l.cached, nil
	}

	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Read the config file
	v.SetConfigType("yaml")
	if exists {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	// 3. Bind environment variables
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	l.cached, l.cachedPath = v, path
	return v, nil
}

// Build loads the source for path and decodes it into a RawConfig.
func (l *Loader) Build(path string) (RawConfig, error) {
	v, err := l.Load(path)
	if err != nil {
		return RawConfig{}, err
	}

	var raw RawConfig
	if err := v.Unmarshal(&raw); err != nil {
		return RawConfig{}, fmt.Errorf("decode config: %w", err)
	}
	raw.Aliases = aliasEntries(v)
	return raw, nil
}

// aliasEntries collects every aliases.<command> value, merging the file's
// entries over the default ones.
func aliasEntries(v *viper.Viper) map[string]any {
	entries := make(map[string]any)
	for _, key := range v.AllKeys() {
		command, ok := strings.CutPrefix(key, KeyAliases+".")
		if !ok || command == "" || strings.Contains(command, ".") {
			continue
		}
		entries[command] = v.Get(key)
	}
	return entries
}

func fileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("stat config: %w", err)
	}
	if info.IsDir() {
		return false, fmt.Errorf("stat config: %s is a directory", path)
	}
	return true, nil
}
