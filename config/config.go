package config

import (
	"context"
	"errors"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/sagarc03/jukebox"
)

// configKey is the context key for storing the loaded configuration.
type configKey struct{}

// WithContext returns a new context with the config stored.
func WithContext(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// FromContext retrieves the config from context.
// Returns an error if config is not found.
func FromContext(ctx context.Context) (*Config, error) {
	cfg, ok := ctx.Value(configKey{}).(*Config)
	if !ok || cfg == nil {
		return nil, errors.New("config not found in context")
	}
	return cfg, nil
}

// Config is the validated configuration. It is read-only once Bootstrap
// returns it and may be shared between goroutines.
type Config struct {
	location string

	token     string
	owner     int64
	prefix    string
	altPrefix string
	help      string

	successEmoji   string
	warningEmoji   string
	errorEmoji     string
	loadingEmoji   string
	searchingEmoji string

	game   *jukebox.Activity
	status jukebox.OnlineStatus

	stayInChannel bool
	songInStatus  bool
	npImages      bool
	updateAlerts  bool
	eval          bool

	maxSeconds         int64
	aloneTimeUntilStop int64
	playlistsFolder    string

	aliases AliasTable
}

// Location returns the absolute path of the config file.
func (c *Config) Location() string { return c.location }

func (c *Config) Token() string  { return c.token }
func (c *Config) OwnerID() int64 { return c.owner }
func (c *Config) Prefix() string { return c.prefix }
func (c *Config) Help() string   { return c.help }

// AltPrefix returns the alternate prefix, or "" when it is set to NONE.
func (c *Config) AltPrefix() string {
	if strings.EqualFold(c.altPrefix, AltPrefixNone) {
		return ""
	}
	return c.altPrefix
}

func (c *Config) SuccessEmoji() string   { return c.successEmoji }
func (c *Config) WarningEmoji() string   { return c.warningEmoji }
func (c *Config) ErrorEmoji() string     { return c.errorEmoji }
func (c *Config) LoadingEmoji() string   { return c.loadingEmoji }
func (c *Config) SearchingEmoji() string { return c.searchingEmoji }

// Game returns the configured presence activity, or nil when none is set.
func (c *Config) Game() *jukebox.Activity {
	if c.game == nil {
		return nil
	}
	game := *c.game
	return &game
}

func (c *Config) Status() jukebox.OnlineStatus { return c.status }

func (c *Config) Stay() bool         { return c.stayInChannel }
func (c *Config) SongInStatus() bool { return c.songInStatus }
func (c *Config) NPImages() bool     { return c.npImages }
func (c *Config) UpdateAlerts() bool { return c.updateAlerts }
func (c *Config) Eval() bool         { return c.eval }

// KnownOwner reports whether the owner is KnownOwnerID.
func (c *Config) KnownOwner() bool { return c.owner == KnownOwnerID }

func (c *Config) PlaylistsFolder() string   { return c.playlistsFolder }
func (c *Config) MaxSeconds() int64         { return c.maxSeconds }
func (c *Config) AloneTimeUntilStop() int64 { return c.aloneTimeUntilStop }

// maxLimitSeconds is the largest limit that fits in a time.Duration.
const maxLimitSeconds = int64(math.MaxInt64 / int64(time.Second))

// MaxTime returns the track length limit formatted as [h:]mm:ss, or "" when
// there is no limit.
func (c *Config) MaxTime() string {
	if c.maxSeconds <= 0 {
		return ""
	}
	return jukebox.FormatTime(time.Duration(min(c.maxSeconds, maxLimitSeconds)) * time.Second)
}

// IsTooLong reports whether a track of length d exceeds the limit. The
// length is rounded to whole seconds first. A limit of 0 or less means no
// limit.
func (c *Config) IsTooLong(d time.Duration) bool {
	if c.maxSeconds <= 0 {
		return false
	}
	return int64(math.Round(d.Seconds())) > c.maxSeconds
}

// AliasesFor returns the aliases of command. It never fails: unknown
// commands and malformed entries yield an empty slice.
func (c *Config) AliasesFor(command string) []string {
	if c == nil {
		return []string{}
	}
	return c.aliases.Lookup(command)
}

// AliasTable maps a command name to its aliases.
type AliasTable map[string][]string

// NewAliasTable builds a table from decoded alias entries. Entries that are
// not lists of strings are dropped.
func NewAliasTable(entries map[string]any) AliasTable {
	table := make(AliasTable, len(entries))
	for command, value := range entries {
		aliases, ok := stringList(value)
		if !ok {
			continue
		}
		table[strings.ToLower(command)] = aliases
	}
	return table
}

// Lookup returns a copy of the aliases of command, or an empty slice.
func (t AliasTable) Lookup(command string) []string {
	aliases, ok := t[strings.ToLower(strings.TrimSpace(command))]
	if !ok {
		return []string{}
	}
	return slices.Clone(aliases)
}

func stringList(value any) ([]string, bool) {
	switch list := value.(type) {
	case []string:
		return slices.Clone(list), true
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	default:
		return nil, false
	}
}

// Summary is a serializable view of a Config.
type Summary struct {
	Location           string              `json:"location" yaml:"location"`
	Token              string              `json:"token" yaml:"token"`
	Owner              int64               `json:"owner" yaml:"owner"`
	KnownOwner         bool                `json:"known_owner" yaml:"known_owner"`
	Prefix             string              `json:"prefix" yaml:"prefix"`
	AltPrefix          string              `json:"altprefix,omitempty" yaml:"altprefix,omitempty"`
	Help               string              `json:"help" yaml:"help"`
	Emoji              map[string]string   `json:"emoji" yaml:"emoji"`
	Game               *jukebox.Activity   `json:"game,omitempty" yaml:"game,omitempty"`
	Status             string              `json:"status" yaml:"status"`
	StayInChannel      bool                `json:"stayinchannel" yaml:"stayinchannel"`
	SongInStatus       bool                `json:"songinstatus" yaml:"songinstatus"`
	NPImages           bool                `json:"npimages" yaml:"npimages"`
	UpdateAlerts       bool                `json:"updatealerts" yaml:"updatealerts"`
	Eval               bool                `json:"eval" yaml:"eval"`
	MaxSeconds         int64               `json:"maxtime" yaml:"maxtime"`
	MaxTime            string              `json:"maxtime_formatted,omitempty" yaml:"maxtime_formatted,omitempty"`
	AloneTimeUntilStop int64               `json:"alonetimeuntilstop" yaml:"alonetimeuntilstop"`
	PlaylistsFolder    string              `json:"playlistsfolder" yaml:"playlistsfolder"`
	Aliases            map[string][]string `json:"aliases" yaml:"aliases"`
}

// Summary returns a snapshot of c. The token is masked unless showSecrets
// is set.
func (c *Config) Summary(showSecrets bool) Summary {
	token := c.token
	if !showSecrets {
		token = maskSecret(token)
	}

	aliases := make(map[string][]string, len(c.aliases))
	for command := range c.aliases {
		aliases[command] = c.aliases.Lookup(command)
	}

	return Summary{
		Location:   c.location,
		Token:      token,
		Owner:      c.owner,
		KnownOwner: c.KnownOwner(),
		Prefix:     c.prefix,
		AltPrefix:  c.AltPrefix(),
		Help:       c.help,
		Emoji: map[string]string{
			KeySuccess:   c.successEmoji,
			KeyWarning:   c.warningEmoji,
			KeyError:     c.errorEmoji,
			KeyLoading:   c.loadingEmoji,
			KeySearching: c.searchingEmoji,
		},
		Game:               c.Game(),
		Status:             string(c.status),
		StayInChannel:      c.stayInChannel,
		SongInStatus:       c.songInStatus,
		NPImages:           c.npImages,
		UpdateAlerts:       c.updateAlerts,
		Eval:               c.eval,
		MaxSeconds:         c.maxSeconds,
		MaxTime:            c.MaxTime(),
		AloneTimeUntilStop: c.aloneTimeUntilStop,
		PlaylistsFolder:    c.playlistsFolder,
		Aliases:            aliases,
	}
}

// maskSecret keeps the first four characters of s.
func maskSecret(s string) string {
	if len(s) <= 4 {
		return strings.Repeat("*", len(s))
	}
	return s[:4] + strings.Repeat("*", 8)
}
