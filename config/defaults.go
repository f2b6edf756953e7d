package config

import "github.com/spf13/viper"

const (
	// TokenPlaceholder is the token shipped in the reference template.
	TokenPlaceholder = "BOT_TOKEN_HERE"
	// OwnerPlaceholder is the owner value, with its marker comment, shipped
	// in the reference template.
	OwnerPlaceholder = "0 # OWNER ID"
	// KnownOwnerID identifies the operator of the public listing instance.
	KnownOwnerID int64 = 113156185389092864
	// AltPrefixNone disables the alternate prefix.
	AltPrefixNone = "NONE"
)

// Configuration keys.
const (
	KeyToken              = "token"
	KeyOwner              = "owner"
	KeyPrefix             = "prefix"
	KeyAltPrefix          = "altprefix"
	KeyHelp               = "help"
	KeySuccess            = "success"
	KeyWarning            = "warning"
	KeyError              = "error"
	KeyLoading            = "loading"
	KeySearching          = "searching"
	KeyGame               = "game"
	KeyStatus             = "status"
	KeyStayInChannel      = "stayinchannel"
	KeySongInStatus       = "songinstatus"
	KeyNPImages           = "npimages"
	KeyUpdateAlerts       = "updatealerts"
	KeyEval               = "eval"
	KeyMaxTime            = "maxtime"
	KeyAloneTimeUntilStop = "alonetimeuntilstop"
	KeyPlaylistsFolder    = "playlistsfolder"
	KeyAliases            = "aliases"
)

// defaults supplies every key of the schema. The reference template
// carries the same values.
var defaults = map[string]any{
	KeyToken:              TokenPlaceholder,
	KeyOwner:              0,
	KeyPrefix:             "@mention",
	KeyAltPrefix:          AltPrefixNone,
	KeyHelp:               "help",
	KeySuccess:            "🎶",
	KeyWarning:            "💡",
	KeyError:              "🚫",
	KeyLoading:            "⌚",
	KeySearching:          "🔎",
	KeyGame:               "DEFAULT",
	KeyStatus:             "ONLINE",
	KeyStayInChannel:      false,
	KeySongInStatus:       false,
	KeyNPImages:           false,
	KeyUpdateAlerts:       true,
	KeyEval:               false,
	KeyMaxTime:            0,
	KeyAloneTimeUntilStop: 0,
	KeyPlaylistsFolder:    "Playlists",
	KeyAliases: map[string]any{
		"settings":   []string{"status"},
		"lyrics":     []string{},
		"nowplaying": []string{"np", "current"},
		"play":       []string{},
		"playlists":  []string{"pls"},
		"queue":      []string{"list"},
		"remove":     []string{"delete"},
		"search":     []string{"ytsearch"},
		"skip":       []string{"voteskip"},
		"prefix":     []string{"setprefix"},
		"forceskip":  []string{"modskip"},
		"movetrack":  []string{"move"},
		"skipto":     []string{"jumpto"},
		"stop":       []string{"leave"},
		"volume":     []string{"vol"},
	},
}

// setDefaults configures default values on the viper instance.
func setDefaults(v *viper.Viper) {
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
}
