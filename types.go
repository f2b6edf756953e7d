package jukebox

import (
	"fmt"
	"strings"
)

type ActivityKind string

const (
	ActivityPlaying   ActivityKind = "playing"
	ActivityListening ActivityKind = "listening"
	ActivityWatching  ActivityKind = "watching"
	ActivityStreaming ActivityKind = "streaming"
)

func (k ActivityKind) IsValid() bool {
	switch k {
	case ActivityPlaying, ActivityListening, ActivityWatching, ActivityStreaming:
		return true
	default:
		return false
	}
}

// Activity is the presence descriptor shown next to the bot.
// URL is only set for streaming activities.
type Activity struct {
	Kind ActivityKind `json:"kind" yaml:"kind"`
	Name string       `json:"name" yaml:"name"`
	URL  string       `json:"url,omitempty" yaml:"url,omitempty"`
}

func (a Activity) String() string {
	if a.Kind == ActivityListening {
		return "listening to " + a.Name
	}
	return fmt.Sprintf("%s %s", a.Kind, a.Name)
}

// zeroWidthSpace stands in for an empty activity name, which the chat
// platform rejects.
const zeroWidthSpace = "\u200b"

func nonEmpty(s string) string {
	if s == "" {
		return zeroWidthSpace
	}
	return s
}

// ParseGame turns the free-text "game" setting into an Activity.
// Returns nil for an empty value or "default", meaning no activity is set.
func ParseGame(game string) *Activity {
	trimmed := strings.TrimSpace(game)
	if trimmed == "" || strings.EqualFold(trimmed, "default") {
		return nil
	}

	lower := strings.ToLower(trimmed)
	rest := func(prefix string) string {
		return strings.TrimSpace(trimmed[len(prefix):])
	}

	switch {
	case strings.HasPrefix(lower, "playing"):
		return &Activity{Kind: ActivityPlaying, Name: nonEmpty(rest("playing"))}
	case strings.HasPrefix(lower, "listening to"):
		return &Activity{Kind: ActivityListening, Name: nonEmpty(rest("listening to"))}
	case strings.HasPrefix(lower, "listening"):
		return &Activity{Kind: ActivityListening, Name: nonEmpty(rest("listening"))}
	case strings.HasPrefix(lower, "watching"):
		return &Activity{Kind: ActivityWatching, Name: nonEmpty(rest("watching"))}
	case strings.HasPrefix(lower, "streaming"):
		parts := strings.Fields(rest("streaming"))
		if len(parts) >= 2 {
			title := strings.TrimSpace(strings.TrimPrefix(rest("streaming"), parts[0]))
			return &Activity{
				Kind: ActivityStreaming,
				Name: nonEmpty(title),
				URL:  "https://twitch.tv/" + parts[0],
			}
		}
	}

	return &Activity{Kind: ActivityPlaying, Name: trimmed}
}

type OnlineStatus string

const (
	StatusOnline       OnlineStatus = "online"
	StatusIdle         OnlineStatus = "idle"
	StatusDoNotDisturb OnlineStatus = "dnd"
	StatusInvisible    OnlineStatus = "invisible"
	StatusOffline      OnlineStatus = "offline"
)

func (s OnlineStatus) IsValid() bool {
	switch s {
	case StatusOnline, StatusIdle, StatusDoNotDisturb, StatusInvisible, StatusOffline:
		return true
	default:
		return false
	}
}

// ParseStatus maps the "status" setting to an OnlineStatus.
// Empty and unknown values fall back to StatusOnline.
func ParseStatus(s string) OnlineStatus {
	status := OnlineStatus(strings.ToLower(strings.TrimSpace(s)))
	if !status.IsValid() {
		return StatusOnline
	}
	return status
}
