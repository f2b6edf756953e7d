// Package jukebox holds the shared types of the jukebox music bot that the
// configuration bootstrap and the command surface agree on.
//
// Jukebox starts by loading its configuration file, merging it with built-in
// defaults and validating the required fields. Missing fields are recovered
// interactively from the operator and written back to disk.
//
// # Key Components
//
//   - Activity / ActivityKind: the presence shown next to the bot
//   - OnlineStatus: the presence state (online, idle, dnd, ...)
//   - FormatTime: human readable track durations
//
// # Presence Parsing
//
// The "game" and "status" configuration values are free text:
//
//	act := jukebox.ParseGame("listening to lo-fi beats")
//	// act.Kind == jukebox.ActivityListening, act.Name == "lo-fi beats"
//
//	st := jukebox.ParseStatus("dnd")
//	// st == jukebox.StatusDoNotDisturb
//
// See the config package for the bootstrap sequence and the prompt package
// for the operator-facing prompt implementations.
package jukebox
