package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sagarc03/jukebox/config"
	"github.com/sagarc03/jukebox/prompt"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{" DEBUG ", slog.LevelDebug},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLevel(tt.input))
		})
	}
}

func TestWriteReference(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	require.NoError(t, writeReference(path, false))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "token: "+config.TokenPlaceholder)
	assert.NotContains(t, string(data), config.StartMarker)

	// An existing file is kept
	err = writeReference(path, false)
	assert.ErrorIs(t, err, errConfigExists)

	require.NoError(t, writeReference(path, true))
}

func TestWriteReference_ThenBootstrap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, writeReference(path, false))

	scripted := prompt.NewScripted(prompt.Answer("abc.def.ghi"), prompt.Answer("42"))
	out := config.Bootstrap(config.Options{Path: path, Prompter: scripted})

	require.True(t, out.Valid, out.Reason)
	assert.Len(t, scripted.Prompts, 2)
	assert.True(t, out.Rewritten)
}

func TestBootstrapOptions_NonInteractive(t *testing.T) {
	opts := bootstrapOptions("/tmp/config.yaml", false)
	assert.IsType(t, &prompt.Disabled{}, opts.Prompter)
	assert.Equal(t, "/tmp/config.yaml", opts.Path)
}

func TestSettingFlagsExist(t *testing.T) {
	for key, name := range settingFlags {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), key)
	}
}
