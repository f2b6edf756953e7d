package report_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/sagarc03/jukebox"
	"github.com/sagarc03/jukebox/config"
	"github.com/sagarc03/jukebox/report"
)

func testSummary() config.Summary {
	return config.Summary{
		Location:   "/etc/jukebox/config.yaml",
		Token:      "abcd********",
		Owner:      42,
		Prefix:     "!",
		Help:       "help",
		Emoji:      map[string]string{"success": "🎶"},
		Game:       &jukebox.Activity{Kind: jukebox.ActivityListening, Name: "lo-fi"},
		Status:     "online",
		MaxSeconds: 0,
		Aliases: map[string][]string{
			"volume":     {"vol"},
			"nowplaying": {"np", "current"},
		},
	}
}

func TestNewFormatter(t *testing.T) {
	tests := []struct {
		format string
		want   any
	}{
		{"", &report.HumanFormatter{}},
		{"table", &report.HumanFormatter{}},
		{"JSON", &report.JSONFormatter{}},
		{"yaml", &report.YAMLFormatter{}},
		{"yml", &report.YAMLFormatter{}},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			formatter, err := report.NewFormatter(tt.format, false)
			require.NoError(t, err)
			assert.IsType(t, tt.want, formatter)
		})
	}

	t.Run("human formatter quiet", func(t *testing.T) {
		formatter, err := report.NewFormatter("table", true)
		require.NoError(t, err)
		hf, ok := formatter.(*report.HumanFormatter)
		require.True(t, ok)
		assert.True(t, hf.Quiet)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := report.NewFormatter("xml", false)
		assert.ErrorIs(t, err, report.ErrUnknownFormat)
	})
}

func TestHumanFormatter_FormatCheck(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		var buf bytes.Buffer
		err := (&report.HumanFormatter{}).FormatCheck(&buf, report.CheckResult{
			Valid:     true,
			Location:  "/etc/jukebox/config.yaml",
			Rewritten: true,
		})
		require.NoError(t, err)

		output := buf.String()
		assert.Contains(t, output, "Valid: /etc/jukebox/config.yaml")
		assert.Contains(t, output, "written to the config file")
	})

	t.Run("invalid", func(t *testing.T) {
		var buf bytes.Buffer
		err := (&report.HumanFormatter{Quiet: true}).FormatCheck(&buf, report.CheckResult{
			Location: "/etc/jukebox/config.yaml",
			Reason:   "token: cancelled by operator",
		})
		require.NoError(t, err)

		output := buf.String()
		assert.Contains(t, output, "Invalid: token: cancelled by operator")
		assert.Contains(t, output, "Config: /etc/jukebox/config.yaml")
	})

	t.Run("quiet mode", func(t *testing.T) {
		var buf bytes.Buffer
		err := (&report.HumanFormatter{Quiet: true}).FormatCheck(&buf, report.CheckResult{Valid: true})
		require.NoError(t, err)
		assert.Empty(t, buf.String())
	})
}

func TestHumanFormatter_FormatConfig(t *testing.T) {
	var buf bytes.Buffer
	err := (&report.HumanFormatter{}).FormatConfig(&buf, testSummary())
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "Config: /etc/jukebox/config.yaml")
	assert.Contains(t, output, "SETTING")
	assert.Contains(t, output, "abcd********")
	assert.Contains(t, output, "listening to lo-fi")
	assert.Contains(t, output, "(no limit)")
	assert.Contains(t, output, "np, current")

	// Commands are sorted
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("nowplaying")), bytes.Index(buf.Bytes(), []byte("volume")))
}

func TestHumanFormatter_FormatPath(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&report.HumanFormatter{}).FormatPath(&buf, report.PathResult{Path: "/tmp/config.yaml"}))
	assert.Equal(t, "/tmp/config.yaml (not created yet)\n", buf.String())

	buf.Reset()
	require.NoError(t, (&report.HumanFormatter{}).FormatPath(&buf, report.PathResult{Path: "/tmp/config.yaml", Exists: true}))
	assert.Equal(t, "/tmp/config.yaml\n", buf.String())
}

func TestFormatPath_Created(t *testing.T) {
	created := report.PathResult{Path: "/tmp/config.yaml", Exists: true, Created: true}

	var buf bytes.Buffer
	require.NoError(t, (&report.HumanFormatter{}).FormatPath(&buf, created))
	assert.Equal(t, "Created: /tmp/config.yaml\n", buf.String())

	buf.Reset()
	require.NoError(t, (&report.HumanFormatter{Quiet: true}).FormatPath(&buf, created))
	assert.Equal(t, "/tmp/config.yaml\n", buf.String())

	buf.Reset()
	require.NoError(t, (&report.JSONFormatter{}).FormatPath(&buf, created))
	assert.JSONEq(t, `{"path":"/tmp/config.yaml","exists":true,"created":true}`, buf.String())

	// Only a fresh write reports created
	buf.Reset()
	require.NoError(t, (&report.JSONFormatter{}).FormatPath(&buf, report.PathResult{Path: "/tmp/config.yaml"}))
	assert.JSONEq(t, `{"path":"/tmp/config.yaml","exists":false}`, buf.String())
}

func TestHumanFormatter_FormatError(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&report.HumanFormatter{}).FormatError(&buf, errors.New("boom")))
	assert.Equal(t, "Error: boom\n", buf.String())
}

func TestJSONFormatter_FormatConfig(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&report.JSONFormatter{}).FormatConfig(&buf, testSummary()))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "abcd********", decoded["token"])
	assert.Equal(t, float64(42), decoded["owner"])
	assert.NotContains(t, decoded, "maxtime_formatted")
}

func TestJSONFormatter_FormatError(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&report.JSONFormatter{}).FormatError(&buf, errors.New("boom")))
	assert.JSONEq(t, `{"error":"boom"}`, buf.String())
}

func TestYAMLFormatter_FormatCheck(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&report.YAMLFormatter{}).FormatCheck(&buf, report.CheckResult{
		Valid:    true,
		Location: "/etc/jukebox/config.yaml",
	}))

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, true, decoded["valid"])
	assert.Equal(t, "/etc/jukebox/config.yaml", decoded["location"])
	assert.NotContains(t, decoded, "reason")
}

func TestNewCheckResult(t *testing.T) {
	cfg, failures := config.Validate(config.RawConfig{Token: "abc.def.ghi", Owner: "42"})
	require.Empty(t, failures)

	result := report.NewCheckResult(config.Outcome{Valid: true, Config: cfg}, "/fallback.yaml")
	assert.True(t, result.Valid)
	// Validate alone does not set a location
	assert.Equal(t, "/fallback.yaml", result.Location)

	result = report.NewCheckResult(config.Outcome{Reason: "broken"}, "/fallback.yaml")
	assert.False(t, result.Valid)
	assert.Equal(t, "/fallback.yaml", result.Location)
	assert.Equal(t, "broken", result.Reason)
}
