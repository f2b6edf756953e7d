package config_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/sagarc03/jukebox"
	"github.com/sagarc03/jukebox/config"
)

const testTemplate = `# header that is never written
/// START OF JUKEBOX CONFIG ///
token: BOT_TOKEN_HERE
owner: 0 # OWNER ID
prefix: "!"
/// END OF JUKEBOX CONFIG ///
# trailer
`

func templateFS(content string) fs.FS {
	return fstest.MapFS{
		config.ReferenceTemplate: &fstest.MapFile{Data: []byte(content)},
	}
}

func TestRegion(t *testing.T) {
	region, err := config.Region(testTemplate)
	require.NoError(t, err)
	assert.Equal(t, "\ntoken: BOT_TOKEN_HERE\nowner: 0 # OWNER ID\nprefix: \"!\"\n", region)
}

func TestRegion_MissingMarkers(t *testing.T) {
	tests := []struct {
		name     string
		template string
	}{
		{"no markers", "token: x\n"},
		{"no end marker", config.StartMarker + "\ntoken: x\n"},
		{"end before start", config.EndMarker + "\n" + config.StartMarker + "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Region(tt.template)
			assert.ErrorIs(t, err, jukebox.ErrTemplateMissing)
		})
	}
}

func TestRewritePlan_Template(t *testing.T) {
	plan, err := config.NewRewritePlan("/tmp/config.yaml", templateFS(testTemplate), "tok.en", 42)
	require.NoError(t, err)
	assert.False(t, plan.Fallback)

	assert.Equal(t, "token: tok.en\nowner: 42\nprefix: \"!\"", string(plan.Render()))
}

func TestRewritePlan_ReplacesEveryOccurrence(t *testing.T) {
	template := config.StartMarker + "\na: BOT_TOKEN_HERE\nb: BOT_TOKEN_HERE\n" + config.EndMarker
	plan, err := config.NewRewritePlan("/tmp/config.yaml", templateFS(template), "t", 1)
	require.NoError(t, err)

	assert.Equal(t, "a: t\nb: t", string(plan.Render()))
}

func TestRewritePlan_BundledTemplate(t *testing.T) {
	plan, err := config.NewRewritePlan("/tmp/config.yaml", config.ReferenceFS(), "tok.en", 42)
	require.NoError(t, err)
	require.False(t, plan.Fallback)

	rendered := string(plan.Render())
	assert.NotContains(t, rendered, config.TokenPlaceholder)
	assert.NotContains(t, rendered, config.OwnerPlaceholder)
	assert.NotContains(t, rendered, config.StartMarker)
	assert.NotContains(t, rendered, config.EndMarker)
	assert.Contains(t, rendered, "token: tok.en\n")
	assert.Contains(t, rendered, "owner: 42\n")

	region, err := config.ReferenceRegion()
	require.NoError(t, err)
	want := strings.ReplaceAll(region, config.TokenPlaceholder, "tok.en")
	want = strings.ReplaceAll(want, config.OwnerPlaceholder, "42")
	assert.Equal(t, want, rendered)
}

func TestRewritePlan_Fallback(t *testing.T) {
	tests := []struct {
		name      string
		templates fs.FS
	}{
		{"nil file system", nil},
		{"template not found", fstest.MapFS{}},
		{"template without markers", templateFS("token: BOT_TOKEN_HERE\n")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := config.NewRewritePlan("/tmp/config.yaml", tt.templates, "t", 42)
			require.NoError(t, err)
			assert.True(t, plan.Fallback)
			assert.Equal(t, "token: t\nowner: 42", string(plan.Render()))
		})
	}
}

func TestRewritePlan_TokenReadsBack(t *testing.T) {
	tokens := []string{
		"0x1F",
		"true",
		"1e3",
		"[abc",
		"@abc",
		"abc.def",
		"x0 # OWNER ID",
		config.TokenPlaceholder + "2",
	}
	sources := []struct {
		name      string
		templates fs.FS
	}{
		{"template", templateFS(testTemplate)},
		{"fallback", nil},
	}

	for _, src := range sources {
		for _, token := range tokens {
			t.Run(src.name+"/"+token, func(t *testing.T) {
				plan, err := config.NewRewritePlan("/tmp/config.yaml", src.templates, token, 42)
				require.NoError(t, err)

				var got struct {
					Token string `yaml:"token"`
					Owner int64  `yaml:"owner"`
				}
				require.NoError(t, yaml.Unmarshal(plan.Render(), &got))
				assert.Equal(t, token, got.Token)
				assert.Equal(t, int64(42), got.Owner)
			})
		}
	}
}

func TestRewritePlan_Persist(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	plan, err := config.NewRewritePlan(path, templateFS(testTemplate), "tok.en", 42)
	require.NoError(t, err)
	require.NoError(t, plan.Persist(nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "token: tok.en\nowner: 42\nprefix: \"!\"", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, fs.FileMode(0o600), info.Mode().Perm())
}

func TestRewritePlan_PersistOverwrites(t *testing.T) {
	path := writeConfig(t, "token: old\nowner: 7\nextra: kept?\n")

	plan, err := config.NewRewritePlan(path, templateFS(testTemplate), "new", 8)
	require.NoError(t, err)
	require.NoError(t, plan.Persist(nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "extra")
	assert.Contains(t, string(data), "token: new")
}

func TestRewritePlan_PersistError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	plan, err := config.NewRewritePlan(path, templateFS(testTemplate), "t", 1)
	require.NoError(t, err)

	denied := errors.New("permission denied")
	err = plan.Persist(func(string, []byte, fs.FileMode) error { return denied })
	require.ErrorIs(t, err, denied)
	assert.Contains(t, err.Error(), "write config file")
}
