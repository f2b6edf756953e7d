package config

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sagarc03/jukebox"
)

const (
	// StartMarker opens the region of the reference template that is
	// written to the config file.
	StartMarker = "/// START OF JUKEBOX CONFIG ///"
	// EndMarker closes the region.
	EndMarker = "/// END OF JUKEBOX CONFIG ///"
	// ReferenceTemplate is the template's name in the template file system.
	ReferenceTemplate = "reference.yaml.tmpl"
)

//go:embed reference.yaml.tmpl
var reference embed.FS

// ReferenceFS returns the file system holding the bundled reference template.
func ReferenceFS() fs.FS {
	return reference
}

// Substitution replaces every occurrence of Placeholder with Value.
type Substitution struct {
	Placeholder string
	Value       string
}

// WriteFunc writes a file. It matches os.WriteFile.
type WriteFunc func(name string, data []byte, perm fs.FileMode) error

// RewritePlan describes one rewrite of the config file.
type RewritePlan struct {
	Path          string
	Substitutions []Substitution
	// Source is the template region, or the fallback snippet when the
	// template could not be used. The snippet needs no substitutions.
	Source   []byte
	Fallback bool
}

// NewRewritePlan prepares a rewrite of path with the recovered token and
// owner. The template is looked up in templates; when it is missing or has
// no markers the plan falls back to a two line snippet.
func NewRewritePlan(path string, templates fs.FS, token string, owner int64) (RewritePlan, error) {
	tokenScalar, err := yamlScalar(token)
	if err != nil {
		return RewritePlan{}, err
	}

	plan := RewritePlan{
		Path: path,
		Substitutions: []Substitution{
			{Placeholder: TokenPlaceholder, Value: tokenScalar},
			{Placeholder: OwnerPlaceholder, Value: strconv.FormatInt(owner, 10)},
		},
	}

	region, err := loadRegion(templates)
	if err == nil {
		plan.Source = []byte(region)
		return plan, nil
	}

	snippet, snippetErr := fallbackSnippet(token, owner)
	if snippetErr != nil {
		return RewritePlan{}, snippetErr
	}
	plan.Source = snippet
	plan.Substitutions = nil
	plan.Fallback = true
	return plan, nil
}

// Render applies the substitutions to the source in a single pass, so a
// substituted value is never matched again, and trims surrounding
// whitespace.
func (p RewritePlan) Render() []byte {
	pairs := make([]string, 0, 2*len(p.Substitutions))
	for _, s := range p.Substitutions {
		pairs = append(pairs, s.Placeholder, s.Value)
	}
	text := strings.NewReplacer(pairs...).Replace(string(p.Source))
	return []byte(strings.TrimSpace(text))
}

// Persist renders the plan and overwrites the file at Path with it in
// place. A nil write uses os.WriteFile.
func (p RewritePlan) Persist(write WriteFunc) error {
	if write == nil {
		write = os.WriteFile
	}

	if dir := filepath.Dir(p.Path); dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := write(p.Path, p.Render(), 0o600); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Region returns the text strictly between StartMarker and EndMarker.
func Region(template string) (string, error) {
	start := strings.Index(template, StartMarker)
	if start < 0 {
		return "", fmt.Errorf("%w: start marker not found", jukebox.ErrTemplateMissing)
	}
	start += len(StartMarker)

	end := strings.Index(template[start:], EndMarker)
	if end < 0 {
		return "", fmt.Errorf("%w: end marker not found", jukebox.ErrTemplateMissing)
	}
	return template[start : start+end], nil
}

// ReferenceRegion returns the config section of the bundled template with
// placeholders intact.
func ReferenceRegion() (string, error) {
	region, err := loadRegion(reference)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(region), nil
}

func loadRegion(templates fs.FS) (string, error) {
	if templates == nil {
		return "", jukebox.ErrTemplateMissing
	}
	data, err := fs.ReadFile(templates, ReferenceTemplate)
	if err != nil {
		return "", fmt.Errorf("%w: %w", jukebox.ErrTemplateMissing, err)
	}
	return Region(string(data))
}

// yamlScalar encodes s so that it reads back as the same string, quoting it
// when it would otherwise parse as a number, a bool or YAML syntax.
func yamlScalar(s string) (string, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("encode token: %w", err)
	}
	return strings.TrimSuffix(string(data), "\n"), nil
}

func fallbackSnippet(token string, owner int64) ([]byte, error) {
	snippet := struct {
		Token string `yaml:"token"`
		Owner int64  `yaml:"owner"`
	}{Token: token, Owner: owner}

	data, err := yaml.Marshal(snippet)
	if err != nil {
		return nil, fmt.Errorf("marshal fallback config: %w", err)
	}
	return data, nil
}
