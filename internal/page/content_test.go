package page

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultContent(t *testing.T) {
	c, err := DefaultContent()
	require.NoError(t, err)

	assert.Equal(t, "Rical", c.Title)
	assert.Equal(t, "The latest calendar app for minimalists", c.Tagline)
	assert.Equal(t, "https://github.com/Cadecraft/rical", c.RepoURL)
	assert.Equal(t, "Get started", c.CallToAction.Heading)
	assert.Equal(t, "g", c.CallToAction.Button.Hotkey)
	assert.Equal(t, c.RepoURL, c.ButtonTarget())
	require.Len(t, c.Footer.Links, 1)
	assert.Equal(t, "GitHub", c.Footer.Links[0].Label)
	assert.Equal(t, c.RepoURL, c.Footer.Links[0].URL)
	assert.Equal(t, "© 2025 rical contributors", c.Footer.Copyright)
}

func TestDefaultContent_PlannedFeaturesAreMarked(t *testing.T) {
	c, err := DefaultContent()
	require.NoError(t, err)

	planned := map[string]bool{}
	for _, f := range c.Features.Items {
		planned[f.Title] = f.Planned
	}
	for _, title := range []string{"Sync across devices", "Multiple accounts", "Share your availability", "Notifications"} {
		assert.True(t, planned[title], "%s should be planned", title)
	}
	assert.False(t, planned["Terminal first"])
}

func TestLoadContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "content.yaml")
	data := `
title: Other
tagline: Something else
repo_url: https://example.com/other
call_to_action:
  heading: Try it
  body: Now
  button:
    id: try
    label: Try
    target: https://example.com/try
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	c, err := LoadContent(path)
	require.NoError(t, err)
	assert.Equal(t, "Other", c.Title)
	assert.Equal(t, "https://example.com/try", c.ButtonTarget())
	assert.Empty(t, c.CallToAction.Button.Hotkey)
}

func TestLoadContent_UnknownField(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "content.yaml")
	require.NoError(t, os.WriteFile(path, []byte("title: x\nsubtitle: y\n"), 0o600))

	_, err := LoadContent(path)
	assert.Error(t, err)
}

func TestLoadContent_Missing(t *testing.T) {
	_, err := LoadContent("/nonexistent/content.yaml")
	assert.Error(t, err)
}

func TestResolveContent_EmptyPathUsesEmbedded(t *testing.T) {
	c, err := ResolveContent("")
	require.NoError(t, err)
	assert.Equal(t, "Rical", c.Title)
}

func TestContentValidate(t *testing.T) {
	base, err := DefaultContent()
	require.NoError(t, err)

	tests := []struct {
		name   string
		mutate func(c *Content)
	}{
		{"empty title", func(c *Content) { c.Title = " " }},
		{"empty tagline", func(c *Content) { c.Tagline = "" }},
		{"relative repo url", func(c *Content) { c.RepoURL = "/Cadecraft/rical" }},
		{"non-http repo url", func(c *Content) { c.RepoURL = "ftp://github.com/Cadecraft/rical" }},
		{"empty button label", func(c *Content) { c.CallToAction.Button.Label = "" }},
		{"empty button id", func(c *Content) { c.CallToAction.Button.ID = "" }},
		{"bad button target", func(c *Content) { c.CallToAction.Button.Target = "javascript:alert(1)" }},
		{"reserved hotkey", func(c *Content) { c.CallToAction.Button.Hotkey = "q" }},
		{"leader as hotkey", func(c *Content) { c.CallToAction.Button.Hotkey = "SPC" }},
		{"space as link hotkey", func(c *Content) { c.Footer.Links[0].Hotkey = "space" }},
		{"multi-key hotkey", func(c *Content) { c.CallToAction.Button.Hotkey = "g h" }},
		{"duplicate hotkey", func(c *Content) {
			c.Footer.Links = []Link{{ID: "gh", Label: "GitHub", URL: c.RepoURL, Hotkey: c.CallToAction.Button.Hotkey}}
		}},
		{"duplicate id", func(c *Content) {
			c.Footer.Links = []Link{{ID: c.CallToAction.Button.ID, Label: "GitHub", URL: c.RepoURL}}
		}},
		{"link without label", func(c *Content) {
			c.Footer.Links = []Link{{ID: "gh", URL: c.RepoURL}}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base
			c.Footer.Links = append([]Link(nil), base.Footer.Links...)
			tt.mutate(&c)
			err := c.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidContent), "got %v", err)
		})
	}

	assert.NoError(t, base.Validate())
}
