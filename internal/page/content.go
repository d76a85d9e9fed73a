package page

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidContent is wrapped by every content validation failure.
var ErrInvalidContent = errors.New("invalid page content")

// ReservedHotkeys are claimed by the terminal front end and cannot be used
// as button or link hotkeys.
var ReservedHotkeys = []string{
	"q", "a", "?", "esc", "enter", "tab", "shift+tab", "ctrl+c",
	"j", "k", "up", "down", "pgup", "pgdown",
	"SPC", "spc", "space", // leader
}

//go:embed content.yaml
var defaultContent []byte

// Content is the literal copy of the landing page.
type Content struct {
	Title        string       `yaml:"title"`
	Tagline      string       `yaml:"tagline"`
	RepoURL      string       `yaml:"repo_url"`
	CallToAction CallToAction `yaml:"call_to_action"`
	Features     Features     `yaml:"features"`
	Footer       Footer       `yaml:"footer"`
	About        About        `yaml:"about"`
}

// CallToAction is the "Get started" section.
type CallToAction struct {
	Heading string     `yaml:"heading"`
	Body    string     `yaml:"body"`
	Button  ButtonSpec `yaml:"button"`
}

// ButtonSpec describes a button before it is bound to a Navigator.
// An empty Target means the repository URL.
type ButtonSpec struct {
	ID     string `yaml:"id"`
	Label  string `yaml:"label"`
	Hotkey string `yaml:"hotkey"`
	Target string `yaml:"target"`
}

// Features is the feature list. Planned items are aspirations, not shipped.
type Features struct {
	Heading string    `yaml:"heading"`
	Items   []Feature `yaml:"items"`
}

// Feature is a single feature list entry.
type Feature struct {
	Title   string `yaml:"title"`
	Body    string `yaml:"body"`
	Planned bool   `yaml:"planned"`
}

// Footer holds the copyright line and outbound links.
type Footer struct {
	Copyright string `yaml:"copyright"`
	Links     []Link `yaml:"links"`
}

// Link is an outbound hyperlink. Hotkey is only honored by the terminal.
type Link struct {
	ID     string `yaml:"id"`
	Label  string `yaml:"label"`
	URL    string `yaml:"url"`
	Hotkey string `yaml:"hotkey"`
}

// About is shown on the terminal about screen.
type About struct {
	Lines []string `yaml:"lines"`
}

// DefaultContent returns the embedded copy.
func DefaultContent() (Content, error) {
	return decodeContent(defaultContent)
}

// LoadContent reads and validates a YAML content file.
func LoadContent(path string) (Content, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Content{}, fmt.Errorf("read content %s: %w", path, err)
	}
	c, err := decodeContent(data)
	if err != nil {
		return Content{}, fmt.Errorf("content %s: %w", path, err)
	}
	return c, nil
}

// ResolveContent returns the content at path, or the embedded copy when path is empty.
func ResolveContent(path string) (Content, error) {
	if path == "" {
		return DefaultContent()
	}
	return LoadContent(path)
}

func decodeContent(data []byte) (Content, error) {
	var c Content
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return Content{}, fmt.Errorf("decode content: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Content{}, err
	}
	return c, nil
}

// ButtonTarget returns where the call-to-action button navigates.
func (c Content) ButtonTarget() string {
	if c.CallToAction.Button.Target != "" {
		return c.CallToAction.Button.Target
	}
	return c.RepoURL
}

// Validate checks that the content can be rendered by every front end.
func (c Content) Validate() error {
	if strings.TrimSpace(c.Title) == "" {
		return fmt.Errorf("%w: title is empty", ErrInvalidContent)
	}
	if strings.TrimSpace(c.Tagline) == "" {
		return fmt.Errorf("%w: tagline is empty", ErrInvalidContent)
	}
	if err := checkURL("repo_url", c.RepoURL); err != nil {
		return err
	}
	b := c.CallToAction.Button
	if strings.TrimSpace(b.Label) == "" {
		return fmt.Errorf("%w: call_to_action button label is empty", ErrInvalidContent)
	}
	if b.ID == "" {
		return fmt.Errorf("%w: call_to_action button id is empty", ErrInvalidContent)
	}
	if b.Target != "" {
		if err := checkURL("call_to_action button target", b.Target); err != nil {
			return err
		}
	}

	ids := map[string]bool{b.ID: true}
	hotkeys := map[string]string{}
	if err := claimHotkey(hotkeys, b.Hotkey, b.ID); err != nil {
		return err
	}
	for i, l := range c.Footer.Links {
		if l.ID == "" || strings.TrimSpace(l.Label) == "" {
			return fmt.Errorf("%w: footer link %d needs an id and a label", ErrInvalidContent, i)
		}
		if ids[l.ID] {
			return fmt.Errorf("%w: duplicate id %q", ErrInvalidContent, l.ID)
		}
		ids[l.ID] = true
		if err := checkURL("footer link "+l.ID, l.URL); err != nil {
			return err
		}
		if err := claimHotkey(hotkeys, l.Hotkey, l.ID); err != nil {
			return err
		}
	}
	return nil
}

func checkURL(field, raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidContent, field, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %s must be an absolute http(s) URL, got %q", ErrInvalidContent, field, raw)
	}
	return nil
}

// claimHotkey records hotkey for owner. Empty hotkeys are allowed.
func claimHotkey(claimed map[string]string, hotkey, owner string) error {
	if hotkey == "" {
		return nil
	}
	if strings.ContainsAny(hotkey, " \t\n") {
		return fmt.Errorf("%w: hotkey %q for %s must be a single key", ErrInvalidContent, hotkey, owner)
	}
	for _, r := range ReservedHotkeys {
		if hotkey == r {
			return fmt.Errorf("%w: hotkey %q for %s is reserved", ErrInvalidContent, hotkey, owner)
		}
	}
	if prev, ok := claimed[hotkey]; ok {
		return fmt.Errorf("%w: hotkey %q used by both %s and %s", ErrInvalidContent, hotkey, prev, owner)
	}
	claimed[hotkey] = owner
	return nil
}
