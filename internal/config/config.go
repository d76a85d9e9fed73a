// Package config loads the optional ~/.config/rical/config.toml shared by
// the web server and the terminal page.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

// DefaultPort is the default web server port.
const DefaultPort = 8080

// PortEnv overrides the port of Web.Addr when set to a valid port number.
const PortEnv = "RICAL_WEB_PORT"

// Config represents config.toml.
type Config struct {
	Web     Web     `toml:"web"`
	Content Content `toml:"content"`
	TUI     TUI     `toml:"tui"`
}

// Web configures the HTTP server.
type Web struct {
	Addr      string `toml:"addr"`
	LogFormat string `toml:"log_format"` // "console" or "json"
}

// Content points at an optional YAML file replacing the embedded page copy.
type Content struct {
	Path string `toml:"path"`
}

// TUI configures the terminal page.
type TUI struct {
	// OpenCommand launches URLs instead of the platform default (e.g. "firefox").
	OpenCommand string `toml:"open_command"`
	LogPath     string `toml:"log_path"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Web: Web{
			Addr:      fmt.Sprintf(":%d", DefaultPort),
			LogFormat: "console",
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/rical/config.toml (or the platform equivalent).
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, "rical", "config.toml"), nil
}

// Load reads config from path. Returns an error if the file is missing or invalid.
func Load(path string) (*Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault reads config from path, falling back to Default when the
// file does not exist. An empty path means DefaultPath.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return Default(), nil
		}
		path = p
	}
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes config to the given path, creating parent dirs as needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	encErr := toml.NewEncoder(f).Encode(cfg)
	if closeErr := f.Close(); closeErr != nil && encErr == nil {
		return closeErr
	}
	return encErr
}

// WriteDefault writes the default config to path (DefaultPath when empty)
// and returns the path written. An existing file is left alone and reported
// with fs.ErrExist.
func WriteDefault(path string) (string, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return "", err
		}
		path = p
	}
	if _, err := os.Stat(path); err == nil {
		return path, fmt.Errorf("%s: %w", path, fs.ErrExist)
	}
	if err := Save(path, Default()); err != nil {
		return path, err
	}
	return path, nil
}

// Validate checks field values.
func (c *Config) Validate() error {
	if _, _, err := net.SplitHostPort(c.Web.Addr); err != nil {
		return fmt.Errorf("web.addr %q: %w", c.Web.Addr, err)
	}
	switch c.Web.LogFormat {
	case "", "console", "json":
	default:
		return fmt.Errorf("web.log_format must be \"console\" or \"json\", got %q", c.Web.LogFormat)
	}
	return nil
}

// ApplyEnv overrides the web port from RICAL_WEB_PORT.
// Invalid values are ignored.
func (c *Config) ApplyEnv() {
	portStr := os.Getenv(PortEnv)
	if portStr == "" {
		return
	}
	p, err := strconv.Atoi(portStr)
	if err != nil || p <= 0 || p >= 65536 {
		return
	}
	host, _, err := net.SplitHostPort(c.Web.Addr)
	if err != nil {
		host = ""
	}
	c.Web.Addr = net.JoinHostPort(host, strconv.Itoa(p))
}
