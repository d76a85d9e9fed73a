// Package browser launches URLs in the user's web browser.
package browser

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
	"strings"
)

// ErrUnsupportedURL is returned for anything but absolute http(s) URLs.
var ErrUnsupportedURL = errors.New("unsupported url")

// Opener is the interface for opening a URL outside the terminal.
// Implementations can be swapped (e.g. the system browser, or a mock for tests).
type Opener interface {
	Open(ctx context.Context, rawURL string) error
}

// SystemOpener implements Opener by running a platform launcher.
type SystemOpener struct {
	// Command overrides the launcher (e.g. "firefox" or "open -a Safari").
	// The URL is appended as the last argument.
	Command string
	// GOOS selects the default launcher. Empty means runtime.GOOS.
	GOOS string
}

// Ensure SystemOpener implements Opener.
var _ Opener = (*SystemOpener)(nil)

// Open implements Opener.
func (o *SystemOpener) Open(ctx context.Context, rawURL string) error {
	if err := CheckURL(rawURL); err != nil {
		return err
	}
	name, args := o.Launcher()
	args = append(args, rawURL)

	cmd := exec.CommandContext(ctx, name, args...)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w: %s", name, err, strings.TrimSpace(out.String()))
	}
	return nil
}

// Launcher returns the command and leading arguments used to open a URL.
func (o *SystemOpener) Launcher() (string, []string) {
	if fields := strings.Fields(o.Command); len(fields) > 0 {
		return fields[0], fields[1:]
	}
	goos := o.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}
	switch goos {
	case "darwin":
		return "open", nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler"}
	default:
		return "xdg-open", nil
	}
}

// CheckURL returns ErrUnsupportedURL unless rawURL is an absolute http(s) URL.
func CheckURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnsupportedURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrUnsupportedURL, rawURL)
	}
	return nil
}
