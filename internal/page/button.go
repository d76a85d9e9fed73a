package page

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidButton is returned by NewButton for an unusable button.
var ErrInvalidButton = errors.New("invalid button")

// Button is a clickable control showing Label, optionally annotated with a
// hotkey. OnActivate is invoked with no arguments when the button is used.
type Button struct {
	ID         string
	Label      string
	Hotkey     string
	OnActivate func()
}

// NewButton creates a button. The label must be non-empty and onActivate non-nil.
func NewButton(id, label, hotkey string, onActivate func()) (Button, error) {
	if strings.TrimSpace(label) == "" {
		return Button{}, fmt.Errorf("%w: %q has an empty label", ErrInvalidButton, id)
	}
	if onActivate == nil {
		return Button{}, fmt.Errorf("%w: %q has no activation callback", ErrInvalidButton, id)
	}
	return Button{
		ID:         id,
		Label:      label,
		Hotkey:     hotkey,
		OnActivate: onActivate,
	}, nil
}

// HasHotkey reports whether the hotkey annotation should be rendered.
func (b Button) HasHotkey() bool {
	return b.Hotkey != ""
}

// Annotation returns the hotkey text, or "" when the button has no hotkey.
func (b Button) Annotation() string {
	return b.Hotkey
}

// Activate invokes the activation callback.
func (b Button) Activate() {
	if b.OnActivate != nil {
		b.OnActivate()
	}
}
