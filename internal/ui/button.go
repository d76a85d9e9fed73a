package ui

import (
	"rical/internal/page"
)

// ButtonText returns the plain text of a button face: the label, followed by
// "[hotkey]" only when the button has a hotkey.
func ButtonText(b page.Button) string {
	if !b.HasHotkey() {
		return b.Label
	}
	return b.Label + "  " + Styles.Hotkey.Render("["+b.Annotation()+"]")
}

// RenderButton draws b as a bordered box; focused buttons get the highlight border.
func RenderButton(b page.Button, focused bool) string {
	style := Styles.Button
	if focused {
		style = Styles.ButtonFocused
	}
	return style.Render(ButtonText(b))
}

// RenderLink draws a footer link as "label  url", with a focus marker and
// optional hotkey annotation.
func RenderLink(l page.Link, focused bool, maxWidth int) string {
	marker := "  "
	label := Styles.Normal.Render(l.Label)
	if focused {
		marker = Styles.Focused.Render("› ")
		label = Styles.Focused.Render(l.Label)
	}
	line := marker + label
	if l.Hotkey != "" {
		line += " " + Styles.Hotkey.Render("["+l.Hotkey+"]")
	}
	url := l.URL
	if maxWidth > 0 {
		url = truncateURL(url, maxWidth-visualWidth(line)-2)
	}
	return line + "  " + Styles.Link.Render(url)
}
