package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"rical/internal/page"
	"rical/internal/qr"
)

// DismissOverlayMsg closes the about overlay.
type DismissOverlayMsg struct{}

// AboutView shows the version, credits and a QR code of the repository URL.
type AboutView struct {
	Page *page.Page
	qr   string
}

// Ensure AboutView implements View.
var _ View = (*AboutView)(nil)

// NewAboutView creates the about overlay. A QR failure only drops the code.
func NewAboutView(p *page.Page) *AboutView {
	code, err := qr.Text(p.RepoURL)
	if err != nil {
		code = ""
	}
	return &AboutView{Page: p, qr: code}
}

// Init implements View.
func (a *AboutView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (a *AboutView) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "esc" {
		return a, func() tea.Msg { return DismissOverlayMsg{} }
	}
	return a, nil
}

// View implements View.
func (a *AboutView) View() string {
	var sb strings.Builder
	sb.WriteString(Styles.Hint.Render("(esc) back"))
	sb.WriteString("\n\n")
	sb.WriteString(Styles.Title.Render(fmt.Sprintf("%s v%s", a.Page.Banner.Title, a.Page.Version)))
	sb.WriteString("\n")
	for _, line := range a.Page.About.Lines {
		sb.WriteString("\n")
		sb.WriteString(Styles.Normal.Render(line))
	}
	if a.qr != "" {
		sb.WriteString("\n\n")
		sb.WriteString(Styles.Muted.Render("Scan to open " + a.Page.RepoURL))
		sb.WriteString("\n")
		sb.WriteString(a.qr)
	}
	return Styles.Box.Render(sb.String())
}
