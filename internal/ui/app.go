package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"rical/internal/browser"
	"rical/internal/page"
)

// openTimeout bounds a single browser launch.
const openTimeout = 10 * time.Second

// ShowAboutMsg opens the about overlay (a / SPC a).
type ShowAboutMsg struct{}

// OpenedMsg reports the outcome of launching the browser for URL.
type OpenedMsg struct {
	URL string
	Err error
}

// AppModel is the root model. It owns the page, the navigation recorder the
// page's buttons report to, and the opener that carries navigation out.
type AppModel struct {
	Mode       AppMode
	Page       *page.Page
	Recorder   *page.Recorder
	Opener     browser.Opener
	Logger     *zap.Logger
	Landing    *LandingView
	Overlay    View // shown above the landing page; nil when none
	KeyHandler *KeyHandler
	Help       help.Model

	// Status is the one-line result of the last activation.
	Status    string
	StatusErr bool

	width  int
	height int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root model. p must have been built with rec as its Navigator.
func NewAppModel(p *page.Page, rec *page.Recorder, opener browser.Opener, logger *zap.Logger) *AppModel {
	if logger == nil {
		logger = zap.NewNop()
	}
	a := &AppModel{
		Mode:     ModeLanding,
		Page:     p,
		Recorder: rec,
		Opener:   opener,
		Logger:   logger,
		Landing:  NewLandingView(p),
		Help:     newHelpModel(),
	}
	a.KeyHandler = NewKeyHandler(a.registerKeybinds())
	return a
}

func (a *AppModel) registerKeybinds() *KeybindRegistry {
	reg := NewKeybindRegistry()
	landing := []AppMode{ModeLanding}

	reg.BindWithDesc("q", tea.Quit, "quit")
	reg.BindWithDesc("ctrl+c", tea.Quit, "quit")
	reg.BindWithDesc("SPC q", tea.Quit, "quit")
	reg.BindWithDescForMode("a", showAbout, "about", landing)
	reg.BindWithDescForMode("SPC a", showAbout, "about", landing)
	reg.BindWithDescForMode("?", toggleHelp, "more", landing)

	for _, b := range a.Page.Buttons() {
		if !b.HasHotkey() {
			continue
		}
		cmd := activate(b.ID)
		reg.BindWithDescForMode(b.Hotkey, cmd, b.Label, landing)
		reg.BindWithDescForMode("SPC "+b.Hotkey, cmd, b.Label, landing)
	}
	for _, l := range a.Page.Footer.Links {
		if l.Hotkey == "" {
			continue
		}
		cmd := activate(l.ID)
		reg.BindWithDescForMode(l.Hotkey, cmd, l.Label, landing)
		reg.BindWithDescForMode("SPC "+l.Hotkey, cmd, l.Label, landing)
	}
	return reg
}

func activate(id string) tea.Cmd {
	return func() tea.Msg { return ActivateMsg{ID: id} }
}

func showAbout() tea.Msg { return ShowAboutMsg{} }

type toggleHelpMsg struct{}

func toggleHelp() tea.Msg { return toggleHelpMsg{} }

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.Landing.Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.Help.Width = msg.Width
		a.Landing.SetSize(msg.Width, a.landingHeight())
		return a, nil
	case ActivateMsg:
		return a, a.activate(msg.ID)
	case OpenedMsg:
		if msg.Err != nil {
			a.Logger.Warn("open url failed", zap.String("url", msg.URL), zap.Error(msg.Err))
			a.Status = "Could not open " + msg.URL + ": " + msg.Err.Error()
			a.StatusErr = true
		} else {
			a.Logger.Info("opened url", zap.String("url", msg.URL))
			a.Status = "Opened " + msg.URL
			a.StatusErr = false
		}
		return a, nil
	case ShowAboutMsg:
		a.Overlay = NewAboutView(a.Page)
		a.setMode(ModeAbout)
		return a, nil
	case DismissOverlayMsg:
		a.Overlay = nil
		a.setMode(ModeLanding)
		return a, nil
	case toggleHelpMsg:
		a.Help.ShowAll = !a.Help.ShowAll
		a.Landing.SetSize(a.width, a.landingHeight())
		return a, nil
	case tea.KeyMsg:
		if consumed, keyCmd := a.KeyHandler.Handle(msg); consumed {
			return a, keyCmd
		}
		if a.Overlay != nil {
			v, cmd := a.Overlay.Update(msg)
			a.Overlay = v
			return a, cmd
		}
	}

	v, cmd := a.Landing.Update(msg)
	if l, ok := v.(*LandingView); ok {
		a.Landing = l
	}
	return a, cmd
}

func (a *AppModel) setMode(m AppMode) {
	a.Mode = m
	a.KeyHandler.Mode = m
}

// activate runs the activation callback for id synchronously, then returns a
// command that opens whatever URL the callback navigated to.
func (a *AppModel) activate(id string) tea.Cmd {
	if b, ok := a.Page.Button(id); ok {
		b.Activate()
	} else if l, ok := a.Page.Link(id); ok {
		a.Recorder.Navigate(l.URL)
	} else {
		a.Logger.Warn("activate unknown element", zap.String("id", id))
		return nil
	}
	// A hotkey moves focus to what it activated.
	if a.Landing.Focus.SetFocus(id) {
		a.Landing.refresh()
	}

	url, ok := a.Recorder.Take()
	if !ok {
		return nil
	}
	a.Logger.Info("activated", zap.String("id", id), zap.String("url", url))
	a.Status = "Opening " + url + "…"
	a.StatusErr = false
	return openURL(a.Opener, url)
}

// openURL launches url in a command goroutine and reports back with OpenedMsg.
func openURL(opener browser.Opener, url string) tea.Cmd {
	return func() tea.Msg {
		if opener == nil {
			return OpenedMsg{URL: url, Err: browser.ErrUnsupportedURL}
		}
		ctx, cancel := context.WithTimeout(context.Background(), openTimeout)
		defer cancel()
		return OpenedMsg{URL: url, Err: opener.Open(ctx, url)}
	}
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	var base string
	if a.Overlay != nil {
		base = lipgloss.PlaceHorizontal(a.viewWidth(), lipgloss.Center, a.Overlay.View())
	} else {
		base = a.Landing.View()
	}
	return base + "\n" + a.footerView()
}

func (a *AppModel) footerView() string {
	var lines []string
	if a.Status != "" {
		style := Styles.Status
		if a.StatusErr {
			style = Styles.Error
		}
		lines = append(lines, style.Render(a.Status))
	}
	if box := RenderKeybindHelp(a.KeyHandler); box != "" {
		lines = append(lines, box)
	} else {
		lines = append(lines, a.Help.View(NewKeyMap(a.KeyHandler)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// landingHeight leaves room for the status line and help bar.
func (a *AppModel) landingHeight() int {
	reserved := 2
	if a.Help.ShowAll {
		reserved += len(NewKeyMap(a.KeyHandler).ShortHelp())
	}
	h := a.height - reserved
	if h < 1 {
		h = 1
	}
	return h
}

func (a *AppModel) viewWidth() int {
	if a.width > 0 {
		return a.width
	}
	return defaultLandingWidth
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (a *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: a}
}
