package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"rical/internal/page"
	"rical/internal/ui/textutil"
)

const (
	defaultLandingWidth  = 80
	defaultLandingHeight = 24
	// contentWidth caps the text column so long copy stays readable on wide terminals.
	contentWidth = 64
	// minFeatureBody is the narrowest body column before features stack.
	minFeatureBody = 16
	plannedMarker  = " (planned)"
)

// ActivateMsg asks the app to activate the button or link with ID.
type ActivateMsg struct {
	ID string
}

// LandingView renders the page: banner, call to action, features and footer.
// Tab cycles focus between the button and footer links; enter activates.
type LandingView struct {
	Page     *page.Page
	Focus    *FocusRing
	viewport viewport.Model
	width    int
	height   int
}

// Ensure LandingView implements View.
var _ View = (*LandingView)(nil)

// NewLandingView creates the landing view for p.
func NewLandingView(p *page.Page) *LandingView {
	order := make([]string, 0, len(p.Footer.Links)+1)
	for _, b := range p.Buttons() {
		order = append(order, b.ID)
	}
	for _, l := range p.Footer.Links {
		order = append(order, l.ID)
	}

	vp := viewport.New(defaultLandingWidth, defaultLandingHeight)
	// Only arrows, j/k and page keys scroll; letters are left for hotkeys and space is the leader.
	vp.KeyMap = viewport.KeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k")),
		Down:     key.NewBinding(key.WithKeys("down", "j")),
		PageUp:   key.NewBinding(key.WithKeys("pgup")),
		PageDown: key.NewBinding(key.WithKeys("pgdown")),
	}

	v := &LandingView{
		Page:     p,
		Focus:    NewFocusRing(order),
		viewport: vp,
		width:    defaultLandingWidth,
		height:   defaultLandingHeight,
	}
	v.refresh()
	return v
}

// Init implements View.
func (v *LandingView) Init() tea.Cmd {
	return nil
}

// SetSize sets the area available to the page.
func (v *LandingView) SetSize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	v.width = width
	v.height = height
	v.viewport.Width = width
	v.viewport.Height = height
	v.refresh()
}

// Update implements View.
func (v *LandingView) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "tab":
			v.Focus.Next()
			v.refresh()
			return v, nil
		case "shift+tab":
			v.Focus.Prev()
			v.refresh()
			return v, nil
		case "enter":
			if id := v.Focus.Current; id != "" {
				return v, func() tea.Msg { return ActivateMsg{ID: id} }
			}
			return v, nil
		}
	}
	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

// View implements View.
func (v *LandingView) View() string {
	return v.viewport.View()
}

// Content returns the full page, unclipped by the viewport.
func (v *LandingView) Content() string {
	return v.render()
}

// refresh re-renders into the viewport, keeping the scroll offset.
func (v *LandingView) refresh() {
	v.viewport.SetContent(v.render())
}

// columnWidth is the text column for the current size. It never drops below
// the widest banner word so the title and tagline are not cut.
func (v *LandingView) columnWidth() int {
	w := v.width - 4
	if w > contentWidth {
		w = contentWidth
	}
	if w < 20 {
		w = 20
	}
	banner := strings.Fields(v.Page.Banner.Title + " " + v.Page.Banner.Tagline)
	if widest := textutil.MaxWidth(banner); widest > w {
		w = widest
	}
	return w
}

func (v *LandingView) render() string {
	p := v.Page
	w := v.columnWidth()
	var blocks []string

	// Banner
	banner := Styles.Title.Render(p.Banner.Title) + "\n" +
		Styles.Tagline.Render(wrap(p.Banner.Tagline, w))
	blocks = append(blocks, banner)

	// Call to action
	cta := Styles.Section.Render(p.CallToAction.Heading)
	if p.CallToAction.Body != "" {
		cta += "\n" + Styles.Muted.Render(wrap(p.CallToAction.Body, w))
	}
	for _, b := range p.Buttons() {
		cta += "\n" + RenderButton(b, v.Focus.IsFocused(b.ID))
	}
	blocks = append(blocks, cta)

	// Features
	if len(p.Features.Items) > 0 {
		blocks = append(blocks, v.renderFeatures(w))
	}

	// Footer
	footer := []string{Styles.Muted.Render(p.Footer.Copyright)}
	for _, l := range p.Footer.Links {
		footer = append(footer, RenderLink(l, v.Focus.IsFocused(l.ID), w))
	}
	blocks = append(blocks, strings.Join(footer, "\n"))

	column := lipgloss.NewStyle().Width(w).Render(strings.Join(blocks, "\n\n"))
	return lipgloss.PlaceHorizontal(v.width, lipgloss.Center, column)
}

// renderFeatures lays features out as a title column and a body column, or
// stacks title over body when the column is too narrow. The planned marker is
// never truncated.
func (v *LandingView) renderFeatures(w int) string {
	items := v.Page.Features.Items
	labels := make([]string, len(items))
	for i, f := range items {
		labels[i] = f.Title
		if f.Planned {
			labels[i] += plannedMarker
		}
	}

	lines := []string{Styles.Section.Render(v.Page.Features.Heading)}
	titleWidth := textutil.MaxWidth(labels)
	bodyWidth := w - titleWidth - 4
	stacked := bodyWidth < minFeatureBody

	for i, f := range items {
		style := Styles.Normal
		if f.Planned {
			style = Styles.Planned
		}
		if stacked {
			lines = append(lines, "• "+style.Render(featureLabel(f, w-2)))
			for _, more := range wrapLines(f.Body, w-2) {
				lines = append(lines, "  "+Styles.Muted.Render(more))
			}
			continue
		}
		body := wrapLines(f.Body, bodyWidth)
		if len(body) == 0 {
			body = []string{""}
		}
		indent := strings.Repeat(" ", titleWidth+4)
		lines = append(lines, fmt.Sprintf("• %s  %s",
			style.Render(textutil.PadRightVisual(labels[i], titleWidth)),
			Styles.Muted.Render(body[0])))
		for _, more := range body[1:] {
			lines = append(lines, indent+Styles.Muted.Render(more))
		}
	}
	return strings.Join(lines, "\n")
}

// featureLabel fits f's title into width, keeping the planned marker whole.
func featureLabel(f page.Feature, width int) string {
	if !f.Planned {
		return textutil.Truncate(f.Title, width)
	}
	room := width - textutil.VisualWidth(plannedMarker)
	if room < 1 {
		room = 1
	}
	return textutil.Truncate(f.Title, room) + plannedMarker
}

func wrap(s string, width int) string {
	return ansi.Wrap(s, width, "")
}

func wrapLines(s string, width int) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return strings.Split(wrap(s, width), "\n")
}

func visualWidth(s string) int {
	return textutil.VisualWidthStyled(s)
}

func truncateURL(url string, width int) string {
	if width < 8 {
		width = 8
	}
	return textutil.Truncate(url, width)
}
