package page

import "fmt"

// Version is the release shown on the about screen. Overridden at link time.
var Version = "0.1.0"

// Banner is the top of the page.
type Banner struct {
	Title   string
	Tagline string
}

// CallToActionSection is the rendered "Get started" block.
type CallToActionSection struct {
	Heading string
	Body    string
	Button  Button
}

// Page is the composed, render-ready landing page for one render pass.
type Page struct {
	Banner       Banner
	CallToAction CallToActionSection
	Features     Features
	Footer       Footer
	About        About
	RepoURL      string
	Version      string
}

// New validates c and binds its button to nav.
func New(c Content, nav Navigator) (*Page, error) {
	if nav == nil {
		return nil, fmt.Errorf("page: nil navigator")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	spec := c.CallToAction.Button
	target := c.ButtonTarget()
	btn, err := NewButton(spec.ID, spec.Label, spec.Hotkey, func() {
		nav.Navigate(target)
	})
	if err != nil {
		return nil, err
	}

	return &Page{
		Banner: Banner{Title: c.Title, Tagline: c.Tagline},
		CallToAction: CallToActionSection{
			Heading: c.CallToAction.Heading,
			Body:    c.CallToAction.Body,
			Button:  btn,
		},
		Features: c.Features,
		Footer:   c.Footer,
		About:    c.About,
		RepoURL:  c.RepoURL,
		Version:  Version,
	}, nil
}

// Buttons returns every button on the page, in document order.
func (p *Page) Buttons() []Button {
	return []Button{p.CallToAction.Button}
}

// Button looks up a button by ID.
func (p *Page) Button(id string) (Button, bool) {
	for _, b := range p.Buttons() {
		if b.ID == id {
			return b, true
		}
	}
	return Button{}, false
}

// Link looks up a footer link by ID.
func (p *Page) Link(id string) (Link, bool) {
	for _, l := range p.Footer.Links {
		if l.ID == id {
			return l, true
		}
	}
	return Link{}, false
}
