package ui

// AppMode is the top-level screen.
type AppMode int

const (
	ModeLanding AppMode = iota
	ModeAbout
)

func (m AppMode) String() string {
	switch m {
	case ModeLanding:
		return "Landing"
	case ModeAbout:
		return "About"
	default:
		return "Unknown"
	}
}
