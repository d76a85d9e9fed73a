package page

import "sync"

// Navigator performs a navigation requested by an activated element.
type Navigator interface {
	Navigate(url string)
}

// NavigatorFunc adapts a plain function to Navigator.
type NavigatorFunc func(url string)

// Navigate implements Navigator.
func (f NavigatorFunc) Navigate(url string) { f(url) }

// Recorder is a Navigator that remembers the most recent navigation so the
// caller can carry it out (redirect, open a browser) after activation returns.
type Recorder struct {
	mu  sync.Mutex
	url string
	set bool
}

// Navigate implements Navigator.
func (r *Recorder) Navigate(url string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.url = url
	r.set = true
}

// Take returns the recorded URL and clears it.
// ok is false if nothing was navigated to since the last Take.
func (r *Recorder) Take() (url string, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	url, ok = r.url, r.set
	r.url, r.set = "", false
	return url, ok
}
