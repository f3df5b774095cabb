// Package navbar holds the two pieces of navigation UI state: whether the
// page is scrolled past the threshold and whether the mobile menu is open.
package navbar

import (
	"github.com/sebicas/site/pkg/content"
)

type Presentation int

const (
	Top Presentation = iota
	Scrolled
)

func (p Presentation) String() string {
	if p == Scrolled {
		return "scrolled"
	}
	return "top"
}

// Snapshot is a copy of the navbar state taken for rendering.
type Snapshot struct {
	Scrolled bool `json:"scrolled"`
	MenuOpen bool `json:"menuOpen"`
}

func (s Snapshot) Presentation() Presentation {
	if s.Scrolled {
		return Scrolled
	}
	return Top
}

// ScrollSource delivers vertical scroll offsets. Subscribe returns the
// function that removes the listener again.
type ScrollSource interface {
	Subscribe(fn func(offset int)) (unsubscribe func())
}

// State is owned by a single navbar instance. It is not safe for concurrent
// use; events are expected to arrive one at a time.
type State struct {
	scrolled bool
	menuOpen bool

	unsubscribe func()
}

func New() *State {
	return &State{}
}

func (s *State) Scroll(offset int) {
	s.scrolled = offset > content.ScrollThreshold
}

func (s *State) Toggle() {
	s.menuOpen = !s.menuOpen
}

// Select handles a click on a nav item. Any item closes the menu.
func (s *State) Select(_ content.NavItem) {
	s.menuOpen = false
}

func (s *State) Scrolled() bool { return s.scrolled }
func (s *State) MenuOpen() bool { return s.menuOpen }

func (s *State) Presentation() Presentation {
	return s.Snapshot().Presentation()
}

func (s *State) Snapshot() Snapshot {
	return Snapshot{Scrolled: s.scrolled, MenuOpen: s.menuOpen}
}

// Mount starts listening to src. Mounting an already mounted state drops the
// previous subscription first.
func (s *State) Mount(src ScrollSource) {
	s.Unmount()
	s.unsubscribe = src.Subscribe(s.Scroll)
}

func (s *State) Unmount() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}
