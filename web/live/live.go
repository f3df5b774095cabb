// Package live keeps a navbar state per browser tab on the server. The page
// script forwards scroll and click events over a websocket and swaps in the
// navbar markup it gets back.
package live

import (
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sebicas/site/internal/navbar"
	"github.com/sebicas/site/pkg/content"
	"github.com/sebicas/site/web/views/components"
	"go.uber.org/zap"
)

const (
	EventScroll = "scroll"
	EventToggle = "toggle"
	EventSelect = "select"
)

var ErrUnknownEvent = errors.New("unknown event")

type Event struct {
	Type   string `json:"type"`
	Offset int    `json:"offset,omitempty"`
	Href   string `json:"href,omitempty"`
}

type Update struct {
	Session      string `json:"session"`
	Scrolled     bool   `json:"scrolled"`
	MenuOpen     bool   `json:"menuOpen"`
	Presentation string `json:"presentation"`
	HTML         string `json:"html"`
}

// Session owns one navbar. It is driven by a single reader goroutine.
type Session struct {
	ID     string
	state  *navbar.State
	scroll *navbar.Events
	last   *navbar.Snapshot
}

func NewSession() *Session {
	s := &Session{
		ID:     uuid.NewString(),
		state:  navbar.New(),
		scroll: navbar.NewEvents(),
	}
	s.state.Mount(s.scroll)
	return s
}

func (s *Session) Close() {
	s.state.Unmount()
}

func (s *Session) Listeners() int {
	return s.scroll.Len()
}

func (s *Session) Snapshot() navbar.Snapshot {
	return s.state.Snapshot()
}

// Apply feeds one event into the navbar state.
func (s *Session) Apply(ev Event) error {
	switch ev.Type {
	case EventScroll:
		s.scroll.Emit(ev.Offset)
	case EventToggle:
		s.state.Toggle()
	case EventSelect:
		item, ok := findItem(ev.Href)
		if !ok {
			return ErrUnknownEvent
		}
		s.state.Select(item)
	default:
		return ErrUnknownEvent
	}
	return nil
}

// Update returns the rendered navbar when the state differs from the last
// update handed out, and false otherwise.
func (s *Session) Update() (Update, bool, error) {
	snap := s.state.Snapshot()
	if s.last != nil && *s.last == snap {
		return Update{}, false, nil
	}

	var b strings.Builder
	if err := components.Navbar(snap).Render(&b); err != nil {
		return Update{}, false, err
	}
	s.last = &snap

	return Update{
		Session:      s.ID,
		Scrolled:     snap.Scrolled,
		MenuOpen:     snap.MenuOpen,
		Presentation: snap.Presentation().String(),
		HTML:         b.String(),
	}, true, nil
}

// findItem accepts both the bare anchor and the dropdown's "/#anchor" form.
func findItem(href string) (content.NavItem, bool) {
	for _, item := range content.NavItems() {
		if item.Href == href || components.MenuHref(item) == href {
			return item, true
		}
	}
	return content.NavItem{}, false
}

type Hub struct {
	log      *zap.Logger
	upgrader websocket.Upgrader

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewHub(log *zap.Logger) *Hub {
	return &Hub{
		log:      log,
		upgrader: websocket.Upgrader{ReadBufferSize: 1024, WriteBufferSize: 4096},
		sessions: make(map[string]*Session),
	}
}

func (h *Hub) Active() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.sessions)
}

func (h *Hub) add(s *Session) {
	h.mu.Lock()
	h.sessions[s.ID] = s
	h.mu.Unlock()
}

func (h *Hub) remove(s *Session) {
	h.mu.Lock()
	delete(h.sessions, s.ID)
	h.mu.Unlock()
	s.Close()
}
