package live

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	readLimit = 1024
	idleLimit = 10 * time.Minute
)

// Handler upgrades the request and serves one session until the tab goes away.
func (h *Hub) Handler(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Debug("live upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	s := NewSession()
	h.add(s)
	defer h.remove(s)

	log := h.log.With(zap.String("session", s.ID))
	log.Debug("live session opened")

	if err := h.push(conn, s); err != nil {
		log.Debug("live write failed", zap.Error(err))
		return
	}

	conn.SetReadLimit(readLimit)

	for {
		ev, err := readEvent(conn)
		if err != nil {
			var closeErr *websocket.CloseError
			if !errors.As(err, &closeErr) || websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Debug("live read failed", zap.Error(err))
			}
			break
		}

		if err := s.Apply(ev); err != nil {
			if errors.Is(err, ErrUnknownEvent) {
				log.Debug("ignoring event", zap.String("type", ev.Type), zap.String("href", ev.Href))
				continue
			}
			log.Warn("apply event", zap.Error(err))
			continue
		}

		if err := h.push(conn, s); err != nil {
			log.Debug("live write failed", zap.Error(err))
			break
		}
	}

	log.Debug("live session closed")
}

// readEvent waits up to idleLimit for the next event. Any error ends the
// session.
func readEvent(conn *websocket.Conn) (Event, error) {
	if err := conn.SetReadDeadline(time.Now().Add(idleLimit)); err != nil {
		return Event{}, fmt.Errorf("set read deadline: %w", err)
	}

	var ev Event
	if err := conn.ReadJSON(&ev); err != nil {
		return Event{}, err
	}
	return ev, nil
}

func (h *Hub) push(conn *websocket.Conn, s *Session) error {
	update, changed, err := s.Update()
	if err != nil || !changed {
		return err
	}
	return conn.WriteJSON(update)
}
