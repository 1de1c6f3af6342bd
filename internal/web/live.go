package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/justestif/silent-signal/internal/state"
)

const (
	liveIdleTimeout  = 10 * time.Minute
	liveWriteTimeout = 10 * time.Second
	liveMaxMessage   = 4096
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// liveError is sent when an event cannot be applied.
type liveError struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}

// Live runs one state controller per websocket connection (GET /ws).
//
// The initial state comes from the query string. Each received event is
// applied in order and answered with a full snapshot, or with an error
// message that leaves the state unchanged.
func (h *Handlers) Live(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written an HTTP error
		h.logger.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	conn.SetReadLimit(liveMaxMessage)

	s := state.FromQuery(r.URL.Query())
	if err := h.sendState(conn, s); err != nil {
		h.logger.Warn("sending initial state", "error", err)
		return
	}

	for {
		_ = conn.SetReadDeadline(time.Now().Add(liveIdleTimeout))
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warn("live connection closed", "error", err)
			}
			return
		}

		next, err := decodeAndApply(s, msg)
		if err != nil {
			h.logger.Debug("rejected live event", "error", err)
			if err := h.write(conn, liveError{Type: "error", Error: err.Error()}); err != nil {
				return
			}
			continue
		}

		s = next
		if err := h.sendState(conn, s); err != nil {
			h.logger.Warn("sending state", "error", err)
			return
		}
	}
}

// decodeAndApply parses one event message and applies it to s.
func decodeAndApply(s state.State, msg []byte) (state.State, error) {
	var e state.Event
	if err := json.Unmarshal(msg, &e); err != nil {
		return s, fmt.Errorf("decoding event: %w", err)
	}
	return state.Apply(s, e)
}

// sendState writes the snapshot for s, including rendered fragments.
func (h *Handlers) sendState(conn *websocket.Conn, s state.State) error {
	snap := h.newSnapshot(s)
	if err := h.renderFragments(&snap, s); err != nil {
		return err
	}
	return h.write(conn, snap)
}

func (h *Handlers) write(conn *websocket.Conn, v any) error {
	_ = conn.SetWriteDeadline(time.Now().Add(liveWriteTimeout))
	return conn.WriteJSON(v)
}
