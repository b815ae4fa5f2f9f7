package fakebackend

import (
	"errors"
	"net/http"
	"strings"
	"sync"

	"github.com/camaradigital/camara-cli/internal/domain"
	"golang.org/x/net/websocket"
)

type clientFrame struct {
	Type  string `json:"type"`
	Group string `json:"group"`
}

type eventPayload struct {
	SessionID string `json:"sessaoId"`
	ProjectID string `json:"projetoId,omitempty"`
}

type serverFrame struct {
	Type    string       `json:"type"`
	Event   string       `json:"event"`
	Payload eventPayload `json:"payload"`
}

type hub struct {
	mu     sync.Mutex
	groups map[string]map[*websocket.Conn]struct{}
	conns  map[*websocket.Conn]struct{}
	joins  int
}

func newHub() *hub {
	return &hub{
		groups: map[string]map[*websocket.Conn]struct{}{},
		conns:  map[*websocket.Conn]struct{}{},
	}
}

func (h *hub) server(authorize func(token string) (domain.User, bool)) http.Handler {
	return websocket.Server{
		Handshake: func(_ *websocket.Config, r *http.Request) error {
			token := r.URL.Query().Get("access_token")
			if token == "" {
				token = strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
			}
			if _, ok := authorize(token); !ok {
				return errors.New("invalid access token")
			}
			return nil
		},
		Handler: h.serve,
	}
}

func (h *hub) serve(conn *websocket.Conn) {
	h.mu.Lock()
	h.conns[conn] = struct{}{}
	h.mu.Unlock()
	defer h.remove(conn)

	for {
		var frame clientFrame
		if err := websocket.JSON.Receive(conn, &frame); err != nil {
			return
		}
		switch frame.Type {
		case "join":
			h.join(conn, frame.Group)
		case "leave":
			h.leave(conn, frame.Group)
		}
	}
}

func (h *hub) join(conn *websocket.Conn, group string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	members, ok := h.groups[group]
	if !ok {
		members = map[*websocket.Conn]struct{}{}
		h.groups[group] = members
	}
	members[conn] = struct{}{}
	h.joins++
}

func (h *hub) leave(conn *websocket.Conn, group string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.groups[group], conn)
}

func (h *hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns, conn)
	for _, members := range h.groups {
		delete(members, conn)
	}
	_ = conn.Close()
}

func (h *hub) publish(group string, event domain.EventType, projectID string) {
	frame := serverFrame{
		Type:    "event",
		Event:   string(event),
		Payload: eventPayload{SessionID: group, ProjectID: projectID},
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.groups[group] {
		_ = websocket.JSON.Send(conn, frame)
	}
}

func (h *hub) dropAll() {
	h.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(h.conns))
	for conn := range h.conns {
		conns = append(conns, conn)
	}
	h.mu.Unlock()

	for _, conn := range conns {
		_ = conn.Close()
	}
}

func (h *hub) joinCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.joins
}
