package server

import (
	"fmt"
	"net/http"

	"github.com/gorilla/websocket"
)

// wsHandler subscribes a websocket to a game. The current state is sent at
// once and again after every change. Clients may send {"move": "..."} to
// play; a rejected move is answered with {"error": "..."} to that client only.
func (s *Server) wsHandler(w http.ResponseWriter, r *http.Request) {
	sess := s.requestSession(w, r)
	if sess == nil {
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the error response.
		return
	}
	if s.cfg.Verbosity > 1 {
		fmt.Fprintf(s.cfg.LogFile, "game %s: websocket from %s\n", sess.id, conn.RemoteAddr())
	}

	sess.mu.Lock()
	sess.clients[conn] = struct{}{}
	err = conn.WriteJSON(sess.state())
	sess.mu.Unlock()
	if err != nil {
		s.dropClient(sess, conn)
		return
	}

	go s.readLoop(sess, conn)
}

func (s *Server) readLoop(sess *session, conn *websocket.Conn) {
	defer s.dropClient(sess, conn)

	for {
		var req moveRequest
		if err := conn.ReadJSON(&req); err != nil {
			return
		}
		if _, err := sess.move(req.Move); err != nil {
			sess.mu.Lock()
			werr := conn.WriteJSON(errorResponse{Error: err.Error()})
			sess.mu.Unlock()
			if werr != nil {
				return
			}
		}
	}
}

func (s *Server) dropClient(sess *session, conn *websocket.Conn) {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	delete(sess.clients, conn)
	conn.Close()
}
