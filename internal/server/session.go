package server

import (
	"strconv"
	"strings"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/lgbarn/chessrules-go"
)

// session is one live game and its websocket subscribers. mu serialises
// moves and websocket writes.
type session struct {
	id      string
	mu      sync.Mutex
	game    *chessrules.Game
	clients map[*websocket.Conn]struct{}
}

// GameState is the JSON view of a game.
type GameState struct {
	ID        string   `json:"id"`
	FEN       string   `json:"fen"`
	ToMove    string   `json:"toMove"`
	Ply       int      `json:"ply"`
	History   []string `json:"history"` // SAN
	Check     bool     `json:"check"`
	Checkmate bool     `json:"checkmate"`
	Stalemate bool     `json:"stalemate"`
	Draw      bool     `json:"draw"`
	Result    string   `json:"result"`
	Method    string   `json:"method,omitempty"`
}

// state snapshots the game. Callers hold s.mu.
func (s *session) state() *GameState {
	g := s.game
	outcome := g.Outcome()
	st := &GameState{
		ID:        s.id,
		FEN:       g.FEN(),
		ToMove:    toMoveName(g.ToMove()),
		Ply:       g.Ply(),
		History:   make([]string, 0, g.Ply()),
		Check:     g.IsCheck(),
		Checkmate: outcome.Method == chessrules.Checkmate,
		Stalemate: outcome.Method == chessrules.Stalemate,
		Draw:      outcome.Result == chessrules.Draw,
		Result:    string(outcome.Result),
	}
	if outcome.Method != chessrules.NoMethod {
		st.Method = outcome.Method.String()
	}
	for _, e := range g.Entries() {
		st.History = append(st.History, e.SAN)
	}
	return st
}

// broadcast pushes the current state to every subscriber, dropping those
// whose connection fails. Callers hold s.mu.
func (s *session) broadcast() {
	st := s.state()
	for conn := range s.clients {
		if err := conn.WriteJSON(st); err != nil {
			conn.Close()
			delete(s.clients, conn)
		}
	}
}

func (s *session) closeClients() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for conn := range s.clients {
		conn.Close()
		delete(s.clients, conn)
	}
}

func toMoveName(c chessrules.Colour) string {
	return strings.ToLower(c.String())
}

// addGame stores a new session. It returns nil when the game limit is reached.
func (s *Server) addGame(game *chessrules.Game) *session {
	s.gamesLock.Lock()
	defer s.gamesLock.Unlock()

	if limit := s.cfg.Server.MaxGames; limit > 0 && len(s.games) >= limit {
		return nil
	}
	s.nextID++
	sess := &session{
		id:      strconv.FormatUint(s.nextID, 10),
		game:    game,
		clients: make(map[*websocket.Conn]struct{}),
	}
	s.games[sess.id] = sess
	return sess
}

func (s *Server) lookup(id string) *session {
	s.gamesLock.RLock()
	defer s.gamesLock.RUnlock()
	return s.games[id]
}

func (s *Server) removeGame(id string) *session {
	s.gamesLock.Lock()
	defer s.gamesLock.Unlock()
	sess := s.games[id]
	delete(s.games, id)
	return sess
}

func (s *Server) closeAll() {
	s.gamesLock.RLock()
	sessions := make([]*session, 0, len(s.games))
	for _, sess := range s.games {
		sessions = append(sessions, sess)
	}
	s.gamesLock.RUnlock()

	for _, sess := range sessions {
		sess.closeClients()
	}
}
