package server

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/lgbarn/chessrules-go"
	"github.com/lgbarn/chessrules-go/internal/analysis"
	"github.com/lgbarn/chessrules-go/internal/output"
)

type createRequest struct {
	FEN string `json:"fen"`
}

type moveRequest struct {
	Move string `json:"move"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // client went away
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// moveStatus maps a move error to an HTTP status: 409 for a move the rules
// forbid, 400 for text that names no single legal move.
func moveStatus(err error) int {
	switch {
	case stderrors.Is(err, chessrules.ErrIllegalMove):
		return http.StatusConflict
	case stderrors.Is(err, chessrules.ErrUnparsableNotation):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// requestSession resolves the {id} route variable, writing a 404 when unknown.
func (s *Server) requestSession(w http.ResponseWriter, r *http.Request) *session {
	sess := s.lookup(mux.Vars(r)["id"])
	if sess == nil {
		writeError(w, http.StatusNotFound, "no such game")
	}
	return sess
}

func (s *Server) createGame(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	game := chessrules.New()
	if req.FEN != "" {
		var err error
		if game, err = chessrules.FromFEN(req.FEN); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	sess := s.addGame(game)
	if sess == nil {
		writeError(w, http.StatusServiceUnavailable, "game limit reached")
		return
	}

	sess.mu.Lock()
	st := sess.state()
	sess.mu.Unlock()
	w.Header().Set("Location", "/games/"+sess.id)
	writeJSON(w, http.StatusCreated, st)
}

func (s *Server) getGame(w http.ResponseWriter, r *http.Request) {
	sess := s.requestSession(w, r)
	if sess == nil {
		return
	}
	sess.mu.Lock()
	st := sess.state()
	sess.mu.Unlock()
	writeJSON(w, http.StatusOK, st)
}

func (s *Server) deleteGame(w http.ResponseWriter, r *http.Request) {
	sess := s.removeGame(mux.Vars(r)["id"])
	if sess == nil {
		writeError(w, http.StatusNotFound, "no such game")
		return
	}
	sess.closeClients()
	w.WriteHeader(http.StatusNoContent)
}

// listMoves answers with the position report: legal moves in both
// notations plus the status flags.
func (s *Server) listMoves(w http.ResponseWriter, r *http.Request) {
	sess := s.requestSession(w, r)
	if sess == nil {
		return
	}
	sess.mu.Lock()
	pos := sess.game.Position()
	sess.mu.Unlock()

	writeJSON(w, http.StatusOK, output.ReportToJSON(analysis.Analyze(&pos), s.cfg.Output.ShowSAN))
}

func (s *Server) makeMove(w http.ResponseWriter, r *http.Request) {
	sess := s.requestSession(w, r)
	if sess == nil {
		return
	}

	var req moveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	st, err := sess.move(req.Move)
	if err != nil {
		writeError(w, moveStatus(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (s *Server) undoMove(w http.ResponseWriter, r *http.Request) {
	sess := s.requestSession(w, r)
	if sess == nil {
		return
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if _, ok := sess.game.Undo(); !ok {
		writeError(w, http.StatusConflict, "no move to take back")
		return
	}
	sess.broadcast()
	writeJSON(w, http.StatusOK, sess.state())
}

// move plays notation and pushes the new state to subscribers.
func (sess *session) move(notation string) (*GameState, error) {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if err := sess.game.MoveTo(notation); err != nil {
		return nil, err
	}
	sess.broadcast()
	return sess.state(), nil
}
