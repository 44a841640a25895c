// Package server exposes games over HTTP, with a websocket stream of state
// changes per game.
package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/lgbarn/chessrules-go/internal/config"
)

// Server routes game requests. Each game is guarded by its own mutex; the
// game table has a separate lock.
type Server struct {
	cfg      *config.Config
	router   *mux.Router
	handler  http.Handler
	upgrader websocket.Upgrader

	gamesLock sync.RWMutex
	games     map[string]*session
	nextID    uint64
}

// printLogger adapts an io.Writer to handlers.RecoveryHandlerLogger.
type printLogger struct {
	w io.Writer
}

func (l printLogger) Println(v ...interface{}) {
	fmt.Fprintln(l.w, v...)
}

// New creates a server for cfg. Access logs go to cfg.LogFile when
// cfg.Verbosity > 0.
func New(cfg *config.Config) *Server {
	s := &Server{
		cfg:    cfg,
		router: mux.NewRouter(),
		games:  make(map[string]*session),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}

	if cfg.Verbosity > 0 {
		s.router.Use(func(next http.Handler) http.Handler {
			return handlers.LoggingHandler(cfg.LogFile, next)
		})
	}
	s.router.NotFoundHandler = http.HandlerFunc(notFoundHandler)

	s.router.HandleFunc("/games", s.createGame).Methods(http.MethodPost)
	s.router.HandleFunc("/games/{id}", s.getGame).Methods(http.MethodGet)
	s.router.HandleFunc("/games/{id}", s.deleteGame).Methods(http.MethodDelete)
	s.router.HandleFunc("/games/{id}/moves", s.listMoves).Methods(http.MethodGet)
	s.router.HandleFunc("/games/{id}/moves", s.makeMove).Methods(http.MethodPost)
	s.router.HandleFunc("/games/{id}/moves/last", s.undoMove).Methods(http.MethodDelete)
	s.router.HandleFunc("/games/{id}/ws", s.wsHandler).Methods(http.MethodGet)

	s.handler = handlers.RecoveryHandler(
		handlers.RecoveryLogger(printLogger{cfg.LogFile}),
		handlers.PrintRecoveryStack(cfg.Verbosity > 1),
	)(requireJSONBody(s.router))
	return s
}

// requireJSONBody rejects request bodies that are not JSON with 415.
// Requests without a body, such as a bare POST /games, pass through.
func requireJSONBody(next http.Handler) http.Handler {
	typed := handlers.ContentTypeHandler(next, "application/json")
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.ContentLength == 0 {
			next.ServeHTTP(w, r)
			return
		}
		typed.ServeHTTP(w, r)
	})
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// Run serves on cfg.Server.ListenAddr until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Server.ListenAddr,
		Handler:      s,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()

	if s.cfg.Verbosity > 0 {
		fmt.Fprintf(s.cfg.LogFile, "Serving on %s\n", s.cfg.Server.ListenAddr)
	}

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		s.closeAll()
		return srv.Shutdown(context.Background())
	}
}

func notFoundHandler(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "not found")
}
