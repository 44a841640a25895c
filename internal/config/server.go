package config

import (
	"fmt"
	"net"
	"time"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// ServerConfig holds settings for the HTTP game service.
type ServerConfig struct {
	// ListenAddr is the host:port to serve on ("" = do not serve)
	ListenAddr string

	// MaxGames bounds the number of live games (0 = unlimited)
	MaxGames int

	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// NewServerConfig creates a ServerConfig with default values.
func NewServerConfig() *ServerConfig {
	return &ServerConfig{
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}
}

// Validate checks that the server configuration is valid.
func (s *ServerConfig) Validate() error {
	if s.ListenAddr != "" {
		if _, _, err := net.SplitHostPort(s.ListenAddr); err != nil {
			return fmt.Errorf("listen address %q: %v: %w", s.ListenAddr, err, errors.ErrInvalidConfig)
		}
	}
	if s.MaxGames < 0 {
		return fmt.Errorf("max games (%d) is negative: %w", s.MaxGames, errors.ErrInvalidConfig)
	}
	return nil
}
