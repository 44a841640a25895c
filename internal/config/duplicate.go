package config

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// DuplicateConfig holds settings for duplicate position detection.
type DuplicateConfig struct {
	// Suppress skips positions whose signature was already analyzed
	Suppress bool

	// MaxCapacity bounds the number of stored signatures (0 = unlimited)
	MaxCapacity int
}

// NewDuplicateConfig creates a DuplicateConfig with default values.
func NewDuplicateConfig() *DuplicateConfig {
	return &DuplicateConfig{}
}

// Validate checks that the duplicate configuration is valid.
func (d *DuplicateConfig) Validate() error {
	if d.MaxCapacity < 0 {
		return fmt.Errorf("duplicate capacity (%d) is negative: %w", d.MaxCapacity, errors.ErrInvalidConfig)
	}
	return nil
}
