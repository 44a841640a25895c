// Package errors provides sentinel errors and error types for the chess rules engine.
// It defines the failure conditions surfaced to callers and structured error types
// that preserve context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrMalformedFEN indicates text that violates the FEN grammar.
	ErrMalformedFEN = errors.New("malformed FEN")

	// ErrIllegalMove indicates a move that is not in the current legal move set.
	ErrIllegalMove = errors.New("illegal move")

	// ErrUnparsableNotation indicates move text that does not resolve to
	// exactly one legal move.
	ErrUnparsableNotation = errors.New("unparsable notation")

	// ErrGameOver indicates a move offered after the game has ended.
	// It is always reported together with ErrIllegalMove.
	ErrGameOver = errors.New("game is over")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// FENError names the FEN field that failed to parse.
type FENError struct {
	Err   error  // The underlying error, normally ErrMalformedFEN
	Field string // Field name, e.g. "piece placement" or "castling"
	Got   string // The offending text (if applicable)
}

// Error returns a formatted error message naming the field.
func (e *FENError) Error() string {
	var parts []string

	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %q", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%v: %s", e.Err, strings.Join(parts, ": "))
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "FEN error"
}

// Unwrap returns the underlying error.
func (e *FENError) Unwrap() error {
	return e.Err
}

// MoveError wraps move failures with game context: the ply, the move text
// and the position it was offered in.
type MoveError struct {
	Err      error  // The underlying error
	Ply      int    // 1-based ply the move would have been (0 if not applicable)
	Notation string // The move text that caused the error (if applicable)
	FEN      string // The position the move was offered in (if known)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.Notation != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.Notation))
	}
	if e.FEN != "" {
		parts = append(parts, fmt.Sprintf("position %q", e.FEN))
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
