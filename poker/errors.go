package poker

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRank is returned when a rank character is not one of 2-9, T, J, Q, K, A.
	ErrInvalidRank = errors.New("invalid rank")
	// ErrInvalidSuit is returned when a suit character is not one of H, S, C, D.
	ErrInvalidSuit = errors.New("invalid suit")
	// ErrInvalidHandSize is returned when hand text does not hold exactly five cards.
	ErrInvalidHandSize = errors.New("invalid hand size")
	// ErrInvalidCard is returned for a token that is not exactly two characters.
	ErrInvalidCard = errors.New("invalid card")
	// ErrDuplicateCard is returned when the same card appears twice in one hand.
	ErrDuplicateCard = errors.New("duplicate card")
)

// ParseError records which token of a hand failed to parse.
type ParseError struct {
	Token    string
	Position int // zero-based token index
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("card %d (%q): %v", e.Position+1, e.Token, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
