package cards

import (
	"errors"
	"fmt"
)

// ErrorCode represents a specific error type
type ErrorCode string

const (
	// ErrInvalidValue is returned when a rank, suit or card is built
	// from a value outside the recognized set
	ErrInvalidValue ErrorCode = "INVALID_VALUE"

	// ErrEmptyDeck is returned when a card is taken from a deck with
	// zero remaining cards
	ErrEmptyDeck ErrorCode = "EMPTY_DECK"

	// ErrCardNotFound is returned when a card is taken by ID but is no
	// longer in the deck
	ErrCardNotFound ErrorCode = "CARD_NOT_FOUND"
)

// CardError represents a card or deck related error
type CardError struct {
	Code    ErrorCode
	Message string
	Err     error // Underlying error, if any
}

// Error implements the error interface
func (e *CardError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *CardError) Unwrap() error {
	return e.Err
}

// NewCardError creates a new CardError
func NewCardError(code ErrorCode, message string) *CardError {
	return &CardError{
		Code:    code,
		Message: message,
	}
}

// WrapCardError wraps an existing error in a CardError
func WrapCardError(code ErrorCode, message string, err error) *CardError {
	return &CardError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsCardError checks if an error is a CardError with a specific code
func IsCardError(err error, code ErrorCode) bool {
	var cardErr *CardError
	if !errors.As(err, &cardErr) {
		return false
	}
	return cardErr.Code == code
}
