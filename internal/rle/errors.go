package rle

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingHeader reports an absent or unparsable "x = .., y = .." line.
	ErrMissingHeader = errors.New("rle: missing or malformed header")
	// ErrNotText reports a fetched source whose content type is not text.
	ErrNotText = errors.New("rle: source is not text")
	// ErrTooLarge matches every *LimitError.
	ErrTooLarge = errors.New("rle: pattern too large")
)

// TokenError reports an unexpected token in the pattern body.
type TokenError struct {
	Token  string
	Line   int
	Column int
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("rle: unexpected token %q at line %d, column %d", e.Token, e.Line, e.Column)
}

// StatusError reports a non-200 HTTP response while fetching a pattern.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("rle: fetch %s: status %d", e.URL, e.Code)
}

// LimitError reports a source or pattern that exceeds a decoding budget.
type LimitError struct {
	What  string
	Limit int64
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("rle: %s exceed limit of %d", e.What, e.Limit)
}

func (e *LimitError) Is(target error) bool { return target == ErrTooLarge }
