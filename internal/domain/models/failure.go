package models

import (
	"errors"
	"fmt"
)

// Kind classifies why a component could not produce a result. Presentation
// code maps kinds to user-facing messages and HTTP status codes.
type Kind string

const (
	KindInvalidRequest    Kind = "invalid_request"
	KindInvalidSymbol     Kind = "invalid_symbol"
	KindUnsupportedSymbol Kind = "unsupported_symbol"
	KindNoHistory         Kind = "no_history"
	KindFetchFailed       Kind = "fetch_failed"
	KindSearchFailed      Kind = "search_failed"
	KindFitFailed         Kind = "fit_failed"
)

// Failure is the error returned across component boundaries.
type Failure struct {
	Kind   Kind
	Symbol string
	Err    error
}

// NewFailure wraps err with a kind and the symbol it concerns (may be empty).
func NewFailure(kind Kind, symbol string, err error) *Failure {
	return &Failure{Kind: kind, Symbol: symbol, Err: err}
}

func (f *Failure) Error() string {
	var msg string
	if f.Symbol != "" {
		msg = fmt.Sprintf("%s: %s", f.Kind, f.Symbol)
	} else {
		msg = string(f.Kind)
	}
	if f.Err != nil {
		msg += ": " + f.Err.Error()
	}
	return msg
}

func (f *Failure) Unwrap() error { return f.Err }

// KindOf extracts the failure kind from err. Errors that are not a *Failure
// report an empty kind.
func KindOf(err error) Kind {
	var f *Failure
	if errors.As(err, &f) {
		return f.Kind
	}
	return ""
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
