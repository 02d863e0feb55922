package domain

import (
	"errors"

	"github.com/m-mizutani/goerr/v2"
)

var (
	ErrConfiguration = goerr.New("configuration error")
	ErrInvalidColor  = goerr.Wrap(ErrConfiguration, "invalid color format")
	ErrDelivery      = goerr.New("webhook delivery failed")
	ErrAPIRequest    = goerr.New("API request failed")
	ErrLedger        = goerr.New("ledger error")
)

// Wrap wraps cause with msg and classifies it as kind. Both kind and cause
// stay reachable through errors.Is and errors.As.
func Wrap(kind, cause error, msg string, options ...goerr.Option) *goerr.Error {
	return goerr.Wrap(&classified{kind: kind, cause: cause}, msg, options...)
}

type classified struct {
	kind  error
	cause error
}

func (e *classified) Error() string {
	return e.kind.Error() + ": " + e.cause.Error()
}

func (e *classified) Unwrap() []error {
	return []error{e.kind, e.cause}
}

// IsConfiguration reports whether err belongs to the configuration class
func IsConfiguration(err error) bool {
	return errors.Is(err, ErrConfiguration)
}
