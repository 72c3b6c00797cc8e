package core

import (
	"errors"
	"fmt"
)

// Validation errors are reported to the caller and never retried.
var (
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrInvalidType        = errors.New("invalid transaction type")
	ErrEmptyCategory      = errors.New("empty category")
	ErrEmptyDescription   = errors.New("empty description")
	ErrDescriptionTooLong = errors.New("description too long (max 200 characters)")
	ErrEmptyMessage       = errors.New("empty chat message")
	ErrInvalidSymbol      = errors.New("invalid stock symbol")
)

// IsValidation reports whether err is one of the validation sentinels.
func IsValidation(err error) bool {
	for _, sentinel := range []error{
		ErrInvalidAmount,
		ErrInvalidType,
		ErrEmptyCategory,
		ErrEmptyDescription,
		ErrDescriptionTooLong,
		ErrEmptyMessage,
		ErrInvalidSymbol,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

// GatewayError marks a failure of an external collaborator (advisory
// model or market-data provider): unreachable, errored, or timed out.
// It is distinct from validation and not-found failures and is never
// retried by the core.
type GatewayError struct {
	Provider string
	Op       string
	Err      error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Provider, e.Op, e.Err)
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

// IsGateway reports whether err is or wraps a GatewayError.
func IsGateway(err error) bool {
	var ge *GatewayError
	return errors.As(err, &ge)
}
