package resource

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPropertyID         = errors.New("invalid property id")
	ErrUnknownProperty           = errors.New("unknown property")
	ErrUnsupportedType           = errors.New("unsupported type")
	ErrBackendUnavailable        = errors.New("backend unavailable")
	ErrPropertyComputationFailed = errors.New("property computation failed")
	ErrFrozenResource            = errors.New("resource is frozen")
)

func NewErrUnknownProperty(t Type, id PropertyID) error {
	return fmt.Errorf("%w: %s is not declared by %s", ErrUnknownProperty, id, t)
}

func NewErrUnsupportedType(t Type) error {
	return fmt.Errorf("%w: %s", ErrUnsupportedType, t)
}

// NewErrBackendUnavailable keeps the cause in the chain so callers can still
// classify it (retryable or not).
func NewErrBackendUnavailable(err error) error {
	if errors.Is(err, ErrBackendUnavailable) {
		return err
	}

	return fmt.Errorf("%w: %w", ErrBackendUnavailable, err)
}

// ErrPropertyComputation

type ErrPropertyComputation struct {
	error
	Type     Type
	Property PropertyID
	Identity string
}

func NewErrPropertyComputation(err error, t Type, id PropertyID, identity string) ErrPropertyComputation {
	return ErrPropertyComputation{
		error:    fmt.Errorf("%w: %s of %s[%s]: %w", ErrPropertyComputationFailed, id, t, identity, err),
		Type:     t,
		Property: id,
		Identity: identity,
	}
}

func (e ErrPropertyComputation) Unwrap() error {
	return e.error
}
