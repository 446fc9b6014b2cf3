package walletwatch

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidAddress is returned by Subscribe when the address fails the
	// chain's format validation.
	ErrInvalidAddress = errors.New("invalid address")

	// ErrUnauthorizedDelivery marks an inbound webhook whose credentials did not match.
	ErrUnauthorizedDelivery = errors.New("unauthorized delivery")

	// ErrUnknownProvider is matched by every *UnknownProviderError.
	ErrUnknownProvider = errors.New("unknown provider")

	// ErrTransportFailure wraps failed outbound network calls.
	ErrTransportFailure = errors.New("transport failure")

	// ErrPersistenceFailure wraps failed storage operations.
	ErrPersistenceFailure = errors.New("persistence failure")

	// ErrServiceAlreadyRunning is returned by Run when called twice.
	ErrServiceAlreadyRunning = errors.New("service already running")
)

// UnknownProviderError reports a chain, notifier or storage name with no
// registered factory.
type UnknownProviderError struct {
	Kind      string
	Name      string
	Available []string
}

func (e *UnknownProviderError) Error() string {
	return fmt.Sprintf("unknown %s provider %q (available: %s)", e.Kind, e.Name, strings.Join(e.Available, ", "))
}

func (e *UnknownProviderError) Is(target error) bool {
	return target == ErrUnknownProvider
}

// InvalidAddressError builds an ErrInvalidAddress naming the chain and address.
func InvalidAddressError(chain, address string) error {
	return fmt.Errorf("%w: %q is not a valid %s address", ErrInvalidAddress, address, chain)
}
