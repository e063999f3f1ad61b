package libsignal

import (
	"errors"
	"fmt"

	"github.com/anooppoommen/libsignal-client/internal/bindings"
)

// ErrLibraryClosed reports a call on a Library whose handle has already been
// released.
var ErrLibraryClosed = errors.New("libsignal: library already closed")

// Sentinels from the bindings layer, re-exported so callers outside this
// module can branch on them with errors.Is.
var (
	// ErrNotBuilt reports that the native library has not been linked into
	// this build yet.
	ErrNotBuilt = bindings.ErrNotBuilt

	// ErrCGONotEnabled reports a build without cgo, or on a platform the
	// native library does not support.
	ErrCGONotEnabled = bindings.ErrCGONotEnabled
)

// BridgedError is the closed set of protocol failures that cross the FFI
// boundary carrying structured context. Catch sites branch on the concrete
// type or on Name, never on message text; wording may change, variant names
// do not. Renaming or removing a variant breaks every published binding.
//
// The set is sealed. Errors outside it reach callers as *ProtocolError.
type BridgedError interface {
	error

	// Name returns the stable variant identity, independent of locale and
	// message wording.
	Name() string

	bridged()
}

// UntrustedIdentityError reports that an operation encountered an identity
// key for Address that has not been trust-approved. Callers use the address
// to look up or re-request a trust decision and may retry afterward.
type UntrustedIdentityError struct {
	Address string
}

// NewUntrustedIdentityError constructs the variant for the offending
// address. It panics on an empty address: the variant carries the address or
// it does not exist.
func NewUntrustedIdentityError(address string) *UntrustedIdentityError {
	if address == "" {
		panic("libsignal: UntrustedIdentityError requires an address")
	}
	return &UntrustedIdentityError{Address: address}
}

func (e *UntrustedIdentityError) Error() string {
	return fmt.Sprintf("untrusted identity for address %s", e.Address)
}

// Name implements BridgedError.
func (e *UntrustedIdentityError) Name() string { return "UntrustedIdentityError" }

func (e *UntrustedIdentityError) bridged() {}

// SealedSenderSelfSendError reports a sealed sender message that was sent by
// the receiving identity to itself. The protocol declines to decrypt such a
// message; there is no plaintext to recover, so the variant carries only a
// descriptive message.
type SealedSenderSelfSendError struct {
	// Message is human-readable display text. Branch on the type, not on it.
	Message string
}

func (e *SealedSenderSelfSendError) Error() string {
	if e.Message == "" {
		return "self-send of a sealed sender message"
	}
	return e.Message
}

// Name implements BridgedError.
func (e *SealedSenderSelfSendError) Name() string { return "SealedSenderSelfSend" }

func (e *SealedSenderSelfSendError) bridged() {}

// CallbackError reports a failure raised by an application callback while a
// native call was executing. The native layer hands the callback's error
// back to the original caller rather than swallowing it.
type CallbackError struct {
	// Func names the bridge entry point whose callback failed, when known.
	Func string
	Err  error
}

func (e *CallbackError) Error() string {
	if e.Func == "" {
		return fmt.Sprintf("callback error %v", e.Err)
	}
	return fmt.Sprintf("%s: callback error %v", e.Func, e.Err)
}

func (e *CallbackError) Unwrap() error { return e.Err }

// ProtocolError carries a native failure that has no dedicated variant. Code
// holds the raw SignalErrorCode value for callers that need to distinguish
// beyond the bridged set.
type ProtocolError struct {
	Code    uint32
	Message string
}

func (e *ProtocolError) Error() string { return e.Message }

// RemapError converts bindings layer errors to public API errors. It is
// exported for use by protocol subpackages.
func RemapError(err error) error {
	if err == nil {
		return nil
	}

	var native *bindings.NativeError
	if !errors.As(err, &native) {
		return err
	}

	switch native.Code {
	case bindings.ErrorCodeUntrustedIdentity:
		// Without the address the variant cannot be constructed; such a
		// failure falls through to the generic path.
		if native.Address != "" {
			return NewUntrustedIdentityError(native.Address)
		}
	case bindings.ErrorCodeSelfSend:
		return &SealedSenderSelfSendError{Message: native.Message}
	case bindings.ErrorCodeCallback:
		return &CallbackError{Err: errors.New(native.Message)}
	}

	return &ProtocolError{Code: uint32(native.Code), Message: native.Message}
}
