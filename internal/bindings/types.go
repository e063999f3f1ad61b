package bindings

import (
	"errors"
	"fmt"
)

// Config captures the parameters required by the native libsignal-ffi
// bindings. The struct intentionally stays blank for now; real fields arrive
// once the cgo layer is wired up.
type Config struct{}

// Handle is an opaque identifier returned by the native library when it is
// successfully opened.
type Handle uintptr

var (
	// ErrNotBuilt reports that the native bindings were not linked into the
	// current binary. CI and downstream callers can use this to fall back to
	// safer defaults.
	ErrNotBuilt = errors.New("libsignal/internal/bindings: native bindings not built")

	// ErrCGONotEnabled signals that the package was compiled without cgo and
	// therefore cannot talk to the native library.
	ErrCGONotEnabled = errors.New("libsignal/internal/bindings: cgo not enabled")
)

// ErrorCode mirrors the SignalErrorCode enum in signal_ffi.h. The values are
// part of the published ABI contract; changing one here without regenerating
// the header breaks every consumer of the library.
type ErrorCode uint32

const (
	ErrorCodeUnknown           ErrorCode = 1
	ErrorCodeInvalidState      ErrorCode = 2
	ErrorCodeInternal          ErrorCode = 3
	ErrorCodeNullParameter     ErrorCode = 4
	ErrorCodeInvalidArgument   ErrorCode = 5
	ErrorCodeInvalidUtf8       ErrorCode = 7
	ErrorCodeProtobuf          ErrorCode = 10
	ErrorCodeInvalidMessage    ErrorCode = 20
	ErrorCodeSelfSend          ErrorCode = 21
	ErrorCodeUntrustedIdentity ErrorCode = 30
	ErrorCodeCallback          ErrorCode = 40
)

// NativeError is the raw failure surfaced by a native call: the error code
// from signal_error_get_type plus the message and, when the code concerns a
// specific peer, the protocol address extracted before the native error was
// freed. The public package remaps it into the stable bridge variants; code
// outside internal packages should never see a NativeError.
type NativeError struct {
	Code    ErrorCode
	Message string
	Address string
}

func (e *NativeError) Error() string {
	return fmt.Sprintf("native error %d: %s", e.Code, e.Message)
}
