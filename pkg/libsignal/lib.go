package libsignal

import "github.com/anooppoommen/libsignal-client/internal/bindings"

// Library represents an opened handle to the native libsignal library. The
// struct keeps enough state to release the handle cleanly once the cgo
// integration lands.
type Library struct {
	cfg    Config
	handle bindings.Handle
	closed bool
}

// Open prepares the native library. Until the bindings are linked it only
// exercises the error mapping, so callers can integrate the control flow
// ahead of the native artifact.
func Open(cfg Config) (*Library, error) {
	h, err := bindings.Open(cfg.toBindings())
	if err != nil {
		return nil, RemapError(err)
	}

	return &Library{cfg: cfg, handle: h}, nil
}

// Close releases the native resources associated with the library handle.
// Calling it twice returns ErrLibraryClosed.
func (l *Library) Close() error {
	if l == nil {
		return nil
	}

	if l.closed {
		return ErrLibraryClosed
	}

	if err := bindings.Close(l.handle); err != nil {
		return RemapError(err)
	}

	l.closed = true
	l.handle = 0
	return nil
}
