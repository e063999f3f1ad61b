//go:build !cgo || windows

package bindings

// Stub implementations for non-CGO builds or Windows.
// These allow the package to compile but fail loudly when called.

// Open reports that the native library cannot be reached without cgo.
func Open(Config) (Handle, error) {
	return 0, ErrCGONotEnabled
}

// Close mirrors Open for symmetry in non-cgo builds.
func Close(Handle) error {
	return ErrCGONotEnabled
}

// Version returns an empty string when the native library is unavailable.
func Version() string { return "" }
