// Package bindings isolates all interaction with the native libsignal-ffi
// library. This package should ONLY be imported by pkg/libsignal; everything
// that touches the C ABI (the checked-in signal_ffi.h header, the error-code
// constants mirroring it, and eventually the cgo calls themselves) lives
// here so the public API stays free of cgo types.
//
// The checked-in header signal_ffi.h in this directory is the published ABI
// contract. It is regenerated from the Rust sources with
//
//	go run ./cmd/build-ffi --generate-ffi
//
// and kept in sync by --verify-ffi in CI. Do not edit it by hand.
package bindings
