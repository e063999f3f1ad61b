// Package libsignal is the Go face of the libsignal native library. The
// exported types compile today without linking the native bindings, so
// downstream projects can adopt the API surface before the cgo integration
// lands. The lasting contract is the error bridge: the typed errors defined
// here are what callers catch and inspect when a native protocol call fails,
// and their names stay stable across releases even as message text evolves.
package libsignal
