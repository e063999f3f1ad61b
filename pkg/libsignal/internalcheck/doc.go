// Package internalcheck holds repository-wide policy tests.
//
// The checks here parse the module's own sources and fail when code drifts
// from conventions the library depends on, such as keeping environment
// access confined to the CLI entry point. They are tests rather than
// lint configuration so a plain `go test ./...` enforces them.
//
// # Internal Use Only
//
// Nothing in this package is meant to be imported; applications should use
// the public API under pkg/libsignal.
package internalcheck
