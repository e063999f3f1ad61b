// Package logging provides a minimal logging facade for the libsignal
// wrapper and its FFI build tooling.
//
// The package defines a Logger interface over a subset of the standard
// library's log/slog functionality. Handlers are configured only at process
// entry points (for example cmd/build-ffi); library code receives a Logger
// and never touches global logging state.
//
// Use the default slog-backed implementation:
//
//	logger := logging.New(nil) // binds to slog.Default()
//
//	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})
//	verbose := logging.New(slog.New(handler))
//
// # Redaction
//
// Protocol addresses and key material must not reach logs verbatim. Mark
// such attributes with Redacted:
//
//	logger.Info(ctx, "trust decision requested", logging.Redacted("address"))
//	// Logs: address="[redacted]"
package logging
