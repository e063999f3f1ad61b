// Package ffibuild drives maintenance of the FFI boundary contract. It
// builds the native library with cargo and derives the public C header from
// the bridge crate with cbindgen, keeping the checked-in header in lockstep
// with what current sources generate. External tools run through the Runner
// interface and every input arrives via Config, so the control flow can be
// exercised against recorded invocations without a Rust toolchain installed.
//
// The checked-in header is the published ABI contract. Drift between it and
// the sources silently breaks every downstream consumer, which is why verify
// runs fail loudly with a diff and the exact regeneration command.
package ffibuild
