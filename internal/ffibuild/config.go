package ffibuild

// Profile selects the cargo compilation profile. The same value is handed to
// cbindgen so the generated header always describes the artifact that was
// just built.
type Profile string

const (
	ProfileDebug   Profile = "debug"
	ProfileRelease Profile = "release"
)

// Action selects what happens to the header after the native build.
type Action int

const (
	// ActionNone builds the native library and stops.
	ActionNone Action = iota

	// ActionGenerate regenerates the header and overwrites the checked-in
	// file.
	ActionGenerate

	// ActionVerify regenerates the header in memory and compares it against
	// the checked-in file without writing anything.
	ActionVerify
)

// Environment variables consulted at process start. The target triple and
// SDK directory follow cargo's and Xcode's own conventions instead of flags.
const (
	EnvBuildTarget     = "CARGO_BUILD_TARGET"
	EnvDeveloperSDKDir = "DEVELOPER_SDK_DIR"
	EnvLibraryPath     = "LIBRARY_PATH"
)

const (
	// CrateName is the cargo package that owns the FFI surface.
	CrateName = "libsignal-ffi"

	// CrateDir is that crate's directory relative to the repository root.
	CrateDir = "rust/bridge/ffi"

	// HeaderPath is the checked-in C header relative to the repository
	// root. It is the published ABI contract; only ActionGenerate may write
	// it.
	HeaderPath = "internal/bindings/signal_ffi.h"

	// RegenCommand is the exact command that refreshes the checked-in
	// header after intentional FFI surface changes.
	RegenCommand = "go run ./cmd/build-ffi --generate-ffi"
)

// Config carries every input the pipeline reads. It is populated once at
// process start from flags and environment and stays immutable for the run;
// no pipeline step consults ambient process state afterward.
type Config struct {
	// Profile selects debug or release compilation. Zero value means
	// release.
	Profile Profile

	// Verbose passes --verbose through to cargo.
	Verbose bool

	// Action selects the header step, if any.
	Action Action

	// BuildTarget is the cross-compilation triple from CARGO_BUILD_TARGET.
	// Empty means a host build.
	BuildTarget string

	// DeveloperSDKDir is the host SDK directory from DEVELOPER_SDK_DIR. It
	// is set when an IDE-managed cross build is running; build scripts and
	// proc macros still execute on the host then, so the host library
	// search path gets extended with the SDK's libraries. Must stay empty
	// for plain host builds.
	DeveloperSDKDir string

	// LibraryPath is the inherited LIBRARY_PATH value, captured at startup
	// with the rest of the environment inputs.
	LibraryPath string

	// RootDir is the repository root holding the cargo workspace and the
	// checked-in header. Empty means the current directory.
	RootDir string

	// NoisePatterns overrides the suppressed generator diagnostics. Nil
	// selects DefaultNoisePatterns.
	NoisePatterns []string
}

func (c Config) profile() Profile {
	if c.Profile == "" {
		return ProfileRelease
	}
	return c.Profile
}

func (c Config) noisePatterns() []string {
	if c.NoisePatterns == nil {
		return DefaultNoisePatterns()
	}
	return c.NoisePatterns
}
