package ffibuild

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// BuildError reports a native build that exited non-zero. The compiler's own
// output has already been streamed verbatim by the time this is returned.
type BuildError struct {
	ExitCode int
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("cargo build failed with exit code %d", e.ExitCode)
}

// BuildLibrary compiles the FFI crate for the configured profile and target.
// Tool output streams through as it is produced; a compiler failure aborts
// the run without retry.
func (p *Pipeline) BuildLibrary(ctx context.Context) error {
	args := []string{"build", "-p", CrateName}
	if p.Config.profile() == ProfileRelease {
		args = append(args, "--release")
	}
	if p.Config.Verbose {
		args = append(args, "--verbose")
	}

	p.log().Debug(ctx, "building native library",
		"profile", string(p.Config.profile()),
		"target", p.Config.BuildTarget,
	)

	res, err := p.Runner.Run(ctx, Invocation{
		Name:   "cargo",
		Args:   args,
		Dir:    p.Config.RootDir,
		Env:    p.cargoEnv(ctx),
		Stdout: p.stdout(),
		Stderr: p.stderr(),
	})
	if err != nil {
		return err
	}
	if res.ExitCode != 0 {
		return &BuildError{ExitCode: res.ExitCode}
	}
	return nil
}

// cargoEnv assembles the environment overrides for the native build. The
// host library path adjustment applies only under an SDK-managed cross
// build and prepends to whatever LIBRARY_PATH the process inherited.
func (p *Pipeline) cargoEnv(ctx context.Context) []string {
	var env []string
	if p.Config.BuildTarget != "" {
		env = append(env, EnvBuildTarget+"="+p.Config.BuildTarget)
	}
	if p.Config.DeveloperSDKDir != "" {
		// Build scripts and proc macros run on the host even when the
		// artifact is cross-compiled, and recent macOS keeps no linkable
		// libraries under /usr/lib.
		hostLibs := filepath.Join(p.Config.DeveloperSDKDir, "MacOSX.sdk", "usr", "lib")
		joined := hostLibs
		if p.Config.LibraryPath != "" {
			joined += string(os.PathListSeparator) + p.Config.LibraryPath
		}
		env = append(env, EnvLibraryPath+"="+joined)

		p.log().Debug(ctx, "extending host library search path", "dir", hostLibs)
	}
	return env
}
