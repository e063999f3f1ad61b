package ffibuild

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildPassesVerboseThrough(t *testing.T) {
	r := newFakeRunner()

	p := newTestPipeline(Config{Verbose: true}, r)
	require.NoError(t, p.BuildLibrary(context.Background()))

	cargo := r.call(t, "cargo")
	require.Contains(t, cargo.Args, "--verbose")
	require.Equal(t, []string{"build", "-p", CrateName, "--release", "--verbose"}, cargo.Args)
}

func TestBuildTargetReachesCargoEnvironment(t *testing.T) {
	r := newFakeRunner()

	p := newTestPipeline(Config{BuildTarget: "aarch64-apple-ios"}, r)
	require.NoError(t, p.BuildLibrary(context.Background()))

	cargo := r.call(t, "cargo")
	require.Contains(t, cargo.Env, "CARGO_BUILD_TARGET=aarch64-apple-ios")
}

func TestBuildSDKDirPrependsToInheritedLibraryPath(t *testing.T) {
	sdk := "/Applications/Xcode.app/Contents/Developer/SDKs"
	r := newFakeRunner()

	p := newTestPipeline(Config{
		BuildTarget:     "aarch64-apple-ios",
		DeveloperSDKDir: sdk,
		LibraryPath:     "/opt/homebrew/lib",
	}, r)
	require.NoError(t, p.BuildLibrary(context.Background()))

	want := "LIBRARY_PATH=" + filepath.Join(sdk, "MacOSX.sdk", "usr", "lib") +
		string(os.PathListSeparator) + "/opt/homebrew/lib"
	require.Contains(t, r.call(t, "cargo").Env, want)
}

func TestBuildSDKDirWithNoInheritedLibraryPath(t *testing.T) {
	sdk := "/Library/Developer/SDKs"
	r := newFakeRunner()

	p := newTestPipeline(Config{DeveloperSDKDir: sdk}, r)
	require.NoError(t, p.BuildLibrary(context.Background()))

	want := "LIBRARY_PATH=" + filepath.Join(sdk, "MacOSX.sdk", "usr", "lib")
	require.Contains(t, r.call(t, "cargo").Env, want)
}

func TestBuildNoLibraryPathAdjustmentWithoutSDKDir(t *testing.T) {
	r := newFakeRunner()

	p := newTestPipeline(Config{
		BuildTarget: "x86_64-unknown-linux-gnu",
		LibraryPath: "/usr/local/lib",
	}, r)
	require.NoError(t, p.BuildLibrary(context.Background()))

	for _, kv := range r.call(t, "cargo").Env {
		require.False(t, strings.HasPrefix(kv, "LIBRARY_PATH="),
			"host build must not touch LIBRARY_PATH, got %q", kv)
	}
}

func TestBuildStreamsCompilerOutput(t *testing.T) {
	r := newFakeRunner()
	r.handle["cargo"] = func(inv Invocation) (Result, error) {
		fmt.Fprintln(inv.Stdout, "   Compiling libsignal-ffi v0.1.0")
		fmt.Fprintln(inv.Stderr, "warning: unused variable")
		return Result{}, nil
	}

	var out, errOut bytes.Buffer
	p := &Pipeline{
		Config: Config{},
		Runner: r,
		Log:    discardLogger(),
		Stdout: &out,
		Stderr: &errOut,
	}
	require.NoError(t, p.BuildLibrary(context.Background()))
	require.Contains(t, out.String(), "Compiling libsignal-ffi")
	require.Contains(t, errOut.String(), "unused variable")
}

func TestBuildFailureSurfacesExitCode(t *testing.T) {
	r := newFakeRunner()
	r.stub("cargo", Result{ExitCode: 1})

	p := &Pipeline{Config: Config{}, Runner: r, Log: discardLogger(), Stdout: io.Discard, Stderr: io.Discard}
	err := p.BuildLibrary(context.Background())

	var buildErr *BuildError
	require.ErrorAs(t, err, &buildErr)
	require.Equal(t, 1, buildErr.ExitCode)
	require.Contains(t, buildErr.Error(), "cargo build failed")
}
