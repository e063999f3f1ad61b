package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/anooppoommen/libsignal-client/internal/ffibuild"
	"github.com/anooppoommen/libsignal-client/pkg/libsignal"
	"github.com/anooppoommen/libsignal-client/pkg/libsignal/logging"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

const (
	flagDebug    = "debug"
	flagVerbose  = "verbose"
	flagGenerate = "generate-ffi"
	flagVerify   = "verify-ffi"
)

// usageError marks command-line mistakes so run can map them to exit code 2
// and keep every other failure on exit code 1.
type usageError struct{ err error }

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// options collects flag state before it is frozen into a ffibuild.Config.
type options struct {
	debug    bool
	verbose  bool
	generate bool
	verify   bool
}

func parseOptions(fs *pflag.FlagSet) options {
	var opts options
	opts.debug, _ = fs.GetBool(flagDebug)
	opts.verbose, _ = fs.GetBool(flagVerbose)
	opts.generate, _ = fs.GetBool(flagGenerate)
	opts.verify, _ = fs.GetBool(flagVerify)
	return opts
}

func run(args []string, runner ffibuild.Runner, stdout, stderr io.Writer) int {
	cmd := newRootCmd(runner, stdout, stderr)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err == nil {
		return exitOK
	}

	var usage *usageError
	if errors.As(err, &usage) {
		fmt.Fprintf(stderr, "error: %v\n\n", usage)
		fmt.Fprint(stderr, cmd.UsageString())
		return exitUsage
	}

	reportFailure(stderr, err)
	return exitFailure
}

func newRootCmd(runner ffibuild.Runner, stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "build-ffi",
		Short:   "Build the libsignal FFI library and maintain its C header",
		Version: fmt.Sprintf("%s (libsignal %s)", libsignal.WrapperVersion(), libsignal.UpstreamVersion()),
		Long: `build-ffi compiles the libsignal-ffi crate and maintains the checked-in
C header that downstream language bindings compile against.

Without an action flag it only builds the native library. --generate-ffi
regenerates ` + ffibuild.HeaderPath + ` in place after intentional FFI
surface changes; --verify-ffi regenerates the header in memory and fails
when the checked-in copy has drifted.

The cross-compilation target is taken from ` + ffibuild.EnvBuildTarget + `;
` + ffibuild.EnvDeveloperSDKDir + ` marks an SDK-managed cross build and
extends the host library search path for build scripts. Run the command
from the repository root.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.NoArgs(cmd, args); err != nil {
				return &usageError{err: err}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := parseOptions(cmd.Flags())
			if opts.generate && opts.verify {
				return &usageError{err: fmt.Errorf("--%s and --%s are mutually exclusive", flagGenerate, flagVerify)}
			}

			cfg, err := buildConfig(opts)
			if err != nil {
				return err
			}

			p := &ffibuild.Pipeline{
				Config: cfg,
				Runner: runner,
				Log:    newLogger(stderr, opts.verbose),
				Stdout: stdout,
				Stderr: stderr,
			}
			return p.Run(cmd.Context())
		},
	}

	flags := cmd.Flags()
	flags.BoolP(flagDebug, "d", false, "build the debug profile instead of release")
	flags.BoolP(flagVerbose, "v", false, "pass --verbose through to cargo")
	flags.Bool(flagGenerate, false, "regenerate and overwrite the checked-in C header")
	flags.Bool(flagVerify, false, "regenerate the C header and fail if the checked-in copy differs")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	return cmd
}

// buildConfig freezes flag and environment state into the pipeline's
// configuration. Nothing downstream reads the process environment again.
func buildConfig(opts options) (ffibuild.Config, error) {
	v := viper.New()
	for _, name := range []string{
		ffibuild.EnvBuildTarget,
		ffibuild.EnvDeveloperSDKDir,
		ffibuild.EnvLibraryPath,
	} {
		if err := v.BindEnv(name); err != nil {
			return ffibuild.Config{}, err
		}
	}

	cfg := ffibuild.Config{
		Profile:         ffibuild.ProfileRelease,
		Verbose:         opts.verbose,
		BuildTarget:     v.GetString(ffibuild.EnvBuildTarget),
		DeveloperSDKDir: v.GetString(ffibuild.EnvDeveloperSDKDir),
		LibraryPath:     v.GetString(ffibuild.EnvLibraryPath),
	}
	if opts.debug {
		cfg.Profile = ffibuild.ProfileDebug
	}
	switch {
	case opts.generate:
		cfg.Action = ffibuild.ActionGenerate
	case opts.verify:
		cfg.Action = ffibuild.ActionVerify
	}
	return cfg, nil
}

func reportFailure(stderr io.Writer, err error) {
	var mismatch *ffibuild.MismatchError
	if errors.As(err, &mismatch) {
		fmt.Fprint(stderr, mismatch.Diff)
		fmt.Fprintf(stderr, "\nerror: %v\n", mismatch)
		return
	}
	fmt.Fprintf(stderr, "error: %v\n", err)
}

func newLogger(w io.Writer, verbose bool) logging.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return logging.New(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}
