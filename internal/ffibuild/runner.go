package ffibuild

import (
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"
)

// Invocation describes one external tool run.
type Invocation struct {
	// Name is the executable, resolved via the search path.
	Name string

	// Args are the arguments, excluding the executable name.
	Args []string

	// Dir is the working directory. Empty means the current directory.
	Dir string

	// Env holds extra KEY=VALUE entries appended to the inherited
	// environment. A key listed here overrides the inherited value.
	Env []string

	// Stdout, when set, receives standard output as the tool produces it
	// instead of being captured in the Result. Stderr behaves the same way.
	Stdout io.Writer
	Stderr io.Writer
}

// Result reports how an invocation ended.
type Result struct {
	// ExitCode is the tool's exit status. Zero means success.
	ExitCode int

	// Stdout holds captured standard output when Invocation.Stdout was nil.
	Stdout string

	// Stderr holds captured standard error when Invocation.Stderr was nil.
	Stderr string
}

// Runner executes external tools. Pipeline control flow is written against
// this interface, so tests substitute recorded invocations for real
// compilers.
type Runner interface {
	// Run executes inv and blocks until it exits. A non-zero exit is
	// reported through Result.ExitCode, not err; err covers failures to
	// start or complete the process at all.
	Run(ctx context.Context, inv Invocation) (Result, error)

	// LookPath resolves name to an executable on the search path.
	LookPath(name string) (string, error)
}

// ExecRunner runs tools as real subprocesses.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, inv Invocation) (Result, error) {
	cmd := exec.CommandContext(ctx, inv.Name, inv.Args...)
	cmd.Dir = inv.Dir
	if len(inv.Env) > 0 {
		cmd.Env = append(cmd.Environ(), inv.Env...)
	}

	var stdout, stderr strings.Builder
	if inv.Stdout != nil {
		cmd.Stdout = inv.Stdout
	} else {
		cmd.Stdout = &stdout
	}
	if inv.Stderr != nil {
		cmd.Stderr = inv.Stderr
	} else {
		cmd.Stderr = &stderr
	}

	err := cmd.Run()
	res := Result{Stdout: stdout.String(), Stderr: stderr.String()}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			return res, nil
		}
		return res, err
	}
	return res, nil
}

func (ExecRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}
