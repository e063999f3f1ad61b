package ffibuild

import (
	"context"
	"fmt"
	"strings"
)

// GenerateError reports header generation that failed, or that silently
// produced nothing.
type GenerateError struct {
	// ExitCode is cbindgen's exit status. Zero with an empty header means
	// the tool succeeded without producing output.
	ExitCode int

	// Stderr holds the tool's unfiltered diagnostics.
	Stderr string
}

func (e *GenerateError) Error() string {
	if e.ExitCode == 0 {
		return "cbindgen produced no header output"
	}
	return fmt.Sprintf("cbindgen failed with exit code %d", e.ExitCode)
}

// GenerateHeader derives the C header from the FFI crate's current
// declarations for the configured profile. The text is returned, never
// written; persisting it is WriteHeader's job. For unchanged sources and
// profile the output is byte-identical across invocations.
func (p *Pipeline) GenerateHeader(ctx context.Context) (string, error) {
	p.log().Debug(ctx, "generating ffi header",
		"profile", string(p.Config.profile()),
		"crate", CrateDir,
	)

	res, err := p.Runner.Run(ctx, Invocation{
		Name: "cbindgen",
		Args: []string{"--profile", string(p.Config.profile()), CrateDir},
		Dir:  p.Config.RootDir,
	})
	if err != nil {
		return "", err
	}

	if kept := FilterDiagnostics(res.Stderr, p.Config.noisePatterns()); kept != "" {
		fmt.Fprint(p.stderr(), kept)
	}

	if res.ExitCode != 0 {
		return "", &GenerateError{ExitCode: res.ExitCode, Stderr: res.Stderr}
	}
	// An empty header with a zero exit still counts as failed generation.
	if strings.TrimSpace(res.Stdout) == "" {
		return "", &GenerateError{Stderr: res.Stderr}
	}
	return res.Stdout, nil
}
