package ffibuild

import (
	"context"
	"io"
	"os"

	"github.com/anooppoommen/libsignal-client/pkg/libsignal/logging"
)

// Pipeline runs the FFI maintenance steps against one immutable Config:
// toolchain preconditions, the native build, then optionally header
// generation followed by a write or a comparison. The first failing step
// aborts the run; there is no partial success.
type Pipeline struct {
	Config Config
	Runner Runner
	Log    logging.Logger

	// Stdout and Stderr receive streamed tool output and relayed
	// diagnostics. They default to the process's own streams.
	Stdout io.Writer
	Stderr io.Writer
}

// Run executes the configured steps in order.
func (p *Pipeline) Run(ctx context.Context) error {
	if err := p.CheckToolchain(); err != nil {
		return err
	}
	if err := p.BuildLibrary(ctx); err != nil {
		return err
	}
	if p.Config.Action == ActionNone {
		return nil
	}

	header, err := p.GenerateHeader(ctx)
	if err != nil {
		return err
	}

	switch p.Config.Action {
	case ActionGenerate:
		return p.WriteHeader(ctx, header)
	case ActionVerify:
		return p.VerifyHeader(ctx, header)
	}
	return nil
}

func (p *Pipeline) log() logging.Logger {
	if p.Log != nil {
		return p.Log
	}
	return logging.New(nil)
}

func (p *Pipeline) stdout() io.Writer {
	if p.Stdout != nil {
		return p.Stdout
	}
	return os.Stdout
}

func (p *Pipeline) stderr() io.Writer {
	if p.Stderr != nil {
		return p.Stderr
	}
	return os.Stderr
}
