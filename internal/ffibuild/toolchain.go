package ffibuild

import "fmt"

// ToolNotFoundError reports a required external tool missing from the search
// path.
type ToolNotFoundError struct {
	// Tool is the executable that could not be resolved.
	Tool string

	// Remedy is a one-line installation hint, when one is known.
	Remedy string
}

func (e *ToolNotFoundError) Error() string {
	if e.Remedy == "" {
		return fmt.Sprintf("%s not found on PATH", e.Tool)
	}
	return fmt.Sprintf("%s not found on PATH; %s", e.Tool, e.Remedy)
}

// CheckToolchain verifies the tools the run will need before any compilation
// starts, so a missing tool fails immediately instead of after a native
// build. cargo is always required; cbindgen only when a header action is
// requested.
func (p *Pipeline) CheckToolchain() error {
	if _, err := p.Runner.LookPath("cargo"); err != nil {
		return &ToolNotFoundError{
			Tool:   "cargo",
			Remedy: "install Rust via rustup (https://rustup.rs)",
		}
	}

	if p.Config.Action == ActionNone {
		return nil
	}

	if _, err := p.Runner.LookPath("cbindgen"); err != nil {
		// cargo resolved above, so the remedy is actionable.
		return &ToolNotFoundError{
			Tool:   "cbindgen",
			Remedy: "install it with `cargo install cbindgen`",
		}
	}
	return nil
}
