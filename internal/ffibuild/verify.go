package ffibuild

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pmezard/go-difflib/difflib"
)

// MismatchError reports drift between the checked-in header and what the
// current sources generate.
type MismatchError struct {
	// Diff is the unified diff from the checked-in header to the generated
	// text.
	Diff string

	// RegenCommand is the exact command that refreshes the checked-in file.
	RegenCommand string
}

func (e *MismatchError) Error() string {
	return "checked-in ffi header is out of date; run " + e.RegenCommand
}

// VerifyHeader compares generated header text against the checked-in file.
// A missing checked-in header is a total mismatch with every generated line
// reported as added, not an I/O failure. On match it returns nil and prints
// nothing.
func (p *Pipeline) VerifyHeader(ctx context.Context, generated string) error {
	path := filepath.Join(p.Config.RootDir, HeaderPath)

	checked, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("read checked-in header: %w", err)
	}

	var from []string
	if len(checked) > 0 {
		from = difflib.SplitLines(string(checked))
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        from,
		B:        difflib.SplitLines(generated),
		FromFile: HeaderPath,
		ToFile:   "generated",
		Context:  3,
	})
	if err != nil {
		return err
	}
	if diff == "" {
		p.log().Debug(ctx, "checked-in ffi header matches generated output")
		return nil
	}
	return &MismatchError{Diff: diff, RegenCommand: RegenCommand}
}

// WriteHeader overwrites the checked-in header with freshly generated text.
// Only the generate action calls this; verification never writes.
func (p *Pipeline) WriteHeader(ctx context.Context, generated string) error {
	path := filepath.Join(p.Config.RootDir, HeaderPath)
	if err := os.WriteFile(path, []byte(generated), 0o644); err != nil {
		return fmt.Errorf("write ffi header: %w", err)
	}
	p.log().Info(ctx, "wrote ffi header", "path", HeaderPath)
	return nil
}
