package ffibuild

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateReturnsHeaderText(t *testing.T) {
	r := newFakeRunner()
	r.stub("cbindgen", Result{Stdout: fakeHeader})

	p := newTestPipeline(Config{}, r)
	got, err := p.GenerateHeader(context.Background())
	require.NoError(t, err)
	require.Equal(t, fakeHeader, got)
}

func TestGenerateSuppressesKnownNoiseOnly(t *testing.T) {
	r := newFakeRunner()
	r.stub("cbindgen", Result{
		Stdout: fakeHeader,
		Stderr: "WARN: Missing `[defines]` entry for `feature = \"armv8\"` in cbindgen config.\n" +
			"ERROR: cannot parse bridge macro\n",
	})

	var diag bytes.Buffer
	p := &Pipeline{Config: Config{}, Runner: r, Log: discardLogger(), Stdout: io.Discard, Stderr: &diag}

	got, err := p.GenerateHeader(context.Background())
	require.NoError(t, err)
	require.Equal(t, fakeHeader, got, "filtering must not touch header content")
	require.NotContains(t, diag.String(), "[defines]")
	require.Contains(t, diag.String(), "cannot parse bridge macro")
}

func TestGenerateCustomNoisePatterns(t *testing.T) {
	r := newFakeRunner()
	r.stub("cbindgen", Result{Stdout: fakeHeader, Stderr: "WARN: local oddity\n"})

	var diag bytes.Buffer
	p := &Pipeline{
		Config: Config{NoisePatterns: []string{"local oddity"}},
		Runner: r,
		Log:    discardLogger(),
		Stdout: io.Discard,
		Stderr: &diag,
	}

	_, err := p.GenerateHeader(context.Background())
	require.NoError(t, err)
	require.Empty(t, diag.String())
}

func TestGenerateEmptyOutputIsAFailure(t *testing.T) {
	r := newFakeRunner()
	r.stub("cbindgen", Result{Stdout: "   \n"})

	p := newTestPipeline(Config{}, r)
	_, err := p.GenerateHeader(context.Background())

	var genErr *GenerateError
	require.ErrorAs(t, err, &genErr)
	require.Equal(t, 0, genErr.ExitCode)
	require.Contains(t, genErr.Error(), "no header output")
}

func TestGenerateNonZeroExitIsAFailure(t *testing.T) {
	r := newFakeRunner()
	r.stub("cbindgen", Result{ExitCode: 3, Stderr: "ERROR: bad crate path\n"})

	p := newTestPipeline(Config{}, r)
	_, err := p.GenerateHeader(context.Background())

	var genErr *GenerateError
	require.ErrorAs(t, err, &genErr)
	require.Equal(t, 3, genErr.ExitCode)
	require.Contains(t, genErr.Stderr, "bad crate path")
}

func TestFilterDiagnostics(t *testing.T) {
	patterns := DefaultNoisePatterns()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{
			name: "all noise",
			in:   "WARN: Missing `[defines]` entry for `feature = \"neon\"` in cbindgen config.\n",
			want: "",
		},
		{
			name: "mixed keeps order",
			in:   "ERROR: one\nWARN: Couldn't find a config file for crate\nERROR: two\n",
			want: "ERROR: one\nERROR: two\n",
		},
		{
			name: "no trailing newline",
			in:   "ERROR: dangling",
			want: "ERROR: dangling",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, FilterDiagnostics(tt.in, patterns))
		})
	}
}
