package ffibuild

import "strings"

// DefaultNoisePatterns lists generator diagnostics that depend on the local
// environment rather than on the sources. A line containing any pattern is
// dropped from relayed diagnostics; header content and exit codes are never
// affected.
func DefaultNoisePatterns() []string {
	return []string{
		// cbindgen hints at a [defines] mapping for every optional cargo
		// feature it sees. The FFI crate does not gate its surface on
		// features, so the hint never applies here.
		"Missing `[defines]` entry for `feature =",
		// Emitted when the crate ships no cbindgen.toml; the bridge crate
		// configures everything through annotations.
		"WARN: Couldn't find a config file",
	}
}

// FilterDiagnostics returns stderr with known-noise lines removed. Lines
// keep their original order and terminators.
func FilterDiagnostics(stderr string, patterns []string) string {
	if stderr == "" {
		return ""
	}

	var kept strings.Builder
	for _, line := range strings.SplitAfter(stderr, "\n") {
		if line == "" {
			continue
		}
		if matchesAny(line, patterns) {
			continue
		}
		kept.WriteString(line)
	}
	return kept.String()
}

func matchesAny(line string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(line, p) {
			return true
		}
	}
	return false
}
