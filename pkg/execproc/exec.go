// Package execproc provides process replacement for handing control to the
// target binary.
package execproc

import (
	"os"
	"os/exec"
	"strings"
)

// Executor replaces the current process with another program.
type Executor interface {
	// Exec replaces the current process with the named program.
	// extraEnv entries ("KEY=VALUE") override inherited variables with
	// the same key. On Unix this uses syscall.Exec and does not return
	// on success. On Windows it returns an error.
	Exec(name string, args []string, extraEnv []string) error
}

// RealExecutor is the production implementation.
type RealExecutor struct{}

// lookPath finds the executable in PATH.
func lookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// environ returns the current environment.
func environ() []string {
	return os.Environ()
}

// mergeEnv returns base with overrides applied by key. Overridden keys are
// removed from base so the child sees a single entry per key.
func mergeEnv(base, overrides []string) []string {
	if len(overrides) == 0 {
		return base
	}
	replaced := make(map[string]bool, len(overrides))
	for _, kv := range overrides {
		key, _, _ := strings.Cut(kv, "=")
		replaced[key] = true
	}
	merged := make([]string, 0, len(base)+len(overrides))
	for _, kv := range base {
		key, _, _ := strings.Cut(kv, "=")
		if !replaced[key] {
			merged = append(merged, kv)
		}
	}
	return append(merged, overrides...)
}
