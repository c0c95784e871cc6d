//go:build unix

package execproc

import (
	"strings"
	"syscall"
)

// execFunc is swapped out in tests to capture the exec call.
var execFunc = syscall.Exec

// Exec replaces the current process with the named program.
// This is the Unix implementation using syscall.Exec.
func (e *RealExecutor) Exec(name string, args []string, extraEnv []string) error {
	binary := name
	if !strings.ContainsRune(name, '/') {
		resolved, err := lookPath(name)
		if err != nil {
			return err
		}
		binary = resolved
	}

	// argv[0] must be the program name by convention.
	argv := append([]string{name}, args...)
	return execFunc(binary, argv, mergeEnv(environ(), extraEnv))
}
