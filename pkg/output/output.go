// Package output writes the launcher's diagnostic lines: launcher notes and
// the shell-style trace of the command about to replace the process.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/jwalton/go-supportscolor"
)

var (
	yellow = "\033[33m"
	reset  = "\033[0m"
)

func init() {
	if !supportscolor.Stderr().SupportsColor {
		yellow, reset = "", ""
	}
}

// Notef prints a launcher-level diagnostic line.
func Notef(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintf(w, "%smachoprun:%s %s\n", yellow, reset, fmt.Sprintf(format, args...))
}

// Trace echoes the command about to run, set -x style, so the exact
// invocation can be copied and replayed by hand. env entries are printed as
// KEY=VALUE prefixes the way a shell would accept them. The line is kept
// free of color codes on purpose.
func Trace(w io.Writer, env []string, argv []string) {
	parts := make([]string, 0, len(env)+len(argv))
	for _, kv := range env {
		key, value, _ := strings.Cut(kv, "=")
		parts = append(parts, key+"="+Quote(value))
	}
	for _, arg := range argv {
		parts = append(parts, Quote(arg))
	}
	fmt.Fprintf(w, "+ %s\n", strings.Join(parts, " "))
}

// Quote returns s quoted for copy-paste into a POSIX shell.
func Quote(s string) string {
	if s == "" {
		return "''"
	}
	if !strings.ContainsAny(s, " \t\n\"'`$&|;<>()*?[]{}\\~#!") {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
