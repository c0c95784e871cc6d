package launch

// Plan is the fully resolved invocation: the argv that will replace this
// process and the environment overrides applied to it.
type Plan struct {
	// Argv is the complete command line; Argv[0] is the program.
	Argv []string
	// Env holds KEY=VALUE overrides for the child. Empty in DebugAttach
	// mode: the debugger session dictates its own output.
	Env []string
}

// NewPlan builds the invocation for the chosen mode. Caller arguments are
// forwarded verbatim, in order; in DebugAttach mode they follow lldb's "--"
// separator.
func NewPlan(mode Mode, debugger, binary string, args []string, logConfig string) Plan {
	if mode == DebugAttach {
		argv := make([]string, 0, len(args)+3)
		argv = append(argv, debugger, binary, "--")
		return Plan{Argv: append(argv, args...)}
	}

	argv := make([]string, 0, len(args)+1)
	argv = append(argv, binary)
	return Plan{
		Argv: append(argv, args...),
		Env:  []string{EnvLogConfig + "=" + logConfig},
	}
}
