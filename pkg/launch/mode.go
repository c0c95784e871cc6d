package launch

// Mode selects how the freshly built binary is executed.
type Mode int

const (
	// Direct replaces the launcher process with the binary itself.
	Direct Mode = iota
	// DebugAttach runs the binary under an interactive lldb session.
	DebugAttach
)

const (
	// EnvDebug selects DebugAttach when set to exactly DebugSentinel.
	EnvDebug = "MACHOP_DEBUG"
	// DebugSentinel is matched case-sensitively; any other value,
	// including unset, means Direct.
	DebugSentinel = "lldb"
)

func (m Mode) String() string {
	if m == DebugAttach {
		return "debug-attach"
	}
	return "direct"
}

// ModeFromEnv decides the execution mode. Pure and side-effect free;
// decided once per invocation.
func ModeFromEnv(env EnvGetter) Mode {
	if v, ok := env.LookupEnv(EnvDebug); ok && v == DebugSentinel {
		return DebugAttach
	}
	return Direct
}
