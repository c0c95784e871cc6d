package launch

const (
	// EnvLogConfig carries the env_logger filter handed to machop.
	EnvLogConfig = "RUST_LOG"
	// DefaultLogConfig is synthesized when the caller sets nothing:
	// quiet baseline, verbose machop namespace.
	DefaultLogConfig = "warn,machop=debug"
)

// LogConfig returns the log filter for the target binary. A caller-supplied
// value is used verbatim, never merged with the default.
func LogConfig(env EnvGetter) string {
	if v, ok := env.LookupEnv(EnvLogConfig); ok {
		return v
	}
	return DefaultLogConfig
}
