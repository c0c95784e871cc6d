// Package launch orchestrates the build-then-exec pipeline for the machop
// linker: rebuild, pick direct or lldb execution, trace the final command
// line, then replace the launcher process with it.
package launch

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/nick96/machoprun/pkg/artifact"
	"github.com/nick96/machoprun/pkg/buildtool"
	"github.com/nick96/machoprun/pkg/execproc"
	"github.com/nick96/machoprun/pkg/output"
)

// BinaryName is the target binary built and launched.
const BinaryName = "machop"

// Debugger is the tool used in DebugAttach mode.
const Debugger = "lldb"

// Launcher wires the pipeline's collaborators. All of them are injected so
// the flow is testable without touching cargo, lldb, or the process image.
type Launcher struct {
	// Root locates the launcher's own directory, which is the linker
	// project root. Resolution is relative to the launcher, not the
	// caller's working directory.
	Root func() (string, error)
	// Cargo is the external build capability.
	Cargo *buildtool.Cargo
	// Exec performs the final process replacement.
	Exec execproc.Executor
	// Env reads the two configuration variables.
	Env EnvGetter
	// LookPath resolves the debugger in DebugAttach mode.
	LookPath func(string) (string, error)
	// Diag receives launcher notes and the invocation trace.
	Diag io.Writer
}

// Run drives the pipeline for one invocation. args are the caller's
// arguments, forwarded to the target untouched. On success this never
// returns: the process image has been replaced and the target's exit status
// becomes the launcher's.
func (l *Launcher) Run(args []string) error {
	mode := ModeFromEnv(l.Env)

	root, err := l.Root()
	if err != nil {
		return fmt.Errorf("locate launcher directory: %w", err)
	}

	if err := l.Cargo.Preflight(); err != nil {
		return err
	}

	debugger := ""
	if mode == DebugAttach {
		debugger, err = l.LookPath(Debugger)
		if err != nil {
			return fmt.Errorf("%s=%s but %s not found in PATH: %w", EnvDebug, DebugSentinel, Debugger, err)
		}
	}

	target := filepath.Join(l.Cargo.TargetDir(root), "debug", BinaryName)

	// An unbuilt binary digests to "", which still reports a rebuild
	// correctly once the first build lands.
	before, _ := artifact.File(target)
	if err := l.Cargo.Build(root); err != nil {
		return err
	}
	if after, err := artifact.File(target); err == nil && after != before {
		output.Notef(l.Diag, "%s rebuilt (blake3:%s)", BinaryName, artifact.Short(after))
	}

	plan := NewPlan(mode, debugger, target, args, LogConfig(l.Env))

	// Trace only after the quiet build phase so routine build chatter is
	// never echoed, just the one command worth replaying.
	output.Trace(l.Diag, plan.Env, plan.Argv)

	return l.Exec.Exec(plan.Argv[0], plan.Argv[1:], plan.Env)
}
