package main

import (
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nick96/machoprun/pkg/buildtool"
	"github.com/nick96/machoprun/pkg/execproc"
	"github.com/nick96/machoprun/pkg/launch"
)

// launcherRoot resolves the directory the launcher binary lives in, which is
// the linker project root. Symlinks are resolved so a linked-in launcher
// still finds the real checkout.
func launcherRoot() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	resolved, err := filepath.EvalSymlinks(exe)
	if err != nil {
		return "", err
	}
	return filepath.Dir(resolved), nil
}

// newLauncher is a hook so command tests can swap in fake collaborators.
var newLauncher = func(diag io.Writer) *launch.Launcher {
	return &launch.Launcher{
		Root:     launcherRoot,
		Cargo:    &buildtool.Cargo{Runner: &buildtool.RealRunner{}},
		Exec:     &execproc.RealExecutor{},
		Env:      &launch.RealEnvGetter{},
		LookPath: exec.LookPath,
		Diag:     diag,
	}
}

func runLaunch(cmd *cobra.Command, args []string) error {
	return newLauncher(cmd.ErrOrStderr()).Run(args)
}
