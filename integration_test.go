//go:build unix

package machoprun_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nick96/machoprun/pkg/buildtool"
	"github.com/nick96/machoprun/pkg/launch"
)

// Integration tests verify the Real* implementations against stub tools on
// PATH. Unit tests in each package cover edge cases; these verify the
// pipeline end to end, stopping short of the final process replacement.

type capturingExecutor struct {
	called bool
	name   string
	args   []string
	env    []string
}

func (c *capturingExecutor) Exec(name string, args []string, extraEnv []string) error {
	c.called = true
	c.name = name
	c.args = args
	c.env = extraEnv
	return nil
}

// installStubCargo places a fake cargo on PATH that mimics the three
// invocations the launcher makes: --version, metadata, and build.
func installStubCargo(t *testing.T, root string, failBuild bool) string {
	t.Helper()
	binDir := t.TempDir()

	buildAction := fmt.Sprintf("mkdir -p %q/target/debug && printf 'linked at %%s' \"$(date)\" > %q/target/debug/machop && chmod 755 %q/target/debug/machop", root, root, root)
	if failBuild {
		buildAction = "echo 'error: could not compile machop' >&2; exit 101"
	}

	script := fmt.Sprintf(`#!/bin/sh
case "$1" in
--version) echo "cargo 1.79.0 (stub 2024-06-01)" ;;
metadata) printf '{"target_directory":"%s/target","version":1}\n' ;;
build) %s ;;
*) exit 2 ;;
esac
`, root, buildAction)

	path := filepath.Join(binDir, "cargo")
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("write stub cargo: %v", err)
	}

	t.Setenv("PATH", binDir+string(os.PathListSeparator)+os.Getenv("PATH"))
	return binDir
}

func installStubLLDB(t *testing.T, binDir string) string {
	t.Helper()
	path := filepath.Join(binDir, "lldb")
	if err := os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatalf("write stub lldb: %v", err)
	}
	return path
}

func newIntegrationLauncher(t *testing.T, root string, diag *strings.Builder) (*launch.Launcher, *capturingExecutor) {
	t.Helper()
	executor := &capturingExecutor{}
	l := &launch.Launcher{
		Root:     func() (string, error) { return root, nil },
		Cargo:    &buildtool.Cargo{Runner: &buildtool.RealRunner{}},
		Exec:     executor,
		Env:      &launch.RealEnvGetter{},
		LookPath: (&buildtool.RealRunner{}).LookPath,
		Diag:     diag,
	}
	return l, executor
}

func TestIntegration_BuildAndLaunch(t *testing.T) {
	root := t.TempDir()
	installStubCargo(t, root, false)
	// t.Setenv registers restoration; the variables must be genuinely
	// unset since an empty RUST_LOG counts as an override.
	t.Setenv("MACHOP_DEBUG", "")
	os.Unsetenv("MACHOP_DEBUG")
	t.Setenv("RUST_LOG", "")
	os.Unsetenv("RUST_LOG")

	var diag strings.Builder
	l, executor := newIntegrationLauncher(t, root, &diag)

	if err := l.Run([]string{"foo.o", "bar.o"}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if !executor.called {
		t.Fatal("executor never invoked")
	}
	wantBinary := filepath.Join(root, "target", "debug", "machop")
	if executor.name != wantBinary {
		t.Errorf("binary = %q, want %q", executor.name, wantBinary)
	}
	if len(executor.args) != 2 || executor.args[0] != "foo.o" || executor.args[1] != "bar.o" {
		t.Errorf("args = %v, want [foo.o bar.o]", executor.args)
	}
	if len(executor.env) != 1 || executor.env[0] != "RUST_LOG=warn,machop=debug" {
		t.Errorf("env = %v, want default RUST_LOG directive", executor.env)
	}
	if !strings.Contains(diag.String(), "machop rebuilt (blake3:") {
		t.Errorf("diag = %q, want rebuild note for the first build", diag.String())
	}
	if !strings.Contains(diag.String(), "+ RUST_LOG=warn,machop=debug "+wantBinary+" foo.o bar.o\n") {
		t.Errorf("diag = %q, want trace line", diag.String())
	}
}

func TestIntegration_BuildFailure(t *testing.T) {
	root := t.TempDir()
	installStubCargo(t, root, true)
	t.Setenv("MACHOP_DEBUG", "")
	os.Unsetenv("MACHOP_DEBUG")

	before, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}

	var diag strings.Builder
	l, executor := newIntegrationLauncher(t, root, &diag)

	err = l.Run([]string{"foo.o"})
	if err == nil {
		t.Fatal("Run() succeeded, want build failure")
	}
	if executor.called {
		t.Error("target must never run after a failed build")
	}
	if _, statErr := os.Stat(filepath.Join(root, "target", "debug", "machop")); statErr == nil {
		t.Error("failed build should not have produced a binary")
	}

	after, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if before != after {
		t.Errorf("working directory changed: %q -> %q", before, after)
	}
}

func TestIntegration_DebugAttach(t *testing.T) {
	root := t.TempDir()
	binDir := installStubCargo(t, root, false)
	lldbPath := installStubLLDB(t, binDir)
	t.Setenv("MACHOP_DEBUG", "lldb")

	var diag strings.Builder
	l, executor := newIntegrationLauncher(t, root, &diag)

	if err := l.Run([]string{"foo.o", "bar.o"}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if executor.name != lldbPath {
		t.Errorf("program = %q, want %q", executor.name, lldbPath)
	}
	wantArgs := []string{filepath.Join(root, "target", "debug", "machop"), "--", "foo.o", "bar.o"}
	if len(executor.args) != len(wantArgs) {
		t.Fatalf("args = %v, want %v", executor.args, wantArgs)
	}
	for i := range wantArgs {
		if executor.args[i] != wantArgs[i] {
			t.Errorf("args[%d] = %q, want %q", i, executor.args[i], wantArgs[i])
		}
	}
	if len(executor.env) != 0 {
		t.Errorf("env = %v, want no log override under the debugger", executor.env)
	}
}

func TestIntegration_LogOverride(t *testing.T) {
	root := t.TempDir()
	installStubCargo(t, root, false)
	t.Setenv("MACHOP_DEBUG", "")
	os.Unsetenv("MACHOP_DEBUG")
	t.Setenv("RUST_LOG", "machop::tbd=trace")

	var diag strings.Builder
	l, executor := newIntegrationLauncher(t, root, &diag)

	if err := l.Run(nil); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(executor.env) != 1 || executor.env[0] != "RUST_LOG=machop::tbd=trace" {
		t.Errorf("env = %v, want override used verbatim", executor.env)
	}
}

func TestIntegration_RealRunner(t *testing.T) {
	r := &buildtool.RealRunner{}

	out, err := r.Output("sh", "-c", "echo hello")
	if err != nil {
		t.Fatalf("Output() error = %v", err)
	}
	if strings.TrimSpace(out) != "hello" {
		t.Errorf("Output() = %q, want hello", out)
	}

	if err := r.Run("sh", "-c", "true"); err != nil {
		t.Errorf("Run() error = %v", err)
	}
	if err := r.Run("sh", "-c", "exit 3"); err == nil {
		t.Error("Run() error = nil, want exit status error")
	}
}
