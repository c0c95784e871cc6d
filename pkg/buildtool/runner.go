package buildtool

import (
	"bytes"
	"io"
	"os"
	"os/exec"
)

// Runner abstracts tool execution for testability.
type Runner interface {
	LookPath(file string) (string, error)
	// Output runs a command and returns its captured stdout.
	Output(name string, args ...string) (string, error)
	// Run executes a command with stdout discarded. stderr passes through
	// to the operator so compile errors stay visible.
	Run(name string, args ...string) error
}

// RealRunner implements Runner using actual OS commands.
type RealRunner struct{}

// LookPath searches for an executable in PATH.
func (r *RealRunner) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// Output executes a command and returns its stdout.
func (r *RealRunner) Output(name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)
	var outBuf bytes.Buffer
	cmd.Stdout = &outBuf
	err := cmd.Run()
	return outBuf.String(), err
}

// Run executes a command quietly, forwarding only stderr.
func (r *RealRunner) Run(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdout = io.Discard
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// MockRunner is a test double for Runner.
type MockRunner struct {
	LookPathFunc func(file string) (string, error)
	OutputFunc   func(name string, args ...string) (string, error)
	RunFunc      func(name string, args ...string) error
}

// LookPath calls the mock function.
func (m *MockRunner) LookPath(file string) (string, error) {
	return m.LookPathFunc(file)
}

// Output calls the mock function.
func (m *MockRunner) Output(name string, args ...string) (string, error) {
	return m.OutputFunc(name, args...)
}

// Run calls the mock function.
func (m *MockRunner) Run(name string, args ...string) error {
	return m.RunFunc(name, args...)
}
