// Package buildtool wraps the cargo toolchain that builds the machop binary.
package buildtool

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/tidwall/gjson"
)

// MinCargoVersion is the oldest toolchain known to build machop.
const MinCargoVersion = "1.70.0"

var minCargo = semver.MustParse(MinCargoVersion)

// Cargo drives the external build capability.
type Cargo struct {
	Runner Runner
}

// Preflight verifies cargo is usable before anything is built: it must be on
// PATH and, when its version is parseable, at least MinCargoVersion.
func (c *Cargo) Preflight() error {
	if _, err := c.Runner.LookPath("cargo"); err != nil {
		return fmt.Errorf("cargo not found in PATH: %w", err)
	}

	out, err := c.Runner.Output("cargo", "--version")
	if err != nil {
		return fmt.Errorf("cargo --version: %w", err)
	}

	v := parseCargoVersion(out)
	if v != nil && v.LessThan(minCargo) {
		return fmt.Errorf("cargo %s is older than required %s", v, MinCargoVersion)
	}
	return nil
}

// parseCargoVersion extracts the semver from "cargo 1.78.0 (abc 2024-03-15)".
// Returns nil when the output doesn't follow that shape; an unparseable
// version is not a reason to refuse a build.
func parseCargoVersion(out string) *semver.Version {
	fields := strings.Fields(out)
	if len(fields) < 2 {
		return nil
	}
	v, err := semver.NewVersion(fields[1])
	if err != nil {
		return nil
	}
	return v
}

// Build runs a quiet cargo build with the working directory scoped to root.
// The caller's working directory is restored on every path; build tooling
// invoked later must not observe a leftover directory change.
func (c *Cargo) Build(root string) (err error) {
	orig, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}
	if err := os.Chdir(root); err != nil {
		return fmt.Errorf("enter %s: %w", root, err)
	}
	defer func() {
		if cerr := os.Chdir(orig); cerr != nil && err == nil {
			err = fmt.Errorf("restore working directory: %w", cerr)
		}
	}()

	if err := c.Runner.Run("cargo", "build", "--quiet"); err != nil {
		return fmt.Errorf("cargo build: %w", err)
	}
	return nil
}

// TargetDir resolves the cargo target directory for the project at root.
// Workspaces can relocate it, so ask cargo metadata; fall back to the
// conventional <root>/target when metadata is unavailable.
func (c *Cargo) TargetDir(root string) string {
	manifest := filepath.Join(root, "Cargo.toml")
	out, err := c.Runner.Output("cargo", "metadata", "--format-version", "1", "--no-deps", "--manifest-path", manifest)
	if err != nil {
		return filepath.Join(root, "target")
	}
	dir := gjson.Get(out, "target_directory").String()
	if dir == "" {
		return filepath.Join(root, "target")
	}
	return dir
}
