package toolchain

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/kevin-labs/create-kevin-app/internal/runner"
)

// MinNodeVersion is the oldest Node.js release create-next-app supports.
const MinNodeVersion = ">= 18.18.0"

// Status of a single check.
type Status string

const (
	StatusOK      Status = "OK"
	StatusMissing Status = "MISS"
	StatusWarn    Status = "WARN"
)

// Check is the outcome of probing one tool.
type Check struct {
	Name    string
	Path    string
	Version string
	Status  Status
	Detail  string
}

// Probe abstracts PATH lookup and version queries so checks can be tested
// without the real binaries.
type Probe struct {
	LookPath func(name string) (string, error)
	Version  func(ctx context.Context, path string) (string, error)
}

// DefaultProbe uses exec.LookPath and `<tool> --version`.
func DefaultProbe() Probe {
	return Probe{
		LookPath: exec.LookPath,
		Version: func(ctx context.Context, path string) (string, error) {
			return runner.Output(ctx, path, "--version")
		},
	}
}

// Run checks node (with its version constraint), npx and npm.
func Run(ctx context.Context, p Probe) []Check {
	checks := []Check{checkNode(ctx, p)}
	for _, name := range []string{"npx", "npm"} {
		checks = append(checks, checkBinary(p, name))
	}
	return checks
}

// OK reports whether every check passed.
func OK(checks []Check) bool {
	for _, c := range checks {
		if c.Status != StatusOK {
			return false
		}
	}
	return true
}

func checkBinary(p Probe, name string) Check {
	path, err := p.LookPath(name)
	if err != nil {
		return Check{Name: name, Status: StatusMissing, Detail: "not found on PATH"}
	}
	return Check{Name: name, Path: path, Status: StatusOK}
}

func checkNode(ctx context.Context, p Probe) Check {
	c := checkBinary(p, "node")
	if c.Status != StatusOK {
		return c
	}

	raw, err := p.Version(ctx, c.Path)
	if err != nil {
		c.Status = StatusWarn
		c.Detail = fmt.Sprintf("could not read version: %v", err)
		return c
	}
	c.Version = strings.TrimSpace(raw)

	ok, err := Satisfies(c.Version, MinNodeVersion)
	if err != nil {
		c.Status = StatusWarn
		c.Detail = err.Error()
		return c
	}
	if !ok {
		c.Status = StatusWarn
		c.Detail = fmt.Sprintf("version %s does not satisfy %s", c.Version, MinNodeVersion)
	}
	return c
}

// Satisfies reports whether version meets the semver constraint.
func Satisfies(version, constraint string) (bool, error) {
	v, err := parseSemver(version)
	if err != nil {
		return false, fmt.Errorf("parsing version %q: %w", version, err)
	}
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, fmt.Errorf("parsing constraint %q: %w", constraint, err)
	}
	return c.Check(v), nil
}

// CompareVersions compares two version strings using semver.
// Returns -1 if a < b, 0 if equal, 1 if a > b.
func CompareVersions(a, b string) (int, error) {
	av, err := parseSemver(a)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", a, err)
	}
	bv, err := parseSemver(b)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", b, err)
	}
	return av.Compare(bv), nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(strings.TrimSpace(version), "v")
	return semver.NewVersion(version)
}
