package pkgmanager

import (
	"fmt"
	"os"
	"path/filepath"
)

// Manager identifies a JavaScript package manager binary.
type Manager string

// Supported package managers.
const (
	NPM  Manager = "npm"
	Yarn Manager = "yarn"
	PNPM Manager = "pnpm"
	Bun  Manager = "bun"
)

func (m Manager) String() string { return string(m) }

// indicators maps marker files to the manager they imply and how strongly.
// Lockfiles are decisive; rc and workspace files only tip the balance.
var indicators = []struct {
	file    string
	manager Manager
	weight  int
}{
	{"package-lock.json", NPM, 100},
	{"yarn.lock", Yarn, 100},
	{"pnpm-lock.yaml", PNPM, 100},
	{"bun.lockb", Bun, 100},
	{"bun.lock", Bun, 100},
	{".npmrc", NPM, 40},
	{".yarnrc", Yarn, 40},
	{".yarnrc.yml", Yarn, 40},
	{"pnpm-workspace.yaml", PNPM, 40},
	{"bunfig.toml", Bun, 40},
}

// Detect scores the marker files in dir and returns the best match. It
// falls back to npm when no marker is present and fails when dir has no
// package.json.
func Detect(dir string) (Manager, error) {
	if _, err := os.Stat(filepath.Join(dir, "package.json")); err != nil {
		return "", fmt.Errorf("detecting package manager: %s is not a Node.js project: %w", dir, err)
	}

	scores := make(map[Manager]int)
	for _, ind := range indicators {
		if _, err := os.Stat(filepath.Join(dir, ind.file)); err == nil {
			scores[ind.manager] += ind.weight
		}
	}

	best, bestScore := NPM, 0
	// Iterate in a fixed order so ties resolve deterministically.
	for _, m := range []Manager{NPM, PNPM, Yarn, Bun} {
		if scores[m] > bestScore {
			best, bestScore = m, scores[m]
		}
	}
	return best, nil
}

// AddCommand returns the argv that adds dep as a runtime dependency.
func (m Manager) AddCommand(dep string) []string {
	switch m {
	case Yarn:
		return []string{"yarn", "add", dep}
	case PNPM:
		return []string{"pnpm", "add", dep}
	case Bun:
		return []string{"bun", "add", dep}
	default:
		return []string{"npm", "install", dep}
	}
}

// RunScript returns the argv that runs a manifest script.
func (m Manager) RunScript(script string) []string {
	switch m {
	case Yarn:
		return []string{"yarn", script}
	case PNPM:
		return []string{"pnpm", script}
	case Bun:
		return []string{"bun", "run", script}
	default:
		return []string{"npm", "run", script}
	}
}
