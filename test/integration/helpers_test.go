//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir string // HOME, holds .create-kevin-app/
	BinDir  string // fake npx/npm/pnpm, prepended to PATH
	LogDir  string // where the fakes record their invocations
	WorkDir string // where projects get generated
}

const fakeManifest = `{
  "name": "placeholder",
  "version": "0.1.0",
  "private": true,
  "scripts": {
    "dev": "next dev --turbopack",
    "build": "next build",
    "start": "next start",
    "lint": "next lint"
  },
  "dependencies": {
    "react": "^19.0.0",
    "next": "15.1.0"
  }
}
`

// fakeNpx mimics create-next-app: it creates <name>/package.json, plus a
// lockfile when FAKE_LOCKFILE is set. FAKE_NPX_EXIT forces a failure.
const fakeNpx = `#!/bin/sh
echo "$@" >> "$FAKE_LOG_DIR/npx.log"
if [ -n "$FAKE_NPX_EXIT" ]; then
  exit "$FAKE_NPX_EXIT"
fi
mkdir -p "$2"
cp "$FAKE_LOG_DIR/package.json" "$2/package.json"
if [ -n "$FAKE_LOCKFILE" ]; then
  touch "$2/$FAKE_LOCKFILE"
fi
`

// fakeManager records "<dir>|<argv>" for each call.
const fakeManager = `#!/bin/sh
echo "$(pwd)|$(basename "$0") $@" >> "$FAKE_LOG_DIR/pm.log"
if [ -n "$FAKE_PM_EXIT" ]; then
  exit "$FAKE_PM_EXIT"
fi
`

// setupTestEnv creates isolated temp directories, installs the fake tools
// on PATH and points HOME at a sandbox. The env vars are restored after the
// test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake tools are POSIX shell scripts")
	}

	env := &testEnv{
		HomeDir: t.TempDir(),
		BinDir:  t.TempDir(),
		LogDir:  t.TempDir(),
		WorkDir: t.TempDir(),
	}

	t.Setenv("HOME", env.HomeDir)
	t.Setenv("FAKE_LOG_DIR", env.LogDir)
	t.Setenv("PATH", env.BinDir+string(os.PathListSeparator)+os.Getenv("PATH"))

	writeFile(t, filepath.Join(env.LogDir, "package.json"), fakeManifest)
	writeExecutable(t, filepath.Join(env.BinDir, "npx"), fakeNpx)
	for _, pm := range []string{"npm", "pnpm", "yarn", "bun"} {
		writeExecutable(t, filepath.Join(env.BinDir, pm), fakeManager)
	}

	return env
}

// logLines returns the lines recorded by a fake tool, or nil if it never ran.
func (e *testEnv) logLines(t *testing.T, name string) []string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(e.LogDir, name))
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		t.Fatalf("reading %s: %v", name, err)
	}
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func writeExecutable(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0755); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}
