package fsutil

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func assertNoTempFiles(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".cka-tmp-") {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}
}

func TestWriteFileAtomic_Basic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".prettierrc")

	data := []byte(`{"semi": true}`)
	if err := WriteFileAtomic(path, data, 0644); err != nil {
		t.Fatalf("WriteFileAtomic failed: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(got) != string(data) {
		t.Errorf("content = %q, want %q", got, data)
	}
	assertNoTempFiles(t, dir)
}

func TestWriteFileAtomic_Overwrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "README.md")

	if err := os.WriteFile(path, []byte("# old readme with more bytes than the new one"), 0644); err != nil {
		t.Fatal(err)
	}

	updated := []byte("# new")
	if err := WriteFileAtomic(path, updated, 0644); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(got) != string(updated) {
		t.Errorf("content = %q, want %q", got, updated)
	}
	assertNoTempFiles(t, dir)
}

func TestWriteFileAtomic_Permissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits not supported on Windows")
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "package.json")

	if err := WriteFileAtomic(path, []byte("{}"), 0600); err != nil {
		t.Fatalf("WriteFileAtomic failed: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("perm = %o, want 600", perm)
	}
}

func TestWriteFileAtomic_MissingParent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "missing", "package.json")

	if err := WriteFileAtomic(path, []byte("{}"), 0644); err == nil {
		t.Fatal("expected error when parent directory is missing")
	}
}

func TestDirExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f")
	if err := os.WriteFile(file, nil, 0644); err != nil {
		t.Fatal(err)
	}

	if !DirExists(dir) {
		t.Error("DirExists(dir) = false, want true")
	}
	if DirExists(file) {
		t.Error("DirExists(file) = true, want false")
	}
	if DirExists(filepath.Join(dir, "nope")) {
		t.Error("DirExists(missing) = true, want false")
	}
}
