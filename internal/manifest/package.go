package manifest

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/kevin-labs/create-kevin-app/internal/fsutil"
)

// PackageFileName is the manifest written by the project generator.
const PackageFileName = "package.json"

// The script merged into every generated manifest.
const (
	FormatScriptName    = "format"
	FormatScriptCommand = "prettier --write ."
)

// Two-space indent, one array element per line.
var indentOptions = &pretty.Options{Indent: "  ", Width: 0}

// ValidatePackage parses data and checks it against the package schema:
// the root must be an object and scripts, if present, an object.
func ValidatePackage(data []byte) error {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("parsing %s: %w", PackageFileName, err)
	}
	result, err := Validate(PackageSchema, doc)
	if err != nil {
		return err
	}
	return result.Err(PackageFileName)
}

// PatchScripts sets scripts[name] = command in the manifest bytes and
// returns the re-indented manifest. The scripts object is created if the
// manifest has none; an existing entry is replaced in place.
func PatchScripts(data []byte, name, command string) ([]byte, error) {
	if err := ValidatePackage(data); err != nil {
		return nil, err
	}
	out, err := sjson.SetBytes(data, "scripts."+escapePath(name), command)
	if err != nil {
		return nil, fmt.Errorf("setting script %q: %w", name, err)
	}
	return pretty.PrettyOptions(out, indentOptions), nil
}

// PatchFile merges one script into the manifest at path. The file is only
// rewritten once the new contents have been produced in memory.
func PatchFile(path, name, command string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("reading manifest: %w", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading manifest: %w", err)
	}

	out, err := PatchScripts(data, name, command)
	if err != nil {
		return err
	}

	if err := fsutil.WriteFileAtomic(path, out, info.Mode().Perm()); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}
	return nil
}

// escapePath quotes the sjson path metacharacters in a single key.
func escapePath(key string) string {
	var b strings.Builder
	for _, r := range key {
		switch r {
		case '.', '*', '?', '|', '#', '@', '\\', ':', '!', '=', '<', '>', '%':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
