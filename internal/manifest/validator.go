package manifest

import (
	"embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/*.json
var schemaFS embed.FS

// Embedded schema names.
const (
	PackageSchema  = "package.schema.json"
	PrettierSchema = "prettierrc.schema.json"
)

var (
	compiled    map[string]*jsonschema.Schema
	compileOnce sync.Once
	compileErr  error
	printer     = message.NewPrinter(language.English)
)

// ValidationResult contains the outcome of a schema validation.
type ValidationResult struct {
	Valid  bool
	Issues []ValidationIssue
}

// ValidationIssue represents a single validation error from the schema.
type ValidationIssue struct {
	Path    string // Instance location (e.g., "/scripts/dev")
	Message string // Human-readable error message
	Keyword string // Schema keyword that failed
}

// ValidationError is returned by operations that refuse to act on a
// document that does not match its schema.
type ValidationError struct {
	Schema string
	Issues []ValidationIssue
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		if issue.Path != "" {
			parts[i] = issue.Path + ": " + issue.Message
		} else {
			parts[i] = issue.Message
		}
	}
	return printer.Sprintf("%s: %d validation issue(s): %s", e.Schema, len(e.Issues), strings.Join(parts, "; "))
}

// Err returns nil for a valid result and a *ValidationError otherwise.
func (r *ValidationResult) Err(schema string) error {
	if r.Valid {
		return nil
	}
	return &ValidationError{Schema: schema, Issues: r.Issues}
}

// getSchema compiles the embedded JSON schemas once and returns the named one.
func getSchema(name string) (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		c := jsonschema.NewCompiler()
		names := []string{PackageSchema, PrettierSchema}
		for _, n := range names {
			raw, err := schemaFS.Open("schema/" + n)
			if err != nil {
				compileErr = fmt.Errorf("opening schema %s: %w", n, err)
				return
			}
			doc, err := jsonschema.UnmarshalJSON(raw)
			raw.Close()
			if err != nil {
				compileErr = fmt.Errorf("unmarshaling schema %s: %w", n, err)
				return
			}
			if err := c.AddResource(n, doc); err != nil {
				compileErr = fmt.Errorf("adding schema resource %s: %w", n, err)
				return
			}
		}

		compiled = make(map[string]*jsonschema.Schema, len(names))
		for _, n := range names {
			s, err := c.Compile(n)
			if err != nil {
				compileErr = fmt.Errorf("compiling schema %s: %w", n, err)
				return
			}
			compiled[n] = s
		}
	})
	if compileErr != nil {
		return nil, compileErr
	}
	s, ok := compiled[name]
	if !ok {
		return nil, fmt.Errorf("unknown schema %q", name)
	}
	return s, nil
}

// Validate checks a document decoded with jsonschema.UnmarshalJSON against
// the named embedded schema. The error return is for schema compilation
// failures; validation issues are returned in the ValidationResult.
func Validate(schemaName string, doc any) (*ValidationResult, error) {
	schema, err := getSchema(schemaName)
	if err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}

	err = schema.Validate(doc)
	if err == nil {
		return &ValidationResult{Valid: true}, nil
	}

	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return nil, fmt.Errorf("unexpected validation error type: %w", err)
	}

	issues := leafIssues(ve, nil, map[string]bool{})
	if len(issues) == 0 {
		issues = []ValidationIssue{{Message: ve.Error()}}
	}
	return &ValidationResult{Valid: false, Issues: issues}, nil
}

// leafIssues flattens the cause tree into one issue per distinct failing
// keyword and location. Wrapper keywords carry no message of their own.
func leafIssues(ve *jsonschema.ValidationError, issues []ValidationIssue, seen map[string]bool) []ValidationIssue {
	for _, cause := range ve.Causes {
		issues = leafIssues(cause, issues, seen)
	}
	if len(ve.Causes) > 0 || ve.ErrorKind == nil {
		return issues
	}

	kwPath := ve.ErrorKind.KeywordPath()
	if len(kwPath) == 0 {
		return issues
	}
	issue := ValidationIssue{Keyword: kwPath[len(kwPath)-1], Message: ve.ErrorKind.LocalizedString(printer)}
	switch issue.Keyword {
	case "allOf", "$ref":
		return issues
	}
	if len(ve.InstanceLocation) > 0 {
		issue.Path = "/" + strings.Join(ve.InstanceLocation, "/")
	}

	key := issue.Path + "|" + issue.Keyword + "|" + issue.Message
	if seen[key] {
		return issues
	}
	seen[key] = true
	return append(issues, issue)
}
