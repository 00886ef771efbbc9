package manifest

import (
	"bytes"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// PrettierFileName is the formatter config written into new projects.
const PrettierFileName = ".prettierrc"

// prettierOptions are the fixed formatter settings, in file order.
var prettierOptions = []struct {
	key   string
	value any
}{
	{"semi", true},
	{"singleQuote", true},
	{"printWidth", 80},
	{"trailingComma", "es5"},
}

// MarshalPrettierConfig encodes the formatter settings and checks them
// against the embedded formatter schema.
func MarshalPrettierConfig() ([]byte, error) {
	out := []byte("{}")
	for _, opt := range prettierOptions {
		var err error
		if out, err = sjson.SetBytes(out, opt.key, opt.value); err != nil {
			return nil, fmt.Errorf("encoding %s: %w", PrettierFileName, err)
		}
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(out))
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", PrettierFileName, err)
	}
	result, err := Validate(PrettierSchema, doc)
	if err != nil {
		return nil, err
	}
	if err := result.Err(PrettierFileName); err != nil {
		return nil, err
	}

	return pretty.PrettyOptions(out, indentOptions), nil
}
