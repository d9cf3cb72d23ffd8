// Package schema validates serialized index-map documents against a
// versioned JSON Schema.
//
// Validation is structural only: the schema is treated opaquely (any draft
// gojsonschema understands), and a failed validation is a normal result
// carried in the Report, not an error. Errors are reserved for operational
// failures: missing files and unparseable JSON.
package schema

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/srappel/oimkit/errors"
)

// Violation is one structural failure, qualified by the JSON path at which
// it occurred.
type Violation struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// String renders the violation as "path: message".
func (v Violation) String() string {
	return v.Path + ": " + v.Message
}

// Report is the outcome of a validation run. An empty report means the
// document conforms to the schema.
type Report []Violation

// Valid reports whether the document conformed.
func (r Report) Valid() bool {
	return len(r) == 0
}

// String renders the report one violation per line.
func (r Report) String() string {
	lines := make([]string, len(r))
	for i, v := range r {
		lines[i] = v.String()
	}
	return strings.Join(lines, "\n")
}

// ValidateBytes validates a JSON document against a JSON Schema, both
// supplied as raw bytes. Neither input is mutated.
//
// Both inputs are parsed before structural validation is attempted; a parse
// failure reports which of the two inputs was malformed and why.
func ValidateBytes(document, schemaData []byte) (Report, error) {
	if err := checkParses("document", document); err != nil {
		return nil, err
	}
	if err := checkParses("schema", schemaData); err != nil {
		return nil, err
	}

	schemaLoader := gojsonschema.NewBytesLoader(schemaData)
	documentLoader := gojsonschema.NewBytesLoader(document)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, errors.WrapFatal(errors.ErrMalformedInput, "Validator", "ValidateBytes",
			"schema is not a usable JSON Schema: "+err.Error())
	}

	if result.Valid() {
		return Report{}, nil
	}

	report := make(Report, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		report = append(report, Violation{
			Path:    desc.Field(),
			Message: desc.Description(),
		})
	}
	return report, nil
}

// ValidateFile validates the document at documentPath against the schema at
// schemaPath. A missing file on either side is reported, with the path,
// before any parsing is attempted.
func ValidateFile(documentPath, schemaPath string) (Report, error) {
	document, err := readExisting("document", documentPath)
	if err != nil {
		return nil, err
	}
	schemaData, err := readExisting("schema", schemaPath)
	if err != nil {
		return nil, err
	}
	return ValidateBytes(document, schemaData)
}

// checkParses verifies the bytes are well-formed JSON, attributing failure
// to the named source.
func checkParses(source string, data []byte) error {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return errors.WrapFatal(errors.ErrMalformedInput, "Validator", "ValidateBytes",
			fmt.Sprintf("parse %s: %v", source, err))
	}
	return nil
}

// readExisting reads a file, distinguishing a missing path from other read
// failures.
func readExisting(source, path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapFatal(errors.ErrResourceNotFound, "Validator", "ValidateFile",
				fmt.Sprintf("%s %s", source, path))
		}
		return nil, errors.Wrap(err, "Validator", "ValidateFile", "read "+source)
	}
	return data, nil
}
