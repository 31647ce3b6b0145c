// Package schema loads the autoinstall JSON schema and evaluates
// documents against it.
package schema

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Violation is a single schema-conformance failure.
type Violation struct {
	Path    string // slash-joined document path, or "(root)"
	Message string
}

// Evaluator validates a document against a fixed schema and returns
// every violation, sorted by document path. Any compliant evaluator is
// substitutable; Draft7 is the stock implementation.
type Evaluator interface {
	Evaluate(doc any) ([]Violation, error)
}

// Draft7 evaluates documents against a compiled JSON-Schema draft-7
// schema. It is immutable after Load and safe to share across hosts.
type Draft7 struct {
	compiled *gojsonschema.Schema
}

// Load reads and compiles the JSON schema at schemaPath. A missing file
// or invalid JSON is an error; callers treat it as fatal for the run.
func Load(schemaPath string) (*Draft7, error) {
	data, err := os.ReadFile(schemaPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("schema file not found: %s", schemaPath)
		}
		return nil, fmt.Errorf("failed to read schema %s: %w", schemaPath, err)
	}

	compiled, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, fmt.Errorf("invalid JSON schema at %s: %w", schemaPath, err)
	}
	return &Draft7{compiled: compiled}, nil
}

// Evaluate validates doc and returns all violations in path-sorted
// order, so repeated runs on identical input produce identical output.
func (d *Draft7) Evaluate(doc any) ([]Violation, error) {
	result, err := d.compiled.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return nil, err
	}

	violations := make([]Violation, 0, len(result.Errors()))
	for _, re := range result.Errors() {
		violations = append(violations, Violation{
			Path:    slashPath(re.Field()),
			Message: re.Description(),
		})
	}
	sort.SliceStable(violations, func(i, j int) bool {
		return violations[i].Path < violations[j].Path
	})
	return violations, nil
}

// slashPath converts the evaluator's dotted field path into the
// slash-joined form used in the report. Root-level violations keep the
// literal "(root)".
func slashPath(field string) string {
	if field == "" || field == gojsonschema.STRING_CONTEXT_ROOT {
		return "(root)"
	}
	return strings.ReplaceAll(field, ".", "/")
}
