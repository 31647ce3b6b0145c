package seed

import (
	"fmt"
	"regexp"

	"seedcheck/internal/schema"
)

// cloudConfigMarker matches the #cloud-config directive line anywhere in
// the text, allowing leading whitespace, case-insensitively.
var cloudConfigMarker = regexp.MustCompile(`(?im)^\s*#cloud-config\b`)

// ValidateUserData checks the user-data file at userPath: cloud-config
// marker, YAML shape, the autoinstall section and its conformance to the
// supplied schema.
//
// A parse failure, a non-mapping root, or a missing or non-mapping
// autoinstall key suppresses all later checks for the file. A missing
// marker or missing identity section does not: schema validation still
// runs and its findings are appended after the identity finding.
func ValidateUserData(userPath string, evaluator schema.Evaluator) []string {
	text, err := ReadText(userPath)
	if err != nil {
		return []string{fmt.Sprintf("user-data: unreadable (%v)", err)}
	}
	if text == "" {
		return []string{"user-data missing or empty"}
	}

	var errs []string
	if !cloudConfigMarker.MatchString(text) {
		errs = append(errs, "user-data: first line should start with #cloud-config")
	}

	doc, err := ParseDocument(text)
	if err != nil {
		return []string{fmt.Sprintf("user-data: invalid YAML (%v)", err)}
	}
	if doc.IsNull() {
		// A comment-only document parses to null; treat it as an empty
		// mapping so the autoinstall check still reports.
		errs = append(errs, "user-data: missing top-level 'autoinstall' key")
		return errs
	}
	if !doc.IsMapping() {
		return []string{"user-data: expected a YAML mapping at top-level"}
	}

	autoinstall, ok := doc.Get("autoinstall")
	if !ok {
		errs = append(errs, "user-data: missing top-level 'autoinstall' key")
		return errs
	}
	if !autoinstall.IsMapping() {
		errs = append(errs, "user-data: 'autoinstall' must be a mapping/object")
		return errs
	}

	// The schema treats identity as optional; the seeds require it.
	if _, ok := autoinstall.Get("identity"); !ok {
		if suggestion := BestMatch("identity", autoinstall.Keys(), suggestThreshold); suggestion != "" {
			errs = append(errs, fmt.Sprintf("user-data.autoinstall: missing 'identity' (did you mean '%s'?)", suggestion))
		} else {
			errs = append(errs, "user-data.autoinstall: missing 'identity'")
		}
	}

	violations, err := evaluator.Evaluate(autoinstall.Interface())
	if err != nil {
		errs = append(errs, fmt.Sprintf("user-data.autoinstall: schema evaluation failed (%v)", err))
		return errs
	}
	for _, v := range violations {
		errs = append(errs, fmt.Sprintf("user-data.autoinstall: %s: %s", v.Path, v.Message))
	}
	return errs
}
