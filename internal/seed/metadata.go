package seed

import (
	"fmt"
	"strings"
)

// ValidateMeta checks the meta-data file at metaPath: it must exist and
// be non-empty, and must carry non-empty instance-id and local-hostname
// keys. Both key checks run independently so all findings are reported
// together. A non-empty instance-id that does not start with
// local-hostname triggers an advisory finding only.
func ValidateMeta(metaPath string) []string {
	text, err := ReadText(metaPath)
	if err != nil {
		return []string{fmt.Sprintf("meta-data: unreadable (%v)", err)}
	}
	if text == "" {
		return []string{"meta-data missing or empty"}
	}

	data := ParseKeyValues(text)
	instanceID := strings.TrimSpace(data["instance-id"])
	localHostname := strings.TrimSpace(data["local-hostname"])

	var errs []string
	if instanceID == "" {
		errs = append(errs, "meta-data: missing instance-id")
	}
	if localHostname == "" {
		errs = append(errs, "meta-data: missing local-hostname")
	}
	if instanceID != "" && localHostname != "" && !strings.HasPrefix(instanceID, localHostname) {
		errs = append(errs, "meta-data: instance-id should start with local-hostname (hint from sample)")
	}
	return errs
}
