// Package report renders validation results. It defines the Writer
// interface and provides the line-oriented console implementation.
package report

import (
	"seedcheck/internal/model"
)

// Writer renders validation results as they are produced. Hosts are
// reported one at a time, in discovery order.
type Writer interface {
	// WriteHost renders the outcome for a single host: a pass marker,
	// or a failure header followed by one line per finding.
	WriteHost(result model.HostResult)

	// WriteFatal renders a run-aborting condition. No host lines follow.
	WriteFatal(message string)
}
