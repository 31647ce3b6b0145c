// Package model provides data models for the seed validation tool.
package model

// Outcome classifies the overall result of a validation run.
// Its numeric value doubles as the process exit code.
type Outcome int

const (
	OutcomePass  Outcome = 0 // 全部主机通过
	OutcomeFail  Outcome = 1 // 至少一台主机校验失败
	OutcomeFatal Outcome = 2 // 致命错误（schema 加载失败或未发现主机目录）
)

// String returns a short identifier for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomePass:
		return "pass"
	case OutcomeFail:
		return "fail"
	case OutcomeFatal:
		return "fatal"
	}
	return "unknown"
}

// HostResult holds the outcome of validating a single host directory.
// Errors are ordered: meta-data findings first, then user-data findings.
// An empty Errors slice means the host passed.
type HostResult struct {
	Host   string
	Errors []string
}

// OK reports whether the host passed all checks.
func (r HostResult) OK() bool {
	return len(r.Errors) == 0
}

// RunResult aggregates per-host results for a whole validation run.
// Hosts appear in discovery order; under fail-fast the slice stops at
// the first failing host.
type RunResult struct {
	Hosts   []HostResult
	Outcome Outcome
}

// FailedHosts returns the names of hosts that had validation errors.
func (r RunResult) FailedHosts() []string {
	var failed []string
	for _, h := range r.Hosts {
		if !h.OK() {
			failed = append(failed, h.Host)
		}
	}
	return failed
}
