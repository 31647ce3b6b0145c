package seed

import (
	"fmt"

	"github.com/rs/zerolog"

	"seedcheck/internal/model"
	"seedcheck/internal/report"
	"seedcheck/internal/schema"
)

// Runner drives a full validation run: schema load, host discovery,
// strictly sequential per-host validation and report rendering.
type Runner struct {
	hostsDir   string
	schemaPath string
	failFast   bool
	report     report.Writer
	logger     zerolog.Logger
}

// RunnerOption is a functional option for configuring a Runner.
type RunnerOption func(*Runner)

// WithFailFast stops host iteration at the first host with any finding.
func WithFailFast(on bool) RunnerOption {
	return func(r *Runner) {
		r.failFast = on
	}
}

// NewRunner creates a Runner reading seeds under hostsDir and the
// autoinstall schema from schemaPath, rendering through rep.
func NewRunner(hostsDir, schemaPath string, rep report.Writer, logger zerolog.Logger, opts ...RunnerOption) *Runner {
	r := &Runner{
		hostsDir:   hostsDir,
		schemaPath: schemaPath,
		report:     rep,
		logger:     logger.With().Str("component", "runner").Logger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes the whole pipeline. A schema that fails to load, or a
// hosts directory with zero candidate subdirectories, aborts with
// OutcomeFatal before any host line is printed. Otherwise hosts are
// validated one at a time in sorted-name order; the run fails if any
// host had findings and passes only when every host passed.
func (r *Runner) Run() model.RunResult {
	evaluator, err := schema.Load(r.schemaPath)
	if err != nil {
		r.logger.Error().Err(err).Str("path", r.schemaPath).Msg("schema load failed")
		r.report.WriteFatal(fmt.Sprintf("Failed to load schema: %v", err))
		return model.RunResult{Outcome: model.OutcomeFatal}
	}
	r.logger.Debug().Str("path", r.schemaPath).Msg("schema loaded")

	hostDirs := FindHostDirs(r.hostsDir)
	if len(hostDirs) == 0 {
		r.logger.Error().Str("path", r.hostsDir).Msg("no host directories found")
		r.report.WriteFatal(fmt.Sprintf("No host directories found under: %s", r.hostsDir))
		return model.RunResult{Outcome: model.OutcomeFatal}
	}
	r.logger.Debug().Int("hosts", len(hostDirs)).Msg("host directories discovered")

	validator := NewHostValidator(evaluator, r.logger)
	result := model.RunResult{Outcome: model.OutcomePass}
	for _, dir := range hostDirs {
		hostResult := validator.Validate(dir)
		result.Hosts = append(result.Hosts, hostResult)
		r.report.WriteHost(hostResult)
		if !hostResult.OK() {
			result.Outcome = model.OutcomeFail
			if r.failFast {
				r.logger.Info().Str("host", hostResult.Host).Msg("stopping at first failure")
				break
			}
		}
	}
	return result
}
