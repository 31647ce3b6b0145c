package seed

import (
	"path/filepath"

	"github.com/rs/zerolog"

	"seedcheck/internal/model"
	"seedcheck/internal/schema"
)

// Seed file names every host directory must carry.
const (
	MetaDataFile = "meta-data"
	UserDataFile = "user-data"
)

// HostValidator validates one host directory at a time against the
// shared, read-only schema.
type HostValidator struct {
	evaluator schema.Evaluator
	logger    zerolog.Logger
}

// NewHostValidator creates a HostValidator using the given schema
// evaluator.
func NewHostValidator(evaluator schema.Evaluator, logger zerolog.Logger) *HostValidator {
	return &HostValidator{
		evaluator: evaluator,
		logger:    logger.With().Str("component", "host-validator").Logger(),
	}
}

// Validate runs the meta-data and user-data checks for hostDir and
// returns the merged findings, meta-data first. Both checks always run;
// one failing file never suppresses the other.
func (v *HostValidator) Validate(hostDir string) model.HostResult {
	host := filepath.Base(filepath.Clean(hostDir))

	var errs []string
	errs = append(errs, ValidateMeta(filepath.Join(hostDir, MetaDataFile))...)
	errs = append(errs, ValidateUserData(filepath.Join(hostDir, UserDataFile), v.evaluator)...)

	v.logger.Debug().
		Str("host", host).
		Int("errors", len(errs)).
		Msg("host validated")

	return model.HostResult{Host: host, Errors: errs}
}
