package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is a singleton validator instance
var validate = validator.New()

// Check names, used as report count keys and metric labels.
const (
	CheckLatitude  = "latitude"
	CheckLongitude = "longitude"
	CheckDistance  = "distance"
	CheckEndpoint  = "endpoint"
)

// Config controls which integrity checks a Validator runs. Coordinate
// bounds checks are always on; the structural checks are opt-in so the
// base contract stays exactly the coordinate scan.
type Config struct {
	// CheckDistances enables per-edge distance checks (NaN, infinite or
	// negative distances). Requires a working EdgeDistance accessor.
	CheckDistances bool `yaml:"check_distances"`

	// CheckEndpoints enables dangling-endpoint checks: every node an edge
	// touches must exist in the node set.
	CheckEndpoints bool `yaml:"check_endpoints"`

	// MaxProblems caps the report length; 0 means unlimited. Scanning
	// stops once the cap is reached.
	MaxProblems int `yaml:"max_problems" validate:"gte=0"`
}

// DefaultConfig returns the configuration used by GetProblems: coordinate
// bounds only, unlimited report.
func DefaultConfig() Config {
	return Config{}
}

// Validate checks the configuration using struct tags.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// formatValidationError converts validator errors to a more user-friendly format
func formatValidationError(err error) error {
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	// Return the first validation error in a user-friendly format
	for _, e := range validationErrs {
		field := e.Field()
		tag := e.Tag()
		param := e.Param()

		switch tag {
		case "required":
			return fmt.Errorf("%s: field is required", field)
		case "gte":
			return fmt.Errorf("%s: must be at least %s", field, param)
		case "lte":
			return fmt.Errorf("%s: must not exceed %s", field, param)
		default:
			return fmt.Errorf("%s: validation failed (%s)", field, tag)
		}
	}

	return err
}
