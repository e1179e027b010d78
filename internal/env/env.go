package env

import (
	"os"
	"strings"

	"github.com/vault51/basemodel/internal/envvar"
)

// Environment is the runtime environment the process runs in.
type Environment string

const (
	// Development enables human-readable, verbose logging.
	Development Environment = "development"

	// Production enables structured JSON logging at info level.
	Production Environment = "production"
)

// FromEnv reads the environment from BASEMODEL_ENV, defaulting to
// Development when unset or unrecognized.
func FromEnv() Environment {
	switch strings.ToLower(os.Getenv(envvar.BaseModelEnv)) {
	case "production", "prod":
		return Production
	default:
		return Development
	}
}
