package env

import (
	"os"
	"strings"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/apex/log/handlers/json"
)

type Environment string

const (
	Production  Environment = "production"
	Development Environment = "development"
)

func Parse(environment string) Environment {
	switch strings.ToLower(strings.TrimSpace(environment)) {
	case "", "development":
		return Development
	case "production":
		return Production
	default:
		panic("Invalid environment is set")
	}
}

// ConfigureLogging points the apex logger at a handler suited to the environment.
func ConfigureLogging(environment Environment, level string) {
	switch environment {
	case Production:
		log.SetHandler(json.New(os.Stderr))
	default:
		log.SetHandler(cli.New(os.Stderr))
	}

	parsedLevel, err := log.ParseLevel(level)
	if err != nil {
		parsedLevel = log.InfoLevel
	}

	log.SetLevel(parsedLevel)
}
