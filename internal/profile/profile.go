package profile

import (
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/hrygo/eventtz/timezone"
)

// Profile is the configuration of the eventtz command line.
type Profile struct {
	// Mode can be "prod" or "dev"
	Mode string
	// Timezone is the forced timezone of the default context
	Timezone string
	// LogLevel is one of debug, info, warn, error
	LogLevel string
	// LogFormat is text or json
	LogFormat string
	// Output is text, json or yaml
	Output string
	// Version is the current version of the binary
	Version string
}

func (p *Profile) IsDev() bool {
	return p.Mode != "prod"
}

// getEnvOrDefault returns the environment variable value or the default value.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// FromEnv fills unset fields from EVENTTZ_* environment variables, falling
// back to defaults.
func (p *Profile) FromEnv() {
	fill := func(field *string, key, defaultValue string) {
		if *field == "" {
			*field = getEnvOrDefault(key, defaultValue)
		}
	}

	fill(&p.Mode, "EVENTTZ_MODE", "prod")
	fill(&p.Timezone, "EVENTTZ_TIMEZONE", timezone.TimezoneUTC)
	fill(&p.LogLevel, "EVENTTZ_LOG_LEVEL", "warn")
	fill(&p.LogFormat, "EVENTTZ_LOG_FORMAT", "text")
	fill(&p.Output, "EVENTTZ_OUTPUT", "text")
}

func (p *Profile) Validate() error {
	if p.Mode != "dev" && p.Mode != "prod" {
		p.Mode = "prod"
	}

	if !timezone.IsValidTimezone(p.Timezone) {
		return errors.Errorf("invalid timezone %q", p.Timezone)
	}
	p.Timezone = timezone.Canonical(strings.TrimSpace(p.Timezone))

	p.Output = strings.ToLower(p.Output)
	switch p.Output {
	case "text", "json", "yaml":
	default:
		return errors.Errorf("invalid output format %q", p.Output)
	}

	p.LogFormat = strings.ToLower(p.LogFormat)
	if p.LogFormat != "text" && p.LogFormat != "json" {
		return errors.Errorf("invalid log format %q", p.LogFormat)
	}

	p.LogLevel = strings.ToLower(p.LogLevel)
	switch p.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return errors.Errorf("invalid log level %q", p.LogLevel)
	}

	return nil
}
