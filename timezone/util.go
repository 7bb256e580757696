// Package timezone resolves IANA timezone identifiers against the embedded
// timezone database.
//
// Resolution canonicalizes legacy and alias names ("US/Eastern", "GB",
// "Asia/Calcutta") to their preferred identifiers so that two names for the
// same zone report the same name.
package timezone

import (
	"strings"
	"time"

	// Embed the tz database so resolution does not depend on the host's zoneinfo.
	_ "time/tzdata"

	"github.com/pkg/errors"

	tzerrors "github.com/hrygo/eventtz/internal/errors"
)

// Common timezone constants
const (
	// TimezoneUTC is the UTC timezone identifier
	TimezoneUTC = "UTC"

	// TimezoneAsiaShanghai is the China Standard Time timezone
	TimezoneAsiaShanghai = "Asia/Shanghai"

	// TimezoneAmericaNewYork is the Eastern Time timezone
	TimezoneAmericaNewYork = "America/New_York"

	// TimezoneAmericaLosAngeles is the Pacific Time timezone
	TimezoneAmericaLosAngeles = "America/Los_Angeles"

	// TimezoneEuropeLondon is the GMT/BST timezone
	TimezoneEuropeLondon = "Europe/London"

	// TimezoneEuropeParis is the CET/CEST timezone
	TimezoneEuropeParis = "Europe/Paris"

	// TimezoneAsiaTokyo is the Japan Standard Time timezone
	TimezoneAsiaTokyo = "Asia/Tokyo"

	// TimezoneAustraliaSydney is the AEST/AEDT timezone
	TimezoneAustraliaSydney = "Australia/Sydney"
)

// Resolve looks up an IANA timezone identifier and returns its canonical name
// together with the loaded location.
//
// Empty names and "Local" are rejected: both depend on the host machine
// rather than the timezone database.
func Resolve(name string) (string, *time.Location, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", nil, tzerrors.InvalidTimezone(name, errors.New("empty timezone name"))
	}
	if trimmed == "Local" {
		return "", nil, tzerrors.InvalidTimezone(name, errors.New("the machine-local timezone is not a database zone"))
	}

	canonical := Canonical(trimmed)
	loc, err := locations.load(canonical)
	if err != nil {
		return "", nil, tzerrors.InvalidTimezone(name, errors.Wrapf(err, "load location %s", canonical))
	}
	return canonical, loc, nil
}

// ParseTimezone parses an IANA timezone identifier (e.g., "Asia/Shanghai").
func ParseTimezone(tz string) (*time.Location, error) {
	_, loc, err := Resolve(tz)
	if err != nil {
		return nil, err
	}
	return loc, nil
}

// MustParseTimezone parses a timezone or panics if invalid.
// Use this for constants that are known to be valid at compile time.
func MustParseTimezone(tz string) *time.Location {
	loc, err := ParseTimezone(tz)
	if err != nil {
		panic(err)
	}
	return loc
}

// IsValidTimezone checks if a timezone identifier is valid.
func IsValidTimezone(tz string) bool {
	_, _, err := Resolve(tz)
	return err == nil
}

// Canonical returns the preferred identifier for name. Names that are not
// known aliases are returned unchanged; Canonical does not check that the
// result exists.
func Canonical(name string) string {
	if canonical, ok := aliases[name]; ok {
		return canonical
	}
	return name
}
