package config

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// SupportedSchemaVersion is the schema version this package understands.
const SupportedSchemaVersion = "0.1.0"

// IsCompatible reports whether a declared schemaVersion can be read by this
// package, using a caret constraint on SupportedSchemaVersion.
//
// For 0.x versions the caret only admits patch changes: 0.1.5 is compatible,
// 0.2.0 and 1.0.0 are not. Pre-releases never match.
func IsCompatible(version string) (bool, error) {
	constraint, err := semver.NewConstraint("^" + SupportedSchemaVersion)
	if err != nil {
		return false, fmt.Errorf("invalid supported version: %w", err)
	}

	v, err := semver.NewVersion(version)
	if err != nil {
		return false, fmt.Errorf("invalid schema version %q: %w", version, err)
	}

	return constraint.Check(v), nil
}
