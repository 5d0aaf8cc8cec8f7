package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsCompatible(t *testing.T) {
	tests := []struct {
		name    string
		version string
		want    bool
	}{
		{"exact match", "0.1.0", true},
		{"patch version higher", "0.1.5", true},
		{"build metadata", "0.1.0+build", true},
		{"minor version higher", "0.2.0", false},
		{"major version higher", "1.0.0", false},
		{"short format major only", "1", false},
		{"pre-release", "0.1.0-alpha", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IsCompatible(tt.version)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsCompatible_Invalid(t *testing.T) {
	for _, v := range []string{"", "latest", "v1.x.y"} {
		t.Run(v, func(t *testing.T) {
			_, err := IsCompatible(v)
			assert.Error(t, err)
		})
	}
}
