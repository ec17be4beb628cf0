package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		input     Config
		expectErr bool
		expected  Mode
	}{
		{
			name:     "defaults to format mode",
			input:    Config{Path: "x.sln"},
			expected: ModeFormat,
		},
		{
			name:     "explicit check mode",
			input:    Config{Path: "x.sln", Mode: ModeCheck},
			expected: ModeCheck,
		},
		{
			name:      "path is required",
			input:     Config{Mode: ModeCheck},
			expectErr: true,
		},
		{
			name:      "unknown mode rejected",
			input:     Config{Path: "x.sln", Mode: Mode("explode")},
			expectErr: true,
		},
		{
			name:      "output path outside format mode rejected",
			input:     Config{Path: "x.sln", Mode: ModeCheck, OutputPath: "out.sln"},
			expectErr: true,
		},
		{
			name:     "output path with format mode accepted",
			input:    Config{Path: "x.sln", OutputPath: "out.sln"},
			expected: ModeFormat,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := NewConfig(tc.input)

			if tc.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, cfg.Mode)
		})
	}
}
