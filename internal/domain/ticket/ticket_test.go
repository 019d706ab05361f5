package ticket

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTitle(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantError bool
		expected  string
	}{
		{
			name:      "valid title",
			input:     "Impressora não imprime",
			wantError: false,
			expected:  "Impressora não imprime",
		},
		{
			name:      "accented title at the upper bound",
			input:     strings.Repeat("ã", 200),
			wantError: false,
			expected:  strings.Repeat("ã", 200),
		},
		{
			name:      "accented title over the upper bound",
			input:     strings.Repeat("ã", 201),
			wantError: true,
		},
		{
			name:      "too short",
			input:     "abcd",
			wantError: true,
		},
		{
			name:      "punctuation only",
			input:     "?!?!?!",
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateTitle(tt.input)
			if tt.wantError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestValidateDescription(t *testing.T) {
	assert.NoError(t, ValidateDescription(strings.Repeat("é", 2000)))
	assert.Error(t, ValidateDescription(strings.Repeat("é", 2001)))
	assert.Error(t, ValidateDescription("curta"))
	assert.Error(t, ValidateDescription("   "))
}
