package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProjectID(t *testing.T) {
	id, err := ParseProjectID(" 12 ")
	require.NoError(t, err)
	assert.Equal(t, 12, id)

	for _, input := range []string{"", "0", "-3", "abc", "1.5"} {
		_, err := ParseProjectID(input)
		assert.ErrorIs(t, err, ErrInvalidInput, "input %q", input)
	}
}

func TestParseHours(t *testing.T) {
	tests := []struct {
		input string
		want  string
		valid bool
	}{
		{input: "", valid: false},
		{input: "   ", valid: false},
		{input: "12.5", want: "12.50", valid: true},
		{input: "3", want: "3.00", valid: true},
		{input: "1.005", want: "1.01", valid: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseHours(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.valid, got.Valid)
			if tt.valid {
				assert.Equal(t, tt.want, got.Decimal.StringFixed(2))
			}
		})
	}

	_, err := ParseHours("ten")
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.EqualError(t, err, "invalid input: ten is not a valid decimal number")
}

func TestParseOptionalInt(t *testing.T) {
	got, err := ParseOptionalInt("")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = ParseOptionalInt(" 4 ")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 4, *got)

	_, err = ParseOptionalInt("four")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
