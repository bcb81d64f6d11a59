package thermoinp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDoubleArray(t *testing.T) {
	t.Run("five-field coefficient record", func(t *testing.T) {
		line := " 4.078323210D+04-8.009186040D+02 8.214702010D+00-1.269714457D-02 1.753605076D-05"
		values, err := ParseDoubleArray(line)

		require.NoError(t, err)
		require.Len(t, values, 5)
		assert.Equal(t, 4.078323210e+04, values[0])
		assert.Equal(t, -8.009186040e+02, values[1])
		assert.Equal(t, 8.214702010e+00, values[2])
		assert.Equal(t, -1.269714457e-02, values[3])
		assert.Equal(t, 1.753605076e-05, values[4])
	})

	t.Run("packed negative fields", func(t *testing.T) {
		values, err := ParseDoubleArray("-7.453750000D+02-1.172081224D+01")

		require.NoError(t, err)
		require.Len(t, values, 2)
		assert.Equal(t, -745.375, values[0])
		assert.Equal(t, -11.72081224, values[1])
	})

	t.Run("short trailing field", func(t *testing.T) {
		values, err := ParseDoubleArray(" 2.500000000D+00 1.0D+00")

		require.NoError(t, err)
		assert.Equal(t, []float64{2.5, 1.0}, values)
	})

	t.Run("empty input", func(t *testing.T) {
		values, err := ParseDoubleArray("")

		require.NoError(t, err)
		assert.Nil(t, values)
	})

	t.Run("garbage field", func(t *testing.T) {
		_, err := ParseDoubleArray(" 2.500000000D+00 not-a-number-xx")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "field 1")
	})
}

func TestFormatDouble(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected string
	}{
		{"positive with sign blank", 4.078323210e+04, " 4.078323210D+04"},
		{"negative mantissa", -1.202860270e-08, "-1.202860270D-08"},
		{"zero", 0, " 0.000000000D+00"},
		{"integration constant", -745.375, "-7.453750000D+02"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDouble(tt.value))
			assert.Len(t, FormatDouble(tt.value), fortranFieldWidth)
		})
	}
}

func TestFormatDoubleRoundTrip(t *testing.T) {
	// Database values carry at most ten significant digits, so the
	// formatted field must parse back to the identical float64.
	values := []float64{
		4.078323210e+04, -8.009186040e+02, 8.214702010e+00,
		-1.269714457e-02, 1.753605076e-05, -1.202860270e-08,
		3.368093490e-12, 2.682484665e+03, -3.043788844e+01,
	}
	parsed, err := ParseDoubleArray(FormatDoubleArray(values))

	require.NoError(t, err)
	assert.Equal(t, values, parsed)
}
