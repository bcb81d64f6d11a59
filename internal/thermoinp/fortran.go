package thermoinp

import (
	"fmt"
	"strconv"
	"strings"
)

// fortranFieldWidth is the fixed width of one Fortran-style double field.
const fortranFieldWidth = 16

// ParseDoubleArray splits s into consecutive 16-character fields, replaces
// the Fortran exponent marker 'D' with 'e', and parses each field as a
// float64. The final field may be shorter than 16 characters when the input
// length is not a multiple of 16.
func ParseDoubleArray(s string) ([]float64, error) {
	if s == "" {
		return nil, nil
	}
	values := make([]float64, 0, (len(s)+fortranFieldWidth-1)/fortranFieldWidth)
	for i := 0; i < len(s); i += fortranFieldWidth {
		end := i + fortranFieldWidth
		if end > len(s) {
			end = len(s)
		}
		field := strings.ReplaceAll(s[i:end], "D", "e")
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, fmt.Errorf("field %d (%q): not a valid double", i/fortranFieldWidth, s[i:end])
		}
		values = append(values, v)
	}
	return values, nil
}

// FormatDouble renders v as a 16-character Fortran-style double, the exact
// field format used by the source database ("-1.202860270D-08").
func FormatDouble(v float64) string {
	return strings.Replace(fmt.Sprintf("% .9E", v), "E", "D", 1)
}

// FormatDoubleArray concatenates the Fortran-style renderings of vs.
func FormatDoubleArray(vs []float64) string {
	var b strings.Builder
	b.Grow(len(vs) * fortranFieldWidth)
	for _, v := range vs {
		b.WriteString(FormatDouble(v))
	}
	return b.String()
}
