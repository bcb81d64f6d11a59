package thermo

import (
	"errors"
	"fmt"
)

// ErrNoThermoModel is returned when properties are requested for a species
// whose record carries no temperature intervals (assigned-enthalpy-only
// reactants such as RP-1). It is distinct from an out-of-range temperature.
var ErrNoThermoModel = errors.New("thermo: species has no thermodynamic model")

// OutOfRangeError indicates a requested temperature outside a model's
// validity bounds. The model never clamps or extrapolates; the caller may
// recover by retrying within [Min, Max].
type OutOfRangeError struct {
	T        float64
	Min, Max float64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("thermo: temperature %g K outside validity bounds [%g, %g]", e.T, e.Min, e.Max)
}
