package thermo

import (
	"github.com/couchcryptid/thermo-data-service/internal/thermoinp"
)

// Species is a chemical species with SI-normalized derived constants and,
// when the source record carries temperature intervals, an attached
// property model.
type Species struct {
	Name     string
	Comments string
	RefCode  string
	Formula  []thermoinp.ElementCount
	Phase    int // 0 = gas, nonzero = condensed phase index

	MolarMass   float64 // kg/mol (source kg/kmol normalized by the molar mass constant)
	GasConstant float64 // specific gas constant R = Ru/M, J/kg-K

	// FormationEnthalpy (J/mol) and SpecificFormationEnthalpy (J/kg) are
	// meaningful only when HasFormation is true, i.e. for species with a
	// polynomial model.
	FormationEnthalpy         float64
	SpecificFormationEnthalpy float64
	HasFormation              bool

	// AssignedEnthalpy and ReferenceTemperature are the fixed reference
	// data of zero-interval species; meaningful only when Model is nil.
	AssignedEnthalpy     float64
	ReferenceTemperature float64

	// Model is nil for species without tabulated intervals.
	Model *Model
}

// NewSpecies derives a Species from a parsed record and physical constants.
func NewSpecies(rec thermoinp.SpeciesRecord, c Constants) *Species {
	sp := &Species{
		Name:      rec.Name,
		Comments:  rec.Comments,
		RefCode:   rec.RefCode,
		Formula:   rec.Formula,
		Phase:     rec.Phase,
		MolarMass: rec.MolarMass * c.MolarMassConst,
	}
	sp.GasConstant = c.RCEA / sp.MolarMass

	if rec.IntervalCount > 0 {
		sp.FormationEnthalpy = rec.FormationEnthalpy
		sp.SpecificFormationEnthalpy = rec.FormationEnthalpy / sp.MolarMass
		sp.HasFormation = true
		sp.Model = NewModel(rec.Intervals, c.RCEA, sp.GasConstant)
	} else {
		sp.AssignedEnthalpy = rec.AssignedEnthalpy
		sp.ReferenceTemperature = rec.ReferenceTemperature
	}
	return sp
}

// Evaluate computes the property snapshot at temperature T. Species without
// a model fail with ErrNoThermoModel, distinctly from an out-of-range
// temperature.
func (s *Species) Evaluate(T float64) (Properties, error) {
	if s.Model == nil {
		return Properties{}, ErrNoThermoModel
	}
	return s.Model.Evaluate(T)
}
