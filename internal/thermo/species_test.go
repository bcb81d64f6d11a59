package thermo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/thermo-data-service/internal/thermoinp"
)

func TestNewSpecies(t *testing.T) {
	c := CEA()

	t.Run("hydrogen", func(t *testing.T) {
		sp := NewSpecies(loadTestSpecies(t, "H2"), c)

		assert.Equal(t, "H2", sp.Name)
		assert.Equal(t, "tpis78", sp.RefCode)
		assert.Equal(t, 0, sp.Phase)
		assert.InDelta(t, 2.01588e-3, sp.MolarMass, 1e-12)
		assert.InDelta(t, 4124.5, sp.GasConstant, 0.1)
		assert.True(t, sp.HasFormation)
		assert.Equal(t, 0.0, sp.FormationEnthalpy)
		require.NotNil(t, sp.Model)
		tmin, tmax := sp.Model.Bounds()
		assert.Equal(t, 200.0, tmin)
		assert.Equal(t, 20000.0, tmax)
	})

	t.Run("air mixture", func(t *testing.T) {
		sp := NewSpecies(loadTestSpecies(t, "Air"), c)

		assert.InDelta(t, 28.9651159e-3, sp.MolarMass, 1e-12)
		assert.InDelta(t, 287.05, sp.GasConstant, 0.01)
		assert.Equal(t, -125.530, sp.FormationEnthalpy)
		assert.InDelta(t, -4333.8, sp.SpecificFormationEnthalpy, 0.5)
	})

	t.Run("assigned-enthalpy reactant", func(t *testing.T) {
		sp := NewSpecies(loadTestSpecies(t, "RP-1"), c)

		assert.Nil(t, sp.Model)
		assert.False(t, sp.HasFormation)
		assert.Equal(t, -24717.7, sp.AssignedEnthalpy)
		assert.Equal(t, 298.15, sp.ReferenceTemperature)
		assert.InDelta(t, 13.976183e-3, sp.MolarMass, 1e-12)
	})

	t.Run("derived gas constant", func(t *testing.T) {
		rec := thermoinp.SpeciesRecord{Name: "C3H8", MolarMass: 44.09562}
		sp := NewSpecies(rec, c)

		assert.InDelta(t, 0.04409562, sp.MolarMass, 1e-12)
		assert.InDelta(t, 188.556, sp.GasConstant, 0.001)
	})
}

func TestSpeciesEvaluate(t *testing.T) {
	c := CEA()

	t.Run("modelled species", func(t *testing.T) {
		sp := NewSpecies(loadTestSpecies(t, "e-"), c)
		p, err := sp.Evaluate(1000)

		require.NoError(t, err)
		assert.Equal(t, 2.5, p.CpND)
		assert.InDelta(t, 2.5*c.RCEA, p.CpMolar, 1e-9)
	})

	t.Run("no model", func(t *testing.T) {
		sp := NewSpecies(loadTestSpecies(t, "RP-1"), c)
		_, err := sp.Evaluate(298.15)

		require.ErrorIs(t, err, ErrNoThermoModel)
	})

	t.Run("out of range is not confused with no model", func(t *testing.T) {
		sp := NewSpecies(loadTestSpecies(t, "H2"), c)
		_, err := sp.Evaluate(25000)

		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrNoThermoModel)
		var oor *OutOfRangeError
		assert.ErrorAs(t, err, &oor)
	})
}
