package thermo

import (
	"math"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/thermo-data-service/internal/thermoinp"
)

// constantCpIntervals builds a two-interval model whose heat capacity is a
// different constant on each side of the splice, which makes interval
// selection observable.
func constantCpIntervals() []thermoinp.TemperatureInterval {
	return []thermoinp.TemperatureInterval{
		{Tmin: 200, Tmax: 1000, Coefficients: [7]float64{0, 0, 2.5, 0, 0, 0, 0}},
		{Tmin: 1000, Tmax: 6000, Coefficients: [7]float64{0, 0, 3.5, 0, 0, 0, 0}},
	}
}

func loadTestSpecies(t *testing.T, name string) thermoinp.SpeciesRecord {
	t.Helper()
	data, err := os.ReadFile("../thermoinp/testdata/thermo.inp")
	require.NoError(t, err)
	db, err := thermoinp.Decode(string(data))
	require.NoError(t, err)
	for _, c := range thermoinp.Categories {
		for _, rec := range db.ByCategory(c) {
			if rec.Name == name {
				return rec
			}
		}
	}
	t.Fatalf("species %q not in test database", name)
	return thermoinp.SpeciesRecord{}
}

func TestModelEvaluate(t *testing.T) {
	c := CEA()

	t.Run("constant heat capacity", func(t *testing.T) {
		intervals := []thermoinp.TemperatureInterval{
			{Tmin: 200, Tmax: 1000, Coefficients: [7]float64{0, 0, 3.5, 0, 0, 0, 0}},
		}
		m := NewModel(intervals, c.RCEA, 0)
		p, err := m.Evaluate(300)

		require.NoError(t, err)
		assert.Equal(t, 300.0, p.T)
		assert.Equal(t, 3.5, p.CpND)
		assert.Equal(t, 3.5, p.HND)
		assert.InDelta(t, 3.5*math.Log(300), p.SND, 1e-12)
		assert.InDelta(t, 3.5*c.RCEA, p.CpMolar, 1e-12)
		assert.InDelta(t, 3.5*c.RCEA*300, p.HMolar, 1e-9)
	})

	t.Run("specific properties scale by species gas constant", func(t *testing.T) {
		intervals := []thermoinp.TemperatureInterval{
			{Tmin: 200, Tmax: 1000, Coefficients: [7]float64{0, 0, 3.5, 0, 0, 0, 0}},
		}
		r := 287.0
		m := NewModel(intervals, c.RCEA, r)
		p, err := m.Evaluate(500)

		require.NoError(t, err)
		assert.InDelta(t, 3.5*r, p.CpSpecific, 1e-12)
		assert.InDelta(t, 3.5*r*500, p.HSpecific, 1e-9)
		assert.InDelta(t, 3.5*math.Log(500)*r, p.SSpecific, 1e-9)
	})

	t.Run("integration constants shift enthalpy and entropy", func(t *testing.T) {
		intervals := []thermoinp.TemperatureInterval{
			{
				Tmin:                 200,
				Tmax:                 2000,
				Coefficients:         [7]float64{0, 0, 2.5, 0, 0, 0, 0},
				IntegrationConstants: [2]float64{-745.375, -11.72081224},
			},
		}
		m := NewModel(intervals, c.RCEA, 0)
		p, err := m.Evaluate(1000)

		require.NoError(t, err)
		assert.Equal(t, 2.5, p.CpND)
		assert.InDelta(t, 2.5-745.375/1000, p.HND, 1e-12)
		assert.InDelta(t, 2.5*math.Log(1000)-11.72081224, p.SND, 1e-12)
	})

	t.Run("hydrogen at standard temperature", func(t *testing.T) {
		rec := loadTestSpecies(t, "H2")
		m := NewModel(rec.Intervals, c.RCEA, c.RCEA/(rec.MolarMass*c.MolarMassConst))
		p, err := m.Evaluate(298.15)

		require.NoError(t, err)
		assert.InDelta(t, 28.836, p.CpMolar, 0.02)
	})
}

func TestModelIntervalSelection(t *testing.T) {
	c := CEA()
	m := NewModel(constantCpIntervals(), c.RCEA, 0)

	tests := []struct {
		name       string
		T          float64
		expectedCp float64
	}{
		{"interior of first interval", 500, 2.5},
		{"just below the splice", 999.999, 2.5},
		{"splice belongs to the upper interval", 1000, 3.5},
		{"interior of second interval", 3000, 3.5},
		{"lower bound is included", 200, 2.5},
		{"upper bound is included", 6000, 3.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := m.Evaluate(tt.T)

			require.NoError(t, err)
			assert.Equal(t, tt.expectedCp, p.CpND)
		})
	}
}

func TestModelOutOfRange(t *testing.T) {
	c := CEA()
	m := NewModel(constantCpIntervals(), c.RCEA, 0)

	for _, T := range []float64{199.999, 6000.001, 0, -50} {
		_, err := m.Evaluate(T)

		require.Error(t, err)
		var oor *OutOfRangeError
		require.ErrorAs(t, err, &oor)
		assert.Equal(t, T, oor.T)
		assert.Equal(t, 200.0, oor.Min)
		assert.Equal(t, 6000.0, oor.Max)
	}
}

func TestModelBounds(t *testing.T) {
	c := CEA()
	m := NewModel(constantCpIntervals(), c.RCEA, 0)

	tmin, tmax := m.Bounds()
	assert.Equal(t, 200.0, tmin)
	assert.Equal(t, 6000.0, tmax)
	assert.Len(t, m.Intervals(), 2)
}

func TestModelContinuityAtSplice(t *testing.T) {
	// The database fits are constrained to agree at interval boundaries;
	// evaluating either side of a splice must give near-identical values.
	rec := loadTestSpecies(t, "H2")
	c := CEA()
	m := NewModel(rec.Intervals, c.RCEA, 0)

	below, err := m.Evaluate(1000 - 1e-9)
	require.NoError(t, err)
	at, err := m.Evaluate(1000)
	require.NoError(t, err)

	assert.InDelta(t, below.CpND, at.CpND, 1e-3)
	assert.InDelta(t, below.HND, at.HND, 1e-3)
	assert.InDelta(t, below.SND, at.SND, 1e-3)
}
