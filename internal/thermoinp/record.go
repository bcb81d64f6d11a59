package thermoinp

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ElementCount is one (symbol, atom count) pair of a species formula.
// Counts are real-valued: reference mixtures such as Air carry fractional
// atom counts.
type ElementCount struct {
	Symbol string
	Atoms  float64
}

// TemperatureInterval is one temperature sub-range over which a fixed
// 7-coefficient polynomial models the species' heat capacity.
type TemperatureInterval struct {
	Tmin float64 // K
	Tmax float64 // K

	// CoefficientCount and Exponents are format metadata: the number of
	// populated polynomial terms and the nominal power of T each multiplies.
	// The evaluator assumes the canonical fixed set {-2,-1,0,1,2,3,4}.
	CoefficientCount int
	Exponents        []float64

	// DeltaH is the reference enthalpy difference H(298.15)-H(0), retained
	// as a consistency-check value; it plays no part in property evaluation.
	DeltaH float64

	Coefficients         [7]float64 // a1..a7, aligned to the canonical exponents
	IntegrationConstants [2]float64 // b1 (enthalpy), b2 (entropy)
}

// SpeciesRecord is one fully parsed species dataset. Records are built once
// at database-load time and never mutated.
//
// The two enthalpy reference fields are mutually exclusive on IntervalCount:
// FormationEnthalpy holds the heat of formation when IntervalCount > 0;
// AssignedEnthalpy and ReferenceTemperature are meaningful only when
// IntervalCount == 0 (and Intervals is then empty).
type SpeciesRecord struct {
	Name          string
	Comments      string
	IntervalCount int
	RefCode       string
	Formula       []ElementCount
	Phase         int     // 0 = gas, nonzero = condensed phase index
	MolarMass     float64 // kg/kmol

	FormationEnthalpy    float64 // J/mol, IntervalCount > 0
	AssignedEnthalpy     float64 // IntervalCount == 0
	ReferenceTemperature float64 // K, IntervalCount == 0

	Intervals []TemperatureInterval

	// Raw is the unparsed source block, retained so catalog subsets can be
	// re-emitted byte-for-byte.
	Raw string
}

// Column offsets of the species body line (line 1 of a dataset).
const (
	bodyIntervalCountCol = 1
	bodyRefCodeStart     = 2
	bodyRefCodeEnd       = 10
	bodyFormulaStart     = 10
	bodyFormulaEnd       = 50
	bodyFormulaStride    = 8
	bodySymbolWidth      = 2
	bodyPhaseCol         = 51
	bodyMolarMassStart   = 52
	bodyMolarMassEnd     = 65
	bodyEnthalpyStart    = 65
)

// Column offsets of the interval metadata line.
const (
	intervalBoundsEnd     = 22
	intervalNCoeffCol     = 22
	intervalExponentStart = 23
	intervalExponentEnd   = 63
	intervalDeltaHStart   = 65
)

// Byte range of line 2 of an interval that carries the trailing
// coefficients and the integration constants.
const (
	intervalTailCoeffEnd  = 32
	intervalConstantStart = 48
)

// ParseSpecies decodes one per-species raw text block into a SpeciesRecord.
func ParseSpecies(block string) (SpeciesRecord, error) {
	lines := strings.Split(block, "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) < 2 {
		return SpeciesRecord{}, formatErrf("", "dataset", fmt.Errorf("expected at least 2 lines, got %d", len(lines)))
	}

	rec := SpeciesRecord{Raw: block}
	rec.Name, rec.Comments = parseHeader(lines[0])

	// The body's trailing real is the formation enthalpy or the assigned
	// enthalpy depending on the interval count; route it below.
	refEnthalpy, err := parseBody(&rec, lines[1])
	if err != nil {
		return SpeciesRecord{}, err
	}

	tail := lines[2:]
	if rec.IntervalCount > 0 {
		if len(tail)%3 != 0 {
			return SpeciesRecord{}, formatErrf(rec.Name, "interval records",
				fmt.Errorf("%d lines not divisible by 3", len(tail)))
		}
		if len(tail)/3 != rec.IntervalCount {
			return SpeciesRecord{}, formatErrf(rec.Name, "interval records",
				fmt.Errorf("%d interval groups, header declares %d", len(tail)/3, rec.IntervalCount))
		}
		rec.Intervals = make([]TemperatureInterval, 0, rec.IntervalCount)
		for i := 0; i < len(tail); i += 3 {
			interval, err := parseInterval(rec.Name, tail[i:i+3])
			if err != nil {
				return SpeciesRecord{}, err
			}
			rec.Intervals = append(rec.Intervals, interval)
		}
		rec.FormationEnthalpy = refEnthalpy
		return rec, nil
	}

	// Zero intervals: a single trailing line carries the reference
	// temperature as its first whitespace-delimited token.
	if len(tail) != 1 {
		return SpeciesRecord{}, formatErrf(rec.Name, "reference temperature record",
			fmt.Errorf("expected 1 line, got %d", len(tail)))
	}
	fields := strings.Fields(tail[0])
	if len(fields) == 0 {
		return SpeciesRecord{}, formatErrf(rec.Name, "reference temperature", errors.New("empty record"))
	}
	tref, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return SpeciesRecord{}, formatErrf(rec.Name, "reference temperature", err)
	}
	rec.AssignedEnthalpy = refEnthalpy
	rec.ReferenceTemperature = tref
	return rec, nil
}

// parseHeader splits the first record into name and comments.
func parseHeader(line string) (name, comments string) {
	if len(line) <= 18 {
		return strings.TrimSpace(line), ""
	}
	return strings.TrimSpace(line[:18]), strings.TrimSpace(line[18:])
}

func parseBody(rec *SpeciesRecord, line string) (refEnthalpy float64, err error) {
	if len(line) <= bodyEnthalpyStart {
		return 0, formatErrf(rec.Name, "body record", fmt.Errorf("line too short (%d chars)", len(line)))
	}

	n, err := strconv.Atoi(string(line[bodyIntervalCountCol]))
	if err != nil {
		return 0, formatErrf(rec.Name, "interval count", err)
	}
	rec.IntervalCount = n
	rec.RefCode = strings.TrimSpace(line[bodyRefCodeStart:bodyRefCodeEnd])

	for i := bodyFormulaStart; i < bodyFormulaEnd; i += bodyFormulaStride {
		symbol := strings.TrimSpace(line[i : i+bodySymbolWidth])
		count, err := strconv.ParseFloat(strings.TrimSpace(line[i+bodySymbolWidth:i+bodyFormulaStride]), 64)
		if err != nil {
			return 0, formatErrf(rec.Name, "formula atom count", err)
		}
		if count == 0 {
			continue
		}
		rec.Formula = append(rec.Formula, ElementCount{Symbol: symbol, Atoms: count})
	}

	phase, err := strconv.Atoi(string(line[bodyPhaseCol]))
	if err != nil {
		return 0, formatErrf(rec.Name, "phase", err)
	}
	rec.Phase = phase

	rec.MolarMass, err = strconv.ParseFloat(strings.TrimSpace(line[bodyMolarMassStart:bodyMolarMassEnd]), 64)
	if err != nil {
		return 0, formatErrf(rec.Name, "molar mass", err)
	}

	refEnthalpy, err = strconv.ParseFloat(strings.TrimSpace(line[bodyEnthalpyStart:]), 64)
	if err != nil {
		return 0, formatErrf(rec.Name, "reference enthalpy", err)
	}
	return refEnthalpy, nil
}

// parseInterval decodes exactly three fixed-width lines into one
// TemperatureInterval.
func parseInterval(species string, lines []string) (TemperatureInterval, error) {
	meta, array1, array2 := lines[0], lines[1], lines[2]
	var iv TemperatureInterval

	if len(meta) <= intervalDeltaHStart {
		return iv, formatErrf(species, "interval metadata", fmt.Errorf("line too short (%d chars)", len(meta)))
	}

	bounds := strings.Fields(meta[:intervalBoundsEnd])
	if len(bounds) != 2 {
		return iv, formatErrf(species, "interval bounds", fmt.Errorf("expected 2 values, got %d", len(bounds)))
	}
	var err error
	if iv.Tmin, err = strconv.ParseFloat(bounds[0], 64); err != nil {
		return iv, formatErrf(species, "interval bounds", err)
	}
	if iv.Tmax, err = strconv.ParseFloat(bounds[1], 64); err != nil {
		return iv, formatErrf(species, "interval bounds", err)
	}
	if iv.Tmin >= iv.Tmax {
		return iv, formatErrf(species, "interval bounds",
			fmt.Errorf("Tmin %g not below Tmax %g", iv.Tmin, iv.Tmax))
	}

	if iv.CoefficientCount, err = strconv.Atoi(string(meta[intervalNCoeffCol])); err != nil {
		return iv, formatErrf(species, "coefficient count", err)
	}
	for _, f := range strings.Fields(meta[intervalExponentStart:intervalExponentEnd]) {
		exp, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return iv, formatErrf(species, "exponents", err)
		}
		iv.Exponents = append(iv.Exponents, exp)
	}
	if iv.DeltaH, err = strconv.ParseFloat(strings.TrimSpace(meta[intervalDeltaHStart:]), 64); err != nil {
		return iv, formatErrf(species, "reference enthalpy delta", err)
	}

	// a1..a5 span the full second line; a6, a7 open the third.
	head, err := ParseDoubleArray(array1)
	if err != nil {
		return iv, formatErrf(species, "coefficients", err)
	}
	if len(array2) < intervalConstantStart {
		return iv, formatErrf(species, "interval constants record",
			fmt.Errorf("line too short (%d chars)", len(array2)))
	}
	tail, err := ParseDoubleArray(array2[:intervalTailCoeffEnd])
	if err != nil {
		return iv, formatErrf(species, "coefficients", err)
	}
	coeffs := append(head, tail...)
	if len(coeffs) != len(iv.Coefficients) {
		return iv, formatErrf(species, "coefficients",
			fmt.Errorf("expected %d values, got %d", len(iv.Coefficients), len(coeffs)))
	}
	copy(iv.Coefficients[:], coeffs)

	consts, err := ParseDoubleArray(array2[intervalConstantStart:])
	if err != nil {
		return iv, formatErrf(species, "integration constants", err)
	}
	if len(consts) != len(iv.IntegrationConstants) {
		return iv, formatErrf(species, "integration constants",
			fmt.Errorf("expected %d values, got %d", len(iv.IntegrationConstants), len(consts)))
	}
	copy(iv.IntegrationConstants[:], consts)

	return iv, nil
}
