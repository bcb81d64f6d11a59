// Command validate performs data integrity checks over a thermo.inp source
// file: marker sequence, per-species parse, interval ordering, contiguity
// and coverage, numeric round-trip through the Fortran double codec, and
// reference-data consistency for zero-interval species.
//
// Usage:
//
//	go run ./cmd/validate -db data/thermo.inp
package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/couchcryptid/thermo-data-service/internal/thermoinp"
)

// phase tracks pass/fail for one validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	dbPath := flag.String("db", "data/thermo.inp", "path to the thermo.inp source file")
	maxErrors := flag.Int("max-errors", 10, "maximum errors to print per phase")
	flag.Parse()

	raw, err := os.ReadFile(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read %s: %v\n", *dbPath, err)
		os.Exit(1)
	}

	phases := []*phase{
		checkDecode(string(raw)),
	}
	db, decodeErrs := thermoinp.DecodeSkipMalformed(string(raw))
	if db != nil {
		phases = append(phases,
			checkParseErrors(decodeErrs),
			checkIntervals(db),
			checkRoundTrip(db),
			checkZeroInterval(db),
		)
		reportCounts(db)
	}

	failed := false
	for _, p := range phases {
		status := "PASS"
		if !p.passed() {
			status = "FAIL"
			failed = true
		}
		fmt.Printf("%-40s %s\n", p.name, status)
		for i, msg := range p.errors {
			if i == *maxErrors {
				fmt.Printf("    ... %d more\n", len(p.errors)-i)
				break
			}
			fmt.Printf("    %s\n", msg)
		}
	}
	if failed {
		os.Exit(1)
	}
}

// checkDecode verifies the category marker sequence is present.
func checkDecode(text string) *phase {
	p := &phase{name: "category markers"}
	if _, _, _, err := thermoinp.SplitCategories(text); err != nil {
		p.errorf("%v", err)
	}
	return p
}

func checkParseErrors(errs []error) *phase {
	p := &phase{name: "species parse"}
	for _, err := range errs {
		p.errorf("%v", err)
	}
	return p
}

// checkIntervals verifies that every species' intervals form a contiguous,
// non-overlapping ascending partition of its validity bounds.
func checkIntervals(db *thermoinp.Database) *phase {
	p := &phase{name: "interval coverage"}
	forEachSpecies(db, func(rec thermoinp.SpeciesRecord) {
		if len(rec.Intervals) != rec.IntervalCount {
			p.errorf("%s: %d intervals parsed, header declares %d",
				rec.Name, len(rec.Intervals), rec.IntervalCount)
		}
		for i, iv := range rec.Intervals {
			if iv.Tmin >= iv.Tmax {
				p.errorf("%s interval %d: bounds not ascending (%g, %g)", rec.Name, i, iv.Tmin, iv.Tmax)
			}
			if i == 0 {
				continue
			}
			if prev := rec.Intervals[i-1]; prev.Tmax != iv.Tmin {
				p.errorf("%s interval %d: not contiguous (%g != %g)", rec.Name, i, prev.Tmax, iv.Tmin)
			}
		}
	})
	return p
}

// checkRoundTrip re-encodes every coefficient and integration constant
// through the Fortran double codec and verifies the value survives exactly.
func checkRoundTrip(db *thermoinp.Database) *phase {
	p := &phase{name: "fortran double round-trip"}
	forEachSpecies(db, func(rec thermoinp.SpeciesRecord) {
		for i, iv := range rec.Intervals {
			values := append(append([]float64{}, iv.Coefficients[:]...), iv.IntegrationConstants[:]...)
			decoded, err := thermoinp.ParseDoubleArray(thermoinp.FormatDoubleArray(values))
			if err != nil {
				p.errorf("%s interval %d: re-parse failed: %v", rec.Name, i, err)
				continue
			}
			for j := range values {
				if decoded[j] != values[j] && !(math.IsNaN(decoded[j]) && math.IsNaN(values[j])) {
					p.errorf("%s interval %d value %d: %v != %v", rec.Name, i, j, decoded[j], values[j])
				}
			}
		}
	})
	return p
}

// checkZeroInterval verifies assigned-enthalpy species carry a plausible
// reference temperature.
func checkZeroInterval(db *thermoinp.Database) *phase {
	p := &phase{name: "zero-interval reference data"}
	forEachSpecies(db, func(rec thermoinp.SpeciesRecord) {
		if rec.IntervalCount != 0 {
			return
		}
		if rec.ReferenceTemperature <= 0 {
			p.errorf("%s: reference temperature %g not positive", rec.Name, rec.ReferenceTemperature)
		}
	})
	return p
}

func reportCounts(db *thermoinp.Database) {
	fmt.Printf("species: %d gas products, %d condensed products, %d reactants\n",
		len(db.GasProducts), len(db.CondensedProducts), len(db.Reactants))
}

func forEachSpecies(db *thermoinp.Database, fn func(thermoinp.SpeciesRecord)) {
	for _, category := range thermoinp.Categories {
		for _, rec := range db.ByCategory(category) {
			fn(rec)
		}
	}
}
