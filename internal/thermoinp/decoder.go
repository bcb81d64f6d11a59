package thermoinp

import (
	"errors"
	"regexp"
	"strings"
)

// Category identifies one of the three sections of the source database.
type Category string

const (
	GasProducts       Category = "gas_products"
	CondensedProducts Category = "condensed_products"
	Reactants         Category = "reactants"
)

// Categories lists the three database sections in source order.
var Categories = []Category{GasProducts, CondensedProducts, Reactants}

// Database holds the parsed species of each category in source order.
type Database struct {
	GasProducts       []SpeciesRecord
	CondensedProducts []SpeciesRecord
	Reactants         []SpeciesRecord
}

// ByCategory returns the record slice for the given category.
func (db *Database) ByCategory(c Category) []SpeciesRecord {
	switch c {
	case GasProducts:
		return db.GasProducts
	case CondensedProducts:
		return db.CondensedProducts
	case Reactants:
		return db.Reactants
	}
	return nil
}

// Len reports the total number of species across all categories.
func (db *Database) Len() int {
	return len(db.GasProducts) + len(db.CondensedProducts) + len(db.Reactants)
}

// categoryRe captures the three category bodies in one pass. Gaseous
// products begin with species 'e-', condensed products with 'Ag(cr)' and
// reactants with 'Air'; the products and reactants sections carry explicit
// END markers.
var categoryRe = regexp.MustCompile(`(?s)\n(e-.*)\n(Ag\(cr\).*)\nEND PRODUCTS.*\n(Air.*)\nEND REACTANTS`)

// SplitCategories splits the raw database text into the three category
// texts. It fails with a FormatError when the expected marker sequence is
// missing (malformed or truncated database).
func SplitCategories(text string) (gas, condensed, reactants string, err error) {
	m := categoryRe.FindStringSubmatch(text)
	if m == nil {
		return "", "", "", formatErrf("", "database", errors.New("category marker sequence not found"))
	}
	return m[1], m[2], m[3], nil
}

// SplitSpecies splits one category text into per-species raw blocks. A new
// dataset begins at any line whose first character is 'e', an uppercase
// letter or '(', the format's only species-boundary signal. An empty
// category yields no blocks.
func SplitSpecies(category string) []string {
	if strings.TrimSpace(category) == "" {
		return nil
	}
	lines := strings.Split(category, "\n")
	var blocks []string
	start := 0
	for i := 1; i < len(lines); i++ {
		if isSpeciesStart(lines[i]) {
			blocks = append(blocks, strings.Join(lines[start:i], "\n"))
			start = i
		}
	}
	return append(blocks, strings.Join(lines[start:], "\n"))
}

func isSpeciesStart(line string) bool {
	if line == "" {
		return false
	}
	c := line[0]
	return c == 'e' || c == '(' || (c >= 'A' && c <= 'Z')
}

// Decode parses the full database text into categorised species records,
// aborting on the first malformed species.
func Decode(text string) (*Database, error) {
	db, errs := decode(text, false)
	if len(errs) > 0 {
		return nil, errs[0]
	}
	return db, nil
}

// DecodeSkipMalformed parses the full database text, dropping species that
// fail to parse and reporting each failure. A marker-sequence failure is
// still fatal and returns a nil Database with a single error.
func DecodeSkipMalformed(text string) (*Database, []error) {
	return decode(text, true)
}

func decode(text string, skipMalformed bool) (*Database, []error) {
	gas, condensed, reactants, err := SplitCategories(text)
	if err != nil {
		return nil, []error{err}
	}

	db := &Database{}
	var errs []error
	for _, part := range []struct {
		text string
		dst  *[]SpeciesRecord
	}{
		{gas, &db.GasProducts},
		{condensed, &db.CondensedProducts},
		{reactants, &db.Reactants},
	} {
		for _, block := range SplitSpecies(part.text) {
			rec, err := ParseSpecies(block)
			if err != nil {
				errs = append(errs, err)
				if !skipMalformed {
					return nil, errs
				}
				continue
			}
			*part.dst = append(*part.dst, rec)
		}
	}
	return db, errs
}
