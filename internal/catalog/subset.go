package catalog

import (
	"fmt"
	"strings"

	"github.com/couchcryptid/thermo-data-service/internal/thermoinp"
)

// Delimiter lines of an emitted subset. The header pair mirrors the source
// database preamble; the END markers are space-padded to the full record
// width as in the original file.
var subsetDelimiters = struct {
	header       string
	intervals    string
	endProducts  string
	endReactants string
}{
	header:       fmt.Sprintf("%-80s", "thermo"),
	intervals:    "    200.000  1000.000  6000.000 20000.000   9/09/04",
	endProducts:  fmt.Sprintf("%-80s", "END PRODUCTS"),
	endReactants: fmt.Sprintf("%-80s", "END REACTANTS"),
}

// Subset emits a syntactically valid thermo.inp containing only the named
// species, preserving the raw source blocks and category ordering. Unknown
// names fail with a NotFoundError; a subset of the full catalog reparses to
// an identical catalog.
func (c *Catalog) Subset(names ...string) (string, error) {
	want := make(map[string]bool, len(names))
	for _, name := range names {
		if _, err := c.Species(name); err != nil {
			return "", err
		}
		want[name] = true
	}

	blocks := make(map[thermoinp.Category][]string, len(thermoinp.Categories))
	for _, category := range thermoinp.Categories {
		for _, entry := range c.ordered[category] {
			if want[entry.Record.Name] {
				blocks[category] = append(blocks[category], entry.Record.Raw)
			}
		}
	}

	parts := []string{subsetDelimiters.header, subsetDelimiters.intervals}
	parts = append(parts, blocks[thermoinp.GasProducts]...)
	parts = append(parts, blocks[thermoinp.CondensedProducts]...)
	parts = append(parts, subsetDelimiters.endProducts)
	parts = append(parts, blocks[thermoinp.Reactants]...)
	parts = append(parts, subsetDelimiters.endReactants)
	return strings.Join(parts, "\n") + "\n", nil
}
