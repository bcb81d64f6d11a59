// Package catalog assembles the parsed database categories into a flat,
// name-keyed view and provides species lookup and subset emission.
package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/couchcryptid/thermo-data-service/internal/thermo"
	"github.com/couchcryptid/thermo-data-service/internal/thermoinp"
)

// NotFoundError reports a species name absent from the catalog.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("catalog: species %q not in source database", e.Name)
}

// Entry pairs one species' parsed record with its derived form and the
// category it came from.
type Entry struct {
	Category thermoinp.Category
	Record   thermoinp.SpeciesRecord
	Species  *thermo.Species
}

// Catalog is the flat view over a decoded database. It is immutable after
// construction and safe for concurrent readers.
type Catalog struct {
	byName   map[string]*Entry
	ordered  map[thermoinp.Category][]*Entry
	loadedAt time.Time
}

// New builds a Catalog from a decoded database. Species names are unique
// within a category but not database-wide; on a cross-category collision
// the later category wins in the flat index (reactants shadow products),
// while per-category listings and prefix lookup still surface every entry.
func New(db *thermoinp.Database, c thermo.Constants) *Catalog {
	cat := &Catalog{
		byName:   make(map[string]*Entry, db.Len()),
		ordered:  make(map[thermoinp.Category][]*Entry, len(thermoinp.Categories)),
		loadedAt: clock.Now(),
	}
	for _, category := range thermoinp.Categories {
		for _, rec := range db.ByCategory(category) {
			entry := &Entry{
				Category: category,
				Record:   rec,
				Species:  thermo.NewSpecies(rec, c),
			}
			cat.ordered[category] = append(cat.ordered[category], entry)
			cat.byName[rec.Name] = entry
		}
	}
	return cat
}

// Species fetches a catalog entry by exact name.
func (c *Catalog) Species(name string) (*Entry, error) {
	entry, ok := c.byName[name]
	if !ok {
		return nil, &NotFoundError{Name: name}
	}
	return entry, nil
}

// Lookup returns every entry whose name starts with prefix, in category
// then source order.
func (c *Catalog) Lookup(prefix string) []*Entry {
	var matches []*Entry
	for _, category := range thermoinp.Categories {
		for _, entry := range c.ordered[category] {
			if strings.HasPrefix(entry.Record.Name, prefix) {
				matches = append(matches, entry)
			}
		}
	}
	return matches
}

// Names lists the species names of one category in source order.
func (c *Catalog) Names(category thermoinp.Category) []string {
	entries := c.ordered[category]
	names := make([]string, len(entries))
	for i, entry := range entries {
		names[i] = entry.Record.Name
	}
	return names
}

// Len reports the total number of entries across all categories.
func (c *Catalog) Len() int {
	n := 0
	for _, entries := range c.ordered {
		n += len(entries)
	}
	return n
}

// LoadedAt reports when the catalog was assembled.
func (c *Catalog) LoadedAt() time.Time {
	return c.loadedAt
}
