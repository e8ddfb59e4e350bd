package domain

import (
	"cmp"
	"maps"
	"slices"
)

// InstrumentKey identifies one catalogue entry: an instrument family
// (category) and a two-digit instrument code within it.
type InstrumentKey struct {
	Category int
	Code     string
}

// CatalogueEntry is one (key, canonical name) pair.
type CatalogueEntry struct {
	InstrumentKey
	Name string
}

// Catalogue maps instrument keys to canonical instrument names.
// A Catalogue is never mutated after construction and may be shared
// freely between rules and goroutines.
type Catalogue struct {
	table map[InstrumentKey]string
}

// NewCatalogue builds a catalogue from table. The table is copied, so later
// changes to it do not affect the catalogue.
func NewCatalogue(table map[InstrumentKey]string) *Catalogue {
	return &Catalogue{table: maps.Clone(table)}
}

// DefaultCatalogue returns the built-in instrument catalogue.
func DefaultCatalogue() *Catalogue {
	return NewCatalogue(defaultTable)
}

// Name returns the canonical name for (category, code), or false if the
// pair is not catalogued.
func (c *Catalogue) Name(category int, code string) (string, bool) {
	name, ok := c.table[InstrumentKey{Category: category, Code: code}]
	return name, ok
}

// Has reports whether (category, code) is catalogued.
func (c *Catalogue) Has(category int, code string) bool {
	_, ok := c.Name(category, code)
	return ok
}

// Len returns the number of entries.
func (c *Catalogue) Len() int {
	return len(c.table)
}

// Entries returns every entry ordered by category, then code.
func (c *Catalogue) Entries() []CatalogueEntry {
	entries := make([]CatalogueEntry, 0, len(c.table))
	for k, name := range c.table {
		entries = append(entries, CatalogueEntry{InstrumentKey: k, Name: name})
	}
	slices.SortFunc(entries, func(a, b CatalogueEntry) int {
		return cmp.Or(cmp.Compare(a.Category, b.Category), cmp.Compare(a.Code, b.Code))
	})
	return entries
}
