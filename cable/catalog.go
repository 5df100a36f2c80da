// SPDX-License-Identifier: MIT

package cable

import (
	"slices"
	"sort"
)

// Catalog is an immutable list of cable types sorted ascending by
// (ampacity, rated voltage). It is safe for concurrent use.
type Catalog struct {
	types []Type
}

// NewCatalog sorts types (stable, so equal keys keep input order) and rejects
// empty input and duplicate names.
// Complexity: O(T log T).
func NewCatalog(types []Type) (*Catalog, error) {
	if len(types) == 0 {
		return nil, ErrEmptyCatalog
	}
	seen := make(map[string]struct{}, len(types))
	for _, t := range types {
		if _, dup := seen[t.Name]; dup {
			return nil, invalidCable(t.Name, "duplicate name")
		}
		seen[t.Name] = struct{}{}
	}

	sorted := slices.Clone(types)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].AmpacityA != sorted[j].AmpacityA {
			return sorted[i].AmpacityA < sorted[j].AmpacityA
		}
		return sorted[i].RatedVoltageV < sorted[j].RatedVoltageV
	})

	return &Catalog{types: sorted}, nil
}

// BuildCatalog derives every spec at lineFrequencyHz and builds the catalog.
func BuildCatalog(specs []Spec, lineFrequencyHz float64) (*Catalog, error) {
	if len(specs) == 0 {
		return nil, ErrEmptyCatalog
	}
	types := make([]Type, 0, len(specs))
	for _, s := range specs {
		t, err := NewType(s, lineFrequencyHz)
		if err != nil {
			return nil, err
		}
		types = append(types, t)
	}

	return NewCatalog(types)
}

// Len returns the number of types.
func (c *Catalog) Len() int { return len(c.types) }

// Types returns a copy of the sorted types.
func (c *Catalog) Types() []Type { return slices.Clone(c.types) }

// Lookup finds a type by name.
func (c *Catalog) Lookup(name string) (Type, bool) {
	for _, t := range c.types {
		if t.Name == name {
			return t, true
		}
	}

	return Type{}, false
}

// Pick returns the first type, in catalog order, that carries mw.
// Complexity: O(T).
func (c *Catalog) Pick(mw float64) (Type, bool) {
	for _, t := range c.types {
		if t.Carries(mw) {
			return t, true
		}
	}

	return Type{}, false
}

// Largest returns the type with the highest transfer capacity.
func (c *Catalog) Largest() Type {
	best := c.types[0]
	for _, t := range c.types[1:] {
		if t.MaxPowerMW > best.MaxPowerMW {
			best = t
		}
	}

	return best
}

// CollectionVoltage is the highest rated voltage in the catalog, taken as the
// voltage of the collection system.
func (c *Catalog) CollectionVoltage() float64 {
	v := c.types[0].RatedVoltageV
	for _, t := range c.types[1:] {
		v = max(v, t.RatedVoltageV)
	}

	return v
}
