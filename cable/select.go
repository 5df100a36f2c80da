// SPDX-License-Identifier: MIT

package cable

import (
	"math"

	"github.com/shopspring/decimal"
)

// DefaultTerminalLengthM is the trunk interconnection length: 6 miles.
const DefaultTerminalLengthM = 9656.064

// Demand is what one collection segment must carry.
type Demand struct {
	// From and To identify the segment endpoints (child, parent).
	From    string  `json:"from"`
	To      string  `json:"to"`
	LengthM float64 `json:"length_m"`
	Units   int     `json:"units"`
	MW      float64 `json:"mw"`
}

// Terminal describes the trunk segment appended after every tree segment.
type Terminal struct {
	LengthM float64
	Units   int
	MW      float64
}

// Assignment is the cable chosen for one segment. MaxUnits is how many units of
// the segment's per-unit rating (MW / Units) the chosen type can serve.
type Assignment struct {
	Demand
	Cable    string          `json:"cable"`
	CurrentA float64         `json:"current_a"`
	LossW    float64         `json:"loss_w"`
	CostUSD  decimal.Decimal `json:"cost_usd"`
	MaxUnits int             `json:"max_units"`
	Terminal bool            `json:"terminal"`
}

// Usage aggregates every segment assigned to one cable type.
type Usage struct {
	Cable    string          `json:"cable"`
	Segments int             `json:"segments"`
	LengthM  float64         `json:"length_m"`
	CostUSD  decimal.Decimal `json:"cost_usd"`
}

// Selection is the full cable assignment for a network.
type Selection struct {
	// Assignments follow the demand order; the terminal segment is last.
	Assignments []Assignment `json:"assignments"`
	// ByType lists used types in catalog order.
	ByType        []Usage         `json:"by_type"`
	TotalLengthM  float64         `json:"total_length_m"`
	TotalCostUSD  decimal.Decimal `json:"total_cost_usd"`
	DissipatedW   float64         `json:"dissipated_w"`
	TrenchLengthM float64         `json:"trench_length_m"`
}

// Select assigns the smallest sufficient cable type to every demand and to the
// terminal segment, then accumulates totals.
//
// Steps:
//  1. Validate every demand (finite, non-negative length and power).
//  2. For each demand in order, Pick the first catalog type carrying its MW.
//     The first failure aborts with *CapacityExceededError.
//  3. Segment cost = cost/m × length (decimal), loss = 3·I²·R·ℓ/1000 with
//     I = P/V, V being the catalog's collection voltage.
//  4. Fold per-type usage in catalog order.
//
// Complexity: O(S·T) for S segments and T catalog types.
func Select(c *Catalog, demands []Demand, terminal Terminal) (*Selection, error) {
	if c == nil || c.Len() == 0 {
		return nil, ErrEmptyCatalog
	}

	all := make([]Demand, 0, len(demands)+1)
	all = append(all, demands...)
	all = append(all, Demand{From: "collection", To: "interconnection",
		LengthM: terminal.LengthM, Units: terminal.Units, MW: terminal.MW})

	v := c.CollectionVoltage()
	sel := &Selection{Assignments: make([]Assignment, 0, len(all))}
	usage := make(map[string]*Usage, c.Len())
	total := decimal.Zero

	for i, d := range all {
		if !validDemand(d) {
			return nil, ErrInvalidDemand
		}
		t, ok := c.Pick(d.MW)
		if !ok {
			return nil, &CapacityExceededError{
				Segment: i, From: d.From, To: d.To,
				RequiredMW: d.MW, LargestMW: c.Largest().MaxPowerMW,
			}
		}

		current := d.MW * 1e6 / v
		a := Assignment{
			Demand:   d,
			Cable:    t.Name,
			CurrentA: current,
			LossW:    3 * current * current * t.ResistanceOhmPerKm * d.LengthM / 1000,
			CostUSD:  t.CostPerM.Mul(decimal.NewFromFloat(d.LengthM)),
			Terminal: i == len(all)-1,
		}
		if d.Units > 0 {
			a.MaxUnits = t.MaxUnits(d.MW / float64(d.Units))
		}
		sel.Assignments = append(sel.Assignments, a)

		u := usage[t.Name]
		if u == nil {
			u = &Usage{Cable: t.Name, CostUSD: decimal.Zero}
			usage[t.Name] = u
		}
		u.Segments++
		u.LengthM += d.LengthM
		u.CostUSD = u.CostUSD.Add(a.CostUSD)

		sel.TotalLengthM += d.LengthM
		sel.DissipatedW += a.LossW
		total = total.Add(a.CostUSD)
	}

	for _, t := range c.types {
		if u, ok := usage[t.Name]; ok {
			sel.ByType = append(sel.ByType, *u)
		}
	}
	sel.TotalCostUSD = total
	sel.TrenchLengthM = sel.TotalLengthM

	return sel, nil
}

func validDemand(d Demand) bool {
	for _, v := range []float64{d.LengthM, d.MW} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return false
		}
	}

	return d.Units >= 0
}

// Usage returns the aggregate for one cable type.
func (s *Selection) Usage(name string) (Usage, bool) {
	for _, u := range s.ByType {
		if u.Cable == name {
			return u, true
		}
	}

	return Usage{}, false
}
