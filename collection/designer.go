// SPDX-License-Identifier: MIT

package collection

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/shopspring/decimal"

	"github.com/katalvlaran/bosnet/cable"
	"github.com/katalvlaran/bosnet/capacity"
	"github.com/katalvlaran/bosnet/distance"
	"github.com/katalvlaran/bosnet/prim_kruskal"
	"github.com/katalvlaran/bosnet/site"
)

// Designer runs the design pipeline against one cable catalog.
type Designer struct {
	catalog *cable.Catalog
	opts    Options
}

// Result is one complete collection design. Nodes is the vertex order shared
// by Tree and Capacity, substation first. BaselineLength is the unpenalized
// minimum spanning tree length.
type Result struct {
	RunID              uuid.UUID               `json:"run_id"`
	DepthPenalty       float64                 `json:"depth_penalty"`
	Method             string                  `json:"method"`
	Nodes              []site.Node             `json:"nodes"`
	Tree               *prim_kruskal.Tree      `json:"tree"`
	Capacity           *capacity.Result        `json:"capacity"`
	Selection          *cable.Selection        `json:"selection"`
	BaselineLength     float64                 `json:"baseline_length_m"`
	CollectionVoltageV float64                 `json:"collection_voltage_v"`
	Extent             orb.Bound               `json:"extent"`
	SpacingViolations  []site.SpacingViolation `json:"spacing_violations,omitempty"`
}

// New returns a Designer for catalog.
func New(catalog *cable.Catalog, opts ...Option) *Designer {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Designer{catalog: catalog, opts: o}
}

// With returns a copy of d with opts applied on top of its current options.
func (d *Designer) With(opts ...Option) *Designer {
	o := d.opts
	for _, opt := range opts {
		opt(&o)
	}

	return &Designer{catalog: d.catalog, opts: o}
}

// Options returns the effective options.
func (d *Designer) Options() Options { return d.opts }

// Design runs the pipeline for plant.
//
// Steps:
//  1. Validate the plant and the designer configuration.
//  2. Log spacing violations (when enabled).
//  3. Distance matrix, then the penalized tree and the Kruskal baseline.
//  4. Capacity propagation over the tree.
//  5. Cable selection, with the terminal segment carrying the whole plant.
//
// Any failing step aborts the run; no partial result is returned.
func (d *Designer) Design(plant site.Plant) (*Result, error) {
	runID := uuid.New()
	log := d.opts.Logger.With().Str("run_id", runID.String()).Logger()

	if d.catalog == nil {
		return nil, ErrNoCatalog
	}
	if t := d.opts.TerminalLengthM; t < 0 || math.IsNaN(t) || math.IsInf(t, 0) {
		return nil, ErrInvalidTerminalLength
	}
	if err := plant.Validate(); err != nil {
		return nil, err
	}

	res := &Result{
		RunID:              runID,
		DepthPenalty:       d.opts.DepthPenalty,
		Method:             d.opts.Method,
		CollectionVoltageV: d.catalog.CollectionVoltage(),
		Extent:             plant.Extent(),
	}

	res.SpacingViolations = plant.SpacingViolations(d.opts.MinSpacingM)
	for _, v := range res.SpacingViolations {
		log.Warn().
			Str("a", v.A).
			Str("b", v.B).
			Float64("distance_m", v.Distance).
			Float64("min_spacing_m", d.opts.MinSpacingM).
			Msg("nodes closer than minimum spacing")
	}

	g, err := distance.FromPlant(plant)
	if err != nil {
		return nil, fmt.Errorf("collection: distance graph: %w", err)
	}
	res.Nodes = g.Nodes()
	log.Debug().Int("vertices", g.Len()).Msg("distance graph built")

	res.Tree, err = prim_kruskal.Compute(g,
		prim_kruskal.WithMethod(d.opts.Method),
		prim_kruskal.WithDepthPenalty(d.opts.DepthPenalty),
	)
	if err != nil {
		return nil, fmt.Errorf("collection: spanning tree: %w", err)
	}
	baseline, err := prim_kruskal.Kruskal(g)
	if err != nil {
		return nil, fmt.Errorf("collection: baseline tree: %w", err)
	}
	res.BaselineLength = baseline.TotalLength
	log.Debug().
		Float64("length_m", res.Tree.TotalLength).
		Float64("baseline_m", res.BaselineLength).
		Int("max_hops", res.Tree.MaxHops()).
		Msg("spanning tree built")

	res.Capacity, err = capacity.Propagate(res.Tree.Adjacency, res.Nodes, capacity.WithRoot(res.Tree.Root))
	if err != nil {
		return nil, fmt.Errorf("collection: capacity: %w", err)
	}
	log.Debug().
		Int("units", res.Capacity.Generators()).
		Float64("mw", res.Capacity.TotalMW()).
		Msg("capacity propagated")

	loads, err := capacity.Segments(res.Tree, res.Capacity)
	if err != nil {
		return nil, fmt.Errorf("collection: segment loads: %w", err)
	}
	res.Selection, err = cable.Select(d.catalog, demands(loads, res.Nodes), cable.Terminal{
		LengthM: d.opts.TerminalLengthM,
		Units:   plant.Len(),
		MW:      plant.TotalRatingMW(),
	})
	if err != nil {
		var ce *cable.CapacityExceededError
		if errors.As(err, &ce) {
			log.Error().
				Str("from", ce.From).
				Str("to", ce.To).
				Float64("required_mw", ce.RequiredMW).
				Float64("largest_mw", ce.LargestMW).
				Msg("no cable can carry segment")
		}
		return nil, fmt.Errorf("collection: cable selection: %w", err)
	}

	log.Info().
		Int("generators", plant.Len()).
		Float64("penalty", d.opts.DepthPenalty).
		Float64("cable_m", res.Selection.TotalLengthM).
		Str("cost_usd", res.Selection.TotalCostUSD.StringFixed(2)).
		Float64("loss_w", res.Selection.DissipatedW).
		Msg("collection network designed")

	return res, nil
}

// demands names every segment load by its node ids, child first.
func demands(loads []capacity.SegmentLoad, nodes []site.Node) []cable.Demand {
	out := make([]cable.Demand, 0, len(loads))
	for _, l := range loads {
		out = append(out, cable.Demand{
			From:    nodes[l.Child].ID,
			To:      nodes[l.Parent].ID,
			LengthM: l.LengthM,
			Units:   l.Units,
			MW:      l.MW,
		})
	}

	return out
}

// DesignNetworks designs one independent network per technology group, each
// sharing the plant's substation. Groups with no matching node are skipped.
// Groups are processed in name order.
func (d *Designer) DesignNetworks(plant site.Plant, groups map[string][]site.Technology) (map[string]*Result, error) {
	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	slices.Sort(names)

	out := make(map[string]*Result, len(groups))
	for _, name := range names {
		sub, err := plant.Filter(groups[name]...)
		if errors.Is(err, site.ErrInsufficientNodes) {
			d.opts.Logger.Debug().Str("network", name).Msg("no nodes for network, skipped")
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("collection: network %q: %w", name, err)
		}
		res, err := d.Design(sub)
		if err != nil {
			return nil, fmt.Errorf("collection: network %q: %w", name, err)
		}
		out[name] = res
	}
	if len(out) == 0 {
		return nil, ErrNoNetworks
	}

	return out, nil
}

// Summary is a flat digest of a Result.
type Summary struct {
	RunID           uuid.UUID       `json:"run_id"`
	DepthPenalty    float64         `json:"depth_penalty"`
	Generators      int             `json:"generators"`
	TotalMW         float64         `json:"total_mw"`
	TreeLengthM     float64         `json:"tree_length_m"`
	BaselineLengthM float64         `json:"baseline_length_m"`
	MaxHops         int             `json:"max_hops"`
	CableLengthM    float64         `json:"cable_length_m"`
	TrenchLengthM   float64         `json:"trench_length_m"`
	CableCostUSD    decimal.Decimal `json:"cable_cost_usd"`
	DissipatedW     float64         `json:"dissipated_w"`
}

// Summary returns the headline numbers of r.
func (r *Result) Summary() Summary {
	return Summary{
		RunID:           r.RunID,
		DepthPenalty:    r.DepthPenalty,
		Generators:      r.Capacity.Generators(),
		TotalMW:         r.Capacity.TotalMW(),
		TreeLengthM:     r.Tree.TotalLength,
		BaselineLengthM: r.BaselineLength,
		MaxHops:         r.Tree.MaxHops(),
		CableLengthM:    r.Selection.TotalLengthM,
		TrenchLengthM:   r.Selection.TrenchLengthM,
		CableCostUSD:    r.Selection.TotalCostUSD,
		DissipatedW:     r.Selection.DissipatedW,
	}
}
