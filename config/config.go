// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/bosnet/cable"
	"github.com/katalvlaran/bosnet/collection"
	"github.com/katalvlaran/bosnet/gridlayout"
	"github.com/katalvlaran/bosnet/prim_kruskal"
	"github.com/katalvlaran/bosnet/site"
)

// Sentinel errors for plant files.
var (
	ErrMissingSubstation = errors.New("config: substation position is required")
	ErrNoNodes           = errors.New("config: at least one node is required")
	ErrUnknownTechnology = errors.New("config: node technology has no rating")
	ErrNoCatalog         = errors.New("config: one of catalog or catalog_file is required")
	ErrBothCatalogs      = errors.New("config: catalog and catalog_file are mutually exclusive")
	ErrNoLayout          = errors.New("config: no layout section")
	ErrInvalidValue      = errors.New("config: invalid value")
)

// DefaultSubstationID names the substation when the file does not.
const DefaultSubstationID = "substation"

// Point is a planar position in metres.
type Point struct {
	ID string  `yaml:"id,omitempty"`
	X  float64 `yaml:"x"`
	Y  float64 `yaml:"y"`
}

// Technology carries the per-unit rating shared by every node of one kind.
type Technology struct {
	RatingMW float64 `yaml:"rating_mw"`
}

// Node is one generator entry. RatingMW, when set, overrides the technology rating.
type Node struct {
	ID         string  `yaml:"id"`
	X          float64 `yaml:"x"`
	Y          float64 `yaml:"y"`
	Technology string  `yaml:"technology"`
	RatingMW   float64 `yaml:"rating_mw,omitempty"`
}

// Plant is the decoded plant file.
type Plant struct {
	Name            string                `yaml:"name"`
	LineFrequencyHz float64               `yaml:"line_frequency_hz"`
	DepthPenalty    float64               `yaml:"depth_penalty"`
	TerminalLengthM float64               `yaml:"terminal_length_m"`
	MinSpacingM     float64               `yaml:"min_spacing_m"`
	Method          string                `yaml:"method"`
	Substation      *Point                `yaml:"substation"`
	Technologies    map[string]Technology `yaml:"technologies"`
	Nodes           []Node                `yaml:"nodes"`
	Cables          []cable.Spec          `yaml:"catalog"`
	CatalogFile     string                `yaml:"catalog_file"`
	Layout          *gridlayout.Options   `yaml:"layout"`
	Networks        map[string][]string   `yaml:"networks"`

	// dir is the directory of the file the plant was loaded from.
	dir string
}

// Default returns a plant with every tunable at its default and no content.
func Default() *Plant {
	return &Plant{
		Name:            "plant",
		LineFrequencyHz: cable.DefaultLineFrequencyHz,
		TerminalLengthM: cable.DefaultTerminalLengthM,
		Method:          prim_kruskal.MethodPrim,
	}
}

// Load reads, decodes and validates a plant file.
func Load(path string) (*Plant, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	p.dir = filepath.Dir(path)

	return p, nil
}

// Parse decodes and validates a plant document. Relative catalog_file paths
// resolve against the working directory.
func Parse(data []byte) (*Plant, error) {
	p := Default()
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

// Dir returns the directory the plant was loaded from, "" after Parse.
func (p *Plant) Dir() string { return p.dir }

// Validate checks the document without touching the catalog file.
func (p *Plant) Validate() error {
	if p.Substation == nil {
		return ErrMissingSubstation
	}
	if len(p.Nodes) == 0 {
		return ErrNoNodes
	}
	for _, n := range p.Nodes {
		if n.RatingMW > 0 {
			continue
		}
		if _, ok := p.Technologies[n.Technology]; !ok {
			return fmt.Errorf("node %q: technology %q: %w", n.ID, n.Technology, ErrUnknownTechnology)
		}
	}
	switch {
	case len(p.Cables) == 0 && p.CatalogFile == "":
		return ErrNoCatalog
	case len(p.Cables) > 0 && p.CatalogFile != "":
		return ErrBothCatalogs
	}
	if !(p.LineFrequencyHz > 0) || math.IsInf(p.LineFrequencyHz, 0) {
		return fmt.Errorf("line_frequency_hz=%g: %w", p.LineFrequencyHz, ErrInvalidValue)
	}
	if p.TerminalLengthM < 0 {
		return fmt.Errorf("terminal_length_m=%g: %w", p.TerminalLengthM, ErrInvalidValue)
	}
	if p.DepthPenalty < 0 {
		return fmt.Errorf("depth_penalty=%g: %w", p.DepthPenalty, ErrInvalidValue)
	}
	if p.Method != prim_kruskal.MethodPrim && p.Method != prim_kruskal.MethodKruskal {
		return fmt.Errorf("method=%q: %w", p.Method, ErrInvalidValue)
	}

	return nil
}

// Site builds the validated site.Plant.
func (p *Plant) Site() (site.Plant, error) {
	if p.Substation == nil {
		return site.Plant{}, ErrMissingSubstation
	}
	subID := p.Substation.ID
	if subID == "" {
		subID = DefaultSubstationID
	}

	nodes := make([]site.Node, 0, len(p.Nodes))
	for _, n := range p.Nodes {
		rating := n.RatingMW
		if rating <= 0 {
			rating = p.Technologies[n.Technology].RatingMW
		}
		nodes = append(nodes, site.NewNode(n.ID, n.X, n.Y, site.Technology(n.Technology), rating))
	}

	return site.NewPlant(site.NewSubstation(subID, p.Substation.X, p.Substation.Y), nodes)
}

// Catalog builds the cable catalog from the inline rows or from catalog_file.
// A relative catalog_file resolves against baseDir.
func (p *Plant) Catalog(baseDir string) (*cable.Catalog, error) {
	if len(p.Cables) > 0 {
		return cable.BuildCatalog(p.Cables, p.LineFrequencyHz)
	}
	if p.CatalogFile == "" {
		return nil, ErrNoCatalog
	}
	path := p.CatalogFile
	if !filepath.IsAbs(path) {
		path = filepath.Join(baseDir, path)
	}

	return cable.LoadCatalogFile(path, p.LineFrequencyHz)
}

// LayoutOptions returns the normalized layout section.
func (p *Plant) LayoutOptions() (gridlayout.Options, error) {
	if p.Layout == nil {
		return gridlayout.Options{}, ErrNoLayout
	}
	opts := *p.Layout
	if opts.Mode == "" {
		opts.Mode = gridlayout.ModeAspect
	}
	mode, err := gridlayout.ParseMode(string(opts.Mode))
	if err != nil {
		return gridlayout.Options{}, err
	}
	opts.Mode = mode

	return opts, nil
}

// DesignOptions maps the tunables onto collection options.
func (p *Plant) DesignOptions() []collection.Option {
	return []collection.Option{
		collection.WithDepthPenalty(p.DepthPenalty),
		collection.WithTerminalLength(p.TerminalLengthM),
		collection.WithMinSpacing(p.MinSpacingM),
		collection.WithMethod(p.Method),
	}
}

// NetworkGroups returns the technology groups for a split design, falling back
// to collection.HybridGroups when the file declares none.
func (p *Plant) NetworkGroups() map[string][]site.Technology {
	if len(p.Networks) == 0 {
		return collection.HybridGroups()
	}
	out := make(map[string][]site.Technology, len(p.Networks))
	for name, techs := range p.Networks {
		group := make([]site.Technology, 0, len(techs))
		for _, t := range techs {
			group = append(group, site.Technology(t))
		}
		out[name] = group
	}

	return out
}

// TechnologyNames lists the declared technologies in sorted order.
func (p *Plant) TechnologyNames() []string {
	names := make([]string, 0, len(p.Technologies))
	for name := range p.Technologies {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
