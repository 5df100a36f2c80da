// SPDX-License-Identifier: MIT

package collection

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/bosnet/cable"
	"github.com/katalvlaran/bosnet/prim_kruskal"
	"github.com/katalvlaran/bosnet/site"
)

// Sentinel errors for pipeline configuration.
var (
	// ErrNoCatalog indicates a Designer built without a cable catalog.
	ErrNoCatalog = errors.New("collection: cable catalog is required")
	// ErrInvalidTerminalLength indicates a negative or non-finite terminal segment length.
	ErrInvalidTerminalLength = errors.New("collection: terminal length must be finite and >= 0")
	// ErrNoPenalties indicates a sweep over an empty penalty list.
	ErrNoPenalties = errors.New("collection: sweep needs at least one depth penalty")
	// ErrNoNetworks indicates that no technology group matched any node of the plant.
	ErrNoNetworks = errors.New("collection: no technology group matched the plant")
)

// Options holds the Designer's tunables.
type Options struct {
	Logger          zerolog.Logger
	DepthPenalty    float64
	TerminalLengthM float64
	// MinSpacingM enables the spacing check when > 0; violations are logged, never fatal.
	MinSpacingM float64
	Method      string
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions: silent logger, unpenalized Prim, 6-mile terminal run, no spacing check.
func DefaultOptions() Options {
	return Options{
		Logger:          zerolog.Nop(),
		DepthPenalty:    0,
		TerminalLengthM: cable.DefaultTerminalLengthM,
		Method:          prim_kruskal.MethodPrim,
	}
}

// WithLogger sets the structured logger.
func WithLogger(l zerolog.Logger) Option { return func(o *Options) { o.Logger = l } }

// WithDepthPenalty sets the hop penalty w used by Prim.
func WithDepthPenalty(w float64) Option { return func(o *Options) { o.DepthPenalty = w } }

// WithTerminalLength sets the trunk segment length in metres.
func WithTerminalLength(m float64) Option { return func(o *Options) { o.TerminalLengthM = m } }

// WithMinSpacing enables the minimum-spacing warning.
func WithMinSpacing(m float64) Option { return func(o *Options) { o.MinSpacingM = m } }

// WithMethod selects prim_kruskal.MethodPrim or prim_kruskal.MethodKruskal.
func WithMethod(m string) Option { return func(o *Options) { o.Method = m } }

// HybridGroups splits a hybrid plant into an AC network (turbines and wind
// substations) and a DC network (PV and storage).
func HybridGroups() map[string][]site.Technology {
	return map[string][]site.Technology{
		"ac": {site.Wind, site.WindSubstation},
		"dc": {site.Solar, site.Storage},
	}
}
