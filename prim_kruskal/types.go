// Package prim_kruskal defines configuration options, result types and sentinel
// errors for collection-tree computation.
package prim_kruskal

import (
	"errors"
	"slices"
)

// ErrEmptyMatrix indicates a distance matrix without vertices.
var ErrEmptyMatrix = errors.New("prim_kruskal: distance matrix is empty")

// ErrNonSquare indicates a distance matrix that is not V×V.
var ErrNonSquare = errors.New("prim_kruskal: distance matrix is not square")

// ErrInvalidDistance indicates a NaN or negative distance.
var ErrInvalidDistance = errors.New("prim_kruskal: distance must be non-negative")

// ErrNegativePenalty indicates a depth-penalty factor that is negative or not finite.
var ErrNegativePenalty = errors.New("prim_kruskal: depth penalty must be finite and >= 0")

// ErrRootOutOfRange indicates a root index outside [0, V).
var ErrRootOutOfRange = errors.New("prim_kruskal: root vertex out of range")

// ErrDisconnected indicates that no spanning tree covers all vertices.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrUnknownMethod indicates an unsupported MSTOptions.Method.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// MethodPrim selects depth-penalized Prim (the default).
const MethodPrim = "prim"

// MethodKruskal selects the classical Kruskal MST. The depth penalty is ignored.
const MethodKruskal = "kruskal"

// Matrix is the read-only view of a square distance table. *matrix.Dense and
// *distance.Graph both satisfy it.
type Matrix interface {
	Rows() int
	Cols() int
	At(i, j int) (float64, error)
}

// MSTOptions configures tree construction.
//
// Fields:
//
//	Method       string  MethodPrim or MethodKruskal.
//	Root         int     root vertex, 0 (the substation) by default.
//	DepthPenalty float64 w ≥ 0; Prim only.
type MSTOptions struct {
	Method       string
	Root         int
	DepthPenalty float64
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the root vertex index.
func WithRoot(root int) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// WithDepthPenalty returns an Option that sets the depth-penalty factor w.
func WithDepthPenalty(w float64) Option {
	return func(opts *MSTOptions) {
		opts.DepthPenalty = w
	}
}

// DefaultOptions returns Prim rooted at the substation with no depth penalty,
// i.e. a classical minimum spanning tree.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method:       MethodPrim,
		Root:         0,
		DepthPenalty: 0,
	}
}

// Compute applies opts over DefaultOptions and runs the selected algorithm.
func Compute(dist Matrix, opts ...Option) (*Tree, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	switch o.Method {
	case MethodPrim:
		return Prim(dist, opts...)
	case MethodKruskal:
		return Kruskal(dist, WithRoot(o.Root))
	default:
		return nil, ErrUnknownMethod
	}
}

// Segment is one cable run of the tree, oriented from the parent (From, nearer the
// root) to the child (To).
type Segment struct {
	From int `json:"from"`
	To   int `json:"to"`
	// Length is the raw distance between the endpoints.
	Length float64 `json:"length"`
	// Cost is the penalized distance the segment was selected with; equals Length when w = 0.
	Cost float64 `json:"cost"`
}

// Tree is a spanning tree rooted at Root.
type Tree struct {
	Root int `json:"root"`
	// Parent[v] is the parent of v, -1 for the root.
	Parent []int `json:"parent"`
	// Hops[v] is the number of segments between v and the root.
	Hops []int `json:"hops"`
	// Adjacency is the symmetric, ascending-sorted neighbour list of every vertex.
	Adjacency [][]int `json:"adjacency"`
	// Segments lists the V−1 segments in the order their child joined the tree.
	Segments []Segment `json:"segments"`
	// TotalLength is the sum of raw segment lengths.
	TotalLength float64 `json:"total_length"`
	// TotalCost is the sum of penalized segment costs.
	TotalCost float64 `json:"total_cost"`
}

// Len returns the number of vertices V.
func (t *Tree) Len() int { return len(t.Parent) }

// Degree returns the tree degree of v.
func (t *Tree) Degree(v int) int { return len(t.Adjacency[v]) }

// Leaves returns the non-root vertices of degree 1, ascending.
func (t *Tree) Leaves() []int {
	var out []int
	for v := range t.Adjacency {
		if v != t.Root && len(t.Adjacency[v]) == 1 {
			out = append(out, v)
		}
	}

	return out
}

// Children returns the children of v, ascending.
func (t *Tree) Children(v int) []int {
	var out []int
	for _, w := range t.Adjacency[v] {
		if t.Parent[w] == v {
			out = append(out, w)
		}
	}

	return out
}

// MaxHops returns the depth of the deepest vertex.
func (t *Tree) MaxHops() int {
	if len(t.Hops) == 0 {
		return 0
	}

	return slices.Max(t.Hops)
}

// newTree allocates a tree for n vertices.
func newTree(n, root int) *Tree {
	t := &Tree{
		Root:      root,
		Parent:    make([]int, n),
		Hops:      make([]int, n),
		Adjacency: make([][]int, n),
		Segments:  make([]Segment, 0, max(n-1, 0)),
	}
	for v := range t.Parent {
		t.Parent[v] = -1
	}

	return t
}

// attach records the segment parent→child.
func (t *Tree) attach(parent, child int, length, cost float64) {
	t.Parent[child] = parent
	t.Hops[child] = t.Hops[parent] + 1
	t.Adjacency[parent] = append(t.Adjacency[parent], child)
	t.Adjacency[child] = append(t.Adjacency[child], parent)
	t.Segments = append(t.Segments, Segment{From: parent, To: child, Length: length, Cost: cost})
	t.TotalLength += length
	t.TotalCost += cost
}

// sortAdjacency puts every neighbour list in ascending order.
func (t *Tree) sortAdjacency() {
	for _, nb := range t.Adjacency {
		slices.Sort(nb)
	}
}
