package site_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/bosnet/site"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// smallHybrid returns a substation at the origin with two turbines, one PV
// inverter and one battery container.
func smallHybrid() (site.Node, []site.Node) {
	sub := site.NewSubstation("SUB", 0, 0)
	nodes := []site.Node{
		site.NewNode("T1", 300, 0, site.Wind, 2.5),
		site.NewNode("T2", 600, 0, site.Wind, 2.5),
		site.NewNode("PV1", 0, 200, site.Solar, 1.2),
		site.NewNode("BESS1", -100, -50, site.Storage, 0.5),
	}

	return sub, nodes
}

func TestNewPlant_Valid(t *testing.T) {
	sub, nodes := smallHybrid()
	p, err := site.NewPlant(sub, nodes)
	require.NoError(t, err)

	assert.Equal(t, 4, p.Len())
	all := p.All()
	require.Len(t, all, 5)
	assert.Equal(t, "SUB", all[0].ID, "substation must be index 0")
	assert.Equal(t, "BESS1", all[4].ID, "generators keep input order")
	assert.InDelta(t, 6.7, p.TotalRatingMW(), 1e-12)
	assert.Equal(t, []site.Technology{site.Solar, site.Storage, site.Wind}, p.Technologies())
}

func TestNewPlant_CopiesInput(t *testing.T) {
	sub, nodes := smallHybrid()
	p, err := site.NewPlant(sub, nodes)
	require.NoError(t, err)

	nodes[0].ID = "mutated"
	assert.Equal(t, "T1", p.Nodes[0].ID)
}

func TestValidate_Errors(t *testing.T) {
	sub, _ := smallHybrid()
	good := site.NewNode("T1", 1, 1, site.Wind, 2)

	cases := []struct {
		name  string
		sub   site.Node
		nodes []site.Node
		err   error
	}{
		{"NoGenerators", sub, nil, site.ErrInsufficientNodes},
		{"SubstationIsGenerator", site.NewNode("S", 0, 0, site.Wind, 1), []site.Node{good}, site.ErrNotSubstation},
		{"EmptyID", sub, []site.Node{site.NewNode("", 1, 1, site.Wind, 1)}, site.ErrEmptyID},
		{"DuplicateID", sub, []site.Node{good, good}, site.ErrDuplicateID},
		{"DuplicateOfSubstation", sub, []site.Node{site.NewNode("SUB", 1, 1, site.Wind, 1)}, site.ErrDuplicateID},
		{"SecondSubstation", sub, []site.Node{site.NewSubstation("S2", 5, 5)}, site.ErrSubstationInNodes},
		{"ZeroRating", sub, []site.Node{site.NewNode("T", 1, 1, site.Wind, 0)}, site.ErrBadRating},
		{"NaNRating", sub, []site.Node{site.NewNode("T", 1, 1, site.Wind, math.NaN())}, site.ErrBadRating},
		{"InfPosition", sub, []site.Node{site.NewNode("T", math.Inf(1), 1, site.Wind, 1)}, site.ErrBadPosition},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := site.NewPlant(tc.sub, tc.nodes)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestInsufficientNodesError_Message(t *testing.T) {
	_, err := site.NewPlant(site.NewSubstation("SUB", 0, 0), nil)
	var ine *site.InsufficientNodesError
	require.ErrorAs(t, err, &ine)
	assert.Equal(t, 0, ine.Got)
	assert.Contains(t, err.Error(), "got 0")
}

func TestFilter(t *testing.T) {
	sub, nodes := smallHybrid()
	p, err := site.NewPlant(sub, nodes)
	require.NoError(t, err)

	dc, err := p.Filter(site.Solar, site.Storage)
	require.NoError(t, err)
	require.Equal(t, 2, dc.Len())
	assert.Equal(t, "PV1", dc.Nodes[0].ID)
	assert.Equal(t, "BESS1", dc.Nodes[1].ID)
	assert.Equal(t, sub, dc.Substation)

	_, err = p.Filter(site.WindSubstation)
	assert.ErrorIs(t, err, site.ErrInsufficientNodes)
}

func TestExtent(t *testing.T) {
	sub, nodes := smallHybrid()
	p, err := site.NewPlant(sub, nodes)
	require.NoError(t, err)

	b := p.Extent()
	assert.Equal(t, -100.0, b.Left())
	assert.Equal(t, 600.0, b.Right())
	assert.Equal(t, -50.0, b.Bottom())
	assert.Equal(t, 200.0, b.Top())
}

func TestSpacingViolations(t *testing.T) {
	sub := site.NewSubstation("SUB", 0, 0)
	nodes := []site.Node{
		site.NewNode("A", 10, 0, site.Solar, 1),
		site.NewNode("B", 10.5, 0, site.Solar, 1), // 0.5 m from A
		site.NewNode("C", 50, 50, site.Solar, 1),
		site.NewNode("D", 0.2, 0, site.Solar, 1), // 0.2 m from SUB
	}
	p, err := site.NewPlant(sub, nodes)
	require.NoError(t, err)

	got := p.SpacingViolations(1)
	require.Len(t, got, 2)
	assert.Equal(t, "SUB", got[0].A)
	assert.Equal(t, "D", got[0].B)
	assert.InDelta(t, 0.2, got[0].Distance, 1e-12)
	assert.Equal(t, "A", got[1].A)
	assert.Equal(t, "B", got[1].B)
	assert.InDelta(t, 0.5, got[1].Distance, 1e-12)

	assert.Empty(t, p.SpacingViolations(0), "non-positive spacing disables the check")
	assert.Empty(t, p.SpacingViolations(0.1))
}
