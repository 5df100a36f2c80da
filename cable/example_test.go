package cable_test

import (
	"fmt"

	"github.com/katalvlaran/bosnet/cable"
)

// ExampleSelect assigns the smallest sufficient cable to two feeder segments
// and the trunk run to the interconnection.
func ExampleSelect() {
	catalog, err := cable.BuildCatalog([]cable.Spec{
		{Name: "35mm", AmpacityA: 100, RatedVoltageV: 10000, ResistanceOhmPerKm: 0.5, CostUSDPerM: 10},
		{Name: "400mm", AmpacityA: 1000, RatedVoltageV: 10000, ResistanceOhmPerKm: 0.1, CostUSDPerM: 50},
	}, cable.DefaultLineFrequencyHz)
	if err != nil {
		fmt.Println(err)
		return
	}

	sel, err := cable.Select(catalog, []cable.Demand{
		{From: "t1", To: "sub", LengthM: 100, Units: 1, MW: 1},
		{From: "t2", To: "sub", LengthM: 200, Units: 3, MW: 3},
	}, cable.Terminal{LengthM: 1000, Units: 4, MW: 4})
	if err != nil {
		fmt.Println(err)
		return
	}

	for _, a := range sel.Assignments {
		fmt.Printf("%s->%s %s $%s\n", a.From, a.To, a.Cable, a.CostUSD)
	}
	fmt.Printf("total $%s, %.0f m\n", sel.TotalCostUSD, sel.TotalLengthM)
	// Output:
	// t1->sub 35mm $1000
	// t2->sub 400mm $10000
	// collection->interconnection 400mm $50000
	// total $61000, 1300 m
}
