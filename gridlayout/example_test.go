package gridlayout_test

import (
	"fmt"

	"github.com/katalvlaran/bosnet/gridlayout"
)

// ExampleOptimize lays out ten 8 m × 3 m containers.
func ExampleOptimize() {
	opts := gridlayout.DefaultOptions()
	opts.Units = 10

	l, err := gridlayout.Optimize(opts)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%d rows × %d, cable %.0f m, road %.0f m\n", l.TotalRows, l.PerRow, l.CableLengthM, l.RoadLengthM)
	// Output: 2 rows × 5, cable 60 m, road 80 m
}
