package circuit_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/circuits/spatial"
)

// junctionBoxes is the 20-point reference playground. Its pairwise squared
// distances are all distinct.
const junctionBoxes = `162,817,812
57,618,57
906,360,560
592,479,940
352,342,300
466,668,158
542,29,236
431,825,988
739,650,466
52,470,668
216,146,977
819,987,18
117,168,530
805,96,715
346,949,466
970,615,88
941,993,340
862,61,35
984,92,344
425,690,689
`

func loadJunctionBoxes(t testing.TB) []spatial.Point {
	t.Helper()
	pts, err := spatial.ParseString(junctionBoxes)
	require.NoError(t, err)
	require.Len(t, pts, 20)

	return pts
}

// twoClusters returns 12 unit-spaced points on the X axis followed by 8
// points spaced 2 apart, far from the first group.
func twoClusters() []spatial.Point {
	pts := make([]spatial.Point, 0, 20)
	for i := 0; i < 12; i++ {
		pts = append(pts, spatial.Point{X: float64(i)})
	}
	for i := 0; i < 8; i++ {
		pts = append(pts, spatial.Point{X: 1000 + 2*float64(i)})
	}

	return pts
}
