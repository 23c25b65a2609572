package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/circuits/circuit"
)

func TestCircuits(t *testing.T) {
	res := &circuit.BoundedResult{
		Sizes:    []int{5, 5, 2, 2, 1, 1, 1, 1, 1, 1},
		Circuits: 10,
	}

	out := Circuits(res, 3)

	assert.Contains(t, out, "25.0%")
	assert.Contains(t, out, "10.0%")
	// footers are upper-cased by the table style
	assert.Contains(t, strings.ToLower(out), "10 circuits")
	assert.Contains(t, strings.ToLower(out), "20 points")
	// header + 3 rows + footer, plus 4 border lines
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 9)
}

func TestCircuits_AllRows(t *testing.T) {
	res := &circuit.BoundedResult{Sizes: []int{3, 1, 1}, Circuits: 3}
	out := Circuits(res, 0)
	assert.Contains(t, out, "60.0%")
	assert.Equal(t, 2, strings.Count(out, "20.0%"))
}

func TestShare(t *testing.T) {
	assert.Equal(t, "-", share(1, 0))
	assert.Equal(t, "33.3%", share(1, 3))
}
