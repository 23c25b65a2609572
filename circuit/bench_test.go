package circuit_test

import (
	"testing"

	"github.com/katalvlaran/circuits/circuit"
)

// BenchmarkConnect measures a 1000-connection run over 1000 random points.
func BenchmarkConnect(b *testing.B) {
	pts := randomPoints(1000, 42)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = circuit.Connect(pts, 1000)
	}
}

// BenchmarkConnectAll_Parallel measures full connectivity with 4 generators.
func BenchmarkConnectAll_Parallel(b *testing.B) {
	pts := randomPoints(1000, 42)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = circuit.ConnectAll(pts, circuit.WithWorkers(4))
	}
}
