// SPDX-License-Identifier: MIT

package rendezvous_test

import (
	"testing"

	"github.com/katalvlaran/worldline/rendezvous"
)

// BenchmarkSolve_General measures the accelerated branch.
func BenchmarkSolve_General(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = rendezvous.Solve(0, 0, 0.2, 10, 20)
	}
}

// BenchmarkSolve_Rejected measures the fail-fast path, which allocates an error.
func BenchmarkSolve_Rejected(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = rendezvous.Solve(0, 0, 0, 200, 100)
	}
}
