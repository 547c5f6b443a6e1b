// SPDX-License-Identifier: MIT

// Package rendezvous_test provides runnable examples for the solver.
package rendezvous_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/worldline/kinerr"
	"github.com/katalvlaran/worldline/rendezvous"
)

// ExampleSolve plans a rendezvous from rest at the origin to (10, 20).
// The average velocity is 0.5, so the body arrives at v = tanh(2·artanh 0.5) = 0.8.
func ExampleSolve() {
	s, err := rendezvous.Solve(0, 0, 0, 10, 20)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("alpha=%.4f tau_f=%.4f phi_f=%.4f v_f=%.4f\n", s.Alpha, s.TauF, s.PhiF, s.VF)
	// Output: alpha=0.0667 tau_f=16.4792 phi_f=1.0986 v_f=0.8000
}

// ExampleSolve_causalityViolation: a target outside the light cone is refused.
func ExampleSolve_causalityViolation() {
	_, err := rendezvous.Solve(0, 0, 0, 200, 100)
	fmt.Println(errors.Is(err, kinerr.ErrCausalityViolation))
	// Output: true
}
