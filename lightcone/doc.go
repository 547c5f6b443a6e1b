// Package lightcone answers causal questions about pairs of events: whether
// one lies inside the future light cone of the other, how their separation is
// classified, and which events an inertial observer reaches after a given
// proper time (isochrones).
//
// The light cone of an event is the boundary |Δx| = c·Δt. Events strictly
// outside it cannot be reached by anything slower than light.
package lightcone
