// Package spacetime defines the value types shared by the kinematics
// packages: events of 1+1D Minkowski space and samples of a worldline.
//
// Values are plain structs, copied freely; no function in this module keeps a
// reference to a value it was given.
package spacetime
