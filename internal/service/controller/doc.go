// Package controller runs the proximity warning control loop.
//
// Each iteration measures the distance, classifies it, steps the state
// machine and runs one alert cadence cycle before sleeping for the
// inter-sample delay. Iterations never overlap: the next measurement starts
// only after the current actuation has finished, since both share the pins.
package controller
