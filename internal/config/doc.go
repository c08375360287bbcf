// Package config defines the controller settings and provides helpers to
// load, validate and save them in YAML format.
//
// Settings cover the hardware backend, the wiring of the six logical pins,
// the startup delay and diagnostics. Thresholds and pulse timings are fixed
// in code and deliberately absent here.
package config
