// Package alert generates the audible pulse pattern for one sampling cycle.
//
// Urgency follows the live distance: a fixed cadence in the warning band and,
// in the critical band, a pause that shrinks with the distance down to a
// 25 ms floor.
package alert
