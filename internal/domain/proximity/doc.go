// Package proximity contains the core domain types of the proximity warning
// controller.
//
// It defines Distance (a centimeter reading or the Invalid sentinel), the
// discrete Zone the controller is in, and the per-sample Event produced by
// Classify.
package proximity
