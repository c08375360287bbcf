// Package fsm implements the proximity state machine.
//
// A fixed table maps (zone, event) to a transition descriptor naming the
// target zone and the entry action to run. Entry actions only set indicator
// state; timed alert pulses belong to the alert package.
package fsm
