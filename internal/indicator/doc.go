// Package indicator maps zone lamps and the alert onto board pins.
package indicator
