// Package sensor drives an HC-SR04 style time-of-flight distance sensor over
// the trigger/echo line pair of a hardware.Board.
package sensor
