// Package hardware is the pin abstraction of the controller.
//
// Board combines the six logical pins (three lamps, the alert output, the
// sensor trigger and echo lines) with a monotonic clock. Two backends are
// provided: GPIO drives real pins through periph.io on a Linux host, and
// Simulator emulates the pins, the clock and an ultrasonic sensor in front of
// a scripted obstacle.
package hardware
