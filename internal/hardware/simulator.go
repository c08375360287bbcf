package hardware

import (
	"time"
)

const (
	// NoEcho scripts a cycle in which the sensor never answers.
	NoEcho = 0.0
	// StuckEcho scripts a cycle in which the echo line rises and never falls.
	StuckEcho = -1.0

	// echoLatency is the delay between the trigger falling edge and the echo
	// rising edge, the time the sensor spends emitting its burst.
	echoLatency = 200 * time.Microsecond
	// soundCentimetersPerMicrosecond is the speed of sound used by the sensor model.
	soundCentimetersPerMicrosecond = 0.0343
	// realtimeThreshold is the shortest sleep paced in real time; shorter
	// sleeps only advance the virtual clock.
	realtimeThreshold = time.Millisecond
)

// Write is one recorded output transition of the simulator.
type Write struct {
	// At is the virtual time since the simulator started.
	At time.Duration
	// Pin is the written pin.
	Pin PinID
	// High is the written level.
	High bool
}

// pinMode is the configured direction of a simulated pin.
type pinMode int

const (
	modeUnset pinMode = iota
	modeOutput
	modeInput
)

// Simulator is a Board with a virtual clock and a modeled ultrasonic sensor.
//
// Each trigger falling edge consumes the next scripted distance (the script
// cycles). A positive distance produces an echo pulse of the matching time of
// flight, NoEcho leaves the echo line low and StuckEcho holds it high.
// The simulator is not safe for concurrent use, same as the pins it models.
type Simulator struct {
	// epoch anchors the virtual clock.
	epoch time.Time
	// elapsed is the virtual time since epoch.
	elapsed time.Duration
	// realtime makes sleeps of a millisecond or more also block in real time.
	realtime bool

	// levels holds the current level of every pin.
	levels [PinCount]bool
	// modes holds the configured direction of every pin.
	modes [PinCount]pinMode
	// writes records output transitions in order.
	writes []Write

	// script is the cycled list of obstacle distances in centimeters.
	script []float64
	// next is the index of the distance answered on the next trigger.
	next int
	// echoRise and echoFall bound the current echo pulse; echoFall < 0 means stuck high.
	echoRise, echoFall time.Duration
	// echoArmed is true while an echo pulse is scheduled.
	echoArmed bool
}

// NewSimulator creates a simulator answering with the given distances.
// With no distances every measurement times out.
func NewSimulator(realtime bool, distances ...float64) *Simulator {
	return &Simulator{
		epoch:    time.Now(),
		realtime: realtime,
		script:   append([]float64(nil), distances...),
	}
}

// Script replaces the scripted distances and restarts from the first one.
func (s *Simulator) Script(distances ...float64) {
	s.script = append(s.script[:0], distances...)
	s.next = 0
}

// ConfigureOutput marks the pin as an output driven low.
func (s *Simulator) ConfigureOutput(id PinID) error {
	s.modes[id] = modeOutput
	s.levels[id] = false

	return nil
}

// ConfigureInput marks the pin as an input.
func (s *Simulator) ConfigureInput(id PinID) error {
	s.modes[id] = modeInput

	return nil
}

// SetOutput writes a level and records it. A falling edge on the trigger
// schedules the echo for the next scripted distance.
func (s *Simulator) SetOutput(id PinID, high bool) {
	if s.modes[id] == modeInput {
		return
	}

	previous := s.levels[id]
	s.levels[id] = high
	s.writes = append(s.writes, Write{At: s.elapsed, Pin: id, High: high})

	if id == Trigger && previous && !high {
		s.scheduleEcho()
	}
}

// ReadInput returns the modeled level of the pin.
func (s *Simulator) ReadInput(id PinID) bool {
	if id != Echo {
		return s.levels[id]
	}

	if !s.echoArmed || s.elapsed < s.echoRise {
		return false
	}

	if s.echoFall < 0 {
		return true
	}

	if s.elapsed < s.echoFall {
		return true
	}

	s.echoArmed = false

	return false
}

// Now returns the virtual monotonic time.
func (s *Simulator) Now() time.Time {
	return s.epoch.Add(s.elapsed)
}

// Sleep advances the virtual clock by d.
func (s *Simulator) Sleep(d time.Duration) {
	if d <= 0 {
		return
	}

	s.elapsed += d

	if s.realtime && d >= realtimeThreshold {
		time.Sleep(d)
	}
}

// Close drives every output low.
func (s *Simulator) Close() error {
	for _, id := range Outputs() {
		if s.levels[id] {
			s.SetOutput(id, false)
		}
	}

	return nil
}

// Level returns the current level of a pin.
func (s *Simulator) Level(id PinID) bool {
	return s.levels[id]
}

// Elapsed returns the virtual time since the simulator was created.
func (s *Simulator) Elapsed() time.Duration {
	return s.elapsed
}

// Writes returns a copy of the recorded output transitions.
func (s *Simulator) Writes() []Write {
	return append([]Write(nil), s.writes...)
}

// ResetWrites clears the recorded output transitions.
func (s *Simulator) ResetWrites() {
	s.writes = s.writes[:0]
}

// scheduleEcho arms the echo pulse for the next scripted distance.
func (s *Simulator) scheduleEcho() {
	s.echoArmed = false

	if len(s.script) == 0 {
		return
	}

	distance := s.script[s.next%len(s.script)]
	s.next++

	switch {
	case distance == StuckEcho:
		s.echoArmed = true
		s.echoRise = s.elapsed + echoLatency
		s.echoFall = -1
	case distance > 0:
		flight := time.Duration(distance * 2 / soundCentimetersPerMicrosecond * float64(time.Microsecond))
		s.echoArmed = true
		s.echoRise = s.elapsed + echoLatency
		s.echoFall = s.echoRise + flight
	}
}
