package flappy

import "math"

// Tilt returns the presentation angle of the bird in radians: nose up while
// rising, nose down while falling. It has no effect on the simulation.
func Tilt(velocity, reference float64) float64 {
	return math.Atan2(velocity, reference)
}

// TiltDegrees is Tilt expressed in degrees.
func TiltDegrees(velocity, reference float64) float64 {
	return Tilt(velocity, reference) * 180 / math.Pi
}
