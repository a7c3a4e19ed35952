package playback

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// SampleRate is the fixed output rate for every tone
const SampleRate = 44100

// SineTone returns int(SampleRate*seconds) samples of a unit-amplitude sine at
// freq, with sample times spaced evenly from 0 to seconds inclusive.
func SineTone(freq, seconds float64) []float64 {
	n := int(SampleRate * seconds)
	if n <= 0 {
		return nil
	}

	samples := make([]float64, n)
	if n == 1 {
		return samples
	}
	floats.Span(samples, 0, seconds)
	for i, t := range samples {
		samples[i] = math.Sin(2 * math.Pi * freq * t)
	}
	return samples
}
