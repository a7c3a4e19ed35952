// Package scale generates chained octaves of a Pythagorean tuning and
// measures the drift the Pythagorean comma introduces between them.
package scale

import (
	"fmt"
	"math"
	"slices"
	"sort"
	"strconv"

	"github.com/RMahshie/pythagorean/pkg/models"
)

const (
	// MinFrequency is the floor used during octave reduction
	MinFrequency = 20.0
	// NotesPerOctave is the number of usable notes in one octave
	NotesPerOctave = 12

	fifth = 3.0 / 2.0
)

// CommaCents is the Pythagorean comma, 3^12 / 2^19, in cents
var CommaCents = 1200 * math.Log2(math.Pow(3, 12)/math.Pow(2, 19))

// Ratios returns the Pythagorean ratio of each sorted octave index to the root.
// Index 0 is the root itself.
func Ratios() [NotesPerOctave]float64 {
	return [NotesPerOctave]float64{
		1,
		2187.0 / 2048,
		9.0 / 8,
		19683.0 / 16384,
		81.0 / 64,
		177147.0 / 131072,
		729.0 / 512,
		3.0 / 2,
		6561.0 / 4096,
		27.0 / 16,
		59049.0 / 32768,
		243.0 / 128,
	}
}

// Generate validates the input and chains count octaves starting at root
func Generate(root float64, count int) (*models.ScaleResult, error) {
	if root <= 0 || !isFinite(root) {
		return nil, fmt.Errorf("%w: got %g", ErrInvalidRoot, root)
	}
	if count <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidOctaveCount, count)
	}

	octaves, err := ChainOctaves(root, count)
	if err != nil {
		return nil, err
	}

	return &models.ScaleResult{
		Root:    root,
		Octaves: octaves,
		Drifts:  ComputeDrifts(octaves),
	}, nil
}

// OctaveReduce halves freq while it exceeds minFreq and returns the
// collected values in ascending order. Infinite input yields nil.
func OctaveReduce(freq, minFreq float64) []float64 {
	if math.IsInf(freq, 0) || math.IsNaN(freq) {
		return nil
	}
	var freqs []float64
	for freq > minFreq {
		freqs = append(freqs, freq)
		freq /= 2
	}
	slices.Reverse(freqs)
	return freqs
}

// UpperClosest returns the smallest value in the ascending slice nums that is >= x
func UpperClosest(nums []float64, x float64) (float64, bool) {
	i := sort.SearchFloat64s(nums, x)
	if i < len(nums) {
		return nums[i], true
	}
	return 0, false
}

// GenerateOctave stacks twelve fifths on root, folding each into the root's
// octave band. The result holds the root, the twelve derived notes, and ends
// with the comma note that lands just above twice the root.
func GenerateOctave(root float64) ([]float64, error) {
	if !isFinite(root) {
		return nil, &GenerationError{Root: root, Frequency: root, Err: ErrOverflow}
	}

	notes := make([]float64, 0, NotesPerOctave+1)
	notes = append(notes, round2(root))

	current := root
	for step := 1; step <= NotesPerOctave; step++ {
		up := current * fifth
		if !isFinite(up) {
			return nil, &GenerationError{Root: root, Frequency: up, Step: step, Err: ErrOverflow}
		}
		next, ok := UpperClosest(OctaveReduce(up, MinFrequency), root)
		if !ok {
			return nil, &GenerationError{Root: root, Frequency: up, Step: step, Err: ErrNoCandidate}
		}
		current = next
		notes = append(notes, round2(current))
	}
	return notes, nil
}

// BuildOctave returns the twelve usable notes of the octave on root, ascending
func BuildOctave(root float64) ([]float64, error) {
	notes, err := GenerateOctave(root)
	if err != nil {
		return nil, err
	}
	return sortedOctave(notes), nil
}

// ChainOctaves builds count octaves. Each octave after the first is seeded
// with twice the previous octave's comma note, so the comma accumulates.
func ChainOctaves(root float64, count int) ([][]float64, error) {
	octaves := make([][]float64, 0, count)
	current := root
	for i := 0; i < count; i++ {
		notes, err := GenerateOctave(current)
		if err != nil {
			return nil, fmt.Errorf("octave %d: %w", i+1, err)
		}
		current = notes[len(notes)-1] * 2
		octaves = append(octaves, sortedOctave(notes))
	}
	return octaves, nil
}

// ComputeDrifts compares half of each octave's lowest note to the lowest
// note of the octave before it.
func ComputeDrifts(octaves [][]float64) []float64 {
	drifts := []float64{0.0}
	for i := 1; i < len(octaves); i++ {
		drifts = append(drifts, round2(octaves[i][0]/2-octaves[i-1][0]))
	}
	return drifts
}

func isFinite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

func sortedOctave(notes []float64) []float64 {
	octave := slices.Clone(notes[:len(notes)-1])
	slices.Sort(octave)
	return octave
}

// round2 rounds to two decimals using the exact binary value of f, ties to even
func round2(f float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(f, 'f', 2, 64), 64)
	if err != nil {
		return f
	}
	return r
}
