package models

// ScaleResult holds chained Pythagorean octaves and the drift of each octave
// relative to the one before it. Drifts[0] is always 0.
type ScaleResult struct {
	Root    float64     `json:"root"`
	Octaves [][]float64 `json:"octaves"`
	Drifts  []float64   `json:"drifts"`
}

// NumNotes returns the number of notes across all octaves
func (r *ScaleResult) NumNotes() int {
	total := 0
	for _, octave := range r.Octaves {
		total += len(octave)
	}
	return total
}
