// Package display renders generated scales and playback progress for the console.
package display

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/RMahshie/pythagorean/pkg/models"
)

// Printer writes scale listings and playback progress to a writer. Headings
// are bold on a terminal and plain everywhere else.
type Printer struct {
	w       io.Writer
	heading lipgloss.Style
}

// NewPrinter creates a printer for w
func NewPrinter(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:       w,
		heading: r.NewStyle().Bold(true),
	}
}

// Scale lists every octave with its drift relative to the previous octave
func (p *Printer) Scale(result *models.ScaleResult) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%d octaves (starting from %s Hz):\n\n", len(result.Octaves), FormatFrequency(result.Root))
	for i, octave := range result.Octaves {
		heading := fmt.Sprintf("Octave %d, drift = %s Hz", i+1, FormatFrequency(result.Drifts[i]))
		fmt.Fprintf(&b, "%s\n  %s\n", p.heading.Render(heading), FormatOctave(octave))
	}
	_, err := io.WriteString(p.w, b.String())
	return err
}

// PlaybackStarted announces a playback run
func (p *Printer) PlaybackStarted(result *models.ScaleResult) {
	fmt.Fprintf(p.w, "\nPlaying %d octaves (%d notes total)...\n", len(result.Octaves), result.NumNotes())
}

// OctaveStarted announces the 1-based octave about to play
func (p *Printer) OctaveStarted(octave int) {
	fmt.Fprintf(p.w, "\n%s\n", p.heading.Render(fmt.Sprintf("Octave %d:", octave)))
}

// NotePlaying announces the 1-based note about to play
func (p *Printer) NotePlaying(note int, freq float64) {
	fmt.Fprintf(p.w, "  Note %d: %s Hz\n", note, FormatFrequency(freq))
}

// PlaybackDone closes a playback run
func (p *Printer) PlaybackDone() {
	fmt.Fprintln(p.w, "Done!")
}

// FormatOctave renders notes as a bracketed, comma separated list
func FormatOctave(notes []float64) string {
	parts := make([]string, len(notes))
	for i, f := range notes {
		parts[i] = FormatFrequency(f)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// FormatFrequency prints the shortest decimal that round-trips f. Whole
// numbers keep a trailing ".0" and very large or small magnitudes use an exponent.
func FormatFrequency(f float64) string {
	abs := math.Abs(f)
	if math.IsInf(f, 0) || math.IsNaN(f) || (abs != 0 && (abs >= 1e16 || abs < 1e-4)) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
