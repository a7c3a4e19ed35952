package playback

import (
	"context"
	"fmt"
	"io"
	"math"
	"os/exec"

	"github.com/rs/zerolog/log"
	"github.com/youpy/go-wav"
)

const bitsPerSample = 16

// SoxPlayer pipes each tone as a 16-bit mono WAV stream into SoX's play command
type SoxPlayer struct {
	command string
	args    []string
}

// NewSoxPlayer creates a player that runs command, "play" when empty
func NewSoxPlayer(command string) *SoxPlayer {
	if command == "" {
		command = "play"
	}
	return &SoxPlayer{
		command: command,
		args:    []string{"-q", "-t", "wav", "-"},
	}
}

// Play blocks until the external process has consumed and played the tone
func (p *SoxPlayer) Play(ctx context.Context, freq, seconds float64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	// The tone is never cut short, so the process is not tied to ctx.
	cmd := exec.Command(p.command, p.args...)
	cmd.Stdout = io.Discard
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return &PlaybackError{Backend: BackendSox, Frequency: freq, Err: err}
	}
	if err := cmd.Start(); err != nil {
		return &PlaybackError{Backend: BackendSox, Frequency: freq, Err: err}
	}

	writeErr := writeWAV(stdin, SineTone(freq, seconds))
	closeErr := stdin.Close()
	waitErr := cmd.Wait()

	switch {
	case writeErr != nil:
		err = writeErr
	case closeErr != nil:
		err = closeErr
	case waitErr != nil:
		err = waitErr
	}
	if err != nil {
		log.Debug().Err(err).Str("command", p.command).Float64("frequency", freq).Msg("SoX playback failed")
		return &PlaybackError{Backend: BackendSox, Frequency: freq, Err: err}
	}
	return nil
}

// writeWAV encodes mono float samples in [-1, 1] as 16-bit PCM WAV
func writeWAV(w io.Writer, samples []float64) error {
	wr := wav.NewWriter(w, uint32(len(samples)), 1, SampleRate, bitsPerSample)

	scale := math.Pow(2, bitsPerSample-1) - 1
	out := make([]wav.Sample, len(samples))
	for i, s := range samples {
		out[i] = wav.Sample{Values: [2]int{int(math.Round(s * scale))}}
	}
	if err := wr.WriteSamples(out); err != nil {
		return fmt.Errorf("failed to write samples: %w", err)
	}
	return nil
}
