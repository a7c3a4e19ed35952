// Package playback renders frequencies as pure sine tones on an audio output.
package playback

import (
	"context"
	"errors"
	"fmt"
)

// ErrPlayback marks every failure raised while playing a tone
var ErrPlayback = errors.New("playback failed")

// Backend names accepted by NewPlayer
const (
	BackendSpeaker = "speaker"
	BackendSox     = "sox"
)

// Player plays one tone to completion before returning
type Player interface {
	Play(ctx context.Context, freq, seconds float64) error
}

// PlaybackError reports an audio output failure. It is kept apart from scale
// generation errors so callers can show a scale without a working device.
type PlaybackError struct {
	Backend   string
	Frequency float64
	Err       error
}

func (e *PlaybackError) Error() string {
	if e.Frequency > 0 {
		return fmt.Sprintf("%s playback of %g Hz: %v", e.Backend, e.Frequency, e.Err)
	}
	return fmt.Sprintf("%s playback: %v", e.Backend, e.Err)
}

func (e *PlaybackError) Unwrap() []error {
	return []error{ErrPlayback, e.Err}
}

// NewPlayer returns the player for backend. soxCommand is only used by the sox backend.
func NewPlayer(backend, soxCommand string) (Player, error) {
	switch backend {
	case "", BackendSpeaker:
		return NewSpeakerPlayer(), nil
	case BackendSox:
		return NewSoxPlayer(soxCommand), nil
	default:
		return nil, &PlaybackError{Backend: backend, Err: fmt.Errorf("unknown backend %q", backend)}
	}
}
