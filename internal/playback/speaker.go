package playback

import (
	"context"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"github.com/rs/zerolog/log"
)

// SpeakerPlayer plays tones through the system's default audio output
type SpeakerPlayer struct {
	once    sync.Once
	initErr error
}

// NewSpeakerPlayer creates a player; the audio device is opened on first use
func NewSpeakerPlayer() *SpeakerPlayer {
	return &SpeakerPlayer{}
}

func (p *SpeakerPlayer) init() error {
	p.once.Do(func() {
		sr := beep.SampleRate(SampleRate)
		p.initErr = speaker.Init(sr, sr.N(time.Second/10))
		if p.initErr == nil {
			log.Debug().Int("sampleRate", SampleRate).Msg("Audio device initialized")
		}
	})
	return p.initErr
}

// Play blocks until the tone has been fully played
func (p *SpeakerPlayer) Play(ctx context.Context, freq, seconds float64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := p.init(); err != nil {
		return &PlaybackError{Backend: BackendSpeaker, Frequency: freq, Err: err}
	}

	done := make(chan struct{})
	speaker.Play(beep.Seq(newToneStreamer(SineTone(freq, seconds)), beep.Callback(func() {
		close(done)
	})))
	<-done
	return nil
}

// toneStreamer feeds precomputed mono samples to both speaker channels
type toneStreamer struct {
	samples []float64
	pos     int
}

func newToneStreamer(samples []float64) *toneStreamer {
	return &toneStreamer{samples: samples}
}

func (s *toneStreamer) Stream(buf [][2]float64) (int, bool) {
	if s.pos >= len(s.samples) {
		return 0, false
	}
	n := 0
	for n < len(buf) && s.pos < len(s.samples) {
		buf[n][0] = s.samples[s.pos]
		buf[n][1] = s.samples[s.pos]
		n++
		s.pos++
	}
	return n, true
}

func (s *toneStreamer) Err() error {
	return nil
}
