package tuning

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/RMahshie/pythagorean/internal/playback"
	"github.com/RMahshie/pythagorean/internal/scale"
	"github.com/RMahshie/pythagorean/pkg/models"
	"github.com/rs/zerolog/log"
)

// ErrInvalidDuration is returned for a note duration that is not positive
var ErrInvalidDuration = errors.New("note duration must be positive")

// Progress receives playback events in order
type Progress interface {
	PlaybackStarted(result *models.ScaleResult)
	OctaveStarted(octave int)
	NotePlaying(note int, freq float64)
	PlaybackDone()
}

type ScaleService interface {
	Generate(ctx context.Context, root float64, octaves int) (*models.ScaleResult, error)
	Play(ctx context.Context, result *models.ScaleResult, noteDuration float64, progress Progress) error
}

type scaleService struct {
	player playback.Player
}

// NewScaleService creates a service. player may be nil when nothing is played.
func NewScaleService(player playback.Player) ScaleService {
	return &scaleService{
		player: player,
	}
}

func (s *scaleService) Generate(ctx context.Context, root float64, octaves int) (*models.ScaleResult, error) {
	start := time.Now()
	result, err := scale.Generate(root, octaves)
	if err != nil {
		log.Warn().Err(err).Float64("root", root).Int("octaves", octaves).Msg("Scale generation failed")
		return nil, err
	}

	log.Debug().
		Float64("root", root).
		Int("octaves", octaves).
		Floats64("drifts", result.Drifts).
		Dur("elapsed", time.Since(start)).
		Msg("Scale generated")
	return result, nil
}

// Play plays every note of every octave in order, one at a time. A cancelled
// context stops playback before the next note.
func (s *scaleService) Play(ctx context.Context, result *models.ScaleResult, noteDuration float64, progress Progress) error {
	if noteDuration <= 0 {
		return fmt.Errorf("%w: got %g", ErrInvalidDuration, noteDuration)
	}
	if s.player == nil {
		return &playback.PlaybackError{Backend: "none", Err: errors.New("no audio output configured")}
	}

	progress.PlaybackStarted(result)
	note := 1
	for i, octave := range result.Octaves {
		progress.OctaveStarted(i + 1)
		for _, freq := range octave {
			progress.NotePlaying(note, freq)
			if err := s.player.Play(ctx, freq, noteDuration); err != nil {
				log.Error().Err(err).Int("note", note).Float64("frequency", freq).Msg("Playback stopped")
				return err
			}
			note++
		}
	}
	progress.PlaybackDone()
	return nil
}
