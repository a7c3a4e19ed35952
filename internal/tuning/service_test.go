package tuning

import (
	"context"
	"testing"

	"github.com/RMahshie/pythagorean/internal/playback"
	"github.com/RMahshie/pythagorean/internal/scale"
	"github.com/RMahshie/pythagorean/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockPlayer implements playback.Player for testing
type MockPlayer struct {
	mock.Mock
}

func (m *MockPlayer) Play(ctx context.Context, freq, seconds float64) error {
	args := m.Called(ctx, freq, seconds)
	return args.Error(0)
}

// recorder implements Progress and keeps every event
type recorder struct {
	events []string
	notes  []float64
}

func (r *recorder) PlaybackStarted(result *models.ScaleResult) { r.events = append(r.events, "start") }
func (r *recorder) OctaveStarted(octave int)                   { r.events = append(r.events, "octave") }
func (r *recorder) NotePlaying(note int, freq float64)         { r.notes = append(r.notes, freq) }
func (r *recorder) PlaybackDone()                              { r.events = append(r.events, "done") }

func TestGenerate(t *testing.T) {
	svc := NewScaleService(nil)

	result, err := svc.Generate(context.Background(), 440, 3)
	require.NoError(t, err)
	assert.Len(t, result.Octaves, 3)
	assert.Equal(t, []float64{0, 6, 12.17}, result.Drifts)

	_, err = svc.Generate(context.Background(), -1, 3)
	assert.ErrorIs(t, err, scale.ErrInvalidRoot)
}

func TestPlay(t *testing.T) {
	result := &models.ScaleResult{
		Root:    440,
		Octaves: [][]float64{{440, 469.86}, {892, 952.54}},
		Drifts:  []float64{0, 6},
	}

	tests := []struct {
		name       string
		duration   float64
		mockSetup  func(*MockPlayer)
		wantErr    error
		wantNotes  []float64
		wantEvents []string
	}{
		{
			name:     "plays every note in order",
			duration: 0.5,
			mockSetup: func(m *MockPlayer) {
				m.On("Play", mock.Anything, mock.AnythingOfType("float64"), 0.5).Return(nil).Times(4)
			},
			wantNotes:  []float64{440, 469.86, 892, 952.54},
			wantEvents: []string{"start", "octave", "octave", "done"},
		},
		{
			name:     "device failure stops playback",
			duration: 0.5,
			mockSetup: func(m *MockPlayer) {
				m.On("Play", mock.Anything, 440.0, 0.5).Return(nil).Once()
				m.On("Play", mock.Anything, 469.86, 0.5).Return(&playback.PlaybackError{Backend: "test", Err: assert.AnError}).Once()
			},
			wantErr:    playback.ErrPlayback,
			wantNotes:  []float64{440, 469.86},
			wantEvents: []string{"start", "octave"},
		},
		{
			name:     "cancellation stops before completion",
			duration: 0.5,
			mockSetup: func(m *MockPlayer) {
				m.On("Play", mock.Anything, 440.0, 0.5).Return(nil).Once()
				m.On("Play", mock.Anything, 469.86, 0.5).Return(context.Canceled).Once()
			},
			wantErr:    context.Canceled,
			wantNotes:  []float64{440, 469.86},
			wantEvents: []string{"start", "octave"},
		},
		{
			name:       "non-positive duration is rejected",
			duration:   0,
			mockSetup:  func(m *MockPlayer) {},
			wantErr:    ErrInvalidDuration,
			wantEvents: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			player := &MockPlayer{}
			tt.mockSetup(player)
			rec := &recorder{}

			err := NewScaleService(player).Play(context.Background(), result, tt.duration, rec)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantNotes, rec.notes)
			assert.Equal(t, tt.wantEvents, rec.events)
			player.AssertExpectations(t)
		})
	}
}

func TestPlay_NoPlayer(t *testing.T) {
	result, err := scale.Generate(440, 1)
	require.NoError(t, err)

	err = NewScaleService(nil).Play(context.Background(), result, 0.5, &recorder{})
	assert.ErrorIs(t, err, playback.ErrPlayback)
}
