package handlers

import (
	"context"
	"fmt"
	"testing"

	"github.com/RMahshie/pythagorean/internal/scale"
	"github.com/RMahshie/pythagorean/internal/tuning"
	"github.com/RMahshie/pythagorean/pkg/models"
	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockScaleService implements tuning.ScaleService for testing
type MockScaleService struct {
	mock.Mock
}

func (m *MockScaleService) Generate(ctx context.Context, root float64, octaves int) (*models.ScaleResult, error) {
	args := m.Called(ctx, root, octaves)
	result, _ := args.Get(0).(*models.ScaleResult)
	return result, args.Error(1)
}

func (m *MockScaleService) Play(ctx context.Context, result *models.ScaleResult, noteDuration float64, progress tuning.Progress) error {
	args := m.Called(ctx, result, noteDuration, progress)
	return args.Error(0)
}

func TestGetScale_Ratios(t *testing.T) {
	mockSvc := &MockScaleService{}
	mockSvc.On("Generate", mock.Anything, 440.0, 1).Return(&models.ScaleResult{
		Root:    440,
		Octaves: [][]float64{{440}},
		Drifts:  []float64{0},
	}, nil)

	resp, err := NewScaleHandler(mockSvc).GetScale(context.Background(), &models.GetScaleRequest{Root: 440, Octaves: 1, Ratios: true})
	require.NoError(t, err)

	require.Len(t, resp.Body.Ratios, scale.NotesPerOctave)
	assert.Equal(t, 1.0, resp.Body.Ratios[0])
	assert.Equal(t, 3.0/2, resp.Body.Ratios[7])
	assert.Equal(t, 243.0/128, resp.Body.Ratios[11])
	mockSvc.AssertExpectations(t)
}

func TestGetScale(t *testing.T) {
	generated := &models.ScaleResult{
		Root:    440,
		Octaves: [][]float64{{440, 469.86}, {892, 952.54}},
		Drifts:  []float64{0, 6},
	}

	tests := []struct {
		name       string
		input      models.GetScaleRequest
		mockSetup  func(*MockScaleService)
		wantStatus int
		wantError  bool
	}{
		{
			name:  "valid request",
			input: models.GetScaleRequest{Root: 440, Octaves: 2},
			mockSetup: func(m *MockScaleService) {
				m.On("Generate", mock.Anything, 440.0, 2).Return(generated, nil)
			},
			wantError: false,
		},
		{
			name:  "invalid root",
			input: models.GetScaleRequest{Root: -1, Octaves: 2},
			mockSetup: func(m *MockScaleService) {
				m.On("Generate", mock.Anything, -1.0, 2).Return(nil, fmt.Errorf("%w: got -1", scale.ErrInvalidRoot))
			},
			wantStatus: 400,
			wantError:  true,
		},
		{
			name:  "root below floor",
			input: models.GetScaleRequest{Root: 1, Octaves: 2},
			mockSetup: func(m *MockScaleService) {
				m.On("Generate", mock.Anything, 1.0, 2).Return(nil, &scale.GenerationError{Root: 1, Frequency: 1.5, Step: 1, Err: scale.ErrNoCandidate})
			},
			wantStatus: 422,
			wantError:  true,
		},
		{
			name:  "overflowing scale",
			input: models.GetScaleRequest{Root: 1e6, Octaves: 64},
			mockSetup: func(m *MockScaleService) {
				m.On("Generate", mock.Anything, 1e6, 64).Return(nil, &scale.GenerationError{Root: 1e308, Step: 3, Err: scale.ErrOverflow})
			},
			wantStatus: 422,
			wantError:  true,
		},
		{
			name:  "unexpected failure",
			input: models.GetScaleRequest{Root: 440, Octaves: 2},
			mockSetup: func(m *MockScaleService) {
				m.On("Generate", mock.Anything, 440.0, 2).Return(nil, assert.AnError)
			},
			wantStatus: 500,
			wantError:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := &MockScaleService{}
			tt.mockSetup(mockSvc)

			handler := NewScaleHandler(mockSvc)
			resp, err := handler.GetScale(context.Background(), &tt.input)

			if tt.wantError {
				require.Error(t, err)
				var statusErr huma.StatusError
				require.ErrorAs(t, err, &statusErr)
				assert.Equal(t, tt.wantStatus, statusErr.GetStatus())
			} else {
				require.NoError(t, err)
				assert.NotEmpty(t, resp.Body.ID)
				assert.Equal(t, 440.0, resp.Body.Root)
				assert.Equal(t, 2, resp.Body.NumOctaves)
				assert.InDelta(t, 23.46, resp.Body.CommaCents, 0.005)
				require.Len(t, resp.Body.Octaves, 2)
				assert.Equal(t, models.OctaveBody{Index: 2, Drift: 6, Notes: []float64{892, 952.54}}, resp.Body.Octaves[1])
				assert.Nil(t, resp.Body.Ratios)
			}

			mockSvc.AssertExpectations(t)
		})
	}
}
