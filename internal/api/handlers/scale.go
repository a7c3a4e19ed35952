package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/RMahshie/pythagorean/internal/scale"
	"github.com/RMahshie/pythagorean/internal/tuning"
	"github.com/RMahshie/pythagorean/pkg/models"
	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ScaleHandler handles scale-related HTTP requests
type ScaleHandler struct {
	scaleSvc tuning.ScaleService
}

// NewScaleHandler creates a new scale handler
func NewScaleHandler(scaleSvc tuning.ScaleService) *ScaleHandler {
	return &ScaleHandler{
		scaleSvc: scaleSvc,
	}
}

// GetScale generates the requested octaves and their drifts
func (h *ScaleHandler) GetScale(ctx context.Context, req *models.GetScaleRequest) (*models.GetScaleResponse, error) {
	id := uuid.New()
	log.Info().Str("scaleID", id.String()).Float64("root", req.Root).Int("octaves", req.Octaves).Msg("Scale requested")

	result, err := h.scaleSvc.Generate(ctx, req.Root, req.Octaves)
	if err != nil {
		switch {
		case errors.Is(err, scale.ErrInvalidRoot), errors.Is(err, scale.ErrInvalidOctaveCount):
			return nil, huma.Error400BadRequest("Invalid scale parameters", err)
		case errors.Is(err, scale.ErrNoCandidate):
			return nil, huma.Error422UnprocessableEntity("Root frequency too low to build an octave", err)
		case errors.Is(err, scale.ErrOverflow):
			return nil, huma.Error422UnprocessableEntity("Scale exceeds the representable frequency range", err)
		default:
			return nil, huma.Error500InternalServerError("Failed to generate scale", err)
		}
	}

	octaves := make([]models.OctaveBody, len(result.Octaves))
	for i, notes := range result.Octaves {
		octaves[i] = models.OctaveBody{
			Index: i + 1,
			Drift: result.Drifts[i],
			Notes: notes,
		}
	}

	var ratios []float64
	if req.Ratios {
		table := scale.Ratios()
		ratios = table[:]
	}

	return &models.GetScaleResponse{
		Body: models.GetScaleResponseBody{
			ID:         id.String(),
			Root:       result.Root,
			NumOctaves: len(result.Octaves),
			CommaCents: scale.CommaCents,
			Octaves:    octaves,
			Ratios:     ratios,
			CreatedAt:  time.Now(),
		},
	}, nil
}
