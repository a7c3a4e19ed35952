package api

import (
	"context"
	"net/http"
	"time"

	"github.com/RMahshie/pythagorean/internal/api/handlers"
	"github.com/RMahshie/pythagorean/internal/tuning"
	"github.com/RMahshie/pythagorean/pkg/models"
	"github.com/danielgtaylor/huma/v2"
)

// Version is reported by the health endpoint and the OpenAPI document
const Version = "1.0.0"

// RegisterRoutes sets up all API routes
func RegisterRoutes(api huma.API, scaleSvc tuning.ScaleService) {
	// Initialize handlers
	scaleHandler := handlers.NewScaleHandler(scaleSvc)

	// Register health endpoint
	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Description: "Returns the health status of the service",
	}, func(ctx context.Context, input *struct{}) (*models.HealthResponse, error) {
		resp := &models.HealthResponse{}
		resp.Body.Status = "healthy"
		resp.Body.Version = Version
		resp.Body.Time = time.Now()
		return resp, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "getScale",
		Method:      http.MethodGet,
		Path:        "/api/scale",
		Summary:     "Generate a Pythagorean scale",
		Description: "Chains octaves of stacked perfect fifths from a root frequency and reports the drift of each octave",
		Tags:        []string{"Scale"},
	}, scaleHandler.GetScale)
}
