package health

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// HealthResponse is the API response model for the health check.
type HealthResponse struct {
	Status  string `json:"status" doc:"Service status"`
	Message string `json:"message" doc:"Human-readable status message"`
}

// GetHealthOutput is the Huma output for the health check.
type GetHealthOutput struct {
	Body HealthResponse
}

// Handler handles GET /api/health.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Register registers the health endpoint with the Huma API.
func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-health",
		Method:      http.MethodGet,
		Path:        "/api/health",
		Summary:     "Health check",
		Description: "Reports whether the backend is running.",
		Tags:        []string{"Health"},
	}, h.handle)
}

func (h *Handler) handle(_ context.Context, _ *struct{}) (*GetHealthOutput, error) {
	return &GetHealthOutput{
		Body: HealthResponse{
			Status:  "ok",
			Message: "Backend is running!",
		},
	}, nil
}
