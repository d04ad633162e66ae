package card

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// DeactivateCardHandler handles POST /api/card/deactivate.
type DeactivateCardHandler struct {
	DashboardService cardStatusUpdater
}

// NewDeactivateCardHandler creates a new DeactivateCardHandler.
func NewDeactivateCardHandler(svc cardStatusUpdater) *DeactivateCardHandler {
	return &DeactivateCardHandler{DashboardService: svc}
}

// Register registers the card deactivation endpoint with the Huma API.
func (h *DeactivateCardHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "deactivate-card",
		Method:      http.MethodPost,
		Path:        "/api/card/deactivate",
		Summary:     "Deactivate card",
		Description: "Deactivates all cards belonging to the given company.",
		Tags:        []string{"Cards"},
	}, h.handle)
}

func (h *DeactivateCardHandler) handle(ctx context.Context, input *UpdateCardStatusInput) (*UpdateCardStatusOutput, error) {
	return updateCardStatus(ctx, h.DashboardService, input.Body.CompanyID, false,
		"Card deactivated successfully", "Failed to deactivate card")
}
