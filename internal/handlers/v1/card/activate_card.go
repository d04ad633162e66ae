package card

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// ActivateCardHandler handles POST /api/card/activate.
type ActivateCardHandler struct {
	DashboardService cardStatusUpdater
}

// NewActivateCardHandler creates a new ActivateCardHandler.
func NewActivateCardHandler(svc cardStatusUpdater) *ActivateCardHandler {
	return &ActivateCardHandler{DashboardService: svc}
}

// Register registers the card activation endpoint with the Huma API.
func (h *ActivateCardHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "activate-card",
		Method:      http.MethodPost,
		Path:        "/api/card/activate",
		Summary:     "Activate card",
		Description: "Activates all cards belonging to the given company.",
		Tags:        []string{"Cards"},
	}, h.handle)
}

func (h *ActivateCardHandler) handle(ctx context.Context, input *UpdateCardStatusInput) (*UpdateCardStatusOutput, error) {
	return updateCardStatus(ctx, h.DashboardService, input.Body.CompanyID, true,
		"Card activated successfully", "Failed to activate card")
}
