package card

import (
	"context"
	"net/http"

	"github.com/carson-networks/card-dashboard/internal/handlers/v1/apierrors"
	"github.com/carson-networks/card-dashboard/internal/logging"
)

// CardActivationResponse reports the outcome of a card status toggle.
type CardActivationResponse struct {
	Success bool   `json:"success" doc:"Whether the toggle persisted"`
	Message string `json:"message" doc:"Human-readable outcome"`
}

// UpdateCardStatusBody is the request body for the activate and deactivate
// endpoints. The field is schema-optional so that its absence maps to the
// fixed 400 message instead of a generic validation error.
type UpdateCardStatusBody struct {
	CompanyID string `json:"companyId,omitempty" doc:"Company whose cards to update"`
}

// UpdateCardStatusInput is the Huma input for toggling card status.
type UpdateCardStatusInput struct {
	Body UpdateCardStatusBody
}

// UpdateCardStatusOutput is the Huma output for toggling card status. Status
// is 200 on success and 500 when the write failed; the body always carries
// the success flag, which is what callers are expected to check.
type UpdateCardStatusOutput struct {
	Status int
	Body   CardActivationResponse
}

// cardStatusUpdater is the interface for persisting the toggle. The count
// distinguishes "no cards existed" (0, nil) from a failed write (0, err).
type cardStatusUpdater interface {
	UpdateCardStatus(ctx context.Context, companyID string, active bool) (int64, error)
}

// updateCardStatus runs the shared toggle flow for both endpoints. The write
// is best-effort: a persistence failure is logged and collapsed into
// success=false, never surfaced as an error body. A company with zero cards
// still reports success.
func updateCardStatus(ctx context.Context, svc cardStatusUpdater, companyID string, active bool, successMsg, failureMsg string) (*UpdateCardStatusOutput, error) {
	if companyID == "" {
		return nil, apierrors.New(http.StatusBadRequest, "Company ID is required")
	}

	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("updateCardStatusMs")
	}
	updated, err := svc.UpdateCardStatus(ctx, companyID, active)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		if logData != nil {
			logData.Log().WithError(err).Error("Handler.update-card-status.WriteFailure")
		}
		return &UpdateCardStatusOutput{
			Status: http.StatusInternalServerError,
			Body:   CardActivationResponse{Success: false, Message: failureMsg},
		}, nil
	}

	if logData != nil {
		logData.AddData("cardsUpdated", updated)
	}

	return &UpdateCardStatusOutput{
		Status: http.StatusOK,
		Body:   CardActivationResponse{Success: true, Message: successMsg},
	}, nil
}
