package dashboard

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/card-dashboard/internal/handlers/v1/apierrors"
	"github.com/carson-networks/card-dashboard/internal/logging"
	"github.com/carson-networks/card-dashboard/internal/service"
)

// SelectCompanyBody is the request body for selecting a company. The field is
// schema-optional so that its absence maps to the fixed 400 message instead
// of a generic validation error.
type SelectCompanyBody struct {
	CompanyID string `json:"companyId,omitempty" doc:"Company to select"`
}

// SelectCompanyInput is the Huma input for selecting a company.
type SelectCompanyInput struct {
	Body SelectCompanyBody
}

// SelectCompanyOutput is the Huma output for selecting a company.
type SelectCompanyOutput struct {
	Body DashboardData
}

// SelectCompanyHandler handles POST /api/company/select.
type SelectCompanyHandler struct {
	DashboardService dashboardReader
}

// NewSelectCompanyHandler creates a new SelectCompanyHandler.
func NewSelectCompanyHandler(svc dashboardReader) *SelectCompanyHandler {
	return &SelectCompanyHandler{DashboardService: svc}
}

// Register registers the company selection endpoint with the Huma API.
func (h *SelectCompanyHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "select-company",
		Method:      http.MethodPost,
		Path:        "/api/company/select",
		Summary:     "Select company",
		Description: "Switches the dashboard to the given company and returns its snapshot.",
		Tags:        []string{"Dashboard"},
	}, h.handle)
}

func (h *SelectCompanyHandler) handle(ctx context.Context, input *SelectCompanyInput) (*SelectCompanyOutput, error) {
	if input.Body.CompanyID == "" {
		return nil, apierrors.New(http.StatusBadRequest, "Company ID is required")
	}

	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("getDashboardDataMs")
	}
	data, err := h.DashboardService.GetDashboardData(ctx, input.Body.CompanyID)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		if errors.Is(err, service.ErrCompanyNotFound) {
			return nil, apierrors.New(http.StatusNotFound, "Company not found")
		}
		if logData != nil {
			logData.Log().WithError(err).Error("Handler.select-company.Error")
		}
		return nil, apierrors.New(http.StatusInternalServerError, "Failed to fetch dashboard data")
	}

	return &SelectCompanyOutput{Body: dashboardDataFromService(data)}, nil
}
