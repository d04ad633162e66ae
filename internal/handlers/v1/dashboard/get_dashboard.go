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

// GetDashboardInput is the Huma input for fetching the dashboard.
type GetDashboardInput struct {
	CompanyID string `query:"companyId" doc:"Company to show; defaults to the first company in creation order"`
}

// GetDashboardOutput is the Huma output for fetching the dashboard.
type GetDashboardOutput struct {
	Body DashboardData
}

// dashboardReader is the interface for assembling dashboard snapshots.
type dashboardReader interface {
	GetDashboardData(ctx context.Context, companyID string) (*service.DashboardData, error)
}

// GetDashboardHandler handles GET /api/dashboard.
type GetDashboardHandler struct {
	DashboardService dashboardReader
}

// NewGetDashboardHandler creates a new GetDashboardHandler.
func NewGetDashboardHandler(svc dashboardReader) *GetDashboardHandler {
	return &GetDashboardHandler{DashboardService: svc}
}

// Register registers the dashboard endpoint with the Huma API.
func (h *GetDashboardHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-dashboard",
		Method:      http.MethodGet,
		Path:        "/api/dashboard",
		Summary:     "Get dashboard",
		Description: "Returns the composite dashboard snapshot for a company.",
		Tags:        []string{"Dashboard"},
	}, h.handle)
}

func (h *GetDashboardHandler) handle(ctx context.Context, input *GetDashboardInput) (*GetDashboardOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("getDashboardDataMs")
	}
	data, err := h.DashboardService.GetDashboardData(ctx, input.CompanyID)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		if errors.Is(err, service.ErrCompanyNotFound) {
			return nil, apierrors.New(http.StatusNotFound, "Company not found")
		}
		if logData != nil {
			logData.Log().WithError(err).Error("Handler.get-dashboard.Error")
		}
		return nil, apierrors.New(http.StatusInternalServerError, "Failed to fetch dashboard data")
	}

	if logData != nil {
		logData.AddData("companyId", data.SelectedCompany.ID)
	}

	return &GetDashboardOutput{Body: dashboardDataFromService(data)}, nil
}
