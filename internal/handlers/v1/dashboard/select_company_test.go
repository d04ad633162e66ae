package dashboard

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/card-dashboard/internal/service"
)

// newSelectCompanyAPI registers the handler against a humatest API and returns it.
func newSelectCompanyAPI(t *testing.T, svc dashboardReader) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewSelectCompanyHandler(svc).Register(api)
	return api
}

func TestHTTP_SelectCompany_Success(t *testing.T) {
	mockSvc := new(mockDashboardService)
	mockSvc.On("GetDashboardData", mock.Anything, "company-1").Return(sampleDashboardData(), nil)

	resp := newSelectCompanyAPI(t, mockSvc).Post("/api/company/select", SelectCompanyBody{
		CompanyID: "company-1",
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body DashboardData
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "company-1", body.SelectedCompany.ID)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_SelectCompany_MissingCompanyID(t *testing.T) {
	mockSvc := new(mockDashboardService)

	resp := newSelectCompanyAPI(t, mockSvc).Post("/api/company/select", SelectCompanyBody{})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	var body map[string]string
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, map[string]string{"error": "Company ID is required"}, body)
	mockSvc.AssertNotCalled(t, "GetDashboardData")
}

func TestHTTP_SelectCompany_CompanyNotFound(t *testing.T) {
	mockSvc := new(mockDashboardService)
	mockSvc.On("GetDashboardData", mock.Anything, "nonexistent-id").
		Return(nil, service.ErrCompanyNotFound)

	resp := newSelectCompanyAPI(t, mockSvc).Post("/api/company/select", SelectCompanyBody{
		CompanyID: "nonexistent-id",
	})

	assert.Equal(t, http.StatusNotFound, resp.Code)
	var body map[string]string
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Company not found", body["error"])
	mockSvc.AssertExpectations(t)
}

func TestHTTP_SelectCompany_ServiceError(t *testing.T) {
	mockSvc := new(mockDashboardService)
	mockSvc.On("GetDashboardData", mock.Anything, "company-1").
		Return(nil, errors.New("database unavailable"))

	resp := newSelectCompanyAPI(t, mockSvc).Post("/api/company/select", SelectCompanyBody{
		CompanyID: "company-1",
	})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	var body map[string]string
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Failed to fetch dashboard data", body["error"])
	mockSvc.AssertExpectations(t)
}
