package card

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// mockCardService is a mock for cardStatusUpdater.
type mockCardService struct {
	mock.Mock
}

func (m *mockCardService) UpdateCardStatus(ctx context.Context, companyID string, active bool) (int64, error) {
	args := m.Called(ctx, companyID, active)
	return args.Get(0).(int64), args.Error(1)
}

// newTestAPI registers both toggle handlers against a humatest API.
func newTestAPI(t *testing.T, svc cardStatusUpdater) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewActivateCardHandler(svc).Register(api)
	NewDeactivateCardHandler(svc).Register(api)
	return api
}

func TestHTTP_ActivateCard_Success(t *testing.T) {
	mockSvc := new(mockCardService)
	mockSvc.On("UpdateCardStatus", mock.Anything, "company-1", true).Return(int64(1), nil)

	resp := newTestAPI(t, mockSvc).Post("/api/card/activate", UpdateCardStatusBody{
		CompanyID: "company-1",
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body CardActivationResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)
	assert.Equal(t, "Card activated successfully", body.Message)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_DeactivateCard_Success(t *testing.T) {
	mockSvc := new(mockCardService)
	mockSvc.On("UpdateCardStatus", mock.Anything, "company-1", false).Return(int64(1), nil)

	resp := newTestAPI(t, mockSvc).Post("/api/card/deactivate", UpdateCardStatusBody{
		CompanyID: "company-1",
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body CardActivationResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)
	assert.Equal(t, "Card deactivated successfully", body.Message)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ActivateCard_NoCardsStillSucceeds(t *testing.T) {
	mockSvc := new(mockCardService)
	mockSvc.On("UpdateCardStatus", mock.Anything, "company-1", true).Return(int64(0), nil)

	resp := newTestAPI(t, mockSvc).Post("/api/card/activate", UpdateCardStatusBody{
		CompanyID: "company-1",
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body CardActivationResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ActivateCard_WriteFailure(t *testing.T) {
	mockSvc := new(mockCardService)
	mockSvc.On("UpdateCardStatus", mock.Anything, "company-1", true).
		Return(int64(0), errors.New("write failed"))

	resp := newTestAPI(t, mockSvc).Post("/api/card/activate", UpdateCardStatusBody{
		CompanyID: "company-1",
	})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	var body CardActivationResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.False(t, body.Success)
	assert.Equal(t, "Failed to activate card", body.Message)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_DeactivateCard_WriteFailure(t *testing.T) {
	mockSvc := new(mockCardService)
	mockSvc.On("UpdateCardStatus", mock.Anything, "company-1", false).
		Return(int64(0), errors.New("write failed"))

	resp := newTestAPI(t, mockSvc).Post("/api/card/deactivate", UpdateCardStatusBody{
		CompanyID: "company-1",
	})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	var body CardActivationResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.False(t, body.Success)
	assert.Equal(t, "Failed to deactivate card", body.Message)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ActivateCard_MissingCompanyID(t *testing.T) {
	mockSvc := new(mockCardService)

	resp := newTestAPI(t, mockSvc).Post("/api/card/activate", UpdateCardStatusBody{})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	var body map[string]string
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, map[string]string{"error": "Company ID is required"}, body)
	mockSvc.AssertNotCalled(t, "UpdateCardStatus")
}

func TestHTTP_DeactivateCard_MissingCompanyID(t *testing.T) {
	mockSvc := new(mockCardService)

	resp := newTestAPI(t, mockSvc).Post("/api/card/deactivate", UpdateCardStatusBody{})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "UpdateCardStatus")
}
