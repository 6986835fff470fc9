package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sagestone/sagestone/internal/domain"
	"github.com/sagestone/sagestone/internal/domain/mocks"
	"github.com/sagestone/sagestone/pkg/logger"
)

func setupAutomationHandler(t *testing.T) (*mocks.MockAutomationService, *http.ServeMux) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockAutomationService(ctrl)

	mux := http.NewServeMux()
	NewAutomationHandler(service, testAuth(), logger.NewNoopLogger()).RegisterRoutes(mux)
	return service, mux
}

func TestAutomationHandler_ListAndCreate(t *testing.T) {
	service, mux := setupAutomationHandler(t)
	service.EXPECT().ListAutomations(gomock.Any(), "w1").Return(nil, nil)
	service.EXPECT().CreateAutomation(gomock.Any(), gomock.Any()).Return(&domain.Automation{
		ID: "a1", Name: "Welcome Email Sequence", Trigger: json.RawMessage(`{"type":"segment_joined"}`),
	}, nil)

	w := serve(mux, newRequest(t, http.MethodGet, "/api/automations?workspaceId=w1", nil, "u1"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"automations":[]}`, w.Body.String())

	w = serve(mux, newRequest(t, http.MethodPost, "/api/automations", map[string]interface{}{
		"workspaceId": "w1",
		"name":        "Welcome Email Sequence",
		"trigger":     map[string]string{"type": "segment_joined"},
	}, "u1"))
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "segment_joined", decodeBody(t, w)["trigger"].(map[string]interface{})["type"])
}

func TestAutomationHandler_Activation(t *testing.T) {
	testCases := []struct {
		path   string
		active bool
	}{
		{"/api/automations/a1/activate?workspaceId=w1", true},
		{"/api/automations/a1/deactivate?workspaceId=w1", false},
	}

	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			service, mux := setupAutomationHandler(t)
			service.EXPECT().SetAutomationActive(gomock.Any(), "w1", "a1", tc.active).Return(&domain.Automation{ID: "a1", IsActive: tc.active}, nil)

			w := serve(mux, newRequest(t, http.MethodPost, tc.path, nil, "u1"))

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tc.active, decodeBody(t, w)["isActive"])
		})
	}
}

func TestAutomationHandler_GetAndDelete(t *testing.T) {
	service, mux := setupAutomationHandler(t)
	service.EXPECT().GetAutomation(gomock.Any(), "w1", "a1").Return(nil, &domain.ErrNotFound{Entity: "automation", ID: "a1"})
	service.EXPECT().DeleteAutomation(gomock.Any(), "w1", "a1").Return(nil)

	w := serve(mux, newRequest(t, http.MethodGet, "/api/automations/a1?workspaceId=w1", nil, "u1"))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = serve(mux, newRequest(t, http.MethodDelete, "/api/automations/a1?workspaceId=w1", nil, "u1"))
	assert.Equal(t, http.StatusOK, w.Code)
}
