package http

import (
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sagestone/sagestone/internal/domain"
	"github.com/sagestone/sagestone/internal/domain/mocks"
	"github.com/sagestone/sagestone/pkg/logger"
)

func setupCampaignHandler(t *testing.T) (*mocks.MockCampaignService, *http.ServeMux) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockCampaignService(ctrl)

	mux := http.NewServeMux()
	NewCampaignHandler(service, testAuth(), logger.NewNoopLogger()).RegisterRoutes(mux)
	return service, mux
}

func TestCampaignHandler_List(t *testing.T) {
	service, mux := setupCampaignHandler(t)
	service.EXPECT().ListCampaigns(gomock.Any(), "w1").Return([]*domain.Campaign{
		{ID: "cp1", WorkspaceID: "w1", Name: "Welcome Email Series", Type: domain.CampaignTypeEmail, Status: domain.CampaignStatusSent},
	}, nil)

	w := serve(mux, newRequest(t, http.MethodGet, "/api/campaigns?workspaceId=w1", nil, "u1"))

	assert.Equal(t, http.StatusOK, w.Code)
	campaigns := decodeBody(t, w)["campaigns"].([]interface{})
	assert.Equal(t, "sent", campaigns[0].(map[string]interface{})["status"])
}

func TestCampaignHandler_Create(t *testing.T) {
	req := domain.CampaignRequest{WorkspaceID: "w1", Name: "Spring", Type: domain.CampaignTypeEmail}

	t.Run("created", func(t *testing.T) {
		service, mux := setupCampaignHandler(t)
		service.EXPECT().CreateCampaign(gomock.Any(), gomock.Any()).Return(&domain.Campaign{ID: "cp2", WorkspaceID: "w1", Name: "Spring", Status: domain.CampaignStatusDraft}, nil)

		w := serve(mux, newRequest(t, http.MethodPost, "/api/campaigns", req, "u1"))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "draft", decodeBody(t, w)["status"])
	})

	t.Run("segment from another workspace", func(t *testing.T) {
		service, mux := setupCampaignHandler(t)
		service.EXPECT().CreateCampaign(gomock.Any(), gomock.Any()).Return(nil, domain.NewValidationError("Segment not found in this workspace"))

		w := serve(mux, newRequest(t, http.MethodPost, "/api/campaigns", req, "u1"))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Segment not found in this workspace"}`, w.Body.String())
	})
}

func TestCampaignHandler_Update_BackwardTransition(t *testing.T) {
	service, mux := setupCampaignHandler(t)
	service.EXPECT().UpdateCampaign(gomock.Any(), "cp1", gomock.Any()).Return(nil, &domain.ErrInvalidTransition{
		From: domain.CampaignStatusSent,
		To:   domain.CampaignStatusDraft,
	})

	w := serve(mux, newRequest(t, http.MethodPut, "/api/campaigns/cp1", domain.CampaignRequest{
		WorkspaceID: "w1", Name: "Spring", Status: domain.CampaignStatusDraft,
	}, "u1"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"cannot change campaign status from sent to draft"}`, w.Body.String())
}

func TestCampaignHandler_GetAndDelete(t *testing.T) {
	service, mux := setupCampaignHandler(t)
	service.EXPECT().GetCampaign(gomock.Any(), "w1", "cp1").Return(&domain.Campaign{ID: "cp1"}, nil)
	service.EXPECT().DeleteCampaign(gomock.Any(), "w1", "cp1").Return(nil)

	w := serve(mux, newRequest(t, http.MethodGet, "/api/campaigns/cp1?workspaceId=w1", nil, "u1"))
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(mux, newRequest(t, http.MethodDelete, "/api/campaigns/cp1?workspaceId=w1", nil, "u1"))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCampaignHandler_Stats(t *testing.T) {
	service, mux := setupCampaignHandler(t)
	service.EXPECT().GetCampaignStats(gomock.Any(), "w1", "cp1").Return(&domain.CampaignStatsResponse{
		Stats:     &domain.CampaignStat{CampaignID: "cp1", Sent: 2543, Opened: 812, Clicked: 156},
		OpenRate:  31.93,
		ClickRate: 6.13,
	}, nil)

	w := serve(mux, newRequest(t, http.MethodGet, "/api/campaigns/cp1/stats?workspaceId=w1", nil, "u1"))

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, 31.93, body["openRate"])
}
