package httpadapter

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"sponsored-ads/internal/adapter/usecase"
	"sponsored-ads/internal/core/domain"
	"sponsored-ads/internal/core/port/mocks"
)

const testSecret = "test-secret"

func newTestHandler(t *testing.T) (*Handler, *mocks.MockCampaignRepository, *mocks.MockClickLimiter) {
	repo := mocks.NewMockCampaignRepository(t)
	limiter := mocks.NewMockClickLimiter(t)
	svc := usecase.NewAdsUseCase(repo, limiter, usecase.Config{})
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewHandler(svc, logger, testSecret), repo, limiter
}

func doClick(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ads/click", strings.NewReader(body))
	req.Header.Set("x-forwarded-for", "203.0.113.7, 10.0.0.1")
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)
	return rec
}

// TestClickEndpointStatusMapping drives the endpoint through each
// failure mode and checks the response contract.
func TestClickEndpointStatusMapping(t *testing.T) {
	t.Run("missing fields", func(t *testing.T) {
		h, _, _ := newTestHandler(t)
		rec := doClick(t, h, `{"campaignId":1,"productId":2}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rate limited", func(t *testing.T) {
		h, _, limiter := newTestHandler(t)
		limiter.EXPECT().Allow(mock.Anything, int64(1), "203.0.113.7").Return(false, nil)
		rec := doClick(t, h, `{"campaignId":1,"productId":2,"cost":10}`)
		require.Equal(t, http.StatusTooManyRequests, rec.Code)
		require.Contains(t, rec.Body.String(), "rate_limited")
	})

	t.Run("campaign not found", func(t *testing.T) {
		h, repo, limiter := newTestHandler(t)
		limiter.EXPECT().Allow(mock.Anything, int64(1), "203.0.113.7").Return(true, nil)
		repo.EXPECT().GetCampaign(mock.Anything, int64(1)).Return(nil, nil)
		rec := doClick(t, h, `{"campaignId":1,"productId":2,"cost":10}`)
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Contains(t, rec.Body.String(), "campaign_not_found")
	})

	t.Run("budget exceeded", func(t *testing.T) {
		h, repo, limiter := newTestHandler(t)
		limiter.EXPECT().Allow(mock.Anything, int64(1), "203.0.113.7").Return(true, nil)
		repo.EXPECT().GetCampaign(mock.Anything, int64(1)).
			Return(&domain.Campaign{ID: 1, DailyBudget: 100, SpentToday: 95, CPCMax: 20, Status: domain.StatusActive}, nil)
		rec := doClick(t, h, `{"campaignId":1,"productId":2,"cost":10}`)
		require.Equal(t, http.StatusConflict, rec.Code)
		require.Contains(t, rec.Body.String(), "budget_exceeded")
	})

	t.Run("success", func(t *testing.T) {
		h, repo, limiter := newTestHandler(t)
		limiter.EXPECT().Allow(mock.Anything, int64(1), "203.0.113.7").Return(true, nil)
		repo.EXPECT().GetCampaign(mock.Anything, int64(1)).
			Return(&domain.Campaign{ID: 1, SellerID: 5, DailyBudget: 100, SpentToday: 90, CPCMax: 20, Status: domain.StatusActive}, nil)
		repo.EXPECT().
			ChargeClick(mock.Anything, mock.AnythingOfType("*domain.AdClick"), mock.AnythingOfType("*domain.LedgerEntry")).
			Return(int64(100), nil)

		rec := doClick(t, h, `{"campaignId":1,"productId":2,"cost":10}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp clickResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.True(t, resp.OK)
		require.NotNil(t, resp.SpentToday)
		require.EqualValues(t, 100, *resp.SpentToday)
		require.NotNil(t, resp.Remaining)
		require.EqualValues(t, 0, *resp.Remaining)
	})

	t.Run("idempotent replay", func(t *testing.T) {
		h, repo, limiter := newTestHandler(t)
		limiter.EXPECT().Allow(mock.Anything, int64(1), "203.0.113.7").Return(true, nil)
		repo.EXPECT().FindClickByKey(mock.Anything, int64(1), int64(2), "key-1").
			Return(&domain.AdClick{ID: "existing"}, nil)

		rec := doClick(t, h, `{"campaignId":1,"productId":2,"cost":10,"idempotencyKey":"key-1"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "already_processed")
	})
}

// TestSponsoredEndpointEmptyQuery always answers with an empty list,
// never an error.
func TestSponsoredEndpointEmptyQuery(t *testing.T) {
	h, _, _ := newTestHandler(t)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/ads/sponsored?q=", nil)
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"placements":[]}`, rec.Body.String())
}

func signToken(t *testing.T, sellerID int64, role, secret string) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &authClaims{SellerID: sellerID, Role: role})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

// TestCampaignAuth exercises the bearer middleware around campaign
// management.
func TestCampaignAuth(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		h, _, _ := newTestHandler(t)
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/ads/campaigns/7", nil)
		rec := httptest.NewRecorder()
		h.Router().ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong secret", func(t *testing.T) {
		h, _, _ := newTestHandler(t)
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/ads/campaigns/7", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, 1, "SELLER", "other-secret"))
		rec := httptest.NewRecorder()
		h.Router().ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unknown role", func(t *testing.T) {
		h, _, _ := newTestHandler(t)
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/ads/campaigns/7", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, 1, "BUYER", testSecret))
		rec := httptest.NewRecorder()
		h.Router().ServeHTTP(rec, req)
		require.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("owner ends campaign", func(t *testing.T) {
		h, repo, _ := newTestHandler(t)
		repo.EXPECT().GetCampaign(mock.Anything, int64(7)).
			Return(&domain.Campaign{ID: 7, SellerID: 1, DailyBudget: 100, CPCMax: 10, Status: domain.StatusActive}, nil)
		repo.EXPECT().UpdateCampaign(mock.Anything, mock.AnythingOfType("*domain.Campaign")).Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/api/v1/ads/campaigns/7", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, 1, "SELLER", testSecret))
		rec := httptest.NewRecorder()
		h.Router().ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("seller cannot reset spend", func(t *testing.T) {
		h, _, _ := newTestHandler(t)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/ads/admin/reset-spend", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, 1, "SELLER", testSecret))
		rec := httptest.NewRecorder()
		h.Router().ServeHTTP(rec, req)
		require.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admin resets spend", func(t *testing.T) {
		h, repo, _ := newTestHandler(t)
		repo.EXPECT().ResetDailySpend(mock.Anything).Return(int64(5), nil)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/ads/admin/reset-spend", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, 99, "ADMIN", testSecret))
		rec := httptest.NewRecorder()
		h.Router().ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"campaigns":5}`, rec.Body.String())
	})

	t.Run("stranger forbidden", func(t *testing.T) {
		h, repo, _ := newTestHandler(t)
		repo.EXPECT().GetCampaign(mock.Anything, int64(7)).
			Return(&domain.Campaign{ID: 7, SellerID: 1, DailyBudget: 100, CPCMax: 10, Status: domain.StatusActive}, nil)

		req := httptest.NewRequest(http.MethodDelete, "/api/v1/ads/campaigns/7", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, 2, "SELLER", testSecret))
		rec := httptest.NewRecorder()
		h.Router().ServeHTTP(rec, req)
		require.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestClientIP(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "192.0.2.1:4321"
	require.Equal(t, "192.0.2.1", clientIP(r))

	r.Header.Set("x-real-ip", "198.51.100.9")
	require.Equal(t, "198.51.100.9", clientIP(r))

	r.Header.Set("x-forwarded-for", "203.0.113.7, 10.0.0.1")
	require.Equal(t, "203.0.113.7", clientIP(r))
}
