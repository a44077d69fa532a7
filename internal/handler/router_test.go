//go:build unit

package handler_test

import (
	"bytes"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"

	"authentithief/internal/domain/scan"
	"authentithief/internal/handler"
	"authentithief/internal/handler/api"
	"authentithief/internal/handler/middleware"
	"authentithief/internal/pkg/config"
	"authentithief/tests/common/httptest"
	commandsmock "authentithief/tests/mock/commands"
	queriesmock "authentithief/tests/mock/queries"
	scannermock "authentithief/tests/mock/scanner"
	verificationmock "authentithief/tests/mock/verification"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestRouter(t *testing.T, cfg config.Config) (*gin.Engine, *verificationmock.MockVerifier) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	verifier := verificationmock.NewMockVerifier(ctrl)
	engine := gin.New()
	handler.NewRouter(engine, cfg, handler.Handlers{
		Products: api.NewProductHandler(commandsmock.NewMockProductCommands(ctrl), queriesmock.NewMockProductQueries(ctrl)),
		Verify:   api.NewVerifyHandler(verifier, scannermock.NewMockUploadScanner(ctrl)),
		Scans:    api.NewScanHandler(queriesmock.NewMockScanQueries(ctrl)),
	})
	return engine, verifier
}

func TestRouter(t *testing.T) {
	cfg := config.NewTestConfig()

	t.Run("health check", func(t *testing.T) {
		router, _ := newTestRouter(t, cfg)
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/health", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"ok"`)
	})

	t.Run("request id is echoed or generated", func(t *testing.T) {
		router, _ := newTestRouter(t, cfg)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/health", nil)
		assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))

		req := nethttptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set(middleware.RequestIDHeader, "scan-42")
		rec = nethttptest.NewRecorder()
		router.ServeHTTP(rec, req)
		httptest.AssertHeaders(t, rec, map[string]string{middleware.RequestIDHeader: "scan-42"})
	})

	t.Run("verify route applies the body limit", func(t *testing.T) {
		small := cfg
		small.Scanner.MaxUploadBytes = 16
		router, verifier := newTestRouter(t, small)

		rec := httptest.PerformRawRequest(t, router, http.MethodPost, "/api/verify", "application/json", bytes.Repeat([]byte("x"), 17))
		httptest.AssertErrorResponse(t, rec, http.StatusRequestEntityTooLarge, "too large")

		verifier.EXPECT().VerifyRaw(gomock.Any(), []byte("{}")).Return(scan.Malformed{Reason: "missing name"}, nil).Times(1)
		rec = httptest.PerformRawRequest(t, router, http.MethodPost, "/api/verify", "application/json", []byte("{}"))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"malformed"`)
	})

	t.Run("cors preflight", func(t *testing.T) {
		router, _ := newTestRouter(t, cfg)
		req := nethttptest.NewRequest(http.MethodOptions, "/api/products", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)

		rec := nethttptest.NewRecorder()
		router.ServeHTTP(rec, req)
		httptest.AssertHeaders(t, rec, map[string]string{
			"Access-Control-Allow-Origin": "http://localhost:3000",
		})
	})

	t.Run("unknown route", func(t *testing.T) {
		router, _ := newTestRouter(t, cfg)
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/api/unknown", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
