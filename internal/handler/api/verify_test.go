//go:build unit

package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"authentithief/internal/domain/scan"
	"authentithief/internal/handler/api"
	resdto "authentithief/internal/handler/dto/response"
	"authentithief/internal/handler/middleware"
	"authentithief/internal/pkg/errs"
	"authentithief/tests/common/httptest"
	scannermock "authentithief/tests/mock/scanner"
	verificationmock "authentithief/tests/mock/verification"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testBodyLimit = 1024

type VerifyHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockVerifier *verificationmock.MockVerifier
	mockUploads  *scannermock.MockUploadScanner
	handler      *api.VerifyHandler
}

func (s *VerifyHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockVerifier = verificationmock.NewMockVerifier(s.mockCtrl)
	s.mockUploads = scannermock.NewMockUploadScanner(s.mockCtrl)
	s.handler = api.NewVerifyHandler(s.mockVerifier, s.mockUploads)

	limit := middleware.BodyLimit(testBodyLimit)
	s.router.POST("/api/verify", limit, s.handler.Verify)
	s.router.POST("/api/scan/upload", limit, s.handler.Upload)
}

func (s *VerifyHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestVerifyHandlerSuite(t *testing.T) {
	suite.Run(t, new(VerifyHandlerTestSuite))
}

func int64Ptr(v int64) *int64 { return &v }

func (s *VerifyHandlerTestSuite) TestVerify() {
	url := "/api/verify"
	payload := []byte(`{"schemaVersion":1,"name":"Amoxicillin"}`)

	s.Run("success: authentic result carries band and first scan flag", func() {
		days := int64(3)
		s.mockVerifier.EXPECT().VerifyRaw(gomock.Any(), payload).
			Return(scan.Authentic{
				Owner:         "0xabc",
				ProductName:   "Amoxicillin",
				RegisteredAt:  1_700_000_000,
				ExpiresAt:     int64Ptr(1_700_259_200),
				DaysRemaining: &days,
				IsFirstScan:   true,
				TotalScans:    1,
			}, nil).Times(1)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, "application/json", payload)

		var response resdto.VerificationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(scan.StatusAuthentic, response.Status)
		s.Require().NotNil(response.StatusBand)
		s.Equal(scan.BandExpiresSoon, *response.StatusBand)
		s.Require().NotNil(response.IsFirstScan)
		s.True(*response.IsFirstScan)
	})

	s.Run("success: every result variant is a 200", func() {
		results := []scan.Result{
			scan.Expired{ProductName: "Amoxicillin", ExpiredAt: 1_700_000_000, TotalScans: 4},
			scan.NotFound{Reason: scan.ReasonNotInRegistry},
			scan.NotFound{Reason: "batch 2 failed", Degraded: true},
			scan.Malformed{Reason: "decode payload"},
		}
		for _, res := range results {
			s.mockVerifier.EXPECT().VerifyRaw(gomock.Any(), gomock.Any()).Return(res, nil).Times(1)

			rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, "application/json", []byte("{}"))

			var body map[string]any
			httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
			s.Equal(string(res.Status()), body["status"])
			s.NotContains(body, "owner")
		}
	})

	s.Run("error: scan store failure", func() {
		s.mockVerifier.EXPECT().VerifyRaw(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("connection reset"), errs.ErrDatabaseOperationFailed)).Times(1)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, "application/json", payload)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "Storage unavailable")
	})

	s.Run("error: body over the limit", func() {
		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, "application/json", bytes.Repeat([]byte("a"), testBodyLimit+1))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusRequestEntityTooLarge, "too large")
	})
}

func (s *VerifyHandlerTestSuite) TestUpload() {
	url := "/api/scan/upload"
	image := []byte("fake image bytes")

	s.Run("success: decoded and verified", func() {
		s.mockUploads.EXPECT().ScanUpload(gomock.Any(), gomock.Any()).
			Return(scan.Expired{ProductName: "Amoxicillin", ExpiredAt: 1_700_000_000, TotalScans: 2}, nil).Times(1)

		rec := httptest.PerformUpload(s.T(), s.router, url, "image", "code.png", image)

		var response resdto.VerificationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(scan.StatusExpired, response.Status)
		s.Require().NotNil(response.ExpiredAt)
		s.Equal(int64(1_700_000_000), *response.ExpiredAt)
	})

	s.Run("error: missing image field", func() {
		rec := httptest.PerformUpload(s.T(), s.router, url, "", "", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: no code or malformed payload", func() {
		for _, err := range []error{
			errs.Wrap(errs.ErrNoCode, "decode frame"),
			errs.Mark(errs.New("unexpected end of JSON input"), errs.ErrMalformedPayload),
		} {
			s.mockUploads.EXPECT().ScanUpload(gomock.Any(), gomock.Any()).Return(nil, err).Times(1)

			rec := httptest.PerformUpload(s.T(), s.router, url, "image", "code.png", image)
			s.Equal(http.StatusBadRequest, rec.Code, rec.Body.String())
		}
	})

	s.Run("error: degraded ledger returns 503 with the partial result", func() {
		degraded := scan.NotFound{Reason: "batch 3 failed", Degraded: true}
		s.mockUploads.EXPECT().ScanUpload(gomock.Any(), gomock.Any()).
			Return(degraded, errs.Wrap(errs.ErrLedgerUnavailable, degraded.Reason)).Times(1)

		rec := httptest.PerformUpload(s.T(), s.router, url, "image", "code.png", image)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "Ledger unavailable")

		var body struct {
			Detail resdto.VerificationResponse `json:"detail"`
		}
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.Equal(scan.StatusNotFound, body.Detail.Status)
		s.True(body.Detail.Degraded)
	})
}
