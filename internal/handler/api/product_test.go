//go:build unit

package api_test

import (
	"encoding/base64"
	"net/http"
	"strings"
	"testing"

	"authentithief/internal/handler/api"
	resdto "authentithief/internal/handler/dto/response"
	"authentithief/internal/pkg/errs"
	"authentithief/internal/usecase/commands"
	"authentithief/internal/usecase/queries"
	"authentithief/tests/common/builder"
	"authentithief/tests/common/httptest"
	"authentithief/tests/common/testutil"
	commandsmock "authentithief/tests/mock/commands"
	queriesmock "authentithief/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ProductHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockProductCommands
	mockQueries  *queriesmock.MockProductQueries
	handler      *api.ProductHandler
}

func (s *ProductHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockProductCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockProductQueries(s.mockCtrl)
	s.handler = api.NewProductHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/api/products", s.handler.Register)
	s.router.GET("/api/products", s.handler.List)
}

func (s *ProductHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestProductHandlerSuite(t *testing.T) {
	suite.Run(t, new(ProductHandlerTestSuite))
}

type testCaseProduct struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func registerResult(b *builder.ProductBuilder) *commands.RegisterProductResult {
	return &commands.RegisterProductResult{
		Receipt:     b.BuildReceipt(),
		Payload:     b.BuildPayload(),
		PayloadJSON: []byte(`{}`),
		QRCodePNG:   []byte("\x89PNG"),
	}
}

func (s *ProductHandlerTestSuite) TestRegister() {
	url := "/api/products"
	b := builder.NewProductBuilder()
	reqBody := b.BuildDTO()

	s.Run("success: returns 201 with receipt, payload and QR code", func() {
		s.mockCommands.EXPECT().RegisterProduct(gomock.Any(), reqBody.ToCommand()).
			Return(registerResult(b), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var response resdto.RegisterProductResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(b.Owner, response.Receipt.Owner)
		s.Equal(b.TransactionRef, response.Receipt.TransactionRef)
		s.Equal(b.Name, response.Payload.Name)
		png, err := base64.StdEncoding.DecodeString(response.QRCode)
		s.Require().NoError(err)
		s.Equal([]byte("\x89PNG"), png)
	})

	s.Run("success: explicit owner is forwarded", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("owner", "  0xABC  "))
		s.mockCommands.EXPECT().RegisterProduct(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, req commands.RegisterProductRequest) (*commands.RegisterProductResult, error) {
				s.Equal("0xABC", req.Owner)
				return registerResult(b), nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		bound := []testCaseProduct{
			{name: "name boundary OK (128 chars)", mutate: testutil.Field("name", strings.Repeat("a", 128)), expectCode: http.StatusCreated},
			{name: "name boundary invalid (129 chars)", mutate: testutil.Field("name", strings.Repeat("a", 129)), expectCode: http.StatusBadRequest},
			{name: "description boundary invalid (1001 chars)", mutate: testutil.Field("description", strings.Repeat("d", 1001)), expectCode: http.StatusBadRequest},
			{name: "expiration must be positive", mutate: testutil.Field("expiration_timestamp", 0), expectCode: http.StatusBadRequest},
		}

		missing := []testCaseProduct{
			{name: "missing field: name (required)", mutate: testutil.Field("name", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: brand (optional)", mutate: testutil.Field("brand", nil), expectCode: http.StatusCreated},
			{name: "missing field: expiration_timestamp (optional)", mutate: testutil.Field("expiration_timestamp", nil), expectCode: http.StatusCreated},
		}

		wrongType := []testCaseProduct{
			{name: "expiration as string", mutate: testutil.Field("expiration_timestamp", "tomorrow"), expectCode: http.StatusBadRequest},
		}

		for _, group := range [][]testCaseProduct{bound, missing, wrongType} {
			for _, tc := range group {
				s.Run(tc.name, func() {
					if tc.expectCode == http.StatusCreated {
						s.mockCommands.EXPECT().RegisterProduct(gomock.Any(), gomock.Any()).
							Return(registerResult(b), nil).Times(1)
					}
					body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)
					s.Equal(tc.expectCode, rec.Code, rec.Body.String())
				})
			}
		}
	})

	s.Run("error: ledger failures map to statuses", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
			expectMsg  string
		}{
			{name: "validation", err: errs.Mark(errs.New("empty owner"), errs.ErrValidation), expectCode: http.StatusBadRequest, expectMsg: "Invalid request"},
			{name: "insufficient funds", err: errs.Wrap(errs.ErrInsufficientFunds, "balance 0"), expectCode: http.StatusPaymentRequired, expectMsg: "Insufficient funds"},
			{name: "rejected", err: errs.Mark(errs.New("reverted"), errs.ErrLedgerRejected), expectCode: http.StatusConflict, expectMsg: "rejected"},
			{name: "network", err: errs.Mark(errs.New("dial tcp"), errs.ErrLedgerNetwork), expectCode: http.StatusServiceUnavailable, expectMsg: "Ledger unavailable"},
			{name: "unexpected", err: errs.New("boom"), expectCode: http.StatusInternalServerError, expectMsg: "Internal server error"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().RegisterProduct(gomock.Any(), gomock.Any()).
					Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
			})
		}
	})
}

func (s *ProductHandlerTestSuite) TestList() {
	ledgerRecord := builder.NewProductBuilder().BuildLedgerRecord()
	view := queries.ProductView{
		Name:                  ledgerRecord.Name,
		Owner:                 ledgerRecord.Owner,
		RegistrationTimestamp: ledgerRecord.RegistrationTimestamp,
	}

	s.Run("success: forwards start and count", func() {
		next := 2
		s.mockQueries.EXPECT().ListProducts(gomock.Any(), 1, 1).
			Return(&queries.ProductPage{
				Items: []queries.ProductView{view},
				Page:  queries.Page{Start: 1, Count: 1, Total: 3, Next: &next},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/products?start=1&count=1", nil)

		var response resdto.ProductListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response.Items, 1)
		s.Equal(view.Name, response.Items[0].Name)
		s.Equal(3, response.Total)
		s.Require().NotNil(response.Next)
		s.Equal(2, *response.Next)
	})

	s.Run("success: defaults leave the limit to the query layer", func() {
		s.mockQueries.EXPECT().ListProducts(gomock.Any(), 0, 0).
			Return(&queries.ProductPage{Page: queries.Page{}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/products", nil)

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.Contains(rec.Body.String(), `"items":[]`)
	})

	s.Run("error: invalid query parameters", func() {
		for _, q := range []string{"start=-1", "count=201", "start=abc"} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/products?"+q, nil)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query")
		}
	})

	s.Run("error: ledger unreachable", func() {
		s.mockQueries.EXPECT().ListProducts(gomock.Any(), 0, 0).
			Return(nil, errs.Mark(errs.New("timeout"), errs.ErrLedgerNetwork)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/products", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "Ledger unavailable")
	})
}
