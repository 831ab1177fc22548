package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"receipt-ledger/internal/dto"
	"receipt-ledger/internal/models"
	"receipt-ledger/internal/services"
	"receipt-ledger/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"gorm.io/datatypes"
)

const receiptJPEG = "/9j/4AAQSkZJRgABAQ=="

func TestReceiptHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReceiptHandlerSuite))
}

type ReceiptHandlerSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	receiptService *service_mocks.MockReceiptServiceInterface
	e              *echo.Echo
	owner          uuid.UUID
}

func (s *ReceiptHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.receiptService = service_mocks.NewMockReceiptServiceInterface(s.ctrl)
	s.e = echo.New()
	s.e.Validator = NewValidator()
	s.owner = uuid.New()
}

func (s *ReceiptHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ReceiptHandlerSuite) post(handler *ReceiptHandler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/process-receipt", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	c.Set(UserIDContextKey, s.owner)

	s.Require().NoError(handler.ProcessReceipt(c))
	return rec
}

func (s *ReceiptHandlerSuite) decodeError(rec *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func (s *ReceiptHandlerSuite) TestProcessReceipt_Success() {
	expense := &models.Expense{
		ID:                 uuid.New(),
		UserID:             s.owner,
		Merchant:           "Cafe Coffee Day",
		Date:               datatypes.Date(time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC)),
		Category:           models.CategoryMeals,
		TotalAmountStr:     "₹450.00",
		TotalAmountNumeric: decimal.RequireFromString("450"),
		ConfidenceScore:    0.92,
		LeakageRiskScore:   3,
	}
	s.receiptService.EXPECT().ProcessReceipt(gomock.Any(), s.owner, receiptJPEG).Return(expense, nil).Times(1)

	rec := s.post(NewReceiptHandler(s.receiptService, "development"), `{"imageBase64":"`+receiptJPEG+`"}`)

	s.Equal(http.StatusOK, rec.Code)
	var body dto.ProcessReceiptResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.True(body.Success)
	s.Equal(dto.ReceiptProcessedMessage, body.Message)
	s.Equal(expense.ID, body.Data.ID)
	s.Equal(450.0, body.Data.TotalAmountNumeric)
}

func (s *ReceiptHandlerSuite) TestProcessReceipt_MissingImage() {
	handler := NewReceiptHandler(s.receiptService, "development")

	for _, body := range []string{`{}`, `{"imageBase64":""}`, `{"imageBase64":"   "}`} {
		rec := s.post(handler, body)

		s.Equal(http.StatusBadRequest, rec.Code, body)
		s.Equal("No image data provided", s.decodeError(rec)["error"])
	}
}

func (s *ReceiptHandlerSuite) TestProcessReceipt_NotBase64() {
	rec := s.post(NewReceiptHandler(s.receiptService, "production"), `{"imageBase64":"%%%"}`)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("Invalid image data", s.decodeError(rec)["error"])
}

func (s *ReceiptHandlerSuite) TestProcessReceipt_MalformedBody() {
	rec := s.post(NewReceiptHandler(s.receiptService, "development"), `{"imageBase64":`)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("Invalid request body", s.decodeError(rec)["error"])
}

func (s *ReceiptHandlerSuite) TestProcessReceipt_ValidationFailureInDevelopment() {
	missing := &services.MissingFieldError{Field: models.FieldMerchant}
	s.receiptService.EXPECT().ProcessReceipt(gomock.Any(), s.owner, gomock.Any()).Return(nil, missing).Times(1)

	handler := NewReceiptHandler(s.receiptService, "development")
	handler.now = func() time.Time { return time.Date(2026, time.October, 17, 9, 0, 0, 0, time.UTC) }
	rec := s.post(handler, `{"imageBase64":"`+receiptJPEG+`"}`)

	s.Equal(http.StatusInternalServerError, rec.Code)
	body := s.decodeError(rec)
	s.Equal("Failed to process receipt", body["error"])
	s.Equal("missing required field: merchant", body["details"])

	fallback, ok := body["fallback"].(map[string]interface{})
	s.Require().True(ok, "fallback record expected in development")
	s.Equal(services.UnknownMerchant, fallback["merchant"])
	s.Equal("2026-10-17", fallback["date"])
}

func (s *ReceiptHandlerSuite) TestProcessReceipt_ValidationFailureInProduction() {
	missing := &services.MissingFieldError{Field: models.FieldDate}
	s.receiptService.EXPECT().ProcessReceipt(gomock.Any(), s.owner, gomock.Any()).Return(nil, missing).Times(1)

	rec := s.post(NewReceiptHandler(s.receiptService, "production"), `{"imageBase64":"`+receiptJPEG+`"}`)

	s.Equal(http.StatusInternalServerError, rec.Code)
	body := s.decodeError(rec)
	s.Equal("Failed to process receipt", body["error"])
	s.NotContains(body, "details")
	s.NotContains(body, "fallback")
}

func (s *ReceiptHandlerSuite) TestProcessReceipt_SaveFailure() {
	storeErr := fmt.Errorf("%w: %w", services.ErrSaveExpense, fmt.Errorf("duplicate key"))
	s.receiptService.EXPECT().ProcessReceipt(gomock.Any(), s.owner, gomock.Any()).Return(nil, storeErr).Times(1)

	rec := s.post(NewReceiptHandler(s.receiptService, "staging"), `{"imageBase64":"`+receiptJPEG+`"}`)

	s.Equal(http.StatusInternalServerError, rec.Code)
	body := s.decodeError(rec)
	s.Equal("Failed to save expense", body["error"])
	s.Contains(body["details"], "duplicate key")
	s.NotContains(body, "fallback")
}

func (s *ReceiptHandlerSuite) TestProcessReceipt_ServiceRejectsImage() {
	s.receiptService.EXPECT().ProcessReceipt(gomock.Any(), s.owner, gomock.Any()).Return(nil, services.ErrInvalidImage).Times(1)

	rec := s.post(NewReceiptHandler(s.receiptService, "development"), `{"imageBase64":"`+receiptJPEG+`"}`)

	s.Equal(http.StatusBadRequest, rec.Code)
}
