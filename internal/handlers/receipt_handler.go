package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"receipt-ledger/internal/dto"
	apierrors "receipt-ledger/internal/errors"
	"receipt-ledger/internal/services"

	"github.com/labstack/echo/v4"
)

// ReceiptHandler accepts receipt images for extraction
type ReceiptHandler struct {
	receiptService services.ReceiptServiceInterface
	environment    string
	now            func() time.Time
}

func NewReceiptHandler(receiptService services.ReceiptServiceInterface, environment string) *ReceiptHandler {
	return &ReceiptHandler{
		receiptService: receiptService,
		environment:    environment,
		now:            time.Now,
	}
}

// ProcessReceipt extracts an expense from a base64 receipt image and stores it
// @Summary Process a receipt image
// @Tags Receipts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ProcessReceiptRequest true "Base64 image, optionally a data URL"
// @Success 200 {object} dto.ProcessReceiptResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_002 / VALIDATION_003 / VALIDATION_004"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 / AUTH_002"
// @Failure 413 {object} errors.ErrorResponse "VALIDATION_005"
// @Failure 500 {object} errors.ErrorResponse "RECEIPT_001 / RECEIPT_002"
// @Router /process-receipt [post]
func (h *ReceiptHandler) ProcessReceipt(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var req dto.ProcessReceiptRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationInvalidBody)
	}

	if strings.TrimSpace(req.ImageBase64) == "" {
		return SendError(c, apierrors.ValidationMissingImage)
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, apierrors.ValidationInvalidImage, DetailsOutsideProduction(h.environment, err.Error()))
	}

	expense, err := h.receiptService.ProcessReceipt(c.Request().Context(), userID, req.ImageBase64)
	if err != nil {
		return h.handleProcessError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ProcessReceiptResponse{
		Success: true,
		Data:    dto.NewExpenseResponse(expense),
		Message: dto.ReceiptProcessedMessage,
	})
}

func (h *ReceiptHandler) handleProcessError(c echo.Context, err error) error {
	details := DetailsOutsideProduction(h.environment, err.Error())

	switch {
	case errors.Is(err, services.ErrInvalidImage):
		return SendError(c, apierrors.ValidationInvalidImage, details)

	case errors.Is(err, services.ErrSaveExpense):
		return SendError(c, apierrors.ReceiptSaveFailed, details)

	default:
		slog.ErrorContext(c.Request().Context(), "receipt processing failed",
			"trace_id", getTraceID(c),
			"error", err,
		)
		opts := []apierrors.ErrorOption{details}
		if h.environment == "development" {
			opts = append(opts, apierrors.WithFallback(services.FallbackExtraction(h.now())))
		}
		return SendError(c, apierrors.ReceiptProcessingFailed, opts...)
	}
}
