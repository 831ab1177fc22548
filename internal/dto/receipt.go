package dto

// ReceiptProcessedMessage is returned alongside every stored receipt
const ReceiptProcessedMessage = "Receipt processed successfully"

// ProcessReceiptRequest is the body of POST /process-receipt.
// imageBase64 may carry a data URL header.
type ProcessReceiptRequest struct {
	ImageBase64 string `json:"imageBase64" validate:"required,base64image"`
}

// ProcessReceiptResponse wraps the stored expense
type ProcessReceiptResponse struct {
	Success bool            `json:"success"`
	Data    ExpenseResponse `json:"data"`
	Message string          `json:"message"`
}
