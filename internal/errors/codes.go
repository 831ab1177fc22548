package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthMissingToken       ErrorCode = "AUTH_001"
	AuthInvalidToken       ErrorCode = "AUTH_002"
	AuthFailed             ErrorCode = "AUTH_003"
	AuthProfileFetchFailed ErrorCode = "AUTH_004"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral      ErrorCode = "VALIDATION_001"
	ValidationMissingImage ErrorCode = "VALIDATION_002"
	ValidationInvalidImage ErrorCode = "VALIDATION_003"
	ValidationInvalidBody  ErrorCode = "VALIDATION_004"
	ValidationBodyTooLarge ErrorCode = "VALIDATION_005"
)

// Expense error codes (EXPENSE_*)
const (
	ExpenseNotFound        ErrorCode = "EXPENSE_001"
	ExpenseListFailed      ErrorCode = "EXPENSE_002"
	ExpenseFlaggedFailed   ErrorCode = "EXPENSE_003"
	ExpenseDashboardFailed ErrorCode = "EXPENSE_004"
	ExpenseDeleteFailed    ErrorCode = "EXPENSE_005"
)

// Receipt error codes (RECEIPT_*)
const (
	ReceiptProcessingFailed ErrorCode = "RECEIPT_001"
	ReceiptSaveFailed       ErrorCode = "RECEIPT_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemRouteNotFound      ErrorCode = "SYSTEM_004"
	SystemMethodNotAllowed   ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	AuthMissingToken:       "No authorization header",
	AuthInvalidToken:       "Invalid authentication token",
	AuthFailed:             "Authentication failed",
	AuthProfileFetchFailed: "Failed to fetch user profile",

	ValidationGeneral:      "Validation failed",
	ValidationMissingImage: "No image data provided",
	ValidationInvalidImage: "Invalid image data",
	ValidationInvalidBody:  "Invalid request body",
	ValidationBodyTooLarge: "Request body too large",

	ExpenseNotFound:        "Expense not found or unauthorized",
	ExpenseListFailed:      "Failed to fetch expenses",
	ExpenseFlaggedFailed:   "Failed to fetch flagged transactions",
	ExpenseDashboardFailed: "Failed to fetch dashboard data",
	ExpenseDeleteFailed:    "Failed to delete expense",

	ReceiptProcessingFailed: "Failed to process receipt",
	ReceiptSaveFailed:       "Failed to save expense",

	SystemInternalError:      "Internal server error",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemRouteNotFound:      "Endpoint not found",
	SystemMethodNotAllowed:   "Method not allowed",
	SystemRateLimitExceeded:  "Too many requests from this client, please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
