package errors

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/suite"
)

// CodesTestSuite defines the test suite for error codes
type CodesTestSuite struct {
	suite.Suite
}

// TestCodesTestSuite runs the test suite
func TestCodesTestSuite(t *testing.T) {
	suite.Run(t, new(CodesTestSuite))
}

func allCodes() []ErrorCode {
	return []ErrorCode{
		AuthMissingToken, AuthInvalidToken, AuthFailed, AuthProfileFetchFailed,
		ValidationGeneral, ValidationMissingImage, ValidationInvalidImage, ValidationInvalidBody, ValidationBodyTooLarge,
		ExpenseNotFound, ExpenseListFailed, ExpenseFlaggedFailed, ExpenseDashboardFailed, ExpenseDeleteFailed,
		ReceiptProcessingFailed, ReceiptSaveFailed,
		SystemInternalError, SystemDatabaseError, SystemServiceUnavailable, SystemRouteNotFound,
		SystemMethodNotAllowed, SystemRateLimitExceeded,
	}
}

func (s *CodesTestSuite) TestGetErrorMessage_ValidCode() {
	testCases := []struct {
		name     string
		code     ErrorCode
		expected string
	}{
		{name: "Missing token", code: AuthMissingToken, expected: "No authorization header"},
		{name: "Invalid token", code: AuthInvalidToken, expected: "Invalid authentication token"},
		{name: "Missing image", code: ValidationMissingImage, expected: "No image data provided"},
		{name: "Expense not found", code: ExpenseNotFound, expected: "Expense not found or unauthorized"},
		{name: "Dashboard failed", code: ExpenseDashboardFailed, expected: "Failed to fetch dashboard data"},
		{name: "Receipt failed", code: ReceiptProcessingFailed, expected: "Failed to process receipt"},
		{name: "Route not found", code: SystemRouteNotFound, expected: "Endpoint not found"},
		{name: "Internal", code: SystemInternalError, expected: "Internal server error"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, GetErrorMessage(tc.code))
		})
	}
}

func (s *CodesTestSuite) TestGetErrorMessage_InvalidCode() {
	s.Equal("An error occurred", GetErrorMessage("INVALID_CODE"))
}

func (s *CodesTestSuite) TestIsValidErrorCode() {
	for _, code := range allCodes() {
		s.True(IsValidErrorCode(code), "code %s should be registered", code)
	}
	s.False(IsValidErrorCode("EXPENSE_999"))
	s.False(IsValidErrorCode(""))
}

// TestErrorCodeConstants_Uniqueness guards against two constants sharing a value
func (s *CodesTestSuite) TestErrorCodeConstants_Uniqueness() {
	seen := make(map[ErrorCode]bool)
	for _, code := range allCodes() {
		s.False(seen[code], "duplicate error code %s", code)
		seen[code] = true
	}
	s.Len(seen, len(errorMessages))
}

func (s *CodesTestSuite) TestErrorCodeConstants_Format() {
	pattern := regexp.MustCompile(`^(AUTH|VALIDATION|EXPENSE|RECEIPT|SYSTEM)_\d{3}$`)
	for _, code := range allCodes() {
		s.Regexp(pattern, string(code))
	}
}
