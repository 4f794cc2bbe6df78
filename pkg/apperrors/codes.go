package apperrors

// Content
const (
	ErrCodeContentLoad  = "CONTENT_LOAD_FAILED"
	ErrCodeContentShape = "CONTENT_SHAPE_MISMATCH"
)

// Visitor input
const (
	ErrCodeValidationFailed  = "VALIDATION_FAILED"
	ErrCodeInvalidInput      = "VALIDATION_INVALID_INPUT"
	ErrCodeRateLimitExceeded = "RATE_LIMIT_EXCEEDED"
)

// Lookups
const (
	ErrCodePageNotFound       = "RESOURCE_PAGE_NOT_FOUND"
	ErrCodeSubmissionNotFound = "RESOURCE_SUBMISSION_NOT_FOUND"
)

// Infrastructure
const (
	ErrCodeDatabaseError   = "INTERNAL_DATABASE_ERROR"
	ErrCodeEmailSendFailed = "INTERNAL_EMAIL_SEND_FAILED"
	ErrCodeUnexpectedError = "INTERNAL_UNEXPECTED_ERROR"
)
