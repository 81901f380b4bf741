package errors

import "fmt"

type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

func Wrap(err error, code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common error codes
const (
	ErrCodeValidation      = "VALIDATION_ERROR"
	ErrCodeFetchFailed     = "FETCH_FAILED"
	ErrCodeDecodeFailed    = "DECODE_FAILED"
	ErrCodeMetadataMissing = "METADATA_MISSING"
	ErrCodeCacheError      = "CACHE_ERROR"
	ErrCodeWriteFailed     = "WRITE_FAILED"
	ErrCodeReportFailed    = "REPORT_FAILED"
)
