package desksdk

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/imroc/req/v3"
)

var (
	// sdk common
	ErrNoServerURL    = errors.New("sdk: server url missing")
	ErrSessionExpired = errors.New("sdk: session expired")

	// attachments
	ErrFileNotFound  = errors.New("sdk: file not found")
	ErrNoDesignation = errors.New("sdk: collection does not support a cover designation")
)

const (
	// Generic request/server errors
	CodeInvalidRequest = "E_INVALID_REQUEST" // bad or invalid request
	CodeRateLimited    = "E_RATE_LIMITED"    // rate limit exceeded
	CodeInternalError  = "E_INTERNAL_ERROR"  // internal server error
	CodeAccessDenied   = "E_ACCESS_DENIED"   // access denied
	CodeUnknownError   = "E_UNKNOWN_ERR"     // unknown error

	// Entity errors
	CodeCompanyNotFound = "E_COMPANY_NOT_FOUND" // the specified company could not be found.
	CodeProjectNotFound = "E_PROJECT_NOT_FOUND" // the specified project could not be found.
	CodeProfileNotFound = "E_PROFILE_NOT_FOUND" // the specified user profile could not be found.

	// Attachment errors
	CodeAttachmentNotFound = "E_ATTACHMENT_NOT_FOUND"       // the specified attachment record could not be found.
	CodeAttachmentQuota    = "E_ATTACHMENT_QUOTA_EXCEEDED"  // the parent already holds the maximum number of attachments.
	CodeUploadURLFailed    = "E_UPLOAD_URL_FAILED"          // a failure while issuing a presigned upload URL.
	CodeRegisterFailed     = "E_ATTACHMENT_REGISTER_FAILED" // a failure while registering uploaded object metadata.
	CodeDesignationFailed  = "E_DESIGNATION_FAILED"         // a failure while marking an attachment as cover/avatar.
)

type SDKError interface {
	error
	ErrorCode() string
	ErrorMessage() string
}

// BaseError provides common error functionality
type BaseError struct {
	Code    string `json:"code"`
	Message string `json:"error"`
}

func (e *BaseError) ErrorCode() string    { return e.Code }
func (e *BaseError) ErrorMessage() string { return e.Message }

// APIError represents directory API errors
type APIError struct {
	BaseError
}

func NewAPIError(code, message string) *APIError {
	return &APIError{
		BaseError: BaseError{
			Code:    code,
			Message: message,
		},
	}
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: %s - %s", e.Code, e.Message)
}

var _ SDKError = (*APIError)(nil)

// handleAPIError is a helper function that handles the common error pattern
func handleAPIError(resp *req.Response, requestErr error, operation string) error {
	if requestErr != nil {
		return fmt.Errorf("http request error: %s %w", operation, requestErr)
	}

	// the session token was rejected; callers decide how to surface this
	if resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("%s: %w", operation, ErrSessionExpired)
	}

	// got a response, but api returned an error
	if resp.IsErrorState() {
		if err, ok := resp.ErrorResult().(*APIError); ok {
			return fmt.Errorf("%s %w", operation, err)
		}

		return fmt.Errorf("api error: %s %s", operation, resp.Dump())
	}

	return nil
}
