package apperror

import "net/http"

// Kind classifies a failure for HTTP mapping and logging
type Kind string

const (
	KindValidation     Kind = "validation"
	KindAuthentication Kind = "authentication"
	KindAuthorization  Kind = "authorization"
	KindNotFound       Kind = "not_found"
	KindConflict       Kind = "conflict"
	KindInternal       Kind = "internal"
)

// FieldError is a single field-level validation message
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is the application failure type. Message is safe to expose to
// clients; Err holds the internal cause and is only logged.
type Error struct {
	Kind    Kind
	Code    int
	Message string
	Fields  []FieldError
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// WithStatus returns a copy carrying a different HTTP status. Used for the
// token-verification path, which this API reports as 403 rather than 401.
func (e *Error) WithStatus(code int) *Error {
	clone := *e
	clone.Code = code
	return &clone
}

// Validation builds a 400 error carrying the full list of field messages
func Validation(message string, fields ...FieldError) *Error {
	return &Error{Kind: KindValidation, Code: http.StatusBadRequest, Message: message, Fields: fields}
}

func Authentication(message string) *Error {
	return &Error{Kind: KindAuthentication, Code: http.StatusUnauthorized, Message: message}
}

func Forbidden(message string) *Error {
	return &Error{Kind: KindAuthorization, Code: http.StatusForbidden, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Code: http.StatusNotFound, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Code: http.StatusConflict, Message: message}
}

// Internal wraps an unexpected failure. The cause is logged server-side;
// clients only ever see a generic message.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Code: http.StatusInternalServerError, Message: "Internal Server Error", Err: err}
}
