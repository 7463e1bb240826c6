package pkg

import "fmt"

// AppError is the application error carried between use cases and the HTTP
// layer. Code is a stable machine-readable identifier; HTTPStatus is the
// status the handler should respond with.
type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
	Fields     []FieldError
}

// FieldError names a single violated input constraint.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// HTTPError is the JSON body rendered for failed requests.
type HTTPError struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Fields  []FieldError `json:"fields,omitempty"`
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return NewDomainError(code, message, nil, httpStatus)
}

// NewValidationError reports every violated field of a bad request.
func NewValidationError(code, message string, fields []FieldError, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus, Fields: fields}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message, Fields: e.Fields}
}
