package errors

import (
	"errors"
	"fmt"
)

type ErrorCode string

const (
	CodeInvalidProjectPath  ErrorCode = "INVALID_PROJECT_PATH"
	CodeUnreadableFile      ErrorCode = "UNREADABLE_FILE"
	CodeUnresolvedInclude   ErrorCode = "UNRESOLVED_INCLUDE"
	CodeAmbiguousResolution ErrorCode = "AMBIGUOUS_RESOLUTION"
	CodeEmptyProject        ErrorCode = "EMPTY_PROJECT"
	CodeInternal            ErrorCode = "INTERNAL_ERROR"
)

// DomainError carries a machine-readable code next to the human message.
// Only INVALID_PROJECT_PATH is fatal for a run; everything else is
// accumulated as a diagnostic and the batch continues.
type DomainError struct {
	Code    ErrorCode
	Message string
	Err     error
	Context map[string]interface{}
}

const (
	CtxPath    = "path"
	CtxInclude = "include"
	CtxLine    = "line"
)

func (e *DomainError) WithContext(key string, value interface{}) *DomainError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

func (e *DomainError) Error() string {
	msg := fmt.Sprintf("[%s] %s", e.Code, e.Message)
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	if len(e.Context) > 0 {
		msg += fmt.Sprintf(" %v", e.Context)
	}
	return msg
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

func New(code ErrorCode, msg string) error {
	return &DomainError{Code: code, Message: msg}
}

func Wrap(err error, code ErrorCode, msg string) error {
	return &DomainError{Code: code, Message: msg, Err: err}
}

func IsCode(err error, code ErrorCode) bool {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}
