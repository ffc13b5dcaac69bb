package core

import (
	"errors"
	"fmt"
)

// Error codes for loading fonts, resources and cached data.
const (
	NOERROR      int = 0
	EMISSING     int = 122 // font, file or resource does not exist
	EINVALID     int = 123 // malformed container, manifest or metadata
	EUNAVAILABLE int = 124 // persistent storage not available
	EINTERNAL    int = 125 // internal error
)

var codeText = map[int]string{
	NOERROR:      "OK",
	EMISSING:     "not found",
	EINVALID:     "invalid",
	EUNAVAILABLE: "storage unavailable",
	EINTERNAL:    "internal error",
}

func errorText(code int) string {
	if t, ok := codeText[code]; ok {
		return t
	}
	return "undefined error"
}

// CodedError is an error tagged with one of the error codes above and a
// message fit for users.
type CodedError struct {
	ErrCode int
	Message string
	Err     error
}

func (e *CodedError) Error() string {
	if e.Message != "" && e.Message != e.Err.Error() {
		return fmt.Sprintf("[%d] %s: %v", e.ErrCode, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %v", e.ErrCode, e.Err)
}

func (e *CodedError) Unwrap() error {
	return e.Err
}

// WrapError tags err with an error code and a user message.
// A nil err is replaced by the code's default text.
func WrapError(err error, code int, format string, v ...interface{}) error {
	if err == nil {
		err = errors.New(errorText(code))
	}
	return &CodedError{ErrCode: code, Message: fmt.Sprintf(format, v...), Err: err}
}

// Error creates an error with an error code and a user message.
func Error(code int, format string, v ...interface{}) error {
	return WrapError(nil, code, format, v...)
}

// Code returns the code of the first CodedError in err's chain,
// EINTERNAL for untagged errors and NOERROR for nil.
func Code(err error) int {
	if err == nil {
		return NOERROR
	}
	var e *CodedError
	if errors.As(err, &e) {
		return e.ErrCode
	}
	return EINTERNAL
}

// UserMessage returns the user message of err, or the default text of its
// code if there is none.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *CodedError
	if errors.As(err, &e) && e.Message != "" {
		return e.Message
	}
	return errorText(Code(err))
}
