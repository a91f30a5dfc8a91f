package errs

import (
	"fmt"
	"net/http"
)

type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindConflict
	KindAuth
	KindNotFound
)

type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(msg string) error { return &Error{Kind: KindValidation, Msg: msg} }
func Conflict(msg string) error   { return &Error{Kind: KindConflict, Msg: msg} }
func Auth(msg string) error       { return &Error{Kind: KindAuth, Msg: msg} }
func NotFound(msg string) error   { return &Error{Kind: KindNotFound, Msg: msg} }

func Internal(err error, msg string) error {
	return &Error{Kind: KindInternal, Msg: msg, Err: err}
}

func Internalf(err error, format string, a ...any) error {
	return &Error{Kind: KindInternal, Msg: fmt.Sprintf(format, a...), Err: err}
}

func kindOf(err error) Kind {
	if e, ok := err.(*Error); ok {
		return e.Kind
	}
	return KindInternal
}

func IsValidation(err error) bool { return err != nil && kindOf(err) == KindValidation }
func IsConflict(err error) bool   { return err != nil && kindOf(err) == KindConflict }
func IsAuth(err error) bool       { return err != nil && kindOf(err) == KindAuth }
func IsNotFound(err error) bool   { return err != nil && kindOf(err) == KindNotFound }

// HTTPStatus maps an error to the status the request boundary reports.
// Anything untagged counts as internal.
func HTTPStatus(err error) int {
	switch kindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindAuth:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Public returns the message safe to put in a response body. Internal
// errors are masked so storage faults never leak paths or SQL.
func Public(err error) string {
	if e, ok := err.(*Error); ok && e.Kind != KindInternal {
		return e.Msg
	}
	return "Internal server error"
}
