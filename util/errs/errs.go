// Package errs holds the coded errors shared by services and controllers.
package errs

import (
	"errors"
	"strings"
)

type ErrCode string

const (
	ErrNotFound       ErrCode = "NOT_FOUND"
	ErrValidation     ErrCode = "VALIDATION"
	ErrBlocked        ErrCode = "BLOCKED"
	ErrNotImplemented ErrCode = "NOT_IMPLEMENTED"
	ErrEmailTaken     ErrCode = "EMAIL_TAKEN"
	ErrInvalidCreds   ErrCode = "INVALID_CREDS"
	ErrBadInput       ErrCode = "BAD_INPUT"
)

type codedError struct {
	code ErrCode
	msg  string
	err  error
}

func (e *codedError) Error() string {
	switch {
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return string(e.code) + ": " + e.err.Error()
	}
	return string(e.code)
}

func (e *codedError) Code() ErrCode { return e.code }
func (e *codedError) Unwrap() error { return e.err }

// New returns an error carrying code and a human readable message.
func New(code ErrCode, msg string) error { return &codedError{code: code, msg: msg} }

// Wrap attaches code to err.
func Wrap(code ErrCode, err error) error { return &codedError{code: code, err: err} }

// Code extracts the error code, "" for uncoded errors.
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

// ValidationError lists field-level messages for a rejected form.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string { return strings.Join(e.Messages, "; ") }
func (e *ValidationError) Code() ErrCode { return ErrValidation }

func Invalid(msgs ...string) error { return &ValidationError{Messages: msgs} }

// Messages returns the validation messages carried by err, if any.
func Messages(err error) []string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Messages
	}
	return nil
}
