// Package code defines the error code registry shared by all handlers.
package code

import (
	"fmt"
	"net/http"
)

// Code is a registered service error. It carries the HTTP status the
// handler layer must answer with and the client-facing message.
type Code struct {
	code       int
	statusCode int
	status     bool
	msg        string
	details    []string
}

var codes = map[int]string{}

// NewError registers an error code. Registering the same code twice is a
// programming mistake and panics at init time.
func NewError(code int, statusCode int, msg string) *Code {
	if _, ok := codes[code]; ok {
		panic(fmt.Sprintf("error code %d already exists, pick another one", code))
	}
	codes[code] = msg
	return &Code{code: code, statusCode: statusCode, status: false, msg: msg}
}

// NewSuss registers a success code.
func NewSuss(code int, msg string) *Code {
	if _, ok := codes[code]; ok {
		panic(fmt.Sprintf("success code %d already exists, pick another one", code))
	}
	codes[code] = msg
	return &Code{code: code, statusCode: http.StatusOK, status: true, msg: msg}
}

// Clone returns a copy so chained WithDetails calls never mutate the
// registered singleton.
func (e *Code) Clone() *Code {
	return &Code{
		code:       e.code,
		statusCode: e.statusCode,
		status:     e.status,
		msg:        e.msg,
	}
}

func (e *Code) Error() string {
	return e.msg
}

func (e *Code) Code() int {
	return e.code
}

func (e *Code) StatusCode() int {
	return e.statusCode
}

func (e *Code) Status() bool {
	return e.status
}

func (e *Code) Msg() string {
	return e.msg
}

func (e *Code) Details() []string {
	return e.details
}

func (e *Code) WithDetails(details ...string) *Code {
	c := e.Clone()
	c.details = append(c.details, details...)
	return c
}
