package errprocess

import (
	"errors"
	"fmt"

	"entrust_service/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Kind closed set of application error kinds
type Kind string

const (
	// KindValidation required field missing or wrong type
	KindValidation Kind = "validation"
	// KindUnauthorized missing or invalid identity
	KindUnauthorized Kind = "unauthorized"
	// KindForbidden requester is not the owner / participant
	KindForbidden Kind = "forbidden"
	// KindNotFound resource does not exist
	KindNotFound Kind = "not_found"
	// KindStore an underlying store call failed
	KindStore Kind = "store"
	// KindInternal anything else
	KindInternal Kind = "internal"
)

// Status http status of the kind
func (k Kind) Status() int {
	switch k {
	case KindValidation:
		return fiber.StatusBadRequest
	case KindUnauthorized:
		return fiber.StatusUnauthorized
	case KindForbidden:
		return fiber.StatusForbidden
	case KindNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// Error application error carrying a Kind
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New create an Error without cause
func New(kind Kind, msg string) error {
	return &Error{Kind: kind, Msg: msg}
}

// Wrap create an Error around err, nil stays nil
func Wrap(kind Kind, err error, msg string) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// KindOf kind of err, KindInternal when err is not an *Error
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// Set set err info
func Set(kind Kind, errMsg string) error {
	logger.Log.Error(errMsg, zap.String("kind", string(kind)))
	return New(kind, errMsg)
}

// kindOfStatus kind of a fiber.Error raised by routing or middleware
func kindOfStatus(status int) Kind {
	switch {
	case status == fiber.StatusUnauthorized:
		return KindUnauthorized
	case status == fiber.StatusForbidden:
		return KindForbidden
	case status == fiber.StatusNotFound:
		return KindNotFound
	case status >= fiber.StatusBadRequest && status < fiber.StatusInternalServerError:
		return KindValidation
	}
	return KindInternal
}

// FiberErrorHandler render every error as {"error": {"kind", "message"}}
func FiberErrorHandler(c *fiber.Ctx, err error) error {
	kind := KindOf(err)
	status := kind.Status()
	msg := err.Error()

	var fe *fiber.Error
	if errors.As(err, &fe) {
		status = fe.Code
		msg = fe.Message
		kind = kindOfStatus(status)
	}

	var e *Error
	if errors.As(err, &e) {
		msg = e.Msg
	}

	if status >= fiber.StatusInternalServerError {
		logger.Log.Error("request failed",
			zap.String("path", c.Path()),
			zap.String("kind", string(kind)),
			zap.Error(err),
		)
	}

	return c.Status(status).JSON(fiber.Map{
		"error": fiber.Map{
			"kind":    kind,
			"message": msg,
		},
	})
}
