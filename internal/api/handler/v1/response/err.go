package response

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation"
	"go.uber.org/zap"

	"github.com/profutur/profutur-api/internal/service"
)

type Kind string

const (
	KindValidation             Kind = "validation"
	KindInvalidProvider        Kind = "provider"
	KindUnauthenticated        Kind = "unauthenticated"
	KindUnauthorized           Kind = "unauthorized"
	KindNotFound               Kind = "not_found"
	KindConflict               Kind = "conflict"
	KindAlreadyEnrolled        Kind = "already_enrolled"
	KindFormationFull          Kind = "formation_full"
	KindNotCompleted           Kind = "not_completed"
	KindLedgerTransaction      Kind = "ledger_transaction"
	KindLedgerUnavailable      Kind = "ledger_unavailable"
	KindPersistenceUnavailable Kind = "persistence_unavailable"
	KindInternal               Kind = "internal"
)

// Err is the body of every failed request.
type Err struct {
	Err            error `json:"-"`
	HTTPStatusCode int   `json:"-"`

	StatusText string `json:"status"`
	Kind       Kind   `json:"kind"`
	ErrorText  string `json:"error,omitempty"`
	Retryable  bool   `json:"retryable"`
}

func (e *Err) Error() string {
	if e.Err == nil {
		return e.StatusText
	}
	return e.Err.Error()
}

func (e *Err) Unwrap() error {
	return e.Err
}

func RenderErr(ctx *gin.Context, err *Err) {
	if err.HTTPStatusCode >= http.StatusInternalServerError {
		zap.L().Error("request failed",
			zap.String("path", ctx.FullPath()),
			zap.String("kind", string(err.Kind)),
			zap.Error(err.Err),
		)
	}

	ctx.AbortWithStatusJSON(err.HTTPStatusCode, err)
}

func newErr(err error, code int, kind Kind, text string) *Err {
	return &Err{
		Err:            err,
		HTTPStatusCode: code,
		StatusText:     http.StatusText(code),
		Kind:           kind,
		ErrorText:      text,
		Retryable:      code == http.StatusServiceUnavailable,
	}
}

func ErrBadRequest(err error) *Err {
	return newErr(err, http.StatusBadRequest, KindValidation, err.Error())
}

func ErrInvalidProvider(err error) *Err {
	return newErr(err, http.StatusBadRequest, KindInvalidProvider, err.Error())
}

// FromValidationErr renders a failed Validate call. A rejected provider gets
// its own kind so clients can tell it from other bad input.
func FromValidationErr(err error) *Err {
	var fields validation.Errors
	if errors.As(err, &fields) {
		for _, fieldErr := range fields {
			if errors.Is(fieldErr, service.ErrInvalidProvider) {
				return ErrInvalidProvider(err)
			}
		}
	}

	return ErrBadRequest(err)
}

func ErrUnauthenticated(err error) *Err {
	return newErr(err, http.StatusUnauthorized, KindUnauthenticated, "authentication required")
}

func ErrWrongCredentials(err error) *Err {
	return newErr(err, http.StatusUnauthorized, KindUnauthenticated, "wrong email or password")
}

func ErrPermissionDenied(err error) *Err {
	return newErr(err, http.StatusForbidden, KindUnauthorized, err.Error())
}

func ErrNotFound(resource, field string, value any) *Err {
	err := fmt.Errorf("%v with %v %v not found", resource, field, value)
	return newErr(err, http.StatusNotFound, KindNotFound, err.Error())
}

func ErrConflict(kind Kind, err error) *Err {
	return newErr(err, http.StatusConflict, kind, err.Error())
}

func ErrInternalServerError(err error) *Err {
	return newErr(err, http.StatusInternalServerError, KindInternal, "internal server error")
}

// FromServiceErr maps the service sentinels onto a kind and status. op names
// the handler call path for the log line of unexpected errors.
func FromServiceErr(op string, err error) *Err {
	switch {
	case errors.Is(err, service.ErrInvalidProvider):
		return ErrInvalidProvider(err)
	case errors.Is(err, service.ErrValidation):
		return ErrBadRequest(err)
	case errors.Is(err, service.ErrUnauthorized):
		return ErrPermissionDenied(err)
	case service.IsNotFound(err):
		return newErr(err, http.StatusNotFound, KindNotFound, err.Error())
	case errors.Is(err, service.ErrAlreadyEnrolled):
		return ErrConflict(KindAlreadyEnrolled, err)
	case errors.Is(err, service.ErrFormationFull):
		return ErrConflict(KindFormationFull, err)
	case errors.Is(err, service.ErrConflict), errors.Is(err, service.ErrUserEmailExists):
		return ErrConflict(KindConflict, err)
	case errors.Is(err, service.ErrNotCompleted):
		return newErr(err, http.StatusUnprocessableEntity, KindNotCompleted, err.Error())
	case errors.Is(err, service.ErrLedgerUnavailable):
		return newErr(err, http.StatusServiceUnavailable, KindLedgerUnavailable, "ledger unavailable, try again later")
	case errors.Is(err, service.ErrLedgerTransaction):
		return newErr(err, http.StatusBadGateway, KindLedgerTransaction, err.Error())
	case errors.Is(err, service.ErrPersistenceUnavailable):
		return newErr(err, http.StatusServiceUnavailable, KindPersistenceUnavailable, "storage unavailable, try again later")
	}

	return ErrInternalServerError(fmt.Errorf("%s -> %w", op, err))
}
