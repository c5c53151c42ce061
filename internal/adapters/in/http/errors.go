package http

import (
	"errors"
	"net/http"

	"errand/internal/core/application/usecases/commands"
	"errand/internal/core/domain/model/escrow"
	"errand/internal/core/domain/model/kernel"
	"errand/internal/core/domain/model/order"
	"errand/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

var (
	errCustomerID = errs.NewValueIsInvalidError("customer_id")
	errSessionID  = errs.NewValueIsInvalidError("session_id")
	errOrderID    = errs.NewValueIsInvalidError("order_id")
)

// statusOf maps a use case error to an HTTP status. Order matters: a creation
// failure wraps its cause, which may itself be a not found error.
func statusOf(err error) int {
	switch {
	case errors.Is(err, commands.ErrOrderCreationFailed):
		return http.StatusInternalServerError
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, escrow.ErrOverRelease),
		errors.Is(err, escrow.ErrNoHold),
		errors.Is(err, order.ErrEscrowHoldNotAllowed):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, order.ErrInvalidOrderType),
		errors.Is(err, order.ErrNoActiveStage),
		errors.Is(err, escrow.ErrInvalidAmount),
		errors.Is(err, kernel.ErrCurrencyMismatch):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(ctx echo.Context, err error) error {
	code := statusOf(err)
	message := err.Error()
	if code == http.StatusInternalServerError && !errors.Is(err, commands.ErrOrderCreationFailed) {
		ctx.Logger().Error(err)
		message = http.StatusText(code)
	}
	return ctx.JSON(code, Error{Code: code, Message: message})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}
