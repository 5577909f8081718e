package http

import (
	"errors"
	"log/slog"
	"net/http"

	"eats/internal/adapters/in/http/api"
	"eats/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const reasonInternal = "Something went wrong, try again later"

// statusAndReason maps an error to the status code and the reason shown to
// the caller. Unexpected errors get a generic reason and internal=true.
func statusAndReason(err error) (status int, reason string, internal bool) {
	var (
		httpErr   *echo.HTTPError
		notFound  *errs.ObjectNotFoundError
		forbidden *errs.ForbiddenError
		conflict  *errs.ConflictError
	)

	switch {
	case errors.As(err, &httpErr):
		reason, ok := httpErr.Message.(string)
		if !ok {
			reason = http.StatusText(httpErr.Code)
		}
		return httpErr.Code, reason, httpErr.Code >= http.StatusInternalServerError
	case errors.As(err, &notFound):
		return http.StatusNotFound, notFound.Reason(), false
	case errors.As(err, &forbidden):
		return http.StatusForbidden, forbidden.Reason, false
	case errors.As(err, &conflict):
		return http.StatusConflict, conflict.Reason, false
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest, err.Error(), false
	default:
		return http.StatusInternalServerError, reasonInternal, true
	}
}

// NewErrorHandler renders every error as {ok:false, error}.
func NewErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	logger = logger.With("component", "HTTPErrorHandler")

	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, reason, internal := statusAndReason(err)
		if internal {
			logger.ErrorContext(c.Request().Context(), "Request failed",
				"method", c.Request().Method,
				"path", c.Path(),
				"error", err,
			)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, api.Result{Ok: false, Error: reason})
		}
		if err != nil {
			logger.Error("Failed to write error response", "error", err)
		}
	}
}
