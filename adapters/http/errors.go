package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/satriahrh/paxos/utils/log"
	"go.uber.org/zap"
)

// NotFoundText is the plain-text body for requests that match no route.
const NotFoundText = "Sorry can't find that!"

// ErrorHandler renders handler errors as {"error": "..."} JSON. Requests
// that matched no route, including a known path with the wrong method, get
// a plain-text 404.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	ctx := c.Request().Context()

	if errors.Is(err, echo.ErrNotFound) || errors.Is(err, echo.ErrMethodNotAllowed) {
		c.Response().Header().Del(echo.HeaderAllow)
		if werr := c.String(http.StatusNotFound, NotFoundText); werr != nil {
			log.WithCtx(ctx).Error("Failed to write response", zap.Error(werr))
		}
		return
	}

	code := http.StatusInternalServerError
	message := http.StatusText(code)

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if code < http.StatusInternalServerError {
			message = fmt.Sprint(he.Message)
		}
	}

	if code >= http.StatusInternalServerError {
		log.WithCtx(ctx).Error("Request failed", zap.Error(err), zap.Int("status", code))
	}

	var werr error
	if c.Request().Method == http.MethodHead {
		werr = c.NoContent(code)
	} else {
		werr = c.JSON(code, ErrorResponse{Error: message})
	}
	if werr != nil {
		log.WithCtx(ctx).Error("Failed to write response", zap.Error(werr))
	}
}
