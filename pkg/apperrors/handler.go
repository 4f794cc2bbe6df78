package apperrors

import (
	"errors"
	"net/http"
	"strings"

	"burokrat-site/pkg/logger"

	"github.com/labstack/echo/v4"
)

const genericMessage = "Произошла непредвиденная ошибка"

// Body is the JSON error payload.
type Body struct {
	Error     string       `json:"error"`
	Message   string       `json:"message"`
	Fields    []FieldError `json:"fields,omitempty"`
	RequestID string       `json:"request_id,omitempty"`
}

// PageRenderer writes a full HTML error page for the given status.
type PageRenderer func(c echo.Context, status int) error

// HTTPErrorHandler logs err once and answers with an HTML page from render,
// or with JSON under /api/ and for clients that do not accept HTML. Messages
// of 5xx errors never reach the client.
func HTTPErrorHandler(log logger.Logger, render PageRenderer) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		requestID := logger.GetRequestIDFromContext(c)
		reqLog := log.WithRequestID(requestID).WithComponent("http")

		status, body := classify(err)
		body.RequestID = requestID

		switch {
		case status >= http.StatusInternalServerError:
			reqLog.Error("Request failed", err, logger.String("error_code", body.Error), logger.Status(status))
			body.Message = genericMessage
		case status != http.StatusNotFound:
			reqLog.Warn("Request rejected", logger.String("error_code", body.Error), logger.Status(status))
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}
		if render != nil && acceptsHTML(c.Request()) {
			rerr := render(c, status)
			if rerr == nil {
				return
			}
			reqLog.Error("Error page render failed", rerr, logger.Status(status))
		}
		_ = c.JSON(status, body)
	}
}

func classify(err error) (int, Body) {
	if appErr, ok := AsAppError(err); ok {
		return appErr.HTTPStatus, Body{Error: appErr.Code, Message: appErr.Message, Fields: appErr.Fields}
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		msg, ok := he.Message.(string)
		if !ok {
			msg = http.StatusText(he.Code)
		}
		code := "HTTP_ERROR"
		if he.Code == http.StatusNotFound {
			code = ErrCodePageNotFound
		}
		return he.Code, Body{Error: code, Message: msg}
	}

	return http.StatusInternalServerError, Body{Error: ErrCodeUnexpectedError, Message: err.Error()}
}

func acceptsHTML(r *http.Request) bool {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		return false
	}
	accept := r.Header.Get(echo.HeaderAccept)
	return accept == "" || strings.Contains(accept, "text/html") || strings.Contains(accept, "*/*")
}
