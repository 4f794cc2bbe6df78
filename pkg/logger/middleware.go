package logger

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestIDHeader carries the request id in and out.
const RequestIDHeader = "X-Request-ID"

// quietPrefixes are paths whose successful requests log at debug level.
var quietPrefixes = []string{"/assets/", "/favicon.ico", "/health/", "/api/health"}

func quiet(path string) bool {
	for _, p := range quietPrefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// RequestLoggerMiddleware assigns a request id, stores a request-scoped logger
// in the request context and logs one line per request once the error handler
// has written the response.
func RequestLoggerMiddleware(log Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()

			requestID := req.Header.Get(RequestIDHeader)
			if requestID == "" {
				requestID = uuid.NewString()
			}
			c.Set(string(ContextKeyRequestID), requestID)
			c.Response().Header().Set(RequestIDHeader, requestID)

			fromHTMX := req.Header.Get("HX-Request") == "true"
			reqLog := log.WithRequestID(requestID).WithFields(
				Method(req.Method),
				Path(req.URL.Path),
				RemoteIP(c.RealIP()),
				HTMX(fromHTMX),
			)
			c.SetRequest(req.WithContext(withRequest(req.Context(), requestID, reqLog)))

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			status := c.Response().Status
			fields := []Field{
				Status(status),
				Route(c.Path()),
				Duration("duration_ms", time.Since(start)),
				Int64("bytes_out", c.Response().Size),
			}
			if !fromHTMX {
				fields = append(fields, String("user_agent", req.UserAgent()))
			}

			switch {
			case status >= http.StatusInternalServerError:
				reqLog.Error("Server error response", err, fields...)
			case status >= http.StatusBadRequest:
				reqLog.Warn("Client error response", fields...)
			case quiet(req.URL.Path):
				reqLog.Debug("Request completed", fields...)
			default:
				reqLog.Info("Request completed", fields...)
			}
			return nil
		}
	}
}

// RecoveryMiddleware turns a handler panic into a 500 and logs it.
func RecoveryMiddleware(log Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				FromContextOr(c.Request().Context(), log.WithRequestID(GetRequestIDFromContext(c))).
					Error("Panic recovered", nil, Any("panic", r), Route(c.Path()))
				err = echo.NewHTTPError(http.StatusInternalServerError, fmt.Sprintf("panic: %v", r))
			}()
			return next(c)
		}
	}
}

// GetRequestIDFromContext reads the request id from the echo context.
func GetRequestIDFromContext(c echo.Context) string {
	id, _ := c.Get(string(ContextKeyRequestID)).(string)
	return id
}
