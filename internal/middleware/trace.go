package middleware

import (
	"tripLogger/business/recommend"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const HeaderTraceID = "X-Trace-Id"

// TraceID reuses the caller's X-Trace-Id or generates one, echoes it on the
// response and puts it on the request context.
func TraceID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tid := c.Request().Header.Get(HeaderTraceID)
			if tid == "" || len(tid) > 64 {
				tid = uuid.NewString()
			}

			c.Response().Header().Set(HeaderTraceID, tid)
			c.Set("trace_id", tid)

			req := c.Request()
			c.SetRequest(req.WithContext(recommend.ContextWithTraceID(req.Context(), tid)))

			return next(c)
		}
	}
}
