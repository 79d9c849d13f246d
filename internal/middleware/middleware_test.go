//go:build !integration

package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tripLogger/business/recommend"
	"tripLogger/pkg/utils"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

const testSecret = "middleware-secret"

func TestAuthMiddleware(t *testing.T) {
	valid, err := utils.GenerateJWT(testSecret, "12", "traveler", time.Hour)
	require.NoError(t, err)
	expired, err := utils.GenerateJWT(testSecret, "12", "traveler", -time.Minute)
	require.NoError(t, err)
	foreign, err := utils.GenerateJWT("other-secret", "12", "traveler", time.Hour)
	require.NoError(t, err)
	zeroUser, err := utils.GenerateJWT(testSecret, "0", "traveler", time.Hour)
	require.NoError(t, err)

	testCases := []struct {
		name   string
		header string
		code   int
	}{
		{name: "Valid", header: "Bearer " + valid, code: http.StatusOK},
		{name: "LowercaseScheme", header: "bearer " + valid, code: http.StatusOK},
		{name: "Missing", header: "", code: http.StatusUnauthorized},
		{name: "WrongScheme", header: "Basic " + valid, code: http.StatusUnauthorized},
		{name: "Expired", header: "Bearer " + expired, code: http.StatusUnauthorized},
		{name: "WrongSecret", header: "Bearer " + foreign, code: http.StatusUnauthorized},
		{name: "ZeroUserID", header: "Bearer " + zeroUser, code: http.StatusUnauthorized},
		{name: "Garbage", header: "Bearer not-a-token", code: http.StatusUnauthorized},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/recommend", nil)
			if tc.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tc.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var gotUser, gotRole any
			handler := AuthMiddleware(testSecret)(func(c echo.Context) error {
				gotUser = c.Get("user_id")
				gotRole = c.Get("role")
				return c.NoContent(http.StatusOK)
			})

			require.NoError(t, handler(c))
			require.Equal(t, tc.code, rec.Code)
			require.Nil(t, gotRole)
			if tc.code == http.StatusOK {
				require.Equal(t, uint(12), gotUser)
			} else {
				require.Nil(t, gotUser)
			}
		})
	}
}

func TestTraceIDGenerated(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/recommend", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var fromCtx string
	handler := TraceID()(func(c echo.Context) error {
		fromCtx = recommend.TraceIDFromContext(c.Request().Context())
		return nil
	})

	require.NoError(t, handler(c))
	require.NotEmpty(t, fromCtx)
	require.Equal(t, fromCtx, rec.Header().Get(HeaderTraceID))
}

func TestTraceIDPropagated(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/recommend", nil)
	req.Header.Set(HeaderTraceID, "abc-123")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var fromCtx string
	handler := TraceID()(func(c echo.Context) error {
		fromCtx = recommend.TraceIDFromContext(c.Request().Context())
		return nil
	})

	require.NoError(t, handler(c))
	require.Equal(t, "abc-123", fromCtx)
}

func TestErrorHandler(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		code int
		body string
	}{
		{
			name: "HTTPError",
			err:  echo.NewHTTPError(http.StatusNotFound, "Not Found"),
			code: http.StatusNotFound,
			body: `{"message":"Not Found"}`,
		},
		{
			name: "Unexpected",
			err:  errors.New("boom"),
			code: http.StatusInternalServerError,
			body: `{"message":"Internal Server Error"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/nowhere", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			ErrorHandler(tc.err, c)
			require.Equal(t, tc.code, rec.Code)
			require.JSONEq(t, tc.body, rec.Body.String())
		})
	}
}
