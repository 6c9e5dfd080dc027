package service

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-kit/log"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	RegisterErrorHandler(e, log.NewNopLogger())
	e.GET("/fail", func(echo.Context) error { return err })

	req := httptest.NewRequest(http.MethodGet, "/fail", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeErrResponse(t *testing.T, rec *httptest.ResponseRecorder) DiscoveryError {
	t.Helper()
	var resp struct {
		Error DiscoveryError `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Error
}

func TestHTTPErrorHandler(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"bad parameter", NewBadParameterError("sip must be a boolean", nil), http.StatusBadRequest, ErrBadParameter},
		{"entity not found", NewEntityNotFoundError("no recorder instance", nil), http.StatusNotFound, ErrEntityNotFound},
		{"configuration absent", NewConfigurationAbsentError("gateway not configured", nil), http.StatusNotFound, ErrConfigurationAbsent},
		{"no healthy instance", NewNoHealthyInstanceError("no bridge qualifies", nil), http.StatusServiceUnavailable, ErrNoHealthyInstance},
		{"internal", NewInternalServerError("boom", nil), http.StatusInternalServerError, ErrInternalServerError},
		{"plain error becomes internal", errors.New("boom"), http.StatusInternalServerError, ErrInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := serveError(t, tc.err)
			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, tc.wantCode, decodeErrResponse(t, rec).Code)
		})
	}

	t.Run("echo http error keeps its status", func(t *testing.T) {
		rec := serveError(t, echo.NewHTTPError(http.StatusTeapot, "short and stout"))
		assert.Equal(t, http.StatusTeapot, rec.Code)
		got := decodeErrResponse(t, rec)
		assert.Equal(t, ErrInternalServerError, got.Code)
		assert.Equal(t, "short and stout", got.Message)
	})

	t.Run("inner error is not leaked to the body", func(t *testing.T) {
		rec := serveError(t, NewConfigurationAbsentError("gateway not configured", errors.New("secret detail")))
		assert.NotContains(t, rec.Body.String(), "secret detail")
	})
}

func TestNewErrorCodeToStatusCodeMaps(t *testing.T) {
	m := NewErrorCodeToStatusCodeMaps()
	assert.Equal(t, http.StatusBadRequest, m[ErrBadParameter])
	assert.Equal(t, http.StatusNotFound, m[ErrEntityNotFound])
	assert.Equal(t, http.StatusNotFound, m[ErrConfigurationAbsent])
	assert.Equal(t, http.StatusServiceUnavailable, m[ErrNoHealthyInstance])
	assert.Equal(t, http.StatusInternalServerError, m[ErrInternalServerError])
}
