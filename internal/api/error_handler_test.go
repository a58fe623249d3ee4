package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/storeratings/storefront/internal/core/domain"
	"github.com/storeratings/storefront/internal/session"
)

func errorContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder, echo.HTTPErrorHandler) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: session.DefaultCookie, Value: "stale.token.value"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	h := NewHTTPErrorHandler(zerolog.Nop(), session.NewStore("", zerolog.Nop()))
	return c, rec, h
}

func TestErrorHandler_SessionExpiredClearsAndRedirects(t *testing.T) {
	c, rec, handle := errorContext(t)

	handle(domain.ErrSessionExpired, c)

	if rec.Code != http.StatusFound || rec.Header().Get(echo.HeaderLocation) != "/login" {
		t.Fatalf("expected redirect to /login, got %d %s", rec.Code, rec.Header().Get(echo.HeaderLocation))
	}
	cleared := false
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == session.DefaultCookie && ck.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatalf("stale session cookie was not cleared")
	}
}

func TestErrorHandler_DomainErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrStoreNotFound, http.StatusNotFound},
		{domain.ErrOwnerUnavailable, http.StatusConflict},
		{fmt.Errorf("%w: email already registered", domain.ErrConflict), http.StatusConflict},
		{fmt.Errorf("%w: rating must be between 1 and 5", domain.ErrRejected), http.StatusBadRequest},
		{domain.ErrBackendDown, http.StatusBadGateway},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		c, rec, handle := errorContext(t)
		handle(tc.err, c)
		if rec.Code != tc.code {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.code, rec.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid error envelope: %v", err)
		}
		if body["error"] == "" {
			t.Fatalf("error envelope missing message")
		}
	}
}

func TestErrorHandler_UnexpectedErrorHidesDetail(t *testing.T) {
	c, rec, handle := errorContext(t)

	handle(errors.New("pq: connection reset"), c)

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid envelope: %v", err)
	}
	if body["error"] != "internal server error" {
		t.Fatalf("internal detail leaked: %q", body["error"])
	}
}

func TestErrorHandler_EchoErrorsPassThrough(t *testing.T) {
	c, rec, handle := errorContext(t)

	handle(echo.NewHTTPError(http.StatusBadRequest, "invalid payload"), c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
