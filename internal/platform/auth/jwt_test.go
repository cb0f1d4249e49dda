package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

var testSecret = []byte("test-secret")

func protected(t *testing.T) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := FromContext(c)
		if claims == nil {
			t.Error("expected claims in context")
		}
		return c.String(http.StatusOK, "ok")
	}
}

func TestMiddleware_ValidToken(t *testing.T) {
	token, err := Mint(testSecret, "acct-1", "vendor@example.com", "vendor", time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := Middleware(testSecret)(protected(t))
	if err := h(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestMiddleware_MissingHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := Middleware(testSecret)(protected(t))
	err := h(c)
	if err == nil {
		t.Fatal("expected error for missing header")
	}
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %v", err)
	}
}

func TestMiddleware_WrongSecret(t *testing.T) {
	token, _ := Mint([]byte("other-secret"), "acct-1", "vendor@example.com", "vendor", time.Hour)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := Middleware(testSecret)(protected(t))
	if err := h(c); err == nil {
		t.Fatal("expected error for token signed with wrong secret")
	}
}

func TestMiddleware_ExpiredToken(t *testing.T) {
	token, _ := Mint(testSecret, "acct-1", "vendor@example.com", "vendor", -time.Hour)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := Middleware(testSecret)(protected(t))
	if err := h(c); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestMiddleware_MalformedHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Token abc")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := Middleware(testSecret)(protected(t))
	if err := h(c); err == nil {
		t.Fatal("expected error for malformed header")
	}
}
