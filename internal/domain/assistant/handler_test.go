package assistant

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

func newTestHandler(completer *mockCompleter) (*Handler, *mockRepo, *echo.Echo) {
	repo := newMockRepo()
	h := NewHandler(NewService(repo, completer, zerolog.Nop()))
	return h, repo, echo.New()
}

func postPrompt(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/prompt", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestHandler_Prompt_MissingEmail(t *testing.T) {
	h, _, e := newTestHandler(&mockCompleter{})
	c, _ := postPrompt(e, `{"query": "anything"}`)

	err := h.Prompt(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest || he.Message != "Email is required." {
		t.Fatalf("expected 400 Email is required., got %v", err)
	}
}

func TestHandler_Prompt_UnknownAccount(t *testing.T) {
	h, _, e := newTestHandler(&mockCompleter{})
	c, _ := postPrompt(e, `{"email": "nobody@example.com"}`)

	err := h.Prompt(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusNotFound || he.Message != "Account not found." {
		t.Fatalf("expected 404 Account not found., got %v", err)
	}
}

func TestHandler_Prompt_CompleterFailureIsGeneric500(t *testing.T) {
	h, repo, e := newTestHandler(&mockCompleter{err: errors.New("upstream 503")})
	repo.add("vendor@example.com")
	c, _ := postPrompt(e, `{"email": "vendor@example.com"}`)

	err := h.Prompt(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusInternalServerError || he.Message != "Something went wrong." {
		t.Fatalf("expected 500 Something went wrong., got %v", err)
	}
}

func TestHandler_Prompt_ReturnsResult(t *testing.T) {
	h, repo, e := newTestHandler(&mockCompleter{candidates: []string{"Here is your summary."}})
	repo.add("vendor@example.com")
	c, rec := postPrompt(e, `{"email": "vendor@example.com"}`)

	if err := h.Prompt(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"result":"Here is your summary."`) {
		t.Errorf("unexpected body %s", rec.Body.String())
	}
}
