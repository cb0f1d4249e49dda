package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestSend_EnvelopeShape(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := Send(c, http.StatusOK, []string{"a"}, "Listed"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	var env Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("invalid envelope JSON: %v", err)
	}
	if env.Message != "Listed" {
		t.Errorf("expected message Listed, got %q", env.Message)
	}
	if env.StatusCode != http.StatusOK {
		t.Errorf("expected statusCode 200, got %d", env.StatusCode)
	}
}

func TestResult_Constructors(t *testing.T) {
	ok := OK("Created")
	if ok.Outcome != OutcomeOK || ok.Message != "Created" {
		t.Errorf("unexpected ok result: %+v", ok)
	}

	nf := NotFound("Account Not Found")
	if nf.Outcome != OutcomeNotFound || nf.Message != "Account Not Found" {
		t.Errorf("unexpected not-found result: %+v", nf)
	}
}
