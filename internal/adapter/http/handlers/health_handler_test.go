package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func statusOf(t *testing.T, h *HealthHandler) map[string]any {
	t.Helper()
	r := gin.New()
	r.GET("/status", h.Status)

	req := httptest.NewRequest(http.MethodGet, "/status", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	return resp
}

func TestHealthHandler_Status(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("store not configured", func(t *testing.T) {
		resp := statusOf(t, NewHealthHandler(nil))
		if resp["database"] != "not configured" {
			t.Fatalf("unexpected status: %+v", resp)
		}
	})

	t.Run("store unreachable", func(t *testing.T) {
		pinger := StorePingerFunc(func(context.Context) error { return errors.New("dial tcp") })
		resp := statusOf(t, NewHealthHandler(pinger))
		if resp["database"] != "unreachable" {
			t.Fatalf("unexpected status: %+v", resp)
		}
	})

	t.Run("store connected", func(t *testing.T) {
		pinger := StorePingerFunc(func(context.Context) error { return nil })
		resp := statusOf(t, NewHealthHandler(pinger))
		if resp["database"] != "connected" {
			t.Fatalf("unexpected status: %+v", resp)
		}
	})
}

func TestHealthHandler_Root(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/", NewHealthHandler(nil).Root)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if body := w.Body.String(); body == "" || !json.Valid([]byte(body)) {
		t.Fatalf("expected json body, got %q", body)
	}
}
