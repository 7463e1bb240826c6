package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"printstudio/internal/adapter/http/handlers/mocks"
	"printstudio/internal/domain/entities"
	"printstudio/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func catalogRouter(h *CatalogHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/services", h.ListServices)
	r.POST("/v1/seed/services", h.SeedServices)
	return r
}

func TestCatalogHandler_ListServices(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		r := catalogRouter(NewCatalogHandler(uc))

		uc.EXPECT().ListServices(gomock.Any()).Return([]entities.Service{
			{Key: "tshirt", Name: "T-Shirt Printing", BasePrice: 6},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/services", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var resp []struct {
			Key       string  `json:"key"`
			BasePrice float64 `json:"base_price"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response: %v", err)
		}
		if len(resp) != 1 || resp[0].Key != "tshirt" || resp[0].BasePrice != 6 {
			t.Fatalf("unexpected response: %+v", resp)
		}
	})

	t.Run("store unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		r := catalogRouter(NewCatalogHandler(uc))

		uc.EXPECT().ListServices(gomock.Any()).Return(nil, fmt.Errorf("%w: dial tcp", interfaces.ErrStoreUnavailable))

		req := httptest.NewRequest(http.MethodGet, "/v1/services", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("internal error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		r := catalogRouter(NewCatalogHandler(uc))

		uc.EXPECT().ListServices(gomock.Any()).Return(nil, errors.New("boom"))

		req := httptest.NewRequest(http.MethodGet, "/v1/services", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestCatalogHandler_SeedServices(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("seeds empty catalog", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		r := catalogRouter(NewCatalogHandler(uc))

		uc.EXPECT().SeedDefaults(gomock.Any()).Return(3, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/seed/services", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var resp struct {
			Seeded bool `json:"seeded"`
			Count  int  `json:"count"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response: %v", err)
		}
		if !resp.Seeded || resp.Count != 3 {
			t.Fatalf("unexpected response: %+v", resp)
		}
	})

	t.Run("already seeded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		r := catalogRouter(NewCatalogHandler(uc))

		uc.EXPECT().SeedDefaults(gomock.Any()).Return(0, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/seed/services", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var resp struct {
			Seeded bool `json:"seeded"`
			Count  int  `json:"count"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response: %v", err)
		}
		if resp.Seeded || resp.Count != 0 {
			t.Fatalf("unexpected response: %+v", resp)
		}
	})
}
