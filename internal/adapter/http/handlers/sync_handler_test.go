package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"murilov3d/internal/adapter/http/handlers/mocks"
	"murilov3d/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func syncRouter(h *SyncHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/sync/status", h.GetStatus)
	r.PUT("/v1/sync/endpoint", h.SetEndpoint)
	r.POST("/v1/sync/test", h.TestConnection)
	r.POST("/v1/sync/push", h.Push)
	r.POST("/v1/sync/pull", h.Pull)
	return r
}

func TestSyncHandler_GetStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockISyncUseCase(ctrl)
	r := syncRouter(NewSyncHandler(uc))

	uc.EXPECT().Endpoint(gomock.Any()).Return("https://sheets.example/exec", nil)
	uc.EXPECT().Status().Return(usecase.SyncStatusOK)

	req := httptest.NewRequest(http.MethodGet, "/v1/sync/status", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body["status"] != "ok" || body["endpoint"] != "https://sheets.example/exec" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestSyncHandler_SetEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISyncUseCase(ctrl)
		r := syncRouter(NewSyncHandler(uc))

		req := httptest.NewRequest(http.MethodPut, "/v1/sync/endpoint", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISyncUseCase(ctrl)
		r := syncRouter(NewSyncHandler(uc))

		uc.EXPECT().SetEndpoint(gomock.Any(), "https://sheets.example/exec").Return(nil)
		uc.EXPECT().Status().Return(usecase.SyncStatusUnconfigured)

		req := httptest.NewRequest(http.MethodPut, "/v1/sync/endpoint", bytes.NewBufferString(`{"url":" https://sheets.example/exec "}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestSyncHandler_TestConnection(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISyncUseCase(ctrl)
		r := syncRouter(NewSyncHandler(uc))

		uc.EXPECT().TestConnection(gomock.Any()).Return("", usecase.ErrSyncNotConfigured)

		req := httptest.NewRequest(http.MethodPost, "/v1/sync/test", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISyncUseCase(ctrl)
		r := syncRouter(NewSyncHandler(uc))

		uc.EXPECT().TestConnection(gomock.Any()).Return("Planilha conectada", nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/sync/test", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestSyncHandler_PushAndPull(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("push failure is a bad gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISyncUseCase(ctrl)
		r := syncRouter(NewSyncHandler(uc))

		uc.EXPECT().Push(gomock.Any()).Return(usecase.ErrSyncFailed)

		req := httptest.NewRequest(http.MethodPost, "/v1/sync/push", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("pull success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISyncUseCase(ctrl)
		r := syncRouter(NewSyncHandler(uc))

		uc.EXPECT().Pull(gomock.Any()).Return(nil)
		uc.EXPECT().Status().Return(usecase.SyncStatusOK)

		req := httptest.NewRequest(http.MethodPost, "/v1/sync/pull", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
