package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"pedezap/internal/adapter/http/handlers/mocks"
	"pedezap/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestBotHandler_HandleMessage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc usecase.IBotUseCase) *gin.Engine {
		r := gin.New()
		r.POST("/v1/bot/messages", NewBotHandler(uc).HandleMessage)
		return r
	}

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBotUseCase(ctrl)
		r := newRouter(uc)

		req := httptest.NewRequest(http.MethodPost, "/v1/bot/messages", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing phone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBotUseCase(ctrl)
		r := newRouter(uc)

		req := httptest.NewRequest(http.MethodPost, "/v1/bot/messages", bytes.NewBufferString(`{"phone":"   ","text":"oi"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid phone from usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBotUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().HandleInbound(gomock.Any(), "5511999990000", "oi", "").Return("", usecase.ErrInvalidPhone)

		req := httptest.NewRequest(http.MethodPost, "/v1/bot/messages", bytes.NewBufferString(`{"phone":"5511999990000","text":"oi"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("collaborator failure maps to bad gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBotUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().HandleInbound(gomock.Any(), "5511999990000", "oi", "").Return("", errors.New("channel down"))

		req := httptest.NewRequest(http.MethodPost, "/v1/bot/messages", bytes.NewBufferString(`{"phone":"5511999990000","text":"oi"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBotUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().HandleInbound(gomock.Any(), "5511999990000", "quero uma pizza", "https://cdn.example.com/foto.jpg").
			Return("Boa escolha!", nil)

		body := `{"phone":"5511999990000","text":"quero uma pizza","image_url":"https://cdn.example.com/foto.jpg"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/bot/messages", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp struct {
			Reply string `json:"reply"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp.Reply != "Boa escolha!" {
			t.Fatalf("unexpected reply: %q", resp.Reply)
		}
	})
}
