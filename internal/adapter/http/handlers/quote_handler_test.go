package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"crm_reports/internal/adapter/http/handlers/mocks"
	"crm_reports/internal/domain/entities"
	"crm_reports/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestQuoteHandler_CreateQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc *mocks.MockIQuoteUseCase) *gin.Engine {
		h := NewQuoteHandler(uc)
		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)
		return r
	}
	post := func(r *gin.Engine, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		w := post(newRouter(mocks.NewMockIQuoteUseCase(ctrl)), "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing required fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		w := post(newRouter(mocks.NewMockIQuoteUseCase(ctrl)), `{"title":"Site"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid validity date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		w := post(newRouter(mocks.NewMockIQuoteUseCase(ctrl)), `{"title":"Site","owner_id":"u1","board_id":"b1","valid_until":"31/12/2024"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase rejects value", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Quote{}, usecase.ErrInvalidQuoteValue)

		w := post(newRouter(uc), `{"title":"Site","owner_id":"u1","board_id":"b1","total_value":-1}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)

		now := time.Now().UTC()
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, in usecase.CreateQuoteInput) (entities.Quote, error) {
			if in.Title != "Site" || in.ValidUntil == nil || in.TotalValue != 1500 {
				t.Fatalf("unexpected input: %+v", in)
			}
			return entities.Quote{ID: "q-1", Title: in.Title, Status: entities.QuoteStatusDraft, ValidUntil: in.ValidUntil, CreatedAt: now, UpdatedAt: now}, nil
		})

		w := post(newRouter(uc), `{"title":"Site","owner_id":"u1","board_id":"b1","total_value":1500,"valid_until":"2099-12-31"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "q-1" || body["status_label"] != "Rascunho" || body["valid_until"] != "2099-12-31" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestQuoteHandler_GetQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not found", usecase.ErrQuoteNotFound, http.StatusNotFound},
		{"store failure", errors.New("boom"), http.StatusInternalServerError},
		{"success", nil, http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIQuoteUseCase(ctrl)
			h := NewQuoteHandler(uc)

			r := gin.New()
			r.GET("/v1/quotes/:id", h.GetQuote)

			uc.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1"}, tc.err)

			req := httptest.NewRequest(http.MethodGet, "/v1/quotes/q-1", nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, w.Code)
			}
		})
	}
}

func TestQuoteHandler_UpdateQuoteStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	patch := func(r *gin.Engine, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPatch, "/v1/quotes/q-1/status", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	cases := []struct {
		name string
		err  error
		want int
	}{
		{"finalized", usecase.ErrQuoteFinalized, http.StatusConflict},
		{"unknown status", usecase.ErrInvalidQuoteStatus, http.StatusBadRequest},
		{"success", nil, http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIQuoteUseCase(ctrl)
			h := NewQuoteHandler(uc)
			r := gin.New()
			r.PATCH("/v1/quotes/:id/status", h.UpdateQuoteStatus)

			uc.EXPECT().UpdateStatus(gomock.Any(), "q-1", entities.QuoteStatusApproved).
				Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusApproved}, tc.err)

			w := patch(r, `{"status":"Approved"}`)
			if w.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, w.Code)
			}
		})
	}

	t.Run("missing status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewQuoteHandler(mocks.NewMockIQuoteUseCase(ctrl))
		r := gin.New()
		r.PATCH("/v1/quotes/:id/status", h.UpdateQuoteStatus)

		if w := patch(r, `{}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
