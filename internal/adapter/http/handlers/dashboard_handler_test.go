package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"crm_reports/internal/adapter/http/handlers/mocks"
	"crm_reports/internal/domain/entities"
	"crm_reports/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestDashboardHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	setup := func(t *testing.T) (*gin.Engine, *mocks.MockIDashboardUseCase, *mocks.MockIReportUseCase) {
		ctrl := gomock.NewController(t)
		t.Cleanup(ctrl.Finish)
		dash := mocks.NewMockIDashboardUseCase(ctrl)
		reports := mocks.NewMockIReportUseCase(ctrl)
		h := NewDashboardHandler(dash, reports)

		r := gin.New()
		r.GET("/v1/dashboard", h.GetDashboard)
		r.GET("/v1/dashboard/tiles/:tile", h.GetTile)
		r.GET("/v1/dashboard/chart.png", h.GetStatusChart)
		return r, dash, reports
	}
	get := func(r *gin.Engine, target string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
		return w
	}

	t.Run("dashboard", func(t *testing.T) {
		r, dash, _ := setup(t)
		dash.EXPECT().Dashboard(gomock.Any()).Return(usecase.Dashboard{Tiles: []usecase.DashboardTile{
			{Key: usecase.TileOpenQuotes, Label: "Orçamentos em aberto", Count: 3, Value: 900},
		}})

		w := get(r, "/v1/dashboard")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Tiles []map[string]any `json:"tiles"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body.Tiles) != 1 || body.Tiles[0]["formatted_value"] != "R$ 900,00" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("tile drilldown", func(t *testing.T) {
		r, dash, _ := setup(t)
		dash.EXPECT().Drilldown(gomock.Any(), usecase.TileOverdueQuotes).Return(usecase.Drilldown{
			Tile:   usecase.DashboardTile{Key: usecase.TileOverdueQuotes, Count: 1},
			Quotes: []entities.Quote{{ID: "q1", Status: entities.QuoteStatusSent}},
		}, nil)

		w := get(r, "/v1/dashboard/tiles/overdue_quotes")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if quotes, ok := body["quotes"].([]any); !ok || len(quotes) != 1 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("unknown tile", func(t *testing.T) {
		r, dash, _ := setup(t)
		dash.EXPECT().Drilldown(gomock.Any(), "bogus").Return(usecase.Drilldown{}, usecase.ErrUnknownTile)
		if w := get(r, "/v1/dashboard/tiles/bogus"); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("status chart", func(t *testing.T) {
		r, _, reports := setup(t)
		reports.EXPECT().QuoteReport(gomock.Any(), gomock.Any()).Return(sampleReport())

		w := get(r, "/v1/dashboard/chart.png?owner=u1")
		if w.Code != http.StatusOK || w.Header().Get("Content-Type") != contentTypePNG {
			t.Fatalf("unexpected response: %d %s", w.Code, w.Header().Get("Content-Type"))
		}
		if !bytes.HasPrefix(w.Body.Bytes(), []byte{0x89, 'P', 'N', 'G'}) {
			t.Fatalf("expected PNG payload")
		}
	})

	t.Run("status chart rejects bad dates", func(t *testing.T) {
		r, _, _ := setup(t)
		if w := get(r, "/v1/dashboard/chart.png?end=tomorrow"); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
