package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"home_estimate/internal/adapter/http/handlers/mocks"
	"home_estimate/internal/domain/entities"
	"home_estimate/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type sessionFixture struct {
	router    *gin.Engine
	sessions  *mocks.MockISessionUseCase
	pricing   *mocks.MockIPricingUseCase
	finishing *mocks.MockIFinishingUseCase
	catalog   *mocks.MockICatalogUseCase
}

func newSessionFixture(t *testing.T) sessionFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	f := sessionFixture{
		router:    gin.New(),
		sessions:  mocks.NewMockISessionUseCase(ctrl),
		pricing:   mocks.NewMockIPricingUseCase(ctrl),
		finishing: mocks.NewMockIFinishingUseCase(ctrl),
		catalog:   mocks.NewMockICatalogUseCase(ctrl),
	}

	sh := NewSessionHandler(f.sessions)
	ch := NewCalculationHandler(f.pricing)
	fh := NewFinishingHandler(f.finishing)
	cat := NewCatalogHandler(f.catalog)

	r := f.router
	r.GET("/catalog/sections", cat.ListSections)
	r.GET("/catalog/categories/:category_id/services", cat.ListServices)
	r.GET("/catalog/time-coefficients", cat.ListTimeCoefficients)
	r.POST("/sessions", sh.CreateSession)
	r.GET("/sessions/:session_id", sh.GetSession)
	r.PUT("/sessions/:session_id/location", sh.UpdateLocation)
	r.PUT("/sessions/:session_id/time-coefficient", sh.SetTimeCoefficient)
	r.DELETE("/sessions/:session_id/selection", sh.ClearSelection)
	r.POST("/sessions/:session_id/selection/:service_id/toggle", sh.ToggleService)
	r.PUT("/sessions/:session_id/selection/:service_id", sh.SetQuantity)
	r.POST("/sessions/:session_id/estimate/recalculate", ch.Recalculate)
	r.DELETE("/sessions/:session_id/calculations/:service_id/materials", ch.RemoveMaterials)
	r.POST("/sessions/:session_id/calculations/:service_id/materials", ch.RestoreMaterials)
	r.GET("/sessions/:session_id/finishing/:service_id", fh.GetFinishing)
	r.PUT("/sessions/:session_id/finishing/:service_id/pick", fh.Pick)
	r.PUT("/sessions/:session_id/finishing/:service_id/customer-supplied", fh.MarkCustomerSupplied)
	return f
}

func sampleSession() entities.Session {
	s := entities.NewSession("s-1", time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	s.Selection["paint-walls"] = entities.SelectionEntry{Quantity: 20}
	return s
}

func decodeSession(t *testing.T, raw []byte) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return body
}

func TestCatalogHandler(t *testing.T) {
	f := newSessionFixture(t)
	f.catalog.EXPECT().Sections().Return([]usecase.SectionTree{
		{Section: entities.Section{ID: "interior", Name: "Interior"}, Categories: []entities.Category{{ID: "painting", Title: "Painting"}}},
	})
	f.catalog.EXPECT().Services(entities.CategoryID("painting")).Return([]entities.Service{{ID: "paint-walls"}}, nil)
	f.catalog.EXPECT().Services(entities.CategoryID("nope")).Return(nil, usecase.ErrUnknownCategory)
	f.catalog.EXPECT().TimeCoefficients().Return([]entities.TimeCoefficientPreset{{Name: "standard", Coefficient: 1}})

	w := doRequest(f.router, http.MethodGet, "/catalog/sections", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var sections []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &sections); err != nil || len(sections) != 1 || sections[0]["id"] != "interior" {
		t.Fatalf("unexpected sections: %s", w.Body.String())
	}

	if w := doRequest(f.router, http.MethodGet, "/catalog/categories/painting/services", nil); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w := doRequest(f.router, http.MethodGet, "/catalog/categories/nope/services", nil); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if w := doRequest(f.router, http.MethodGet, "/catalog/time-coefficients", nil); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestSessionHandler_CreateAndGet(t *testing.T) {
	f := newSessionFixture(t)
	f.sessions.EXPECT().Create(gomock.Any()).Return(entities.NewSession("s-1", time.Now().UTC()), nil)
	f.sessions.EXPECT().Get(gomock.Any(), "s-1").Return(sampleSession(), nil)
	f.sessions.EXPECT().Get(gomock.Any(), "missing").Return(entities.Session{}, usecase.ErrSessionNotFound)

	w := doRequest(f.router, http.MethodPost, "/sessions", nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	if body := decodeSession(t, w.Body.Bytes()); body["id"] != "s-1" {
		t.Fatalf("unexpected body: %v", body)
	}

	w = doRequest(f.router, http.MethodGet, "/sessions/s-1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := decodeSession(t, w.Body.Bytes())
	if sel, ok := body["selection"].([]any); !ok || len(sel) != 1 {
		t.Fatalf("expected one selected service, got %v", body["selection"])
	}

	if w := doRequest(f.router, http.MethodGet, "/sessions/missing", nil); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestSessionHandler_UpdateLocation(t *testing.T) {
	t.Run("invalid body", func(t *testing.T) {
		f := newSessionFixture(t)
		w := doRequest(f.router, http.MethodPut, "/sessions/s-1/location", bytes.NewBufferString(`{"location":{"country":"US"}}`))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unsupported address comes back as warning", func(t *testing.T) {
		f := newSessionFixture(t)
		s := sampleSession()
		s.SetWarning(entities.WarningLocation, "address is outside the service area")
		f.sessions.EXPECT().UpdateSite(gomock.Any(), "s-1", gomock.Any()).
			DoAndReturn(func(_ any, _ string, in usecase.SiteDetails) (entities.Session, error) {
				if in.Location.PostalCode != "10001" || in.Description != "kitchen" {
					t.Fatalf("unexpected site details: %+v", in)
				}
				return s, nil
			})

		w := doRequest(f.router, http.MethodPut, "/sessions/s-1/location",
			bytes.NewBufferString(`{"location":{"country":"US","postal_code":" 10001 "},"description":" kitchen "}`))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		warnings, _ := decodeSession(t, w.Body.Bytes())["warnings"].(map[string]any)
		if warnings["location"] == nil {
			t.Fatalf("expected location warning, got %v", warnings)
		}
	})
}

func TestSessionHandler_SelectionMutations(t *testing.T) {
	f := newSessionFixture(t)
	f.sessions.EXPECT().SetTimeCoefficient(gomock.Any(), "s-1", 1.5).Return(sampleSession(), nil)
	f.sessions.EXPECT().Toggle(gomock.Any(), "s-1", entities.ServiceID("paint-walls"), "").Return(sampleSession(), nil)
	f.sessions.EXPECT().Toggle(gomock.Any(), "s-1", entities.ServiceID("tile-floor"), "bathroom").Return(entities.Session{}, usecase.ErrUnknownService)
	f.sessions.EXPECT().SetQuantity(gomock.Any(), "s-1", entities.ServiceID("paint-walls"), 0.0).Return(entities.Session{}, usecase.ErrInvalidQuantity)
	f.sessions.EXPECT().SetQuantity(gomock.Any(), "s-1", entities.ServiceID("paint-walls"), 35.0).Return(sampleSession(), nil)
	f.sessions.EXPECT().Clear(gomock.Any(), "s-1").Return(entities.Session{}, usecase.ErrSessionConflict)

	cases := []struct {
		name   string
		method string
		path   string
		body   string
		want   int
	}{
		{"time coefficient", http.MethodPut, "/sessions/s-1/time-coefficient", `{"coefficient":1.5}`, http.StatusOK},
		{"time coefficient not positive", http.MethodPut, "/sessions/s-1/time-coefficient", `{"coefficient":0}`, http.StatusBadRequest},
		{"toggle without body", http.MethodPost, "/sessions/s-1/selection/paint-walls/toggle", "", http.StatusOK},
		{"toggle unknown service", http.MethodPost, "/sessions/s-1/selection/tile-floor/toggle", `{"group":"bathroom"}`, http.StatusNotFound},
		{"quantity missing", http.MethodPut, "/sessions/s-1/selection/paint-walls", `{}`, http.StatusBadRequest},
		{"quantity rejected", http.MethodPut, "/sessions/s-1/selection/paint-walls", `{"quantity":0}`, http.StatusBadRequest},
		{"quantity", http.MethodPut, "/sessions/s-1/selection/paint-walls", `{"quantity":35}`, http.StatusOK},
		{"clear conflict", http.MethodDelete, "/sessions/s-1/selection", "", http.StatusConflict},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var body io.Reader
			if tc.body != "" {
				body = bytes.NewBufferString(tc.body)
			}
			w := doRequest(f.router, tc.method, tc.path, body)
			if w.Code != tc.want {
				t.Fatalf("expected %d, got %d: %s", tc.want, w.Code, w.Body.String())
			}
		})
	}
}

func TestCalculationHandler(t *testing.T) {
	f := newSessionFixture(t)
	f.pricing.EXPECT().Recalculate(gomock.Any(), "s-1").Return(sampleSession(), nil)
	f.pricing.EXPECT().Recalculate(gomock.Any(), "s-1", entities.ServiceID("paint-walls")).Return(sampleSession(), nil)
	f.pricing.EXPECT().RemoveFinishingMaterials(gomock.Any(), "s-1", entities.ServiceID("paint-walls")).Return(sampleSession(), nil)
	f.pricing.EXPECT().RestoreFinishingMaterials(gomock.Any(), "s-1", entities.ServiceID("paint-walls")).Return(entities.Session{}, usecase.ErrServiceNotPriced)

	if w := doRequest(f.router, http.MethodPost, "/sessions/s-1/estimate/recalculate", nil); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	w := doRequest(f.router, http.MethodPost, "/sessions/s-1/estimate/recalculate", bytes.NewBufferString(`{"service_ids":[" paint-walls ","paint-walls"]}`))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w := doRequest(f.router, http.MethodDelete, "/sessions/s-1/calculations/paint-walls/materials", nil); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w := doRequest(f.router, http.MethodPost, "/sessions/s-1/calculations/paint-walls/materials", nil); w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
}

func TestFinishingHandler(t *testing.T) {
	f := newSessionFixture(t)
	fs := entities.NewFinishingSelection(map[string][]entities.FinishingMaterialOption{
		"paint": {{ExternalID: "p-1", Name: "Matte white"}, {ExternalID: "p-2", Name: "Eggshell"}},
	})
	f.finishing.EXPECT().EnsureLoaded(gomock.Any(), "s-1", entities.ServiceID("paint-walls")).Return(fs, nil)
	f.finishing.EXPECT().EnsureLoaded(gomock.Any(), "s-1", entities.ServiceID("tile-floor")).Return(entities.FinishingSelection{}, usecase.ErrFinishingUnavailable)
	f.finishing.EXPECT().Pick(gomock.Any(), "s-1", entities.ServiceID("paint-walls"), "p-9").Return(entities.Session{}, usecase.ErrUnknownFinishingMaterial)
	f.finishing.EXPECT().MarkCustomerSupplied(gomock.Any(), "s-1", entities.ServiceID("paint-walls"), "p-1", true).Return(sampleSession(), nil)
	f.finishing.EXPECT().MarkCustomerSupplied(gomock.Any(), "s-1", entities.ServiceID("paint-walls"), "p-1", false).Return(sampleSession(), nil)

	w := doRequest(f.router, http.MethodGet, "/sessions/s-1/finishing/paint-walls", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := decodeSession(t, w.Body.Bytes())
	if picks, _ := body["picks"].(map[string]any); picks["paint"] != "p-1" {
		t.Fatalf("expected first candidate picked, got %v", body["picks"])
	}

	if w := doRequest(f.router, http.MethodGet, "/sessions/s-1/finishing/tile-floor", nil); w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", w.Code)
	}
	if w := doRequest(f.router, http.MethodPut, "/sessions/s-1/finishing/paint-walls/pick", bytes.NewBufferString(`{}`)); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if w := doRequest(f.router, http.MethodPut, "/sessions/s-1/finishing/paint-walls/pick", bytes.NewBufferString(`{"external_id":"p-9"}`)); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if w := doRequest(f.router, http.MethodPut, "/sessions/s-1/finishing/paint-walls/customer-supplied", bytes.NewBufferString(`{"external_id":"p-1"}`)); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w := doRequest(f.router, http.MethodPut, "/sessions/s-1/finishing/paint-walls/customer-supplied", bytes.NewBufferString(`{"external_id":"p-1","supplied":false}`)); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
