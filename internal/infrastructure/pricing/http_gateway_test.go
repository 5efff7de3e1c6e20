package pricing

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"home_estimate/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPGateway_ResolveFinishingMaterials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/works/kitchen.cabinets.3/finishing-materials", r.URL.Path)
		_, _ = w.Write([]byte(`{"sections":{"handles":[{"external_id":"h-brass","name":"Brass","cost_per_unit":12.5,"unit_of_measurement":"each"}],"hinges":[]}}`))
	}))
	defer srv.Close()

	g := NewHTTPGateway(srv.URL+"/", time.Second)
	groups, err := g.ResolveFinishingMaterials(context.Background(), "kitchen-cabinets-3")
	require.NoError(t, err)
	require.Len(t, groups["handles"], 1)
	assert.Equal(t, "h-brass", groups["handles"][0].ExternalID)
	assert.Equal(t, 12.5, groups["handles"][0].CostPerUnit)
	assert.Empty(t, groups["hinges"])
}

func TestHTTPGateway_Calculate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/works/calculate", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "kitchen.cabinets.1", body["work_code"])
		assert.Equal(t, "97201", body["zipcode"])
		assert.Equal(t, "each", body["unit_of_measurement"])
		assert.Equal(t, 3.0, body["square"])
		assert.Equal(t, []any{}, body["finishing_materials"])

		_, _ = w.Write([]byte(`{"work_cost":150,"material_cost":25,"materials":[{"name":"Screws","external_id":"m-1","cost_per_unit":0.25,"quantity":100,"cost":25}]}`))
	}))
	defer srv.Close()

	g := NewHTTPGateway(srv.URL, time.Second)
	res, err := g.Calculate(context.Background(), entities.PricingRequest{
		ServiceID:         "kitchen-cabinets-1",
		ZipCode:           "97201",
		UnitOfMeasurement: "each",
		Quantity:          3,
	})
	require.NoError(t, err)
	assert.Equal(t, 150.0, res.LaborCost)
	assert.Equal(t, 25.0, res.MaterialCost)
	require.Len(t, res.MaterialLines, 1)
	assert.Equal(t, entities.MaterialLine{Name: "Screws", ExternalID: "m-1", UnitCost: 0.25, Quantity: 100, LineCost: 25}, res.MaterialLines[0])
	assert.Equal(t, 175.0, res.Total())
}

func TestHTTPGateway_Failures(t *testing.T) {
	t.Run("non-success status carries the message", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte(`{"message":"upstream down"}`))
		}))
		defer srv.Close()

		_, err := NewHTTPGateway(srv.URL, time.Second).Calculate(context.Background(), entities.PricingRequest{ServiceID: "kitchen-cabinets-1"})
		var se *StatusError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, http.StatusBadGateway, se.StatusCode)
		assert.Equal(t, "upstream down", se.Message)
		assert.ErrorIs(t, err, ErrPricingUnavailable)
	})

	t.Run("malformed body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{`))
		}))
		defer srv.Close()

		_, err := NewHTTPGateway(srv.URL, time.Second).ResolveFinishingMaterials(context.Background(), "kitchen-cabinets-3")
		assert.ErrorIs(t, err, ErrPricingUnavailable)
	})

	t.Run("unreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		_, err := NewHTTPGateway(url, time.Second).Calculate(context.Background(), entities.PricingRequest{ServiceID: "kitchen-cabinets-1"})
		assert.True(t, errors.Is(err, ErrPricingUnavailable))
	})
}
