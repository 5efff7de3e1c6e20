package pricing

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"home_estimate/internal/domain/entities"
	"home_estimate/internal/usecase/interfaces"
	"home_estimate/pkg/logger"

	"github.com/samber/lo"
)

var ErrPricingUnavailable = errors.New("pricing service unavailable")

// StatusError is a non-success answer from the pricing service.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("pricing service returned %d", e.StatusCode)
	}
	return fmt.Sprintf("pricing service returned %d: %s", e.StatusCode, e.Message)
}

func (e *StatusError) Unwrap() error { return ErrPricingUnavailable }

type finishingResponse struct {
	Sections map[string][]finishingOption `json:"sections"`
}

type finishingOption struct {
	ExternalID        string  `json:"external_id"`
	Name              string  `json:"name"`
	CostPerUnit       float64 `json:"cost_per_unit"`
	UnitOfMeasurement string  `json:"unit_of_measurement"`
	Image             string  `json:"image,omitempty"`
}

type calculateRequest struct {
	WorkCode           string   `json:"work_code"`
	ZipCode            string   `json:"zipcode"`
	UnitOfMeasurement  string   `json:"unit_of_measurement"`
	Square             float64  `json:"square"`
	FinishingMaterials []string `json:"finishing_materials"`
}

type calculateResponse struct {
	WorkCost     float64            `json:"work_cost"`
	MaterialCost float64            `json:"material_cost"`
	Materials    []materialResponse `json:"materials"`
}

type materialResponse struct {
	Name        string  `json:"name"`
	ExternalID  string  `json:"external_id"`
	CostPerUnit float64 `json:"cost_per_unit"`
	Quantity    float64 `json:"quantity"`
	Cost        float64 `json:"cost"`
}

// HTTPGateway talks to the remote pricing service. Work codes travel in the
// dotted form (kitchen.cabinets.1).
type HTTPGateway struct {
	baseURL string
	client  *http.Client
}

var _ interfaces.IPricingGateway = (*HTTPGateway)(nil)

func NewHTTPGateway(baseURL string, timeout time.Duration) *HTTPGateway {
	return &HTTPGateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

func (g *HTTPGateway) ResolveFinishingMaterials(ctx context.Context, serviceID entities.ServiceID) (map[string][]entities.FinishingMaterialOption, error) {
	const op = "pricing.ResolveFinishingMaterials"

	code := serviceID.Dotted()
	endpoint := fmt.Sprintf("%s/works/%s/finishing-materials", g.baseURL, url.PathEscape(code))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var body finishingResponse
	if err := g.do(req, &body); err != nil {
		logger.With(logger.String("op", op), logger.String("work_code", code)).
			Warn(ctx, "finishing materials fetch failed", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return lo.MapValues(body.Sections, func(options []finishingOption, _ string) []entities.FinishingMaterialOption {
		return lo.Map(options, func(o finishingOption, _ int) entities.FinishingMaterialOption {
			return entities.FinishingMaterialOption{
				ExternalID:        o.ExternalID,
				Name:              o.Name,
				CostPerUnit:       o.CostPerUnit,
				UnitOfMeasurement: o.UnitOfMeasurement,
				Image:             o.Image,
			}
		})
	}), nil
}

func (g *HTTPGateway) Calculate(ctx context.Context, in entities.PricingRequest) (entities.CalculationResult, error) {
	const op = "pricing.Calculate"

	payload := calculateRequest{
		WorkCode:           in.ServiceID.Dotted(),
		ZipCode:            in.ZipCode,
		UnitOfMeasurement:  in.UnitOfMeasurement,
		Square:             in.Quantity,
		FinishingMaterials: in.FinishingMaterials,
	}
	if payload.FinishingMaterials == nil {
		payload.FinishingMaterials = []string{}
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return entities.CalculationResult{}, fmt.Errorf("%s: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/works/calculate", bytes.NewReader(b))
	if err != nil {
		return entities.CalculationResult{}, fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")

	var body calculateResponse
	if err := g.do(req, &body); err != nil {
		logger.With(logger.String("op", op), logger.String("work_code", payload.WorkCode)).
			Warn(ctx, "calculation failed", logger.ErrorF(err))
		return entities.CalculationResult{}, fmt.Errorf("%s: %w", op, err)
	}

	return entities.CalculationResult{
		LaborCost:    body.WorkCost,
		MaterialCost: body.MaterialCost,
		MaterialLines: lo.Map(body.Materials, func(m materialResponse, _ int) entities.MaterialLine {
			return entities.MaterialLine{
				Name:       m.Name,
				ExternalID: m.ExternalID,
				UnitCost:   m.CostPerUnit,
				Quantity:   m.Quantity,
				LineCost:   m.Cost,
			}
		}),
	}, nil
}

func (g *HTTPGateway) do(req *http.Request, out any) error {
	req.Header.Set("Accept", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPricingUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("%w: read body: %v", ErrPricingUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e struct {
			Message string `json:"message"`
		}
		_ = json.Unmarshal(raw, &e)
		return &StatusError{StatusCode: resp.StatusCode, Message: e.Message}
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: decode body: %v", ErrPricingUnavailable, err)
	}
	return nil
}
