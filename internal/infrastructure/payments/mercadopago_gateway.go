package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"home_estimate/internal/usecase/interfaces"
	"home_estimate/pkg/logger"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var (
	ErrMissingMercadoPagoAccessToken   = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
	ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
)

// MercadoPagoGateway charges orders through the Mercado Pago payments API.
type MercadoPagoGateway struct {
	client payment.Client
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	ctx := context.Background()
	log := logger.With(logger.String("component", "payments.mercadopago"))

	accessToken = strings.TrimSpace(accessToken)
	if accessToken == "" {
		log.Warn(ctx, "missing access token")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Error(ctx, "failed creating sdk config", logger.ErrorF(err))
		return nil, err
	}
	log.Info(ctx, "mercado pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error) {
	log := logger.With(logger.String("component", "payments.mercadopago"))

	if g == nil || g.client == nil {
		log.Error(ctx, "gateway not configured")
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}
	log.Debug(ctx, "create start", logger.Int("payload_len", len(requestPayload)))

	var req payment.Request
	if err := json.Unmarshal(requestPayload, &req); err != nil {
		log.Warn(ctx, "payload unmarshal failed", logger.ErrorF(err))
		return "", "", nil, err
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Error(ctx, "sdk create failed", logger.ErrorF(err))
		return "", "", nil, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		log.Error(ctx, "response marshal failed", logger.ErrorF(err))
		return "", "", nil, err
	}

	id := fmt.Sprintf("%d", resp.ID)
	log.Info(ctx, "create success",
		logger.String("provider_payment_id", id),
		logger.String("provider_status", resp.Status),
	)
	return id, resp.Status, b, nil
}
