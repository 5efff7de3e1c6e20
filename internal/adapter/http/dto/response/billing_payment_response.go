package response

import (
	"time"

	"home_estimate/internal/domain/entities"

	"github.com/samber/lo"
)

type BillingPaymentResponse struct {
	PaymentID   string    `json:"payment_id"`
	ID          string    `json:"id"`
	OrderCode   string    `json:"order_code"`
	Amount      float64   `json:"amount"`
	PaymentDate time.Time `json:"payment_date"`
	Date        time.Time `json:"date"`
	Status      string    `json:"status"`

	MPPayloadRaw string                 `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

func FromBillingPayment(p entities.BillingPayment) BillingPaymentResponse {
	return BillingPaymentResponse{
		PaymentID:    p.ID,
		ID:           p.ID,
		OrderCode:    p.OrderCode,
		Amount:       p.Amount,
		PaymentDate:  p.Date,
		Date:         p.Date,
		Status:       string(p.Status),
		MPPayloadRaw: string(p.MPPayloadRaw),
		MPPayload:    p.MPPayload,
	}
}

func FromBillingPayments(ps []entities.BillingPayment) []BillingPaymentResponse {
	return lo.Map(ps, func(p entities.BillingPayment, _ int) BillingPaymentResponse { return FromBillingPayment(p) })
}
