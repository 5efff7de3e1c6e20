package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the payment processing outcome.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
)

// BillingPayment is a checkout payment for a composite order.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (order_code-index): order_code
//
// MPPayloadRaw keeps the provider response body for traceability; MPPayload is
// the parsed form.
type BillingPayment struct {
	ID        string        `json:"id"`
	OrderCode string        `json:"order_code"`
	Amount    float64       `json:"amount"`
	Date      time.Time     `json:"date"`
	Status    PaymentStatus `json:"status"`

	MPPayloadRaw json.RawMessage        `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}
