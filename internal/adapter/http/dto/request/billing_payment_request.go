package request

import "encoding/json"

// BillingPaymentCreateRequest is the payload for the order checkout route.
//
// `mp_payload` is forwarded to Mercado Pago as-is to support varying schemas.
// The charged amount always comes from the stored order.
type BillingPaymentCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}
