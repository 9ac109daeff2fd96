package request

import "wedding-marketplace/internal/module/payment/models/entity"

type ProcessPayment struct {
	BookingID        string `json:"booking_id" validate:"required"`
	PaymentType      string `json:"payment_type" validate:"omitempty,oneof=deposit balance full_payment"`
	PaymentMethod    string `json:"payment_method" validate:"required"`
	Amount           int64  `json:"amount" validate:"required,gt=0"`
	PaymentReference string `json:"payment_reference" validate:"required"`
}

// GatewayWebhook mirrors the gateway's event envelope: the outer resource is
// the event, the inner one the source or payment it refers to.
type GatewayWebhook struct {
	Data struct {
		ID         string `json:"id"`
		Attributes struct {
			Type string `json:"type"`
			Data struct {
				ID         string `json:"id"`
				Attributes struct {
					Amount        int64             `json:"amount"`
					Status        string            `json:"status"`
					Type          string            `json:"type"`
					FailedMessage string            `json:"failed_message"`
					Metadata      map[string]string `json:"metadata"`
				} `json:"attributes"`
			} `json:"data"`
		} `json:"attributes"`
	} `json:"data"`
}

// ToEvent flattens the webhook envelope into the normalized gateway event.
func (w *GatewayWebhook) ToEvent() entity.GatewayEvent {
	inner := w.Data.Attributes.Data
	return entity.GatewayEvent{
		ExternalID:    inner.ID,
		Type:          w.Data.Attributes.Type,
		Amount:        inner.Attributes.Amount,
		BookingID:     inner.Attributes.Metadata["booking_id"],
		PaymentType:   inner.Attributes.Metadata["payment_type"],
		SourceID:      inner.ID,
		Method:        inner.Attributes.Type,
		FailureReason: inner.Attributes.FailedMessage,
	}
}
