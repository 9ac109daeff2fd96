package response

import "time"

type Receipt struct {
	ID            int64     `json:"id"`
	ReceiptNumber string    `json:"receipt_number"`
	BookingID     string    `json:"booking_id"`
	CoupleID      int64     `json:"couple_id"`
	VendorID      int64     `json:"vendor_id"`
	PaymentType   string    `json:"payment_type"`
	AmountPaid    int64     `json:"amount_paid"`
	TotalAmount   int64     `json:"total_amount"`
	PaymentMethod string    `json:"payment_method"`
	GatewayRef    string    `json:"gateway_ref"`
	CreatedAt     time.Time `json:"created_at"`
}

type PaymentResult struct {
	Receipt       Receipt `json:"receipt"`
	BookingStatus string  `json:"booking_status"`
	TotalPaid     int64   `json:"total_paid"`
}
