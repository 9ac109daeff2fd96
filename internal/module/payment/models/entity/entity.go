package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type PaymentType string

const (
	TypeDeposit     PaymentType = "deposit"
	TypeBalance     PaymentType = "balance"
	TypeFullPayment PaymentType = "full_payment"
)

func (t PaymentType) Valid() bool {
	switch t {
	case TypeDeposit, TypeBalance, TypeFullPayment:
		return true
	}
	return false
}

// Receipt is one confirmed payment. Rows are append-only; nothing updates or
// deletes a receipt once written.
type Receipt struct {
	ID            int64       `db:"id"`
	BookingID     uuid.UUID   `db:"booking_id"`
	CoupleID      int64       `db:"couple_id"`
	VendorID      int64       `db:"vendor_id"`
	PaymentType   PaymentType `db:"payment_type"`
	AmountPaid    int64       `db:"amount_paid"`
	TotalAmount   int64       `db:"total_amount"`
	PaymentMethod string      `db:"payment_method"`
	GatewayRef    string      `db:"gateway_ref"`
	CreatedAt     time.Time   `db:"created_at"`
}

// Number renders the monotonic receipt number shown to users.
func (r Receipt) Number() string {
	return fmt.Sprintf("WB-%08d", r.ID)
}

// BookingSnapshot is the slice of a booking the ledger needs: identities,
// amounts and the coarse status at the time of the payment.
type BookingSnapshot struct {
	ID            uuid.UUID `db:"id"`
	CoupleID      int64     `db:"couple_id"`
	VendorID      int64     `db:"vendor_id"`
	TotalAmount   int64     `db:"total_amount"`
	DepositAmount int64     `db:"deposit_amount"`
	Status        string    `db:"status"`
}

const (
	EventSourceChargeable = "source.chargeable"
	EventPaymentPaid      = "payment.paid"
	EventPaymentFailed    = "payment.failed"
)

// GatewayEvent is the normalized form of a gateway callback. Delivery is
// at-least-once; ExternalID is the idempotency key that makes consumption
// at-most-once.
type GatewayEvent struct {
	ExternalID    string
	Type          string
	Amount        int64
	BookingID     string
	PaymentType   string
	SourceID      string
	Method        string
	FailureReason string
}

// Classify infers the payment type from amount thresholds. An explicit type
// from the caller or event metadata takes precedence over this heuristic.
func Classify(totalPaid, amount, totalAmount int64) PaymentType {
	switch {
	case totalPaid == 0 && amount >= totalAmount:
		return TypeFullPayment
	case totalPaid == 0:
		return TypeDeposit
	default:
		return TypeBalance
	}
}
