package entity

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusRequest     Status = "request"
	StatusApproved    Status = "approved"
	StatusDeclined    Status = "declined"
	StatusCancelled   Status = "cancelled"
	StatusDownpayment Status = "downpayment"
	StatusFullyPaid   Status = "fully_paid"
	StatusCompleted   Status = "completed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusRequest, StatusApproved, StatusDeclined, StatusCancelled,
		StatusDownpayment, StatusFullyPaid, StatusCompleted:
		return true
	}
	return false
}

// Terminal statuses accept no further transitions, cancellation included.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusDeclined || s == StatusCancelled
}

// Paid reports whether money has moved on the booking. The completion gate
// only opens for bookings in this family.
func (s Status) Paid() bool {
	return s == StatusDownpayment || s == StatusFullyPaid || s == StatusCompleted
}

type Actor string

const (
	ActorCouple Actor = "couple"
	ActorVendor Actor = "vendor"
	ActorAdmin  Actor = "admin"
	// ActorSystem is the reconciliation handler; it is never taken from a token.
	ActorSystem Actor = "system"
)

type CompletionSide string

const (
	SideVendor CompletionSide = "vendor"
	SideCouple CompletionSide = "couple"
	SideBoth   CompletionSide = "both"
)

type Booking struct {
	ID                uuid.UUID    `db:"id"`
	CoupleID          int64        `db:"couple_id"`
	VendorID          int64        `db:"vendor_id"`
	ServiceID         int64        `db:"service_id"`
	EventDate         time.Time    `db:"event_date"`
	EventLocation     string       `db:"event_location"`
	TotalAmount       int64        `db:"total_amount"`
	DepositAmount     int64        `db:"deposit_amount"`
	Status            Status       `db:"status"`
	StatusNote        string       `db:"status_note"`
	VendorCompleted   bool         `db:"vendor_completed"`
	VendorCompletedAt sql.NullTime `db:"vendor_completed_at"`
	CoupleCompleted   bool         `db:"couple_completed"`
	CoupleCompletedAt sql.NullTime `db:"couple_completed_at"`
	FullyCompleted    bool         `db:"fully_completed"`
	FullyCompletedAt  sql.NullTime `db:"fully_completed_at"`
	CreatedAt         time.Time    `db:"created_at"`
	UpdatedAt         sql.NullTime `db:"updated_at"`
}

type BookingNote struct {
	ID        int64     `db:"id"`
	BookingID uuid.UUID `db:"booking_id"`
	Status    Status    `db:"status"`
	Note      string    `db:"note"`
	ActorRole Actor     `db:"actor_role"`
	ActorID   int64     `db:"actor_id"`
	CreatedAt time.Time `db:"created_at"`
}
