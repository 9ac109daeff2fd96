package request

import "time"

type CreateBooking struct {
	VendorID      int64     `json:"vendor_id" validate:"required"`
	ServiceID     int64     `json:"service_id" validate:"required"`
	EventDate     time.Time `json:"event_date" validate:"required"`
	EventLocation string    `json:"event_location"`
	TotalAmount   int64     `json:"total_amount" validate:"required,gt=0"`
	DepositAmount int64     `json:"deposit_amount" validate:"gte=0"`
}

// UpdateStatus carries either a coarse status or a business sub-status; the
// usecase folds sub-statuses onto the persisted enum through the note codec.
type UpdateStatus struct {
	Status string `json:"status" validate:"required"`
	Notes  string `json:"notes"`
}

type MarkCompleted struct {
	CompletedBy string `json:"completed_by" validate:"required,oneof=vendor couple"`
	Notes       string `json:"notes"`
}

type UnmarkCompleted struct {
	UnmarkBy string `json:"unmark_by" validate:"required,oneof=vendor couple both"`
	Reason   string `json:"reason"`
}

// PaymentReminder is the asynq task payload scheduled when a quote is
// accepted.
type PaymentReminder struct {
	BookingID string `json:"booking_id" validate:"required"`
}

// NotificationMessage is the fire-and-forget fan-out payload published on
// every status change and recorded payment.
type NotificationMessage struct {
	BookingID string `json:"booking_id" validate:"required"`
	Event     string `json:"event" validate:"required"`
	CoupleID  int64  `json:"couple_id"`
	VendorID  int64  `json:"vendor_id"`
	Message   string `json:"message" validate:"required"`
}

type PoisonedQueue struct {
	TopicTarget string      `json:"topic_target" validate:"required"`
	ErrorMsg    string      `json:"error_msg" validate:"required"`
	Payload     interface{} `json:"payload" validate:"required"`
}
