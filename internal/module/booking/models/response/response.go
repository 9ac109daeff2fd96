package response

import "time"

type BookingDetail struct {
	ID              string     `json:"id"`
	CoupleID        int64      `json:"couple_id"`
	VendorID        int64      `json:"vendor_id"`
	ServiceID       int64      `json:"service_id"`
	EventDate       time.Time  `json:"event_date"`
	EventLocation   string     `json:"event_location"`
	TotalAmount     int64      `json:"total_amount"`
	DepositAmount   int64      `json:"deposit_amount"`
	Status          string     `json:"status"`
	ExtendedStatus  string     `json:"extended_status,omitempty"`
	Note            string     `json:"note,omitempty"`
	VendorCompleted bool       `json:"vendor_completed"`
	CoupleCompleted bool       `json:"couple_completed"`
	FullyCompleted  bool       `json:"fully_completed"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
}

type CompletionStatus struct {
	BookingID         string     `json:"booking_id"`
	Status            string     `json:"status"`
	VendorCompleted   bool       `json:"vendor_completed"`
	VendorCompletedAt *time.Time `json:"vendor_completed_at,omitempty"`
	CoupleCompleted   bool       `json:"couple_completed"`
	CoupleCompletedAt *time.Time `json:"couple_completed_at,omitempty"`
	FullyCompleted    bool       `json:"fully_completed"`
	FullyCompletedAt  *time.Time `json:"fully_completed_at,omitempty"`
	WaitingFor        string     `json:"waiting_for"`
}
