package usecases

import (
	"context"
	"fmt"
	"time"

	"wedding-marketplace/internal/module/booking/models/entity"
	"wedding-marketplace/internal/module/booking/models/request"
	"wedding-marketplace/internal/module/booking/models/response"
	"wedding-marketplace/internal/module/booking/repositories"
	"wedding-marketplace/internal/pkg/errors"
	"wedding-marketplace/internal/pkg/lock"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

const (
	NotificationTopic = "booking_notification"

	// reminderDelay is how long after a quote is accepted the couple is
	// nudged if no payment has arrived.
	reminderDelay = 24 * time.Hour
)

type usecase struct {
	repo    repositories.Repositories
	log     *otelzap.Logger
	publish message.Publisher
	locker  lock.Locker
}

type Usecase interface {
	CreateBooking(ctx context.Context, payload *request.CreateBooking, coupleID int64) (response.BookingDetail, error)
	GetBooking(ctx context.Context, bookingID string) (response.BookingDetail, error)
	ListBookingsByCouple(ctx context.Context, coupleID int64) ([]response.BookingDetail, error)
	ListBookingsByVendor(ctx context.Context, vendorID int64) ([]response.BookingDetail, error)
	UpdateStatus(ctx context.Context, bookingID string, payload *request.UpdateStatus, actor entity.Actor, actorID int64) (response.BookingDetail, error)
	RecordPaymentFailure(ctx context.Context, bookingID string, reason string) error
	MarkCompleted(ctx context.Context, bookingID string, side entity.CompletionSide) (response.CompletionStatus, error)
	UnmarkCompleted(ctx context.Context, bookingID string, side entity.CompletionSide, reason string) (response.CompletionStatus, error)
	CompletionStatus(ctx context.Context, bookingID string) (response.CompletionStatus, error)
	SendPaymentReminder(ctx context.Context, payload *request.PaymentReminder) error
	CancelPaymentReminder(ctx context.Context, bookingID string) error
}

func New(repo repositories.Repositories, log *otelzap.Logger, publish message.Publisher, locker lock.Locker) Usecase {
	return &usecase{
		repo:    repo,
		log:     log,
		publish: publish,
		locker:  locker,
	}
}

func (u *usecase) CreateBooking(ctx context.Context, payload *request.CreateBooking, coupleID int64) (response.BookingDetail, error) {
	if payload.VendorID == 0 {
		return response.BookingDetail{}, errors.BadRequest("vendor is required")
	}
	if payload.EventDate.IsZero() {
		return response.BookingDetail{}, errors.BadRequest("event date is required")
	}
	if payload.TotalAmount <= 0 {
		return response.BookingDetail{}, errors.BadRequest("total amount is required")
	}
	if payload.DepositAmount < 0 || payload.DepositAmount > payload.TotalAmount {
		return response.BookingDetail{}, errors.BadRequest("deposit amount must be between 0 and total amount")
	}

	booking := entity.Booking{
		ID:            uuid.New(),
		CoupleID:      coupleID,
		VendorID:      payload.VendorID,
		ServiceID:     payload.ServiceID,
		EventDate:     payload.EventDate,
		EventLocation: payload.EventLocation,
		TotalAmount:   payload.TotalAmount,
		DepositAmount: payload.DepositAmount,
		Status:        entity.StatusRequest,
		CreatedAt:     time.Now(),
	}

	if err := u.repo.CreateBooking(ctx, &booking); err != nil {
		return response.BookingDetail{}, err
	}

	u.publishNotification(ctx, &booking, "booking_requested", "a new booking request was submitted")

	return toBookingDetail(booking), nil
}

func (u *usecase) GetBooking(ctx context.Context, bookingID string) (response.BookingDetail, error) {
	booking, err := u.repo.FindBookingByID(ctx, bookingID)
	if err != nil {
		return response.BookingDetail{}, err
	}
	return toBookingDetail(booking), nil
}

func (u *usecase) ListBookingsByCouple(ctx context.Context, coupleID int64) ([]response.BookingDetail, error) {
	bookings, err := u.repo.FindBookingsByCoupleID(ctx, coupleID)
	if err != nil {
		return nil, err
	}
	return toBookingDetails(bookings), nil
}

func (u *usecase) ListBookingsByVendor(ctx context.Context, vendorID int64) ([]response.BookingDetail, error) {
	bookings, err := u.repo.FindBookingsByVendorID(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	return toBookingDetails(bookings), nil
}

// UpdateStatus validates the requested transition against the transition
// table and persists the coarse status plus its tagged note. The request may
// name a coarse status or a business sub-status; sub-statuses are folded onto
// the persisted enum through the note codec.
func (u *usecase) UpdateStatus(ctx context.Context, bookingID string, payload *request.UpdateStatus, actor entity.Actor, actorID int64) (response.BookingDetail, error) {
	booking, err := u.repo.FindBookingByID(ctx, bookingID)
	if err != nil {
		return response.BookingDetail{}, err
	}

	if err := authorizeActor(&booking, actor, actorID); err != nil {
		return response.BookingDetail{}, err
	}

	var (
		target entity.Status
		note   string
		sub    entity.SubStatus
	)
	if coarse, encoded, encErr := entity.EncodeSubStatus(entity.SubStatus(payload.Status), payload.Notes); encErr == nil {
		target, note, sub = coarse, encoded, entity.SubStatus(payload.Status)
	} else if s := entity.Status(payload.Status); s.Valid() {
		target, note = s, payload.Notes
	} else {
		return response.BookingDetail{}, errors.BadRequest(fmt.Sprintf("unknown status %q", payload.Status))
	}

	if !entity.CanTransition(booking.Status, actor, target) {
		return response.BookingDetail{}, errors.Conflict(
			fmt.Sprintf("transition from %s to %s is not allowed for %s", booking.Status, target, actor))
	}

	if err := u.repo.UpdateBookingStatus(ctx, bookingID, target, note, actor, actorID); err != nil {
		return response.BookingDetail{}, err
	}

	booking.Status = target
	booking.StatusNote = note

	if sub == entity.SubQuoteAccepted {
		u.schedulePaymentReminder(ctx, bookingID)
	}

	u.publishNotification(ctx, &booking, "status_changed",
		fmt.Sprintf("booking moved to %s", payload.Status))

	return toBookingDetail(booking), nil
}

// RecordPaymentFailure appends a payment_failed note against the current
// status. Neither the status nor the ledger is touched.
func (u *usecase) RecordPaymentFailure(ctx context.Context, bookingID string, reason string) error {
	booking, err := u.repo.FindBookingByID(ctx, bookingID)
	if err != nil {
		return err
	}

	_, note, err := entity.EncodeSubStatus(entity.SubPaymentFailed, reason)
	if err != nil {
		return errors.InternalServerError("error encode payment failure note")
	}

	if err := u.repo.AppendBookingNote(ctx, bookingID, note, entity.ActorSystem, 0); err != nil {
		return err
	}

	u.publishNotification(ctx, &booking, "payment_failed", "a payment attempt failed")
	return nil
}

func (u *usecase) MarkCompleted(ctx context.Context, bookingID string, side entity.CompletionSide) (response.CompletionStatus, error) {
	if side != entity.SideVendor && side != entity.SideCouple {
		return response.CompletionStatus{}, errors.BadRequest("completed_by must be vendor or couple")
	}

	unlock, err := u.locker.Lock(ctx, "booking:completion:"+bookingID)
	if err != nil {
		return response.CompletionStatus{}, errors.InternalServerError("error acquire completion lock")
	}
	defer unlock()

	booking, promoted, err := u.repo.MarkCompleted(ctx, bookingID, side, "both parties confirmed completion")
	if err != nil {
		return response.CompletionStatus{}, err
	}

	if promoted {
		u.publishNotification(ctx, &booking, "booking_completed", "booking confirmed complete by both parties")
	}

	return toCompletionStatus(booking), nil
}

func (u *usecase) UnmarkCompleted(ctx context.Context, bookingID string, side entity.CompletionSide, reason string) (response.CompletionStatus, error) {
	unlock, err := u.locker.Lock(ctx, "booking:completion:"+bookingID)
	if err != nil {
		return response.CompletionStatus{}, errors.InternalServerError("error acquire completion lock")
	}
	defer unlock()

	booking, err := u.repo.UnmarkCompleted(ctx, bookingID, side, reason)
	if err != nil {
		return response.CompletionStatus{}, err
	}

	return toCompletionStatus(booking), nil
}

func (u *usecase) CompletionStatus(ctx context.Context, bookingID string) (response.CompletionStatus, error) {
	booking, err := u.repo.FindBookingByID(ctx, bookingID)
	if err != nil {
		return response.CompletionStatus{}, err
	}
	return toCompletionStatus(booking), nil
}

// SendPaymentReminder is invoked by the task scheduler. The reminder only
// fires when the booking is still unpaid.
func (u *usecase) SendPaymentReminder(ctx context.Context, payload *request.PaymentReminder) error {
	booking, err := u.repo.FindBookingByID(ctx, payload.BookingID)
	if err != nil {
		return err
	}

	totalPaid, err := u.repo.CalculateTotalPaid(ctx, payload.BookingID)
	if err != nil {
		return err
	}

	if totalPaid == 0 && booking.Status == entity.StatusApproved {
		u.publishNotification(ctx, &booking, "payment_reminder", "your booking is awaiting payment")
	}

	return u.repo.ClearReminderTask(ctx, payload.BookingID)
}

// CancelPaymentReminder drops a pending reminder once money has arrived.
func (u *usecase) CancelPaymentReminder(ctx context.Context, bookingID string) error {
	taskID, err := u.repo.GetReminderTask(ctx, bookingID)
	if err != nil {
		return err
	}
	if taskID == "" {
		return nil
	}

	if err := u.repo.DeleteTaskScheduler(ctx, taskID); err != nil {
		return err
	}
	return u.repo.ClearReminderTask(ctx, bookingID)
}

func (u *usecase) schedulePaymentReminder(ctx context.Context, bookingID string) {
	payload, err := json.Marshal(request.PaymentReminder{BookingID: bookingID})
	if err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error marshal reminder payload: %v", err))
		return
	}

	taskID, err := u.repo.SetTaskScheduler(ctx, reminderDelay, payload)
	if err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error schedule payment reminder: %v", err))
		return
	}

	if err := u.repo.SetReminderTask(ctx, bookingID, taskID); err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error store reminder task id: %v", err))
	}
}

// publishNotification informs the notification collaborator fire-and-forget.
// Publish failures are logged and never block the core flow.
func (u *usecase) publishNotification(ctx context.Context, booking *entity.Booking, event string, text string) {
	payload, err := json.Marshal(request.NotificationMessage{
		BookingID: booking.ID.String(),
		Event:     event,
		CoupleID:  booking.CoupleID,
		VendorID:  booking.VendorID,
		Message:   text,
	})
	if err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error marshal notification: %v", err))
		return
	}

	if err := u.publish.Publish(NotificationTopic, message.NewMessage(watermill.NewUUID(), payload)); err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error publish notification: %v", err))
	}
}

// authorizeActor keeps a couple or vendor inside their own bookings. Admin
// and the reconciliation handler are unrestricted.
func authorizeActor(booking *entity.Booking, actor entity.Actor, actorID int64) error {
	switch actor {
	case entity.ActorCouple:
		if booking.CoupleID != actorID {
			return errors.ForbiddenError("booking belongs to another couple")
		}
	case entity.ActorVendor:
		if booking.VendorID != actorID {
			return errors.ForbiddenError("booking belongs to another vendor")
		}
	}
	return nil
}

func toBookingDetail(booking entity.Booking) response.BookingDetail {
	detail := response.BookingDetail{
		ID:              booking.ID.String(),
		CoupleID:        booking.CoupleID,
		VendorID:        booking.VendorID,
		ServiceID:       booking.ServiceID,
		EventDate:       booking.EventDate,
		EventLocation:   booking.EventLocation,
		TotalAmount:     booking.TotalAmount,
		DepositAmount:   booking.DepositAmount,
		Status:          string(booking.Status),
		Note:            entity.NoteText(booking.StatusNote),
		VendorCompleted: booking.VendorCompleted,
		CoupleCompleted: booking.CoupleCompleted,
		FullyCompleted:  booking.FullyCompleted,
		CreatedAt:       booking.CreatedAt,
	}
	if sub, ok := entity.DecodeSubStatus(booking.Status, booking.StatusNote); ok {
		detail.ExtendedStatus = string(sub)
	}
	if booking.UpdatedAt.Valid {
		t := booking.UpdatedAt.Time
		detail.UpdatedAt = &t
	}
	return detail
}

func toBookingDetails(bookings []entity.Booking) []response.BookingDetail {
	details := make([]response.BookingDetail, 0, len(bookings))
	for _, booking := range bookings {
		details = append(details, toBookingDetail(booking))
	}
	return details
}

func toCompletionStatus(booking entity.Booking) response.CompletionStatus {
	status := response.CompletionStatus{
		BookingID:       booking.ID.String(),
		Status:          string(booking.Status),
		VendorCompleted: booking.VendorCompleted,
		CoupleCompleted: booking.CoupleCompleted,
		FullyCompleted:  booking.FullyCompleted,
	}
	if booking.VendorCompletedAt.Valid {
		t := booking.VendorCompletedAt.Time
		status.VendorCompletedAt = &t
	}
	if booking.CoupleCompletedAt.Valid {
		t := booking.CoupleCompletedAt.Time
		status.CoupleCompletedAt = &t
	}
	if booking.FullyCompletedAt.Valid {
		t := booking.FullyCompletedAt.Time
		status.FullyCompletedAt = &t
	}

	switch {
	case booking.FullyCompleted:
		status.WaitingFor = "none"
	case booking.VendorCompleted && !booking.CoupleCompleted:
		status.WaitingFor = "couple"
	case booking.CoupleCompleted && !booking.VendorCompleted:
		status.WaitingFor = "vendor"
	default:
		status.WaitingFor = "both"
	}
	return status
}
