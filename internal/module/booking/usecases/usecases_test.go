package usecases_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"wedding-marketplace/internal/module/booking/mocks"
	"wedding-marketplace/internal/module/booking/models/entity"
	"wedding-marketplace/internal/module/booking/models/request"
	"wedding-marketplace/internal/module/booking/usecases"
	"wedding-marketplace/internal/pkg/errors"
	log_internal "wedding-marketplace/internal/pkg/log"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var (
	uc       usecases.Usecase
	repoMock *mocks.Repositories
)

type mockPublisher struct{}

// Close implements message.Publisher.
func (m *mockPublisher) Close() error {
	return nil
}

// Publish implements message.Publisher.
func (m *mockPublisher) Publish(topic string, messages ...*message.Message) error {
	return nil
}

type mockLocker struct {
	mu sync.Mutex
}

func (l *mockLocker) Lock(ctx context.Context, key string) (func() error, error) {
	l.mu.Lock()
	return func() error {
		l.mu.Unlock()
		return nil
	}, nil
}

func setup() {
	repoMock = new(mocks.Repositories)
	uc = usecases.New(repoMock, log_internal.Setup(), &mockPublisher{}, &mockLocker{})
}

func teardown() {
	repoMock = nil
	uc = nil
}

func TestCreateBooking(t *testing.T) {
	setup()
	defer teardown()
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		payloadMock := request.CreateBooking{
			VendorID:      2,
			ServiceID:     3,
			EventDate:     time.Date(2026, 6, 20, 0, 0, 0, 0, time.UTC),
			EventLocation: "Tagaytay",
			TotalAmount:   10000,
			DepositAmount: 3000,
		}

		repoMock.On("CreateBooking", ctx, mock.AnythingOfType("*entity.Booking")).Return(nil)

		resp, err := uc.CreateBooking(ctx, &payloadMock, 1)

		assert.NoError(t, err)
		assert.Equal(t, string(entity.StatusRequest), resp.Status)
		assert.Equal(t, int64(1), resp.CoupleID)
		assert.Equal(t, int64(10000), resp.TotalAmount)
	})

	t.Run("deposit above total", func(t *testing.T) {
		payloadMock := request.CreateBooking{
			VendorID:      2,
			ServiceID:     3,
			EventDate:     time.Date(2026, 6, 20, 0, 0, 0, 0, time.UTC),
			TotalAmount:   10000,
			DepositAmount: 20000,
		}

		_, err := uc.CreateBooking(ctx, &payloadMock, 1)

		assert.Error(t, err)
		assert.Equal(t, fiber.StatusBadRequest, errors.GetCode(err))
	})
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()
	bookingID := uuid.New()

	t.Run("vendor approves request", func(t *testing.T) {
		setup()
		defer teardown()

		bookingMock := entity.Booking{
			ID:       bookingID,
			CoupleID: 1,
			VendorID: 2,
			Status:   entity.StatusRequest,
		}

		repoMock.On("FindBookingByID", ctx, bookingID.String()).Return(bookingMock, nil)
		repoMock.On("UpdateBookingStatus", ctx, bookingID.String(), entity.StatusApproved, "looks good", entity.ActorVendor, int64(2)).Return(nil)

		resp, err := uc.UpdateStatus(ctx, bookingID.String(), &request.UpdateStatus{
			Status: "approved",
			Notes:  "looks good",
		}, entity.ActorVendor, 2)

		assert.NoError(t, err)
		assert.Equal(t, string(entity.StatusApproved), resp.Status)
	})

	t.Run("quote accepted schedules a payment reminder", func(t *testing.T) {
		setup()
		defer teardown()

		bookingMock := entity.Booking{
			ID:       bookingID,
			CoupleID: 1,
			VendorID: 2,
			Status:   entity.StatusApproved,
		}

		reminderPayload, _ := json.Marshal(request.PaymentReminder{BookingID: bookingID.String()})

		repoMock.On("FindBookingByID", ctx, bookingID.String()).Return(bookingMock, nil)
		repoMock.On("UpdateBookingStatus", ctx, bookingID.String(), entity.StatusApproved, "[status:quote_accepted]", entity.ActorCouple, int64(1)).Return(nil)
		repoMock.On("SetTaskScheduler", ctx, 24*time.Hour, reminderPayload).Return("task-1", nil)
		repoMock.On("SetReminderTask", ctx, bookingID.String(), "task-1").Return(nil)

		resp, err := uc.UpdateStatus(ctx, bookingID.String(), &request.UpdateStatus{
			Status: "quote_accepted",
		}, entity.ActorCouple, 1)

		assert.NoError(t, err)
		assert.Equal(t, string(entity.StatusApproved), resp.Status)
		assert.Equal(t, "quote_accepted", resp.ExtendedStatus)
		repoMock.AssertCalled(t, "SetTaskScheduler", ctx, 24*time.Hour, reminderPayload)
	})

	t.Run("couple cannot approve own request", func(t *testing.T) {
		setup()
		defer teardown()

		bookingMock := entity.Booking{
			ID:       bookingID,
			CoupleID: 1,
			VendorID: 2,
			Status:   entity.StatusRequest,
		}

		repoMock.On("FindBookingByID", ctx, bookingID.String()).Return(bookingMock, nil)

		_, err := uc.UpdateStatus(ctx, bookingID.String(), &request.UpdateStatus{
			Status: "approved",
		}, entity.ActorCouple, 1)

		assert.Error(t, err)
		assert.Equal(t, fiber.StatusConflict, errors.GetCode(err))
	})

	t.Run("actor outside the booking is rejected", func(t *testing.T) {
		setup()
		defer teardown()

		bookingMock := entity.Booking{
			ID:       bookingID,
			CoupleID: 1,
			VendorID: 2,
			Status:   entity.StatusRequest,
		}

		repoMock.On("FindBookingByID", ctx, bookingID.String()).Return(bookingMock, nil)

		_, err := uc.UpdateStatus(ctx, bookingID.String(), &request.UpdateStatus{
			Status: "cancelled",
		}, entity.ActorCouple, 99)

		assert.Error(t, err)
		assert.Equal(t, fiber.StatusForbidden, errors.GetCode(err))
	})

	t.Run("completed only through the completion gate", func(t *testing.T) {
		setup()
		defer teardown()

		bookingMock := entity.Booking{
			ID:       bookingID,
			CoupleID: 1,
			VendorID: 2,
			Status:   entity.StatusFullyPaid,
		}

		repoMock.On("FindBookingByID", ctx, bookingID.String()).Return(bookingMock, nil)

		for _, actor := range []entity.Actor{entity.ActorAdmin, entity.ActorSystem} {
			_, err := uc.UpdateStatus(ctx, bookingID.String(), &request.UpdateStatus{
				Status: "completed",
			}, actor, 0)

			assert.Error(t, err)
			assert.Equal(t, fiber.StatusConflict, errors.GetCode(err))
		}

		// a bare status write would leave the completion flags behind
		repoMock.AssertNotCalled(t, "UpdateBookingStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		setup()
		defer teardown()

		bookingMock := entity.Booking{
			ID:       bookingID,
			CoupleID: 1,
			VendorID: 2,
			Status:   entity.StatusRequest,
		}

		repoMock.On("FindBookingByID", ctx, bookingID.String()).Return(bookingMock, nil)

		_, err := uc.UpdateStatus(ctx, bookingID.String(), &request.UpdateStatus{
			Status: "on_hold",
		}, entity.ActorVendor, 2)

		assert.Error(t, err)
		assert.Equal(t, fiber.StatusBadRequest, errors.GetCode(err))
	})
}

func TestRecordPaymentFailure(t *testing.T) {
	setup()
	defer teardown()
	ctx := context.Background()
	bookingID := uuid.New()

	bookingMock := entity.Booking{
		ID:       bookingID,
		CoupleID: 1,
		VendorID: 2,
		Status:   entity.StatusApproved,
	}

	repoMock.On("FindBookingByID", ctx, bookingID.String()).Return(bookingMock, nil)
	repoMock.On("AppendBookingNote", ctx, bookingID.String(), "[status:payment_failed] card declined", entity.ActorSystem, int64(0)).Return(nil)

	err := uc.RecordPaymentFailure(ctx, bookingID.String(), "card declined")

	assert.NoError(t, err)
	// the status itself must stay untouched
	repoMock.AssertNotCalled(t, "UpdateBookingStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestMarkCompleted(t *testing.T) {
	ctx := context.Background()
	bookingID := uuid.New()

	t.Run("second confirmation promotes", func(t *testing.T) {
		setup()
		defer teardown()

		promoted := entity.Booking{
			ID:              bookingID,
			CoupleID:        1,
			VendorID:        2,
			Status:          entity.StatusCompleted,
			VendorCompleted: true,
			CoupleCompleted: true,
			FullyCompleted:  true,
		}

		repoMock.On("MarkCompleted", ctx, bookingID.String(), entity.SideCouple, "both parties confirmed completion").Return(promoted, true, nil)

		resp, err := uc.MarkCompleted(ctx, bookingID.String(), entity.SideCouple)

		assert.NoError(t, err)
		assert.True(t, resp.FullyCompleted)
		assert.Equal(t, "none", resp.WaitingFor)
	})

	t.Run("first confirmation waits for the other side", func(t *testing.T) {
		setup()
		defer teardown()

		oneSided := entity.Booking{
			ID:              bookingID,
			CoupleID:        1,
			VendorID:        2,
			Status:          entity.StatusFullyPaid,
			VendorCompleted: true,
		}

		repoMock.On("MarkCompleted", ctx, bookingID.String(), entity.SideVendor, "both parties confirmed completion").Return(oneSided, false, nil)

		resp, err := uc.MarkCompleted(ctx, bookingID.String(), entity.SideVendor)

		assert.NoError(t, err)
		assert.False(t, resp.FullyCompleted)
		assert.Equal(t, "couple", resp.WaitingFor)
	})

	t.Run("invalid side", func(t *testing.T) {
		setup()
		defer teardown()

		_, err := uc.MarkCompleted(ctx, bookingID.String(), entity.SideBoth)

		assert.Error(t, err)
		assert.Equal(t, fiber.StatusBadRequest, errors.GetCode(err))
	})
}

func TestUnmarkCompleted(t *testing.T) {
	setup()
	defer teardown()
	ctx := context.Background()
	bookingID := uuid.New()

	reverted := entity.Booking{
		ID:       bookingID,
		CoupleID: 1,
		VendorID: 2,
		Status:   entity.StatusFullyPaid,
	}

	repoMock.On("UnmarkCompleted", ctx, bookingID.String(), entity.SideBoth, "support reversal").Return(reverted, nil)

	resp, err := uc.UnmarkCompleted(ctx, bookingID.String(), entity.SideBoth, "support reversal")

	assert.NoError(t, err)
	assert.False(t, resp.FullyCompleted)
	assert.Equal(t, string(entity.StatusFullyPaid), resp.Status)
}

func TestSendPaymentReminder(t *testing.T) {
	ctx := context.Background()
	bookingID := uuid.New()

	t.Run("unpaid booking gets the reminder", func(t *testing.T) {
		setup()
		defer teardown()

		bookingMock := entity.Booking{
			ID:       bookingID,
			CoupleID: 1,
			VendorID: 2,
			Status:   entity.StatusApproved,
		}

		repoMock.On("FindBookingByID", ctx, bookingID.String()).Return(bookingMock, nil)
		repoMock.On("CalculateTotalPaid", ctx, bookingID.String()).Return(int64(0), nil)
		repoMock.On("ClearReminderTask", ctx, bookingID.String()).Return(nil)

		err := uc.SendPaymentReminder(ctx, &request.PaymentReminder{BookingID: bookingID.String()})

		assert.NoError(t, err)
	})

	t.Run("paid booking is left alone", func(t *testing.T) {
		setup()
		defer teardown()

		bookingMock := entity.Booking{
			ID:       bookingID,
			CoupleID: 1,
			VendorID: 2,
			Status:   entity.StatusDownpayment,
		}

		repoMock.On("FindBookingByID", ctx, bookingID.String()).Return(bookingMock, nil)
		repoMock.On("CalculateTotalPaid", ctx, bookingID.String()).Return(int64(3000), nil)
		repoMock.On("ClearReminderTask", ctx, bookingID.String()).Return(nil)

		err := uc.SendPaymentReminder(ctx, &request.PaymentReminder{BookingID: bookingID.String()})

		assert.NoError(t, err)
	})
}

func TestCancelPaymentReminder(t *testing.T) {
	ctx := context.Background()
	bookingID := uuid.New()

	t.Run("pending reminder is dropped", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("GetReminderTask", ctx, bookingID.String()).Return("task-1", nil)
		repoMock.On("DeleteTaskScheduler", ctx, "task-1").Return(nil)
		repoMock.On("ClearReminderTask", ctx, bookingID.String()).Return(nil)

		err := uc.CancelPaymentReminder(ctx, bookingID.String())

		assert.NoError(t, err)
	})

	t.Run("no reminder is a no-op", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("GetReminderTask", ctx, bookingID.String()).Return("", nil)

		err := uc.CancelPaymentReminder(ctx, bookingID.String())

		assert.NoError(t, err)
		repoMock.AssertNotCalled(t, "DeleteTaskScheduler", mock.Anything, mock.Anything)
	})
}

// completionRepo is an in-memory repository for racing the completion gate.
type completionRepo struct {
	mocks.Repositories
	mu         sync.Mutex
	booking    entity.Booking
	promotions int
}

func (r *completionRepo) MarkCompleted(ctx context.Context, bookingID string, side entity.CompletionSide, note string) (entity.Booking, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch side {
	case entity.SideVendor:
		if r.booking.VendorCompleted {
			return entity.Booking{}, false, errors.Conflict("vendor already confirmed completion")
		}
		r.booking.VendorCompleted = true
	case entity.SideCouple:
		if r.booking.CoupleCompleted {
			return entity.Booking{}, false, errors.Conflict("couple already confirmed completion")
		}
		r.booking.CoupleCompleted = true
	}

	promoted := false
	if r.booking.VendorCompleted && r.booking.CoupleCompleted && r.booking.Status != entity.StatusCompleted {
		r.booking.Status = entity.StatusCompleted
		r.booking.FullyCompleted = true
		r.promotions++
		promoted = true
	}
	return r.booking, promoted, nil
}

func TestMarkCompletedConcurrent(t *testing.T) {
	ctx := context.Background()
	bookingID := uuid.New()

	repo := &completionRepo{
		booking: entity.Booking{
			ID:       bookingID,
			CoupleID: 1,
			VendorID: 2,
			Status:   entity.StatusFullyPaid,
		},
	}
	u := usecases.New(repo, log_internal.Setup(), &mockPublisher{}, &mockLocker{})

	var wg sync.WaitGroup
	for _, side := range []entity.CompletionSide{entity.SideVendor, entity.SideCouple} {
		wg.Add(1)
		go func(s entity.CompletionSide) {
			defer wg.Done()
			_, err := u.MarkCompleted(ctx, bookingID.String(), s)
			assert.NoError(t, err)
		}(side)
	}
	wg.Wait()

	assert.Equal(t, 1, repo.promotions)
	assert.Equal(t, entity.StatusCompleted, repo.booking.Status)
	assert.True(t, repo.booking.FullyCompleted)
}
