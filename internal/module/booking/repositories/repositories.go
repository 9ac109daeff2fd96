package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"wedding-marketplace/internal/module/booking/models/entity"
	"wedding-marketplace/internal/pkg/errors"
	"wedding-marketplace/internal/pkg/scheduler"

	"github.com/hibiken/asynq"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type repositories struct {
	db             *sqlx.DB
	log            *otelzap.Logger
	redisClient    *redis.Client
	asynqClient    *asynq.Client
	asynqInspector *asynq.Inspector
}

type Repositories interface {
	// db
	CreateBooking(ctx context.Context, booking *entity.Booking) error
	FindBookingByID(ctx context.Context, bookingID string) (entity.Booking, error)
	FindBookingsByCoupleID(ctx context.Context, coupleID int64) ([]entity.Booking, error)
	FindBookingsByVendorID(ctx context.Context, vendorID int64) ([]entity.Booking, error)
	UpdateBookingStatus(ctx context.Context, bookingID string, status entity.Status, note string, actor entity.Actor, actorID int64) error
	AppendBookingNote(ctx context.Context, bookingID string, note string, actor entity.Actor, actorID int64) error
	MarkCompleted(ctx context.Context, bookingID string, side entity.CompletionSide, note string) (entity.Booking, bool, error)
	UnmarkCompleted(ctx context.Context, bookingID string, side entity.CompletionSide, reason string) (entity.Booking, error)
	CalculateTotalPaid(ctx context.Context, bookingID string) (int64, error)
	// scheduler
	SetTaskScheduler(ctx context.Context, processIn time.Duration, payload []byte) (string, error)
	DeleteTaskScheduler(ctx context.Context, taskID string) error
	// redis
	SetReminderTask(ctx context.Context, bookingID string, taskID string) error
	GetReminderTask(ctx context.Context, bookingID string) (string, error)
	ClearReminderTask(ctx context.Context, bookingID string) error
}

func New(db *sqlx.DB, log *otelzap.Logger, redisClient *redis.Client, asynqClient *asynq.Client, asynqInspector *asynq.Inspector) Repositories {
	return &repositories{
		db:             db,
		log:            log,
		redisClient:    redisClient,
		asynqClient:    asynqClient,
		asynqInspector: asynqInspector,
	}
}

const bookingColumns = `id, couple_id, vendor_id, service_id, event_date, event_location,
	total_amount, deposit_amount, status, status_note,
	vendor_completed, vendor_completed_at, couple_completed, couple_completed_at,
	fully_completed, fully_completed_at, created_at, updated_at`

// CreateBooking implements Repositories.
func (r *repositories) CreateBooking(ctx context.Context, booking *entity.Booking) error {
	query := `INSERT INTO bookings (id, couple_id, vendor_id, service_id, event_date, event_location,
			total_amount, deposit_amount, status, status_note, created_at)
		VALUES (:id, :couple_id, :vendor_id, :service_id, :event_date, :event_location,
			:total_amount, :deposit_amount, :status, :status_note, :created_at)`
	_, err := r.db.NamedExecContext(ctx, query, booking)
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error insert booking: %v", err))
		return errors.InternalServerError("error insert booking")
	}
	return nil
}

// FindBookingByID implements Repositories.
func (r *repositories) FindBookingByID(ctx context.Context, bookingID string) (entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	var booking entity.Booking
	err := r.db.GetContext(ctx, &booking, query, bookingID)
	if err == sql.ErrNoRows {
		return entity.Booking{}, errors.NotFound("booking not found")
	}
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error find booking by id: %v", err))
		return entity.Booking{}, errors.InternalServerError("error find booking by id")
	}
	return booking, nil
}

// FindBookingsByCoupleID implements Repositories.
func (r *repositories) FindBookingsByCoupleID(ctx context.Context, coupleID int64) ([]entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE couple_id = $1 ORDER BY created_at DESC`
	var bookings []entity.Booking
	if err := r.db.SelectContext(ctx, &bookings, query, coupleID); err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error find bookings by couple id: %v", err))
		return nil, errors.InternalServerError("error find bookings by couple id")
	}
	return bookings, nil
}

// FindBookingsByVendorID implements Repositories.
func (r *repositories) FindBookingsByVendorID(ctx context.Context, vendorID int64) ([]entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE vendor_id = $1 ORDER BY created_at DESC`
	var bookings []entity.Booking
	if err := r.db.SelectContext(ctx, &bookings, query, vendorID); err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error find bookings by vendor id: %v", err))
		return nil, errors.InternalServerError("error find bookings by vendor id")
	}
	return bookings, nil
}

// UpdateBookingStatus writes the coarse status plus its note and appends the
// history row in one transaction. The status-plus-note write either fully
// commits or not at all.
func (r *repositories) UpdateBookingStatus(ctx context.Context, bookingID string, status entity.Status, note string, actor entity.Actor, actorID int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.InternalServerError("error starting transaction")
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE bookings SET status = $1, status_note = $2, updated_at = NOW() WHERE id = $3`,
		status, note, bookingID,
	)
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error update booking status: %v", err))
		return errors.InternalServerError("error update booking status")
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return errors.NotFound("booking not found")
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO booking_notes (booking_id, status, note, actor_role, actor_id) VALUES ($1, $2, $3, $4, $5)`,
		bookingID, status, note, actor, actorID,
	)
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error insert booking note: %v", err))
		return errors.InternalServerError("error insert booking note")
	}

	if err := tx.Commit(); err != nil {
		return errors.InternalServerError("error committing transaction")
	}
	return nil
}

// AppendBookingNote records a history note against the current status without
// touching the status itself. Used for payment failures.
func (r *repositories) AppendBookingNote(ctx context.Context, bookingID string, note string, actor entity.Actor, actorID int64) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO booking_notes (booking_id, status, note, actor_role, actor_id)
		 SELECT id, status, $2, $3, $4 FROM bookings WHERE id = $1`,
		bookingID, note, actor, actorID,
	)
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error append booking note: %v", err))
		return errors.InternalServerError("error append booking note")
	}
	return nil
}

// MarkCompleted flips one side's completion flag and, when both sides are
// acknowledged, promotes the booking to completed. The row lock makes the
// check-and-promote atomic: of two racing calls exactly one observes both
// flags set and performs the promotion.
func (r *repositories) MarkCompleted(ctx context.Context, bookingID string, side entity.CompletionSide, note string) (entity.Booking, bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return entity.Booking{}, false, errors.InternalServerError("error starting transaction")
	}
	defer tx.Rollback()

	var booking entity.Booking
	err = tx.GetContext(ctx, &booking, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1 FOR UPDATE`, bookingID)
	if err == sql.ErrNoRows {
		return entity.Booking{}, false, errors.NotFound("booking not found")
	}
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error lock booking: %v", err))
		return entity.Booking{}, false, errors.InternalServerError("error lock booking")
	}

	if !booking.Status.Paid() {
		return entity.Booking{}, false, errors.Conflict("completion requires a paid booking")
	}

	now := time.Now()
	switch side {
	case entity.SideVendor:
		if booking.VendorCompleted {
			return entity.Booking{}, false, errors.Conflict("vendor already marked completed")
		}
		if _, err := tx.ExecContext(ctx,
			`UPDATE bookings SET vendor_completed = TRUE, vendor_completed_at = $2, updated_at = NOW() WHERE id = $1`,
			bookingID, now,
		); err != nil {
			r.log.Ctx(ctx).Error(fmt.Sprintf("error mark vendor completed: %v", err))
			return entity.Booking{}, false, errors.InternalServerError("error mark completed")
		}
		booking.VendorCompleted = true
		booking.VendorCompletedAt = sql.NullTime{Time: now, Valid: true}
	case entity.SideCouple:
		if booking.CoupleCompleted {
			return entity.Booking{}, false, errors.Conflict("couple already marked completed")
		}
		if _, err := tx.ExecContext(ctx,
			`UPDATE bookings SET couple_completed = TRUE, couple_completed_at = $2, updated_at = NOW() WHERE id = $1`,
			bookingID, now,
		); err != nil {
			r.log.Ctx(ctx).Error(fmt.Sprintf("error mark couple completed: %v", err))
			return entity.Booking{}, false, errors.InternalServerError("error mark completed")
		}
		booking.CoupleCompleted = true
		booking.CoupleCompletedAt = sql.NullTime{Time: now, Valid: true}
	default:
		return entity.Booking{}, false, errors.BadRequest("unknown completion side")
	}

	promoted := false
	if booking.VendorCompleted && booking.CoupleCompleted && booking.Status != entity.StatusCompleted {
		if _, err := tx.ExecContext(ctx,
			`UPDATE bookings SET status = $2, status_note = $3, fully_completed = TRUE, fully_completed_at = $4, updated_at = NOW() WHERE id = $1`,
			bookingID, entity.StatusCompleted, note, now,
		); err != nil {
			r.log.Ctx(ctx).Error(fmt.Sprintf("error promote booking to completed: %v", err))
			return entity.Booking{}, false, errors.InternalServerError("error promote booking")
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO booking_notes (booking_id, status, note, actor_role, actor_id) VALUES ($1, $2, $3, $4, 0)`,
			bookingID, entity.StatusCompleted, note, entity.ActorSystem,
		); err != nil {
			r.log.Ctx(ctx).Error(fmt.Sprintf("error insert completion note: %v", err))
			return entity.Booking{}, false, errors.InternalServerError("error insert completion note")
		}
		booking.Status = entity.StatusCompleted
		booking.StatusNote = note
		booking.FullyCompleted = true
		booking.FullyCompletedAt = sql.NullTime{Time: now, Valid: true}
		promoted = true
	}

	if err := tx.Commit(); err != nil {
		return entity.Booking{}, false, errors.InternalServerError("error committing transaction")
	}
	return booking, promoted, nil
}

// UnmarkCompleted clears completion flags. Clearing a flag that is already
// clear is a no-op, so the operation is idempotent. A completed booking
// reverts to the last paid status derived from the ledger.
func (r *repositories) UnmarkCompleted(ctx context.Context, bookingID string, side entity.CompletionSide, reason string) (entity.Booking, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return entity.Booking{}, errors.InternalServerError("error starting transaction")
	}
	defer tx.Rollback()

	var booking entity.Booking
	err = tx.GetContext(ctx, &booking, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1 FOR UPDATE`, bookingID)
	if err == sql.ErrNoRows {
		return entity.Booking{}, errors.NotFound("booking not found")
	}
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error lock booking: %v", err))
		return entity.Booking{}, errors.InternalServerError("error lock booking")
	}

	if side == entity.SideVendor || side == entity.SideBoth {
		booking.VendorCompleted = false
		booking.VendorCompletedAt = sql.NullTime{}
	}
	if side == entity.SideCouple || side == entity.SideBoth {
		booking.CoupleCompleted = false
		booking.CoupleCompletedAt = sql.NullTime{}
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE bookings SET vendor_completed = $2, vendor_completed_at = $3,
			couple_completed = $4, couple_completed_at = $5, updated_at = NOW() WHERE id = $1`,
		bookingID, booking.VendorCompleted, booking.VendorCompletedAt,
		booking.CoupleCompleted, booking.CoupleCompletedAt,
	); err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error unmark completed: %v", err))
		return entity.Booking{}, errors.InternalServerError("error unmark completed")
	}

	if booking.Status == entity.StatusCompleted {
		var totalPaid int64
		if err := tx.GetContext(ctx, &totalPaid,
			`SELECT COALESCE(SUM(amount_paid), 0) FROM receipts WHERE booking_id = $1`, bookingID,
		); err != nil {
			r.log.Ctx(ctx).Error(fmt.Sprintf("error calculate total paid: %v", err))
			return entity.Booking{}, errors.InternalServerError("error calculate total paid")
		}

		revertTo := entity.StatusDownpayment
		if totalPaid >= booking.TotalAmount {
			revertTo = entity.StatusFullyPaid
		}

		if _, err := tx.ExecContext(ctx,
			`UPDATE bookings SET status = $2, status_note = $3, fully_completed = FALSE, fully_completed_at = NULL, updated_at = NOW() WHERE id = $1`,
			bookingID, revertTo, reason,
		); err != nil {
			r.log.Ctx(ctx).Error(fmt.Sprintf("error revert booking status: %v", err))
			return entity.Booking{}, errors.InternalServerError("error revert booking status")
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO booking_notes (booking_id, status, note, actor_role, actor_id) VALUES ($1, $2, $3, $4, 0)`,
			bookingID, revertTo, reason, entity.ActorSystem,
		); err != nil {
			r.log.Ctx(ctx).Error(fmt.Sprintf("error insert revert note: %v", err))
			return entity.Booking{}, errors.InternalServerError("error insert revert note")
		}
		booking.Status = revertTo
		booking.StatusNote = reason
		booking.FullyCompleted = false
		booking.FullyCompletedAt = sql.NullTime{}
	}

	if err := tx.Commit(); err != nil {
		return entity.Booking{}, errors.InternalServerError("error committing transaction")
	}
	return booking, nil
}

// CalculateTotalPaid implements Repositories.
func (r *repositories) CalculateTotalPaid(ctx context.Context, bookingID string) (int64, error) {
	var total int64
	err := r.db.GetContext(ctx, &total,
		`SELECT COALESCE(SUM(amount_paid), 0) FROM receipts WHERE booking_id = $1`, bookingID)
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error calculate total paid: %v", err))
		return 0, errors.InternalServerError("error calculate total paid")
	}
	return total, nil
}

// SetTaskScheduler implements Repositories.
func (r *repositories) SetTaskScheduler(ctx context.Context, processIn time.Duration, payload []byte) (string, error) {
	task := asynq.NewTask(scheduler.TypePaymentReminder, payload)
	info, err := r.asynqClient.EnqueueContext(ctx, task, asynq.ProcessIn(processIn))
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error enqueue reminder task: %v", err))
		return "", errors.InternalServerError("error enqueue reminder task")
	}
	return info.ID, nil
}

// DeleteTaskScheduler implements Repositories.
func (r *repositories) DeleteTaskScheduler(ctx context.Context, taskID string) error {
	if err := r.asynqInspector.DeleteTask("default", taskID); err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error delete reminder task: %v", err))
		return errors.InternalServerError("error delete reminder task")
	}
	return nil
}

func reminderKey(bookingID string) string {
	return "booking:reminder:" + bookingID
}

// SetReminderTask implements Repositories.
func (r *repositories) SetReminderTask(ctx context.Context, bookingID string, taskID string) error {
	if err := r.redisClient.Set(ctx, reminderKey(bookingID), taskID, 0).Err(); err != nil {
		return errors.InternalServerError("error set reminder task")
	}
	return nil
}

// GetReminderTask implements Repositories.
func (r *repositories) GetReminderTask(ctx context.Context, bookingID string) (string, error) {
	taskID, err := r.redisClient.Get(ctx, reminderKey(bookingID)).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", errors.InternalServerError("error get reminder task")
	}
	return taskID, nil
}

// ClearReminderTask implements Repositories.
func (r *repositories) ClearReminderTask(ctx context.Context, bookingID string) error {
	if err := r.redisClient.Del(ctx, reminderKey(bookingID)).Err(); err != nil {
		return errors.InternalServerError("error clear reminder task")
	}
	return nil
}
