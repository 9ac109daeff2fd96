package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"wedding-marketplace/internal/module/payment/models/entity"
	"wedding-marketplace/internal/pkg/errors"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type repositories struct {
	db          *sqlx.DB
	log         *otelzap.Logger
	redisClient *redis.Client
}

type Repositories interface {
	// db
	FindBookingForPayment(ctx context.Context, bookingID string) (entity.BookingSnapshot, error)
	CreateReceipt(ctx context.Context, receipt *entity.Receipt) (bool, error)
	FindReceiptByID(ctx context.Context, receiptID int64) (entity.Receipt, error)
	FindReceiptByRef(ctx context.Context, gatewayRef string) (entity.Receipt, error)
	FindReceiptsByCoupleID(ctx context.Context, coupleID int64) ([]entity.Receipt, error)
	FindReceiptsByVendorID(ctx context.Context, vendorID int64) ([]entity.Receipt, error)
	CalculateTotalPaid(ctx context.Context, bookingID string) (int64, error)
	// redis
	WasEventSeen(ctx context.Context, externalID string) (bool, error)
	MarkEventSeen(ctx context.Context, externalID string) error
}

func New(db *sqlx.DB, log *otelzap.Logger, redisClient *redis.Client) Repositories {
	return &repositories{
		db:          db,
		log:         log,
		redisClient: redisClient,
	}
}

const receiptColumns = `id, booking_id, couple_id, vendor_id, payment_type, amount_paid,
	total_amount, payment_method, gateway_ref, created_at`

// FindBookingForPayment implements Repositories.
func (r *repositories) FindBookingForPayment(ctx context.Context, bookingID string) (entity.BookingSnapshot, error) {
	query := `SELECT id, couple_id, vendor_id, total_amount, deposit_amount, status FROM bookings WHERE id = $1`
	var snapshot entity.BookingSnapshot
	err := r.db.GetContext(ctx, &snapshot, query, bookingID)
	if err == sql.ErrNoRows {
		return entity.BookingSnapshot{}, errors.NotFound("booking not found")
	}
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error find booking for payment: %v", err))
		return entity.BookingSnapshot{}, errors.InternalServerError("error find booking for payment")
	}
	return snapshot, nil
}

// CreateReceipt appends one ledger entry. The booking row is locked so the
// amount checks and the insert see the same ledger state, and the unique
// gateway_ref makes the write idempotent: a duplicate reference inserts
// nothing and returns created=false, which callers treat as success.
func (r *repositories) CreateReceipt(ctx context.Context, receipt *entity.Receipt) (bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, errors.InternalServerError("error starting transaction")
	}
	defer tx.Rollback()

	var booking entity.BookingSnapshot
	err = tx.GetContext(ctx, &booking,
		`SELECT id, couple_id, vendor_id, total_amount, deposit_amount, status FROM bookings WHERE id = $1 FOR UPDATE`,
		receipt.BookingID,
	)
	if err == sql.ErrNoRows {
		return false, errors.NotFound("booking not found")
	}
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error lock booking: %v", err))
		return false, errors.InternalServerError("error lock booking")
	}

	var totalPaid int64
	if err := tx.GetContext(ctx, &totalPaid,
		`SELECT COALESCE(SUM(amount_paid), 0) FROM receipts WHERE booking_id = $1`, receipt.BookingID,
	); err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error calculate total paid: %v", err))
		return false, errors.InternalServerError("error calculate total paid")
	}

	if totalPaid+receipt.AmountPaid > booking.TotalAmount {
		return false, errors.BadRequest("payment exceeds amount owed on booking")
	}

	switch receipt.PaymentType {
	case entity.TypeDeposit:
		if receipt.AmountPaid < booking.DepositAmount {
			return false, errors.BadRequest(
				fmt.Sprintf("deposit of %d is below the required deposit of %d", receipt.AmountPaid, booking.DepositAmount))
		}
	case entity.TypeBalance:
		if remaining := booking.TotalAmount - totalPaid; receipt.AmountPaid < remaining {
			return false, errors.BadRequest(
				fmt.Sprintf("balance payment of %d is below the remaining balance of %d", receipt.AmountPaid, remaining))
		}
	case entity.TypeFullPayment:
		if receipt.AmountPaid < booking.TotalAmount {
			return false, errors.BadRequest(
				fmt.Sprintf("full payment of %d is below the total amount of %d", receipt.AmountPaid, booking.TotalAmount))
		}
	default:
		return false, errors.BadRequest("unknown payment type")
	}

	receipt.CoupleID = booking.CoupleID
	receipt.VendorID = booking.VendorID
	receipt.TotalAmount = booking.TotalAmount
	receipt.CreatedAt = time.Now()

	err = tx.QueryRowxContext(ctx,
		`INSERT INTO receipts (booking_id, couple_id, vendor_id, payment_type, amount_paid, total_amount, payment_method, gateway_ref, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 ON CONFLICT (gateway_ref) DO NOTHING
		 RETURNING id`,
		receipt.BookingID, receipt.CoupleID, receipt.VendorID, receipt.PaymentType,
		receipt.AmountPaid, receipt.TotalAmount, receipt.PaymentMethod, receipt.GatewayRef, receipt.CreatedAt,
	).Scan(&receipt.ID)
	if err == sql.ErrNoRows {
		// another path already recorded this gateway reference
		return false, tx.Commit()
	}
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error insert receipt: %v", err))
		return false, errors.InternalServerError("error insert receipt")
	}

	if err := tx.Commit(); err != nil {
		return false, errors.InternalServerError("error committing transaction")
	}
	return true, nil
}

// FindReceiptByID implements Repositories.
func (r *repositories) FindReceiptByID(ctx context.Context, receiptID int64) (entity.Receipt, error) {
	query := `SELECT ` + receiptColumns + ` FROM receipts WHERE id = $1`
	var receipt entity.Receipt
	err := r.db.GetContext(ctx, &receipt, query, receiptID)
	if err == sql.ErrNoRows {
		return entity.Receipt{}, errors.NotFound("receipt not found")
	}
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error find receipt by id: %v", err))
		return entity.Receipt{}, errors.InternalServerError("error find receipt by id")
	}
	return receipt, nil
}

// FindReceiptByRef implements Repositories.
func (r *repositories) FindReceiptByRef(ctx context.Context, gatewayRef string) (entity.Receipt, error) {
	query := `SELECT ` + receiptColumns + ` FROM receipts WHERE gateway_ref = $1`
	var receipt entity.Receipt
	err := r.db.GetContext(ctx, &receipt, query, gatewayRef)
	if err == sql.ErrNoRows {
		return entity.Receipt{}, errors.NotFound("receipt not found")
	}
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error find receipt by ref: %v", err))
		return entity.Receipt{}, errors.InternalServerError("error find receipt by ref")
	}
	return receipt, nil
}

// FindReceiptsByCoupleID implements Repositories.
func (r *repositories) FindReceiptsByCoupleID(ctx context.Context, coupleID int64) ([]entity.Receipt, error) {
	query := `SELECT ` + receiptColumns + ` FROM receipts WHERE couple_id = $1 ORDER BY id DESC`
	var receipts []entity.Receipt
	if err := r.db.SelectContext(ctx, &receipts, query, coupleID); err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error find receipts by couple id: %v", err))
		return nil, errors.InternalServerError("error find receipts by couple id")
	}
	return receipts, nil
}

// FindReceiptsByVendorID implements Repositories.
func (r *repositories) FindReceiptsByVendorID(ctx context.Context, vendorID int64) ([]entity.Receipt, error) {
	query := `SELECT ` + receiptColumns + ` FROM receipts WHERE vendor_id = $1 ORDER BY id DESC`
	var receipts []entity.Receipt
	if err := r.db.SelectContext(ctx, &receipts, query, vendorID); err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error find receipts by vendor id: %v", err))
		return nil, errors.InternalServerError("error find receipts by vendor id")
	}
	return receipts, nil
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

func eventKey(externalID string) string {
	return "gateway:event:" + externalID
}

// WasEventSeen is a fast-path dedupe in front of the unique constraint.
// Redis is advisory here: a miss only means the database does the work.
func (r *repositories) WasEventSeen(ctx context.Context, externalID string) (bool, error) {
	_, err := r.redisClient.Get(ctx, eventKey(externalID)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, errors.InternalServerError("error check event seen")
	}
	return true, nil
}

// MarkEventSeen implements Repositories.
func (r *repositories) MarkEventSeen(ctx context.Context, externalID string) error {
	if err := r.redisClient.Set(ctx, eventKey(externalID), "1", 48*time.Hour).Err(); err != nil {
		return errors.InternalServerError("error mark event seen")
	}
	return nil
}
