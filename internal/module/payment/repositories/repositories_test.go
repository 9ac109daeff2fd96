package repositories_test

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	sqlxmock "github.com/zhashkevych/go-sqlxmock"

	"wedding-marketplace/internal/module/payment/models/entity"
	"wedding-marketplace/internal/module/payment/repositories"
	"wedding-marketplace/internal/pkg/errors"
	log_internal "wedding-marketplace/internal/pkg/log"
)

var (
	mock    sqlxmock.Sqlmock
	dbx     *sqlx.DB
	logMock *otelzap.Logger
)

func setup() {
	dbx, mock, _ = sqlxmock.Newx()
	logMock = log_internal.Setup()
}

func snapshotRows(bookingID uuid.UUID, status string) *sqlxmock.Rows {
	return sqlxmock.NewRows([]string{"id", "couple_id", "vendor_id", "total_amount", "deposit_amount", "status"}).
		AddRow(bookingID, int64(1), int64(2), int64(10000), int64(3000), status)
}

func TestFindBookingForPayment(t *testing.T) {
	setup()
	repo := repositories.New(dbx, logMock, nil)
	bookingID := uuid.New()

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, couple_id, vendor_id, total_amount, deposit_amount, status FROM bookings WHERE id = $1`)).
			WithArgs(bookingID.String()).
			WillReturnRows(snapshotRows(bookingID, "approved"))

		snapshot, err := repo.FindBookingForPayment(context.Background(), bookingID.String())

		assert.NoError(t, err)
		assert.Equal(t, bookingID, snapshot.ID)
		assert.Equal(t, int64(10000), snapshot.TotalAmount)
		assert.Equal(t, "approved", snapshot.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, couple_id, vendor_id, total_amount, deposit_amount, status FROM bookings WHERE id = $1`)).
			WithArgs(bookingID.String()).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.FindBookingForPayment(context.Background(), bookingID.String())

		assert.Error(t, err)
		assert.Equal(t, fiber.StatusNotFound, errors.GetCode(err))
	})
}

func TestCreateReceipt(t *testing.T) {
	bookingID := uuid.New()

	t.Run("deposit accepted", func(t *testing.T) {
		setup()
		repo := repositories.New(dbx, logMock, nil)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, couple_id, vendor_id, total_amount, deposit_amount, status FROM bookings WHERE id = $1 FOR UPDATE`)).
			WithArgs(bookingID).
			WillReturnRows(snapshotRows(bookingID, "approved"))
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT COALESCE(SUM(amount_paid), 0) FROM receipts WHERE booking_id = $1`)).
			WithArgs(bookingID).
			WillReturnRows(sqlxmock.NewRows([]string{"coalesce"}).AddRow(int64(0)))
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO receipts`)).
			WillReturnRows(sqlxmock.NewRows([]string{"id"}).AddRow(int64(1)))
		mock.ExpectCommit()

		receipt := entity.Receipt{
			BookingID:     bookingID,
			PaymentType:   entity.TypeDeposit,
			AmountPaid:    3000,
			PaymentMethod: "gcash",
			GatewayRef:    "pay_001",
		}

		created, err := repo.CreateReceipt(context.Background(), &receipt)

		assert.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, int64(1), receipt.ID)
		assert.Equal(t, int64(1), receipt.CoupleID)
		assert.Equal(t, int64(2), receipt.VendorID)
		assert.Equal(t, int64(10000), receipt.TotalAmount)
		assert.WithinDuration(t, time.Now(), receipt.CreatedAt, time.Minute)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate gateway reference inserts nothing", func(t *testing.T) {
		setup()
		repo := repositories.New(dbx, logMock, nil)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, couple_id, vendor_id, total_amount, deposit_amount, status FROM bookings WHERE id = $1 FOR UPDATE`)).
			WithArgs(bookingID).
			WillReturnRows(snapshotRows(bookingID, "approved"))
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT COALESCE(SUM(amount_paid), 0) FROM receipts WHERE booking_id = $1`)).
			WithArgs(bookingID).
			WillReturnRows(sqlxmock.NewRows([]string{"coalesce"}).AddRow(int64(0)))
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO receipts`)).
			WillReturnError(sql.ErrNoRows)
		mock.ExpectCommit()

		receipt := entity.Receipt{
			BookingID:     bookingID,
			PaymentType:   entity.TypeDeposit,
			AmountPaid:    3000,
			PaymentMethod: "gcash",
			GatewayRef:    "pay_001",
		}

		created, err := repo.CreateReceipt(context.Background(), &receipt)

		assert.NoError(t, err)
		assert.False(t, created)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("deposit below the required amount", func(t *testing.T) {
		setup()
		repo := repositories.New(dbx, logMock, nil)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, couple_id, vendor_id, total_amount, deposit_amount, status FROM bookings WHERE id = $1 FOR UPDATE`)).
			WithArgs(bookingID).
			WillReturnRows(snapshotRows(bookingID, "approved"))
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT COALESCE(SUM(amount_paid), 0) FROM receipts WHERE booking_id = $1`)).
			WithArgs(bookingID).
			WillReturnRows(sqlxmock.NewRows([]string{"coalesce"}).AddRow(int64(0)))
		mock.ExpectRollback()

		receipt := entity.Receipt{
			BookingID:   bookingID,
			PaymentType: entity.TypeDeposit,
			AmountPaid:  2000,
			GatewayRef:  "pay_002",
		}

		created, err := repo.CreateReceipt(context.Background(), &receipt)

		assert.Error(t, err)
		assert.False(t, created)
		assert.Equal(t, fiber.StatusBadRequest, errors.GetCode(err))
	})

	t.Run("payment exceeding the amount owed", func(t *testing.T) {
		setup()
		repo := repositories.New(dbx, logMock, nil)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, couple_id, vendor_id, total_amount, deposit_amount, status FROM bookings WHERE id = $1 FOR UPDATE`)).
			WithArgs(bookingID).
			WillReturnRows(snapshotRows(bookingID, "downpayment"))
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT COALESCE(SUM(amount_paid), 0) FROM receipts WHERE booking_id = $1`)).
			WithArgs(bookingID).
			WillReturnRows(sqlxmock.NewRows([]string{"coalesce"}).AddRow(int64(3000)))
		mock.ExpectRollback()

		receipt := entity.Receipt{
			BookingID:   bookingID,
			PaymentType: entity.TypeBalance,
			AmountPaid:  8000,
			GatewayRef:  "pay_003",
		}

		created, err := repo.CreateReceipt(context.Background(), &receipt)

		assert.Error(t, err)
		assert.False(t, created)
		assert.Equal(t, fiber.StatusBadRequest, errors.GetCode(err))
	})
}

func TestCalculateTotalPaid(t *testing.T) {
	setup()
	repo := repositories.New(dbx, logMock, nil)
	bookingID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COALESCE(SUM(amount_paid), 0) FROM receipts WHERE booking_id = $1`)).
		WithArgs(bookingID.String()).
		WillReturnRows(sqlxmock.NewRows([]string{"coalesce"}).AddRow(int64(6000)))

	total, err := repo.CalculateTotalPaid(context.Background(), bookingID.String())

	assert.NoError(t, err)
	assert.Equal(t, int64(6000), total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindReceiptByRef(t *testing.T) {
	setup()
	repo := repositories.New(dbx, logMock, nil)

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM receipts WHERE gateway_ref = ").
			WithArgs("pay_404").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.FindReceiptByRef(context.Background(), "pay_404")

		assert.Error(t, err)
		assert.Equal(t, fiber.StatusNotFound, errors.GetCode(err))
	})
}
