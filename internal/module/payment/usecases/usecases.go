package usecases

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	bookingentity "wedding-marketplace/internal/module/booking/models/entity"
	bookingrequest "wedding-marketplace/internal/module/booking/models/request"
	bookingusecases "wedding-marketplace/internal/module/booking/usecases"
	"wedding-marketplace/internal/module/payment/gateway"
	"wedding-marketplace/internal/module/payment/models/entity"
	"wedding-marketplace/internal/module/payment/models/request"
	"wedding-marketplace/internal/module/payment/models/response"
	"wedding-marketplace/internal/module/payment/repositories"
	"wedding-marketplace/internal/pkg/errors"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type usecase struct {
	repo      repositories.Repositories
	bookingUC bookingusecases.Usecase
	gateway   gateway.Client
	log       *otelzap.Logger
}

type Usecase interface {
	ProcessPayment(ctx context.Context, payload *request.ProcessPayment, coupleID int64) (response.PaymentResult, error)
	HandleGatewayEvent(ctx context.Context, event entity.GatewayEvent) error
	GetReceipt(ctx context.Context, idOrNumber string) (response.Receipt, error)
	ListReceiptsByCouple(ctx context.Context, coupleID int64) ([]response.Receipt, error)
	ListReceiptsByVendor(ctx context.Context, vendorID int64) ([]response.Receipt, error)
}

func New(repo repositories.Repositories, bookingUC bookingusecases.Usecase, gatewayClient gateway.Client, log *otelzap.Logger) Usecase {
	return &usecase{
		repo:      repo,
		bookingUC: bookingUC,
		gateway:   gatewayClient,
		log:       log,
	}
}

// subStatusFor maps a payment type onto the booking sub-status the ledger
// write drives the state machine towards.
func subStatusFor(paymentType entity.PaymentType) bookingentity.SubStatus {
	if paymentType == entity.TypeDeposit {
		return bookingentity.SubDepositPaid
	}
	return bookingentity.SubFullyPaid
}

// ProcessPayment records a charge the couple authorized synchronously. The
// charge is verified against the gateway before anything is written, and only
// the couple on the booking may record it.
func (u *usecase) ProcessPayment(ctx context.Context, payload *request.ProcessPayment, coupleID int64) (response.PaymentResult, error) {
	booking, err := u.repo.FindBookingForPayment(ctx, payload.BookingID)
	if err != nil {
		return response.PaymentResult{}, err
	}

	if booking.CoupleID != coupleID {
		return response.PaymentResult{}, errors.ForbiddenError("booking belongs to another couple")
	}

	payment, err := u.gateway.GetPayment(ctx, payload.PaymentReference)
	if err != nil {
		if gwErr, ok := err.(*gateway.Error); ok {
			return response.PaymentResult{}, errors.BadGateway(gwErr.Message)
		}
		return response.PaymentResult{}, errors.BadGateway("error verify payment with gateway")
	}
	if payment.Status != "paid" {
		return response.PaymentResult{}, errors.PaymentRequired(
			fmt.Sprintf("gateway reports payment status %q", payment.Status))
	}
	if payment.Amount != payload.Amount {
		return response.PaymentResult{}, errors.BadRequest("amount does not match the gateway charge")
	}

	totalPaid, err := u.repo.CalculateTotalPaid(ctx, payload.BookingID)
	if err != nil {
		return response.PaymentResult{}, err
	}

	paymentType := entity.PaymentType(payload.PaymentType)
	if !paymentType.Valid() {
		paymentType = entity.Classify(totalPaid, payload.Amount, booking.TotalAmount)
	}

	result, err := u.recordPayment(ctx, &booking, paymentType, payload.Amount, payload.PaymentMethod, payload.PaymentReference)
	if err != nil {
		return response.PaymentResult{}, err
	}
	return result, nil
}

// HandleGatewayEvent is the reconciliation entry point for asynchronous
// gateway callbacks. Unresolvable or duplicate events are swallowed after
// logging: the transport retries forever otherwise.
func (u *usecase) HandleGatewayEvent(ctx context.Context, event entity.GatewayEvent) error {
	switch event.Type {
	case entity.EventSourceChargeable:
		return u.chargeSource(ctx, event)
	case entity.EventPaymentPaid:
		return u.reconcilePaid(ctx, event)
	case entity.EventPaymentFailed:
		return u.reconcileFailed(ctx, event)
	default:
		u.log.Ctx(ctx).Info(fmt.Sprintf("ignoring gateway event type %q", event.Type))
		return nil
	}
}

// chargeSource turns a chargeable source into a payment. The resulting
// payment.paid event closes the loop through reconcilePaid.
func (u *usecase) chargeSource(ctx context.Context, event entity.GatewayEvent) error {
	if event.BookingID == "" {
		u.log.Ctx(ctx).Error(fmt.Sprintf("chargeable source %s carries no booking reference", event.ExternalID))
		return nil
	}

	metadata := map[string]string{"booking_id": event.BookingID}
	if event.PaymentType != "" {
		metadata["payment_type"] = event.PaymentType
	}

	_, err := u.gateway.CreatePayment(ctx, event.SourceID, event.Amount,
		fmt.Sprintf("booking %s", event.BookingID), metadata)
	if err != nil {
		// the source stays chargeable; the gateway will re-deliver
		u.log.Ctx(ctx).Error(fmt.Sprintf("error charge source %s: %v", event.SourceID, err))
	}
	return nil
}

func (u *usecase) reconcilePaid(ctx context.Context, event entity.GatewayEvent) error {
	if event.BookingID == "" {
		u.log.Ctx(ctx).Error(fmt.Sprintf("paid event %s carries no booking reference, acknowledging", event.ExternalID))
		return nil
	}

	if seen, err := u.repo.WasEventSeen(ctx, event.ExternalID); err == nil && seen {
		return nil
	}

	booking, err := u.repo.FindBookingForPayment(ctx, event.BookingID)
	if err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("paid event %s references unknown booking %s", event.ExternalID, event.BookingID))
		return nil
	}

	totalPaid, err := u.repo.CalculateTotalPaid(ctx, event.BookingID)
	if err != nil {
		return err
	}

	paymentType := entity.PaymentType(event.PaymentType)
	if !paymentType.Valid() {
		paymentType = entity.Classify(totalPaid, event.Amount, booking.TotalAmount)
	}

	if _, err := u.recordPayment(ctx, &booking, paymentType, event.Amount, event.Method, event.ExternalID); err != nil {
		return err
	}

	if err := u.repo.MarkEventSeen(ctx, event.ExternalID); err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error mark event seen: %v", err))
	}
	return nil
}

func (u *usecase) reconcileFailed(ctx context.Context, event entity.GatewayEvent) error {
	if event.BookingID == "" {
		u.log.Ctx(ctx).Error(fmt.Sprintf("failed event %s carries no booking reference, acknowledging", event.ExternalID))
		return nil
	}

	reason := event.FailureReason
	if reason == "" {
		reason = "payment attempt failed"
	}
	return u.bookingUC.RecordPaymentFailure(ctx, event.BookingID, reason)
}

// recordPayment writes the ledger entry and drives the booking state
// machine. A duplicate gateway reference short-circuits to the receipt that
// already exists, reported as success.
func (u *usecase) recordPayment(ctx context.Context, booking *entity.BookingSnapshot, paymentType entity.PaymentType, amount int64, method string, gatewayRef string) (response.PaymentResult, error) {
	sub := subStatusFor(paymentType)
	target, _, err := bookingentity.EncodeSubStatus(sub, "")
	if err != nil {
		return response.PaymentResult{}, errors.InternalServerError("error encode payment sub-status")
	}
	if !bookingentity.CanTransition(bookingentity.Status(booking.Status), bookingentity.ActorSystem, target) {
		return response.PaymentResult{}, errors.Conflict(
			fmt.Sprintf("booking in status %s cannot accept a %s payment", booking.Status, paymentType))
	}

	receipt := entity.Receipt{
		BookingID:     booking.ID,
		PaymentType:   paymentType,
		AmountPaid:    amount,
		PaymentMethod: method,
		GatewayRef:    gatewayRef,
	}

	created, err := u.repo.CreateReceipt(ctx, &receipt)
	if err != nil {
		return response.PaymentResult{}, err
	}
	if !created {
		existing, err := u.repo.FindReceiptByRef(ctx, gatewayRef)
		if err != nil {
			return response.PaymentResult{}, err
		}
		totalPaid, err := u.repo.CalculateTotalPaid(ctx, booking.ID.String())
		if err != nil {
			return response.PaymentResult{}, err
		}
		return response.PaymentResult{
			Receipt:       toReceiptResponse(existing),
			BookingStatus: booking.Status,
			TotalPaid:     totalPaid,
		}, nil
	}

	if _, err := u.bookingUC.UpdateStatus(ctx, booking.ID.String(), &bookingrequest.UpdateStatus{
		Status: string(sub),
		Notes:  fmt.Sprintf("payment of %d recorded, gateway ref %s", amount, gatewayRef),
	}, bookingentity.ActorSystem, 0); err != nil {
		return response.PaymentResult{}, err
	}

	if err := u.bookingUC.CancelPaymentReminder(ctx, booking.ID.String()); err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error cancel payment reminder: %v", err))
	}

	totalPaid, err := u.repo.CalculateTotalPaid(ctx, booking.ID.String())
	if err != nil {
		return response.PaymentResult{}, err
	}

	return response.PaymentResult{
		Receipt:       toReceiptResponse(receipt),
		BookingStatus: string(target),
		TotalPaid:     totalPaid,
	}, nil
}

// GetReceipt accepts either the numeric id or the rendered receipt number.
func (u *usecase) GetReceipt(ctx context.Context, idOrNumber string) (response.Receipt, error) {
	raw := strings.TrimPrefix(idOrNumber, "WB-")
	receiptID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return response.Receipt{}, errors.BadRequest("invalid receipt identifier")
	}

	receipt, err := u.repo.FindReceiptByID(ctx, receiptID)
	if err != nil {
		return response.Receipt{}, err
	}
	return toReceiptResponse(receipt), nil
}

func (u *usecase) ListReceiptsByCouple(ctx context.Context, coupleID int64) ([]response.Receipt, error) {
	receipts, err := u.repo.FindReceiptsByCoupleID(ctx, coupleID)
	if err != nil {
		return nil, err
	}
	return toReceiptResponses(receipts), nil
}

func (u *usecase) ListReceiptsByVendor(ctx context.Context, vendorID int64) ([]response.Receipt, error) {
	receipts, err := u.repo.FindReceiptsByVendorID(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	return toReceiptResponses(receipts), nil
}

func toReceiptResponse(receipt entity.Receipt) response.Receipt {
	return response.Receipt{
		ID:            receipt.ID,
		ReceiptNumber: receipt.Number(),
		BookingID:     receipt.BookingID.String(),
		CoupleID:      receipt.CoupleID,
		VendorID:      receipt.VendorID,
		PaymentType:   string(receipt.PaymentType),
		AmountPaid:    receipt.AmountPaid,
		TotalAmount:   receipt.TotalAmount,
		PaymentMethod: receipt.PaymentMethod,
		GatewayRef:    receipt.GatewayRef,
		CreatedAt:     receipt.CreatedAt,
	}
}

func toReceiptResponses(receipts []entity.Receipt) []response.Receipt {
	out := make([]response.Receipt, 0, len(receipts))
	for _, receipt := range receipts {
		out = append(out, toReceiptResponse(receipt))
	}
	return out
}
