package handler

import (
	"fmt"
	"strconv"

	"wedding-marketplace/internal/module/payment/models/request"
	"wedding-marketplace/internal/module/payment/usecases"
	"wedding-marketplace/internal/pkg/errors"
	"wedding-marketplace/internal/pkg/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type PaymentHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
}

func (h *PaymentHandler) ProcessPayment(ctx *fiber.Ctx) error {
	var req request.ProcessPayment
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	coupleID, _ := ctx.Locals("user_id").(int64)

	resp, err := h.Usecase.ProcessPayment(ctx.UserContext(), &req, coupleID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error process payment: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespCreated(ctx, h.Log, resp, "success process payment")
}

// Webhook receives gateway callbacks. The gateway redelivers anything that is
// not acknowledged with a 2xx, so every path out of here acknowledges; errors
// only reach the logs.
func (h *PaymentHandler) Webhook(ctx *fiber.Ctx) error {
	var req request.GatewayWebhook
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse webhook payload: %v", err))
		return helpers.RespSuccess(ctx, h.Log, nil, "received")
	}

	if err := h.Usecase.HandleGatewayEvent(ctx.UserContext(), req.ToEvent()); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error handle gateway event: %v", err))
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "received")
}

func (h *PaymentHandler) GetReceipt(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.GetReceipt(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error get receipt: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success get receipt")
}

func (h *PaymentHandler) ListReceipts(ctx *fiber.Ctx) error {
	role, _ := ctx.Locals("role").(string)
	userID, _ := ctx.Locals("user_id").(int64)

	var err error
	var resp interface{}
	switch role {
	case "couple":
		resp, err = h.Usecase.ListReceiptsByCouple(ctx.UserContext(), userID)
	case "vendor":
		resp, err = h.Usecase.ListReceiptsByVendor(ctx.UserContext(), userID)
	default:
		return helpers.RespError(ctx, h.Log, errors.ForbiddenError("listing requires a couple or vendor identity"))
	}
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error list receipts: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success list receipts")
}

// ListReceiptsByCouple is the admin view over one couple's ledger.
func (h *PaymentHandler) ListReceiptsByCouple(ctx *fiber.Ctx) error {
	coupleID, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		return helpers.RespError(ctx, h.Log, errors.BadRequest("invalid couple id"))
	}

	resp, err := h.Usecase.ListReceiptsByCouple(ctx.UserContext(), coupleID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error list receipts by couple: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success list receipts")
}

// ListReceiptsByVendor is the admin view over one vendor's ledger.
func (h *PaymentHandler) ListReceiptsByVendor(ctx *fiber.Ctx) error {
	vendorID, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		return helpers.RespError(ctx, h.Log, errors.BadRequest("invalid vendor id"))
	}

	resp, err := h.Usecase.ListReceiptsByVendor(ctx.UserContext(), vendorID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error list receipts by vendor: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success list receipts")
}
