package handler

import (
	"context"
	"fmt"

	"wedding-marketplace/internal/module/booking/models/entity"
	"wedding-marketplace/internal/module/booking/models/request"
	"wedding-marketplace/internal/module/booking/usecases"
	"wedding-marketplace/internal/pkg/errors"
	"wedding-marketplace/internal/pkg/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type BookingHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
}

func actorFromLocals(ctx *fiber.Ctx) (entity.Actor, int64) {
	role, _ := ctx.Locals("role").(string)
	userID, _ := ctx.Locals("user_id").(int64)
	return entity.Actor(role), userID
}

func (h *BookingHandler) CreateBooking(ctx *fiber.Ctx) error {
	var req request.CreateBooking
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	actor, userID := actorFromLocals(ctx)
	if actor != entity.ActorCouple {
		return helpers.RespError(ctx, h.Log, errors.ForbiddenError("only couples can request bookings"))
	}

	resp, err := h.Usecase.CreateBooking(ctx.UserContext(), &req, userID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error create booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespCreated(ctx, h.Log, resp, "success create booking")
}

func (h *BookingHandler) GetBooking(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.GetBooking(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error get booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success get booking")
}

func (h *BookingHandler) ListBookings(ctx *fiber.Ctx) error {
	actor, userID := actorFromLocals(ctx)

	var err error
	var resp interface{}
	switch actor {
	case entity.ActorCouple:
		resp, err = h.Usecase.ListBookingsByCouple(ctx.UserContext(), userID)
	case entity.ActorVendor:
		resp, err = h.Usecase.ListBookingsByVendor(ctx.UserContext(), userID)
	default:
		return helpers.RespError(ctx, h.Log, errors.ForbiddenError("listing requires a couple or vendor identity"))
	}
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error list bookings: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success list bookings")
}

func (h *BookingHandler) UpdateStatus(ctx *fiber.Ctx) error {
	var req request.UpdateStatus
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	actor, userID := actorFromLocals(ctx)
	resp, err := h.Usecase.UpdateStatus(ctx.UserContext(), ctx.Params("id"), &req, actor, userID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error update booking status: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success update booking status")
}

func (h *BookingHandler) MarkCompleted(ctx *fiber.Ctx) error {
	var req request.MarkCompleted
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	actor, _ := actorFromLocals(ctx)
	side := entity.CompletionSide(req.CompletedBy)
	if actor != entity.ActorAdmin && string(side) != string(actor) {
		return helpers.RespError(ctx, h.Log, errors.ForbiddenError("cannot mark completion for the other side"))
	}

	resp, err := h.Usecase.MarkCompleted(ctx.UserContext(), ctx.Params("id"), side)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error mark completed: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success mark completed")
}

func (h *BookingHandler) UnmarkCompleted(ctx *fiber.Ctx) error {
	var req request.UnmarkCompleted
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	resp, err := h.Usecase.UnmarkCompleted(ctx.UserContext(), ctx.Params("id"), entity.CompletionSide(req.UnmarkBy), req.Reason)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error unmark completed: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success unmark completed")
}

func (h *BookingHandler) CompletionStatus(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.CompletionStatus(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error get completion status: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success get completion status")
}

// SendPaymentReminder is the asynq handler for scheduled payment reminders.
func (h *BookingHandler) SendPaymentReminder(ctx context.Context, t *asynq.Task) error {
	var req request.PaymentReminder
	if err := json.Unmarshal(t.Payload(), &req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error unmarshal payload: %v", err))
		return err
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error validate payload: %v", err))
		return err
	}

	if err := h.Usecase.SendPaymentReminder(ctx, &req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error send payment reminder: %v", err))
		return err
	}

	return nil
}
