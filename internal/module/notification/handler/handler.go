package handler

import (
	"context"
	"fmt"

	bookingrequest "wedding-marketplace/internal/module/booking/models/request"
	bookingusecases "wedding-marketplace/internal/module/booking/usecases"
	"wedding-marketplace/internal/module/notification/usecases"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type NotificationHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
	Publish   message.Publisher
}

// ConsumeBookingNotification drains the booking notification topic. Messages
// that cannot be decoded or delivered go to the poisoned queue instead of
// being redelivered forever.
func (h *NotificationHandler) ConsumeBookingNotification(msg *message.Message) error {
	msg.Ack()

	var req bookingrequest.NotificationMessage
	if err := json.Unmarshal(msg.Payload, &req); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error unmarshal message: %v", err))
		h.poison(msg, err)
		return err
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error validate message: %v", err))
		h.poison(msg, err)
		return err
	}

	ctx := context.Background()
	if err := h.Usecase.ProcessNotification(ctx, &req); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error process notification: %v", err))
		h.poison(msg, err)
		return err
	}

	return nil
}

func (h *NotificationHandler) poison(msg *message.Message, cause error) {
	reqPoisoned := bookingrequest.PoisonedQueue{
		TopicTarget: bookingusecases.NotificationTopic,
		ErrorMsg:    cause.Error(),
		Payload:     msg.Payload,
	}

	jsonPayload, _ := json.Marshal(reqPoisoned)

	if err := h.Publish.Publish("poisoned_queue", message.NewMessage(watermill.NewUUID(), jsonPayload)); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error publish to poison queue: %v", err))
	}
}
