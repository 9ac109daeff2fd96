package repositories

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"wedding-marketplace/config"
	bookingrequest "wedding-marketplace/internal/module/booking/models/request"
	"wedding-marketplace/internal/pkg/errors"

	"github.com/goccy/go-json"
	circuit "github.com/rubyist/circuitbreaker"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type repositories struct {
	log        *otelzap.Logger
	httpClient *circuit.HTTPClient
	cfg        *config.NotificationServiceConfig
}

type Repositories interface {
	PushNotification(ctx context.Context, payload *bookingrequest.NotificationMessage) error
}

func New(log *otelzap.Logger, httpClient *circuit.HTTPClient, cfg *config.NotificationServiceConfig) Repositories {
	return &repositories{
		log:        log,
		httpClient: httpClient,
		cfg:        cfg,
	}
}

// PushNotification forwards the message to the notification collaborator.
// The circuit breaker around the client keeps a dead collaborator from
// stalling the consumer.
func (r *repositories) PushNotification(ctx context.Context, payload *bookingrequest.NotificationMessage) error {
	url := fmt.Sprintf("http://%s:%s/api/v1/notifications", r.cfg.Host, r.cfg.Port)

	raw, err := json.Marshal(payload)
	if err != nil {
		return errors.InternalServerError("error marshal notification payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		return errors.InternalServerError("error build notification request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error push notification: %v", err))
		return errors.BadGateway("error push notification")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		r.log.Ctx(ctx).Error(fmt.Sprintf("notification service replied %d", resp.StatusCode))
		return errors.BadGateway("notification service rejected the message")
	}
	return nil
}
