package usecases

import (
	"context"

	bookingrequest "wedding-marketplace/internal/module/booking/models/request"
	"wedding-marketplace/internal/module/notification/repositories"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type usecase struct {
	repo repositories.Repositories
	log  *otelzap.Logger
}

type Usecase interface {
	ProcessNotification(ctx context.Context, payload *bookingrequest.NotificationMessage) error
}

func New(repo repositories.Repositories, log *otelzap.Logger) Usecase {
	return &usecase{
		repo: repo,
		log:  log,
	}
}

func (u *usecase) ProcessNotification(ctx context.Context, payload *bookingrequest.NotificationMessage) error {
	return u.repo.PushNotification(ctx, payload)
}
