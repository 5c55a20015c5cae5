// Package service содержит бизнес-логику приложения (userdir).
// Это прослойка между HTTP-обработчиками (api) и хранилищем данных (repository).
package service

import (
	"context"

	"github.com/zoobzio/tracez"

	"github.com/IvanChernomyrdin/go-userdir/internal/shared/logger"
	"github.com/IvanChernomyrdin/go-userdir/internal/shared/models"
)

// Repositories — набор интерфейсов, которые сервисный слой ожидает от слоя repository.
type Repositories struct {
	Users UsersRepo
}

// Services — агрегатор всех сервисов приложения.
type Services struct {
	Users *UsersService
}

// NewServices собирает все сервисы приложения.
// tracer нужен для спанов операций, log — для структурных логов.
func NewServices(repos Repositories, tracer *tracez.Tracer, log *logger.HTTPLogger) *Services {
	return &Services{
		Users: NewUsersService(repos.Users, tracer, log),
	}
}

// UsersRepo — репозиторий пользователей.
//
//go:generate mockgen -source=service.go -destination=mocks/users.go -package=mocks
type UsersRepo interface {
	List(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, id uint32) (models.User, error)
	Create(ctx context.Context, name, email string) (models.User, error)
}
