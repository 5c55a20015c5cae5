package service

import (
	"context"
	"errors"
	"strconv"

	"github.com/zoobzio/tracez"
	"go.uber.org/zap"

	serr "github.com/IvanChernomyrdin/go-userdir/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-userdir/internal/shared/logger"
	"github.com/IvanChernomyrdin/go-userdir/internal/shared/models"
)

// UsersService реализует бизнес-логику работы с пользователями.
// Сервис:
//   - открывает спан на каждую операцию (users.list / users.get / users.create);
//   - пишет структурные логи в точках принятия решений;
//   - не знает о HTTP напрямую.
type UsersService struct {
	repo   UsersRepo
	tracer *tracez.Tracer
	log    *logger.HTTPLogger
}

// NewUsersService создаёт новый UsersService.
func NewUsersService(repo UsersRepo, tracer *tracez.Tracer, log *logger.HTTPLogger) *UsersService {
	return &UsersService{
		repo:   repo,
		tracer: tracer,
		log:    log,
	}
}

// List возвращает всех пользователей в порядке добавления.
//
// Ошибки:
//   - ErrStoreUnavailable — хранилище недоступно.
func (s *UsersService) List(ctx context.Context) ([]models.User, error) {
	ctx, span := s.tracer.StartSpan(ctx, "users.list")
	defer span.Finish()

	s.log.Info("fetching all users")

	users, err := s.repo.List(ctx)
	if err != nil {
		span.SetTag("error", err.Error())
		s.log.Info("failed to lock application state")
		return nil, err
	}

	span.SetTag("user.count", strconv.Itoa(len(users)))
	s.log.Info("successfully fetched users", zap.Int("user_count", len(users)))
	return users, nil
}

// Get возвращает пользователя по id.
//
// Ошибки:
//   - ErrNotFound — пользователя с таким id нет;
//   - ErrStoreUnavailable — хранилище недоступно.
func (s *UsersService) Get(ctx context.Context, id uint32) (models.User, error) {
	ctx, span := s.tracer.StartSpan(ctx, "users.get")
	defer span.Finish()

	span.SetTag("user.id", strconv.FormatUint(uint64(id), 10))
	s.log.Info("looking up user by ID", zap.Uint32("user_id", id))

	user, err := s.repo.Get(ctx, id)
	if err != nil {
		span.SetTag("error", err.Error())
		if errors.Is(err, serr.ErrNotFound) {
			s.log.Info("user not found", zap.Uint32("user_id", id))
		} else {
			s.log.Info("failed to lock application state")
		}
		return models.User{}, err
	}

	s.log.Info("user found", zap.Uint32("user_id", id))
	return user, nil
}

// Create создаёт нового пользователя с серверным id.
//
// Содержимое name/email не валидируется — принимается любой текст.
//
// Ошибки:
//   - ErrStoreUnavailable — хранилище недоступно.
func (s *UsersService) Create(ctx context.Context, name, email string) (models.User, error) {
	ctx, span := s.tracer.StartSpan(ctx, "users.create")
	defer span.Finish()

	s.log.Info("creating new user",
		zap.String("name", name),
		zap.String("email", email),
	)

	user, err := s.repo.Create(ctx, name, email)
	if err != nil {
		span.SetTag("error", err.Error())
		s.log.Info("failed to lock application state")
		return models.User{}, err
	}

	span.SetTag("user.id", strconv.FormatUint(uint64(user.ID), 10))
	s.log.Info("user created successfully", zap.Uint32("user_id", user.ID))
	return user, nil
}
