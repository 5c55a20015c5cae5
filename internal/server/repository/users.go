// Package repository реализует хранилище данных приложения.
//
// Хранилище пользователей живёт в памяти процесса: при рестарте
// оно всегда создаётся заново с двумя seed-записями (Alice и Bob),
// счётчик идентификаторов сбрасывается на 2. Это осознанное поведение,
// персистентность не входит в задачи сервиса.
package repository

import (
	"context"
	"sync"

	serr "github.com/IvanChernomyrdin/go-userdir/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-userdir/internal/shared/models"
)

// UsersRepository — упорядоченный список пользователей плюс счётчик
// последнего выданного идентификатора.
//
// Инварианты:
//   - все идентификаторы уникальны;
//   - counter всегда >= максимального идентификатора в списке;
//   - новый пользователь получает ровно counter+1, counter обновляется
//     до снятия блокировки.
//
// Весь доступ сериализуется одним мьютексом: блокировка держится только
// на время сканирования/добавления в памяти, никогда поверх I/O.
// Одна грубая блокировка на этом масштабе достаточна; при росте нагрузки
// её можно заменить на RWMutex или шардированную map по id.
type UsersRepository struct {
	mu      sync.Mutex
	closed  bool
	users   []models.User
	counter uint32
}

// NewUsersRepository создаёт хранилище с двумя seed-пользователями
// (id 1 и 2) и counter=2.
func NewUsersRepository() *UsersRepository {
	return &UsersRepository{
		users: []models.User{
			{ID: 1, Name: "Alice", Email: "alice@example.com"},
			{ID: 2, Name: "Bob", Email: "bob@example.com"},
		},
		counter: 2,
	}
}

// lock получает эксклюзивный доступ к хранилищу.
// Если хранилище уже закрыто — возвращает ErrStoreUnavailable,
// не путая это состояние с «запись не найдена».
func (r *UsersRepository) lock() error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return serr.ErrStoreUnavailable
	}
	return nil
}

// List возвращает копию всех пользователей в порядке добавления.
//
// Ошибки:
//   - ErrStoreUnavailable — хранилище закрыто.
func (r *UsersRepository) List(ctx context.Context) ([]models.User, error) {
	if err := r.lock(); err != nil {
		return nil, err
	}
	defer r.mu.Unlock()

	out := make([]models.User, len(r.users))
	copy(out, r.users)
	return out, nil
}

// Get возвращает пользователя с указанным id.
//
// Линейный поиск по списку; по инварианту уникальности совпасть
// может максимум одна запись.
//
// Ошибки:
//   - ErrNotFound — пользователя с таким id нет;
//   - ErrStoreUnavailable — хранилище закрыто.
func (r *UsersRepository) Get(ctx context.Context, id uint32) (models.User, error) {
	if err := r.lock(); err != nil {
		return models.User{}, err
	}
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, serr.ErrNotFound
}

// Create добавляет нового пользователя и возвращает копию созданной записи.
//
// Идентификатор — counter+1; counter обновляется до снятия блокировки.
// Операция не идемпотентна: два вызова с одинаковыми name/email дадут
// две разные записи с разными id.
//
// Ошибки:
//   - ErrStoreUnavailable — хранилище закрыто.
func (r *UsersRepository) Create(ctx context.Context, name, email string) (models.User, error) {
	if err := r.lock(); err != nil {
		return models.User{}, err
	}
	defer r.mu.Unlock()

	id := r.counter + 1
	user := models.User{
		ID:    id,
		Name:  name,
		Email: email,
	}
	r.users = append(r.users, user)
	r.counter = id

	return user, nil
}

// Close закрывает хранилище: все последующие операции возвращают
// ErrStoreUnavailable. Вызывается при останове сервера, после того
// как HTTP-сервер перестал принимать запросы. Повторный вызов безопасен.
func (r *UsersRepository) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
}
