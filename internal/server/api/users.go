// HTTP-хендлеры списка, получения и создания пользователей
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	serr "github.com/IvanChernomyrdin/go-userdir/internal/shared/errors"
)

// CreateUserRequest описывает тело запроса создания пользователя.
//
// Поля — указатели, чтобы диспетчер мог отличить отсутствующее поле
// от пустой строки: отсутствующее поле — это 400, пустая строка —
// допустимый текст (содержимое не валидируется).
type CreateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

// ListUsers возвращает всех пользователей.
//
// Ответы:
//   - 200 OK: JSON-массив пользователей в порядке добавления;
//   - 500 Internal Server Error: хранилище недоступно (plain text).
//
// @Summary      List users
// @Description  Returns all users in insertion order.
// @Tags         users
// @Produce      json
// @Success      200 {array} models.User
// @Failure      500 {string} string "Failed to lock application state"
// @Router       /users [get]
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Svc.Users.List(r.Context())
	if err != nil {
		http.Error(w, MsgStoreUnavailable, http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, users)
}

// GetUser возвращает пользователя по идентификатору из пути.
//
// Ответы:
//   - 200 OK: JSON пользователя;
//   - 400 Bad Request: нечисловой id (отбрасывается до бизнес-логики);
//   - 404 Not Found: plain text "User with ID {id} not found";
//   - 500 Internal Server Error: хранилище недоступно (plain text).
//
// @Summary      Get user by ID
// @Description  Returns a single user by numeric ID.
// @Tags         users
// @Produce      json
// @Param        id path integer true "User ID"
// @Success      200 {object} models.User
// @Failure      400 {object} api.ErrorResponse "Invalid ID"
// @Failure      404 {string} string "User with ID {id} not found"
// @Failure      500 {string} string "Failed to lock application state"
// @Router       /users/{id} [get]
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id64, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrInvalidInput)
		return
	}
	id := uint32(id64)

	user, err := h.Svc.Users.Get(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrNotFound):
			http.Error(w, fmt.Sprintf("User with ID %d not found", id), http.StatusNotFound)
		default:
			http.Error(w, MsgStoreUnavailable, http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// CreateUser создаёт нового пользователя.
//
// Идентификатор выдаёт сервер (монотонно, без повторов).
// Содержимое name/email не валидируется, но оба поля обязаны
// присутствовать в JSON.
//
// Ответы:
//   - 201 Created: JSON созданного пользователя;
//   - 400 Bad Request: неверный JSON или отсутствующие поля;
//   - 500 Internal Server Error: хранилище недоступно (plain text).
//
// @Summary      Create user
// @Description  Creates a new user with a server-assigned ID.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body api.CreateUserRequest true "Create user request"
// @Success      201 {object} models.User
// @Failure      400 {object} api.ErrorResponse "Invalid input or bad JSON"
// @Failure      500 {string} string "Failed to lock application state"
// @Router       /users [post]
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}
	if req.Name == nil || req.Email == nil {
		WriteError(w, http.StatusBadRequest, serr.ErrInvalidInput)
		return
	}

	user, err := h.Svc.Users.Create(r.Context(), *req.Name, *req.Email)
	if err != nil {
		http.Error(w, MsgStoreUnavailable, http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, user)
}
