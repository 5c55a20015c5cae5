// В этом файле описаны методы клиента для работы
// с эндпоинтами пользователей: список, получение по id, создание.
package api

import (
	"fmt"

	"github.com/IvanChernomyrdin/go-userdir/internal/shared/models"
)

// CreateUserRequest описывает тело запроса создания пользователя.
//
// Name и Email передаются в JSON формате в эндпоинт /users.
type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ListUsers возвращает всех пользователей сервера.
//
// Метод отправляет GET запрос на /users.
// В случае ошибки возвращает непустую ошибку и nil.
func (c *Client) ListUsers() ([]models.User, error) {
	var users []models.User
	if err := c.GetJSON("/users", &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetUser возвращает пользователя по числовому идентификатору.
//
// Метод отправляет GET запрос на /users/{id}.
// Если пользователь не найден, сервер отвечает 404 и текст ответа
// становится текстом ошибки.
func (c *Client) GetUser(id uint32) (models.User, error) {
	var user models.User
	if err := c.GetJSON(fmt.Sprintf("/users/%d", id), &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// CreateUser создаёт нового пользователя.
//
// Метод отправляет POST запрос на /users и возвращает созданную запись
// с серверным идентификатором.
func (c *Client) CreateUser(name, email string) (models.User, error) {
	var user models.User
	err := c.PostJSON("/users", CreateUserRequest{Name: name, Email: email}, &user)
	return user, err
}
