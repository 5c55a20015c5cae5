// Package models содержит общие модели данных для server и agent.
package models

// User — плоская модель пользователя, используемая в HTTP API.
//
// Поля:
//   - ID: уникальный числовой идентификатор, выдаётся сервером и не меняется
//   - Name: имя пользователя (произвольный текст, сервер не валидирует)
//   - Email: email пользователя (произвольный текст, сервер не валидирует)
type User struct {
	ID    uint32 `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
