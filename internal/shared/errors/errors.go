// Package errors содержит общие доменные ошибки приложения
// и утилиты для error wrapping.
//
// Эти ошибки используются в service и repository слоях
// и маппятся на HTTP-статусы в api слое.
package errors

import "errors"

var (
	// Входные данные невалидны (нечисловой id, отсутствующие поля и т.п.)
	ErrInvalidInput = errors.New("invalid input")
	// Получена непредвиденная ошибка
	ErrInternal = errors.New("internal error")
	// Полученные JSON данные с ошибками
	ErrBadJSON = errors.New("bad json")
	// Ресурс не найден
	ErrNotFound = errors.New("not found")
	// Хранилище недоступно: не удалось получить эксклюзивный доступ
	// (например, хранилище уже закрыто при останове сервера).
	// Никогда не смешивается с ErrNotFound.
	ErrStoreUnavailable = errors.New("failed to lock application state")
)
