// Package api реализует HTTP-слой сервера userdir.
//
// Пакет отвечает за:
//   - обработку входящих запросов и формирование ответов (JSON, статусы);
//   - маппинг доменных ошибок (service/repository) в HTTP-коды и сообщения;
//   - разбор параметров пути и тел запросов до вызова бизнес-логики.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/IvanChernomyrdin/go-userdir/internal/server/service"
	"github.com/IvanChernomyrdin/go-userdir/internal/shared/logger"
)

// Каждый метод если будет возвращать ответ то будет это делать в JSON
// (кроме plain-text ошибок). Вынес Content-Type и JSON для удобства.
const (
	JsonContentType  string = "application/json"
	PlainContentType string = "text/plain; charset=utf-8"
	ContentType      string = "Content-Type"
)

// Тексты plain-text ответов об ошибках. Формат зафиксирован контрактом API.
const (
	// MsgStoreUnavailable — тело 500 при недоступном хранилище.
	MsgStoreUnavailable = "Failed to lock application state"
)

// Handler агрегирует зависимости HTTP-слоя и предоставляет методы-хендлеры.
//
// Handler содержит:
//   - Svc: сервисный слой (бизнес-логика);
//   - Log: логгер для записи событий и ошибок.
//
// Методы Handler используются роутером для обработки HTTP-запросов.
type Handler struct {
	Svc *service.Services
	Log *logger.HTTPLogger
}

// NewHandler создаёт экземпляр Handler с переданными зависимостями.
//
// svc — набор сервисов приложения,
// log — логгер.
func NewHandler(svc *service.Services, log *logger.HTTPLogger) *Handler {
	return &Handler{
		Svc: svc,
		Log: log,
	}
}

// ErrorResponse стандартный формат ошибки API (для JSON-ошибок).
type ErrorResponse struct {
	Error string `json:"error"`
}

// Вспомогательная функция вывода ошибки
func WriteError(w http.ResponseWriter, status int, err error) {
	w.Header().Set(ContentType, JsonContentType)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{
		Error: err.Error(),
	})
}

// writeJSON сериализует payload со статусом status.
func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set(ContentType, JsonContentType)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
