// Package http реализует маршрутизацию HTTP-слоя сервера userdir.
//
// Пакет отвечает за:
//   - регистрацию HTTP-маршрутов и настройку роутера (chi);
//   - трассировку и логирование выполнения HTTP-запросов;
//   - отбрасывание некорректных запросов до вызова бизнес-логики.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
	"github.com/zoobzio/tracez"

	"github.com/IvanChernomyrdin/go-userdir/internal/server/api"
	"github.com/IvanChernomyrdin/go-userdir/internal/server/middleware"
	"github.com/IvanChernomyrdin/go-userdir/internal/shared/logger"
)

// NewRouter создаёт и настраивает HTTP-роутер сервера.
//
// Роутер использует chi.Router и регистрирует:
//   - трассировку всех запросов (спан http.request);
//   - middleware логирования для всех запросов;
//   - CORS для браузерных клиентов;
//   - приветствие, CRUD-эндпоинты пользователей и swagger.
func NewRouter(h *api.Handler, tracer *tracez.Tracer, log *logger.HTTPLogger) http.Handler {
	r := chi.NewRouter()
	// трассировка всех запросов
	r.Use(middleware.TracingMiddleware(tracer))
	// логирование всех запросов
	r.Use(middleware.LoggerMiddleware(log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		MaxAge:         300,
	}))

	// добавляем swagger
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Get("/", h.Root)
	r.Route("/users", func(r chi.Router) {
		r.Get("/", h.ListUsers)   // Все пользователи
		r.Post("/", h.CreateUser) // Создание пользователя
		r.Get("/{id}", h.GetUser) // Получение по id (нечисловой id -> 400)
	})

	return r
}
