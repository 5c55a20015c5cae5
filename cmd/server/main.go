// @title           userdir API
// @version         1.0
// @description     Traced in-memory user directory service.

// @contact.name   Ivan Chernomyrdin
// @contact.url    https://github.com/IvanChernomyrdin

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      127.0.0.1:8080
// @BasePath  /
// @schemes http
//
// Package main содержит точку входа серверного приложения userdir.
//
// Пакет отвечает за инициализацию и жизненный цикл HTTP-сервера, а именно:
//   - загрузку переменных окружения из файла .env (если он присутствует);
//   - загрузку конфигурации сервера из файла ./configs/server.yaml;
//   - инициализацию телеметрии (tracez) и управление её жизненным циклом;
//   - создание in-memory хранилища, сервисов и HTTP-обработчиков;
//   - настройку и запуск HTTP-сервера с заданными таймаутами;
//   - обработку системных сигналов завершения (SIGINT, SIGTERM, SIGQUIT);
//   - корректное (graceful) завершение работы сервера с таймаутом.
//
// Пакет не содержит бизнес-логики и не предназначен для unit-тестирования.
// HTTP API сервера реализовано в пакете internal/server/api и документируется с помощью OpenAPI (Swagger).
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/IvanChernomyrdin/go-userdir/internal/server/api"
	"github.com/IvanChernomyrdin/go-userdir/internal/server/config"
	h "github.com/IvanChernomyrdin/go-userdir/internal/server/net/http"
	"github.com/IvanChernomyrdin/go-userdir/internal/server/repository"
	"github.com/IvanChernomyrdin/go-userdir/internal/server/service"
	"github.com/IvanChernomyrdin/go-userdir/internal/server/telemetry"
	"github.com/IvanChernomyrdin/go-userdir/internal/shared/logger"

	_ "github.com/IvanChernomyrdin/go-userdir/swagger/docs"
)

func main() {
	httpLogger := logger.NewHTTPLogger()
	sugar := httpLogger.Logger.Sugar()

	if err := godotenv.Load(); err != nil {
		sugar.Warnf("no .env file loaded, error: %v", err)
	}

	cfg, err := config.Load("./configs/server.yaml")
	if err != nil {
		sugar.Fatal(err)
	}
	// переменные окружения важнее yaml
	cfg.ApplyEnvOverrides()

	// телеметрия живёт весь срок жизни процесса
	tel := telemetry.Init(cfg.Telemetry, httpLogger)
	defer tel.Close()

	sugar.Infof("sending traces to: %s", cfg.Telemetry.Endpoint)

	// создаём хранилище (seed: Alice и Bob, counter=2)
	usersRepo := repository.NewUsersRepository()
	// складываем в репозиторий
	repos := service.Repositories{
		Users: usersRepo,
	}
	// создаём сервис
	svc := service.NewServices(repos, tel.Tracer, httpLogger)
	// создаём хандлер
	handler := api.NewHandler(svc, httpLogger)
	// создаём роутер
	router := h.NewRouter(handler, tel.Tracer, httpLogger)
	// создаём сервер
	addr := cfg.Addr()

	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// создаём контекст и errgroup
	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	// запускаем сервер
	g.Go(func() error {
		sugar.Infof("server started on %s", addr)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// graceful shutdown с таймаутом из конфига
	g.Go(func() error {
		<-ctx.Done()

		sugar.Info("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			cfg.Server.ShutdownTimeout,
		)
		defer cancel()

		err := server.Shutdown(shutdownCtx)
		// хранилище закрываем после того, как сервер перестал принимать запросы:
		// запоздавшие операции получат ErrStoreUnavailable, а не гонку
		usersRepo.Close()
		return err
	})

	// ожидание и единная обработка ошибок
	if err := g.Wait(); err != nil {
		sugar.Fatalf("server stopped with error: %v", err)
	}
	sugar.Info("server gracefully stopped")
}
