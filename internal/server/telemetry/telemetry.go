// Package telemetry собирает и экспортирует трейсы сервера.
//
// Пакет отвечает за:
//   - создание tracez-трейсера, который используют middleware и service;
//   - буферизацию завершённых спанов в коллекторе;
//   - периодическую отправку батчей спанов на внешний коллектор (JSON по HTTP);
//   - финальный сброс буфера при останове сервера.
//
// Адрес коллектора задаётся в конфиге (telemetry.endpoint) и может быть
// переопределён переменной окружения OTLP_ENDPOINT; дефолт —
// http://localhost:4317. Ошибки экспорта логируются и никогда не
// останавливают обработку запросов.
package telemetry

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/zoobzio/tracez"
	"go.uber.org/zap"

	"github.com/IvanChernomyrdin/go-userdir/internal/server/config"
	"github.com/IvanChernomyrdin/go-userdir/internal/shared/logger"
)

// Telemetry владеет трейсером и фоновым циклом экспорта.
type Telemetry struct {
	Tracer *tracez.Tracer

	collector *tracez.Collector
	client    *http.Client
	cfg       config.TelemetryConfig
	log       *logger.HTTPLogger

	stop chan struct{}
	done chan struct{}
}

// batch — формат тела POST-запроса к коллектору.
type batch struct {
	Service string        `json:"service"`
	Spans   []tracez.Span `json:"spans"`
}

// Init создаёт трейсер и, если экспорт включён, запускает фоновый цикл.
//
// Каждый завершённый спан получает тег service.name и попадает в коллектор.
// При cfg.Enabled=false трейсер работает (спаны доступны обработчикам),
// но наружу ничего не отправляется.
func Init(cfg config.TelemetryConfig, log *logger.HTTPLogger) *Telemetry {
	t := &Telemetry{
		Tracer: tracez.New(),
		cfg:    cfg,
		log:    log,
		client: &http.Client{Timeout: 5 * time.Second},
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}

	if !cfg.Enabled {
		close(t.done)
		return t
	}

	t.collector = tracez.NewCollector("export", cfg.BufferSize)
	t.Tracer.OnSpanComplete(func(span tracez.Span) {
		if span.Tags == nil {
			span.Tags = make(map[tracez.Tag]string, 1)
		}
		span.Tags["service.name"] = cfg.ServiceName
		t.collector.Collect(&span)
	})

	log.Info("telemetry initialized", zap.String("endpoint", cfg.Endpoint))

	go t.exportLoop()
	return t
}

// exportLoop периодически отправляет накопленные спаны,
// при остановке делает финальный сброс.
func (t *Telemetry) exportLoop() {
	defer close(t.done)

	ticker := time.NewTicker(t.cfg.ExportInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			t.export()
		case <-t.stop:
			t.export()
			return
		}
	}
}

// export выгружает буфер коллектора и отправляет его одним батчем.
// Пустой буфер не отправляется.
func (t *Telemetry) export() {
	spans := t.collector.Export()
	if len(spans) == 0 {
		return
	}

	body, err := json.Marshal(batch{
		Service: t.cfg.ServiceName,
		Spans:   spans,
	})
	if err != nil {
		t.log.Warn("failed to marshal span batch", zap.Error(err))
		return
	}

	res, err := t.client.Post(t.cfg.Endpoint, "application/json", bytes.NewReader(body))
	if err != nil {
		t.log.Warn("failed to export spans",
			zap.String("endpoint", t.cfg.Endpoint),
			zap.Int("span_count", len(spans)),
			zap.Error(err),
		)
		return
	}
	res.Body.Close()

	t.log.Info("spans exported",
		zap.Int("span_count", len(spans)),
		zap.Int("dropped", int(t.collector.DroppedCount())),
	)
}

// Close останавливает цикл экспорта, сбрасывает остатки буфера
// и закрывает трейсер. Блокируется до завершения финального сброса.
func (t *Telemetry) Close() {
	if t.cfg.Enabled {
		close(t.stop)
		<-t.done
	}
	t.Tracer.Close()
}
