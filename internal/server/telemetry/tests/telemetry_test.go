package tests

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/zoobzio/tracez"

	"github.com/IvanChernomyrdin/go-userdir/internal/server/config"
	"github.com/IvanChernomyrdin/go-userdir/internal/server/telemetry"
	"github.com/IvanChernomyrdin/go-userdir/internal/shared/logger"
)

type exportBatch struct {
	Service string        `json:"service"`
	Spans   []tracez.Span `json:"spans"`
}

// спаны доезжают до коллектора одним батчем с service.name
func TestTelemetry_ExportsSpans(t *testing.T) {
	var (
		mu      sync.Mutex
		batches []exportBatch
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var b exportBatch
		if err := json.Unmarshal(body, &b); err == nil {
			mu.Lock()
			batches = append(batches, b)
			mu.Unlock()
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cfg := config.TelemetryConfig{
		Enabled:        true,
		Endpoint:       srv.URL,
		ServiceName:    "userdir-test",
		ExportInterval: 50 * time.Millisecond,
		BufferSize:     100,
	}

	tel := telemetry.Init(cfg, logger.NewHTTPLogger())

	_, span := tel.Tracer.StartSpan(t.Context(), "users.list")
	span.SetTag("user.count", "2")
	span.Finish()

	// даём коллектору забрать спан из канала и циклу экспорта отработать
	time.Sleep(200 * time.Millisecond)
	// Close делает финальный сброс остатков
	tel.Close()

	mu.Lock()
	defer mu.Unlock()
	require.NotEmpty(t, batches, "expected at least one export batch")

	var found bool
	for _, b := range batches {
		require.Equal(t, "userdir-test", b.Service)
		for _, s := range b.Spans {
			if s.Name == "users.list" {
				found = true
				require.Equal(t, "userdir-test", s.Tags["service.name"])
				require.Equal(t, "2", s.Tags["user.count"])
			}
		}
	}
	require.True(t, found, "expected users.list span in exported batches")
}

// выключенная телеметрия не валит трейсер и не требует endpoint
func TestTelemetry_DisabledStillTraces(t *testing.T) {
	cfg := config.TelemetryConfig{Enabled: false}

	tel := telemetry.Init(cfg, logger.NewHTTPLogger())

	_, span := tel.Tracer.StartSpan(t.Context(), "users.get")
	span.Finish()

	tel.Close()
}
