// Трассировка HTTP-запросов
package middleware

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/zoobzio/tracez"
)

// TracingMiddleware открывает спан http.request на каждый входящий запрос.
//
// В спан попадают:
//   - http.method и http.path;
//   - request.id (uuid, генерируется на входе);
//   - http.status после выполнения хендлера.
//
// Контекст со спаном прокидывается ниже, так что спаны сервисного слоя
// становятся дочерними к спану запроса.
func TracingMiddleware(tracer *tracez.Tracer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracer.StartSpan(r.Context(), "http.request")
			defer span.Finish()

			span.SetTag("http.method", r.Method)
			span.SetTag("http.path", r.URL.Path)
			span.SetTag("request.id", uuid.NewString())

			wr := &ResponseWriter{ResponseWriter: w}
			next.ServeHTTP(wr, r.WithContext(ctx))

			status := wr.Status
			if status == 0 {
				status = http.StatusOK
			}
			span.SetTag("http.status", strconv.Itoa(status))
		})
	}
}
