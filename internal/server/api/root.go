// HTTP-хендлер корневого приветствия
package api

import "net/http"

// Greeting — фиксированный текст ответа GET /.
const Greeting = "Hello, userdir!"

// Root возвращает фиксированное plain-text приветствие.
//
// Ответы:
//   - 200 OK: всегда.
//
// @Summary      Greeting
// @Description  Returns a fixed plain-text greeting.
// @Tags         root
// @Produce      plain
// @Success      200 {string} string "Hello, userdir!"
// @Router       / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	h.Log.Info("greeting requested")

	w.Header().Set(ContentType, PlainContentType)
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(Greeting))
}
