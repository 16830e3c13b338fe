package http

import (
	"net/http"
)

func (h *Handler) greeting(w http.ResponseWriter, r *http.Request) {
	greeting := h.services.AppInfoService.Greeting(r.Context())

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(greeting))
}
