package class

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/", h.CreateClass)
	r.Get("/", h.ListClasses)
	r.Get("/{id}", h.GetClass)
	return r
}
