package class

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sonexa-app/sonexa-api/internal/auth"
	"github.com/sonexa-app/sonexa-api/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) CreateClass(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var input CreateClassInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	c, err := h.service.CreateClass(r.Context(), claims.UserID, input)
	if errors.Is(err, ErrNameRequired) {
		http.Error(w, "class name is required", http.StatusBadRequest)
		return
	}
	if err != nil {
		log.WithError(err).Error("failed to create class")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusCreated, c)
}

func (h *Handler) ListClasses(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	classes, err := h.service.ListClasses(r.Context(), claims.UserID)
	if err != nil {
		log.WithError(err).Error("failed to list classes")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, classes)
}

func (h *Handler) GetClass(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	classID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid class id", http.StatusBadRequest)
		return
	}

	c, err := h.service.GetClass(r.Context(), claims.UserID, classID)
	if errors.Is(err, ErrNotFound) {
		http.Error(w, "class not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.WithError(err).Error("failed to fetch class")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, c)
}
