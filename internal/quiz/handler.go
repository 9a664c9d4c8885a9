package quiz

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/sonexa-app/sonexa-api/internal/auth"
	"github.com/sonexa-app/sonexa-api/internal/class"
	"github.com/sonexa-app/sonexa-api/internal/config"
	"github.com/sonexa-app/sonexa-api/internal/generation"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) GenerateQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req GenerateQuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	classID, err := uuid.Parse(req.ClassID)
	if err != nil {
		http.Error(w, "invalid class id", http.StatusBadRequest)
		return
	}

	q, err := h.service.Generate(r.Context(), claims.UserID, classID, req.Context, req.QuestionCount)
	if err != nil {
		h.writeGenerationError(w, log, err, "failed to generate quiz")
		return
	}

	config.JSON(w, http.StatusCreated, q)
}

func (h *Handler) GenerateStudyGuide(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	quizID, err := uuid.Parse(chi.URLParam(r, "quizID"))
	if err != nil {
		http.Error(w, "invalid quiz id", http.StatusBadRequest)
		return
	}

	guide, err := h.service.GenerateStudyGuide(r.Context(), claims.UserID, quizID)
	if err != nil {
		h.writeGenerationError(w, log, err, "failed to generate study guide")
		return
	}

	config.JSON(w, http.StatusCreated, guide)
}

func (h *Handler) GenerateFlashcards(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	quizID, err := uuid.Parse(chi.URLParam(r, "quizID"))
	if err != nil {
		http.Error(w, "invalid quiz id", http.StatusBadRequest)
		return
	}

	set, err := h.service.GenerateFlashcards(r.Context(), claims.UserID, quizID)
	if err != nil {
		h.writeGenerationError(w, log, err, "failed to generate flashcards")
		return
	}

	config.JSON(w, http.StatusCreated, set)
}

func (h *Handler) GetQuizDetail(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	quizID, err := uuid.Parse(chi.URLParam(r, "quizID"))
	if err != nil {
		http.Error(w, "invalid quiz id", http.StatusBadRequest)
		return
	}

	detail, err := h.service.GetDetail(r.Context(), claims.UserID, quizID)
	if errors.Is(err, ErrNotFound) {
		http.Error(w, "quiz not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.WithError(err).Error("failed to fetch quiz detail")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, detail)
}

func (h *Handler) ListQuizzesByClass(w http.ResponseWriter, r *http.Request) {
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

	quizzes, err := h.service.ListByClass(r.Context(), claims.UserID, classID)
	if err != nil {
		log.WithError(err).Error("failed to list quizzes")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, quizzes)
}

// writeGenerationError maps pipeline failures onto the boundary statuses.
// Messages stay opaque; the log entry carries the detail.
func (h *Handler) writeGenerationError(w http.ResponseWriter, log *logrus.Entry, err error, message string) {
	switch {
	case errors.Is(err, class.ErrNotFound):
		http.Error(w, "class not found", http.StatusNotFound)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "quiz not found", http.StatusNotFound)
	case errors.Is(err, generation.ErrEmptyContext):
		http.Error(w, "please provide context for this request", http.StatusBadRequest)
	case errors.Is(err, ErrMissingContext):
		http.Error(w, "this quiz does not have saved context", http.StatusBadRequest)
	case errors.Is(err, generation.ErrInvalidJSON), errors.Is(err, generation.ErrUnexpectedStructure):
		log.WithError(err).Error(message)
		http.Error(w, message, http.StatusBadGateway)
	default:
		log.WithError(err).Error(message)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
