package quiz

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/", h.GenerateQuiz)
	r.Get("/{quizID}", h.GetQuizDetail)
	r.Post("/{quizID}/study-guide", h.GenerateStudyGuide)
	r.Post("/{quizID}/flashcards", h.GenerateFlashcards)
	return r
}
