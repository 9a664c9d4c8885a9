package quiz_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sonexa-app/sonexa-api/internal/auth"
	"github.com/sonexa-app/sonexa-api/internal/class"
	"github.com/sonexa-app/sonexa-api/internal/flashcard"
	"github.com/sonexa-app/sonexa-api/internal/generation"
	"github.com/sonexa-app/sonexa-api/internal/quiz"
	"github.com/sonexa-app/sonexa-api/internal/studyguide"
)

// stubService lets each test pin the outcome of the next call.
type stubService struct {
	quiz  *quiz.Quiz
	guide *studyguide.StudyGuide
	set   *flashcard.FlashcardSet
	err   error
}

func (s *stubService) Generate(ctx context.Context, ownerID string, classID uuid.UUID, contextText string, questionCount int) (*quiz.Quiz, error) {
	return s.quiz, s.err
}

func (s *stubService) GenerateStudyGuide(ctx context.Context, ownerID string, quizID uuid.UUID) (*studyguide.StudyGuide, error) {
	return s.guide, s.err
}

func (s *stubService) GenerateFlashcards(ctx context.Context, ownerID string, quizID uuid.UUID) (*flashcard.FlashcardSet, error) {
	return s.set, s.err
}

func (s *stubService) GetDetail(ctx context.Context, ownerID string, quizID uuid.UUID) (*quiz.QuizDetailDTO, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &quiz.QuizDetailDTO{Quiz: s.quiz}, nil
}

func (s *stubService) ListByClass(ctx context.Context, ownerID string, classID uuid.UUID) ([]*quiz.Quiz, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []*quiz.Quiz{}, nil
}

func newTestRouter(svc quiz.Service) *chi.Mux {
	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)
		r.Mount("/quizzes", quiz.Routes(quiz.NewHandler(svc)))
	})
	return r
}

func bearerToken(t *testing.T) string {
	t.Helper()
	t.Setenv("JWT_SECRET", "handler-test-secret")
	auth.Init()

	token, err := auth.GenerateJWT("user-123", "student", time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}
	return token
}

func TestGenerateQuizEndpoint(t *testing.T) {
	token := bearerToken(t)
	classID := uuid.NewString()

	do := func(svc quiz.Service, body string, authed bool) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/quizzes", strings.NewReader(body))
		if authed {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		rec := httptest.NewRecorder()
		newTestRouter(svc).ServeHTTP(rec, req)
		return rec
	}

	t.Run("Unauthenticated", func(t *testing.T) {
		rec := do(&stubService{}, `{}`, false)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("want 401, got %d", rec.Code)
		}
	})

	t.Run("Created", func(t *testing.T) {
		svc := &stubService{quiz: &quiz.Quiz{ID: uuid.New(), Title: "T"}}
		rec := do(svc, `{"class_id":"`+classID+`","context":"notes","question_count":3}`, true)
		if rec.Code != http.StatusCreated {
			t.Fatalf("want 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if ct := rec.Header().Get("Content-Type"); !strings.Contains(ct, "application/json") {
			t.Errorf("want JSON response, got %q", ct)
		}
	})

	t.Run("BadClassID", func(t *testing.T) {
		rec := do(&stubService{}, `{"class_id":"not-a-uuid","context":"notes"}`, true)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("want 400, got %d", rec.Code)
		}
	})

	errorCases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"EmptyContext", generation.ErrEmptyContext, http.StatusBadRequest},
		{"ClassNotFound", class.ErrNotFound, http.StatusNotFound},
		{"InvalidJSON", generation.ErrInvalidJSON, http.StatusBadGateway},
		{"UnexpectedStructure", generation.ErrUnexpectedStructure, http.StatusBadGateway},
		{"TransportFailure", context.DeadlineExceeded, http.StatusInternalServerError},
	}
	for _, tc := range errorCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(&stubService{err: tc.err}, `{"class_id":"`+classID+`","context":"notes"}`, true)
			if rec.Code != tc.wantStatus {
				t.Fatalf("want %d, got %d: %s", tc.wantStatus, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestGenerateStudyGuideEndpoint(t *testing.T) {
	token := bearerToken(t)
	quizID := uuid.NewString()

	do := func(svc quiz.Service, path string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, path, nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		newTestRouter(svc).ServeHTTP(rec, req)
		return rec
	}

	t.Run("Created", func(t *testing.T) {
		svc := &stubService{guide: &studyguide.StudyGuide{ID: uuid.New(), Title: "G"}}
		rec := do(svc, "/quizzes/"+quizID+"/study-guide")
		if rec.Code != http.StatusCreated {
			t.Fatalf("want 201, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("QuizNotFound", func(t *testing.T) {
		rec := do(&stubService{err: quiz.ErrNotFound}, "/quizzes/"+quizID+"/study-guide")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("want 404, got %d", rec.Code)
		}
	})

	t.Run("MissingContext", func(t *testing.T) {
		rec := do(&stubService{err: quiz.ErrMissingContext}, "/quizzes/"+quizID+"/study-guide")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("want 400, got %d", rec.Code)
		}
	})

	t.Run("BadQuizID", func(t *testing.T) {
		rec := do(&stubService{}, "/quizzes/not-a-uuid/study-guide")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("want 400, got %d", rec.Code)
		}
	})
}

func TestGenerateFlashcardsEndpoint(t *testing.T) {
	token := bearerToken(t)
	quizID := uuid.NewString()

	svc := &stubService{set: &flashcard.FlashcardSet{ID: uuid.New(), Title: "D"}}
	req := httptest.NewRequest(http.MethodPost, "/quizzes/"+quizID+"/flashcards", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	newTestRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("want 201, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestGetQuizDetailEndpoint(t *testing.T) {
	token := bearerToken(t)

	t.Run("Found", func(t *testing.T) {
		svc := &stubService{quiz: &quiz.Quiz{ID: uuid.New(), Title: "T"}}
		req := httptest.NewRequest(http.MethodGet, "/quizzes/"+uuid.NewString(), nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		newTestRouter(svc).ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("want 200, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/quizzes/"+uuid.NewString(), nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		newTestRouter(&stubService{err: quiz.ErrNotFound}).ServeHTTP(rec, req)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("want 404, got %d", rec.Code)
		}
	})
}
