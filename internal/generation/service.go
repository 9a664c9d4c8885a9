package generation

import (
	"context"
	"strings"

	"github.com/sonexa-app/sonexa-api/internal/config"
)

// Service runs the generate-and-validate pipeline for one artifact kind:
// build the prompt pair, call the provider once, gate the raw output through
// the schema validator. Callers persist the result.
type Service interface {
	GenerateQuiz(ctx context.Context, className, contextText string, questionCount int) (*GeneratedQuiz, error)
	GenerateStudyGuide(ctx context.Context, className, contextText string) (*GeneratedStudyGuide, error)
	GenerateFlashcards(ctx context.Context, className, contextText string) (*GeneratedFlashcardSet, error)
}

type service struct {
	provider Provider
}

func NewService(provider Provider) Service {
	return &service{provider: provider}
}

func (s *service) GenerateQuiz(ctx context.Context, className, contextText string, questionCount int) (*GeneratedQuiz, error) {
	log := config.WithContext(ctx)

	trimmed := strings.TrimSpace(contextText)
	if trimmed == "" {
		return nil, ErrEmptyContext
	}
	if questionCount <= 0 {
		questionCount = DefaultQuestionCount
	}

	raw, err := s.provider.Complete(ctx, quizSystemPrompt, buildQuizUserPrompt(className, trimmed, questionCount))
	if err != nil {
		return nil, err
	}

	quiz, err := DecodeQuiz(raw)
	if err != nil {
		log.WithError(err).Error("quiz payload rejected")
		return nil, err
	}

	log.WithField("questions", len(quiz.Questions)).Info("generated quiz")
	return quiz, nil
}

func (s *service) GenerateStudyGuide(ctx context.Context, className, contextText string) (*GeneratedStudyGuide, error) {
	log := config.WithContext(ctx)

	trimmed := strings.TrimSpace(contextText)
	if trimmed == "" {
		return nil, ErrEmptyContext
	}

	raw, err := s.provider.Complete(ctx, studyGuideSystemPrompt, buildStudyGuideUserPrompt(className, trimmed))
	if err != nil {
		return nil, err
	}

	guide, err := DecodeStudyGuide(raw)
	if err != nil {
		log.WithError(err).Error("study guide payload rejected")
		return nil, err
	}

	log.WithField("sections", len(guide.Sections)).Info("generated study guide")
	return guide, nil
}

func (s *service) GenerateFlashcards(ctx context.Context, className, contextText string) (*GeneratedFlashcardSet, error) {
	log := config.WithContext(ctx)

	trimmed := strings.TrimSpace(contextText)
	if trimmed == "" {
		return nil, ErrEmptyContext
	}

	raw, err := s.provider.Complete(ctx, flashcardSystemPrompt, buildFlashcardUserPrompt(className, trimmed))
	if err != nil {
		return nil, err
	}

	set, err := DecodeFlashcardSet(raw)
	if err != nil {
		log.WithError(err).Error("flashcard payload rejected")
		return nil, err
	}

	log.WithField("cards", len(set.Cards)).Info("generated flashcard set")
	return set, nil
}
