package quiz

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/sonexa-app/sonexa-api/internal/cache"
	"github.com/sonexa-app/sonexa-api/internal/class"
	"github.com/sonexa-app/sonexa-api/internal/config"
	"github.com/sonexa-app/sonexa-api/internal/flashcard"
	"github.com/sonexa-app/sonexa-api/internal/generation"
	"github.com/sonexa-app/sonexa-api/internal/studyguide"
)

var (
	ErrNotFound       = errors.New("quiz not found")
	ErrMissingContext = errors.New("quiz has no saved context")
)

// Service orchestrates generation requests. Every flow is strictly
// sequential: resolve context, generate, validate, persist, invalidate.
// A failure at any step is terminal for the request; nothing partial is
// written because persistence only runs after validation.
type Service interface {
	Generate(ctx context.Context, ownerID string, classID uuid.UUID, contextText string, questionCount int) (*Quiz, error)
	GenerateStudyGuide(ctx context.Context, ownerID string, quizID uuid.UUID) (*studyguide.StudyGuide, error)
	GenerateFlashcards(ctx context.Context, ownerID string, quizID uuid.UUID) (*flashcard.FlashcardSet, error)
	GetDetail(ctx context.Context, ownerID string, quizID uuid.UUID) (*QuizDetailDTO, error)
	ListByClass(ctx context.Context, ownerID string, classID uuid.UUID) ([]*Quiz, error)
}

type service struct {
	repo        Repository
	classes     class.Repository
	guides      studyguide.Repository
	cards       flashcard.Repository
	generator   generation.Service
	invalidator cache.Invalidator
}

func NewService(
	repo Repository,
	classes class.Repository,
	guides studyguide.Repository,
	cards flashcard.Repository,
	generator generation.Service,
	invalidator cache.Invalidator,
) Service {
	return &service{
		repo:        repo,
		classes:     classes,
		guides:      guides,
		cards:       cards,
		generator:   generator,
		invalidator: invalidator,
	}
}

func (s *service) Generate(ctx context.Context, ownerID string, classID uuid.UUID, contextText string, questionCount int) (*Quiz, error) {
	log := config.WithContext(ctx)

	trimmed := strings.TrimSpace(contextText)
	if trimmed == "" {
		return nil, generation.ErrEmptyContext
	}

	owningClass, err := s.classes.GetByIDAndOwner(classID.String(), ownerID)
	if err != nil {
		log.WithError(err).Error("failed to fetch class for quiz generation")
		return nil, err
	}
	if owningClass == nil {
		return nil, class.ErrNotFound
	}

	generated, err := s.generator.GenerateQuiz(ctx, owningClass.Name, trimmed, questionCount)
	if err != nil {
		return nil, err
	}

	q := &Quiz{
		ID:            uuid.New(),
		ClassID:       classID,
		OwnerID:       ownerID,
		Title:         generated.Title,
		QuestionCount: len(generated.Questions),
		Context:       trimmed,
	}

	questions := make([]*QuizQuestion, 0, len(generated.Questions))
	for i, gq := range generated.Questions {
		opts, err := json.Marshal(gq.Options)
		if err != nil {
			return nil, fmt.Errorf("encode question options: %w", err)
		}
		questions = append(questions, &QuizQuestion{
			ID:          uuid.New(),
			Prompt:      gq.Prompt,
			Options:     datatypes.JSON(opts),
			Answer:      gq.Answer,
			Explanation: gq.Explanation,
			OrderIndex:  i,
		})
	}

	// Quiz first, then the context ref, so the class never references a
	// quiz that does not exist.
	if err := s.repo.CreateWithQuestions(q, questions); err != nil {
		log.WithError(err).Error("failed to persist generated quiz")
		return nil, err
	}

	ref := &class.QuizContextRef{
		ID:      uuid.New(),
		ClassID: classID,
		QuizID:  q.ID,
		Title:   q.Title,
		Content: trimmed,
	}
	if err := s.classes.AppendQuizContext(ref); err != nil {
		log.WithError(err).Error("failed to archive quiz context on class")
		return nil, err
	}

	s.invalidator.InvalidateQuiz(ctx, classID.String(), q.ID.String())

	log.WithField("quiz_id", q.ID.String()).Info("quiz generated")
	q.Questions = make([]QuizQuestion, 0, len(questions))
	for _, question := range questions {
		q.Questions = append(q.Questions, *question)
	}
	return q, nil
}

func (s *service) GenerateStudyGuide(ctx context.Context, ownerID string, quizID uuid.UUID) (*studyguide.StudyGuide, error) {
	log := config.WithContext(ctx)

	q, err := s.resolveQuizContext(ctx, ownerID, quizID)
	if err != nil {
		return nil, err
	}

	generated, err := s.generator.GenerateStudyGuide(ctx, q.Title, q.Context)
	if err != nil {
		return nil, err
	}

	sections := make([]studyguide.Section, 0, len(generated.Sections))
	for _, sec := range generated.Sections {
		bullets := sec.BulletPoints
		if bullets == nil {
			bullets = []string{}
		}
		sections = append(sections, studyguide.Section{
			Heading:      sec.Heading,
			Content:      sec.Content,
			BulletPoints: bullets,
		})
	}
	encoded, err := json.Marshal(sections)
	if err != nil {
		return nil, fmt.Errorf("encode sections: %w", err)
	}

	guide := &studyguide.StudyGuide{
		ID:       uuid.New(),
		QuizID:   quizID,
		OwnerID:  ownerID,
		Title:    generated.Title,
		Summary:  generated.Summary,
		Sections: datatypes.JSON(encoded),
	}

	if err := s.guides.Upsert(guide); err != nil {
		log.WithError(err).Error("failed to upsert study guide")
		return nil, err
	}

	s.invalidator.InvalidateQuiz(ctx, q.ClassID.String(), quizID.String())

	log.WithField("quiz_id", quizID.String()).Info("study guide generated")
	return guide, nil
}

func (s *service) GenerateFlashcards(ctx context.Context, ownerID string, quizID uuid.UUID) (*flashcard.FlashcardSet, error) {
	log := config.WithContext(ctx)

	q, err := s.resolveQuizContext(ctx, ownerID, quizID)
	if err != nil {
		return nil, err
	}

	generated, err := s.generator.GenerateFlashcards(ctx, q.Title, q.Context)
	if err != nil {
		return nil, err
	}

	cards := make([]flashcard.Card, 0, len(generated.Cards))
	for _, c := range generated.Cards {
		cards = append(cards, flashcard.Card{
			Question: c.Question,
			Answer:   c.Answer,
			Hint:     c.Hint,
		})
	}
	encoded, err := json.Marshal(cards)
	if err != nil {
		return nil, fmt.Errorf("encode cards: %w", err)
	}

	set := &flashcard.FlashcardSet{
		ID:      uuid.New(),
		QuizID:  quizID,
		OwnerID: ownerID,
		Title:   generated.Title,
		Cards:   datatypes.JSON(encoded),
	}

	if err := s.cards.Upsert(set); err != nil {
		log.WithError(err).Error("failed to upsert flashcard set")
		return nil, err
	}

	s.invalidator.InvalidateQuiz(ctx, q.ClassID.String(), quizID.String())

	log.WithField("quiz_id", quizID.String()).Info("flashcard set generated")
	return set, nil
}

// resolveQuizContext fetches the owner's quiz and checks that it still holds
// the material it was generated from. Derivations always reuse this stored
// context, never fresh input.
func (s *service) resolveQuizContext(ctx context.Context, ownerID string, quizID uuid.UUID) (*Quiz, error) {
	log := config.WithContext(ctx)

	q, err := s.repo.GetByIDAndOwner(quizID.String(), ownerID)
	if err != nil {
		log.WithError(err).Error("failed to fetch quiz")
		return nil, err
	}
	if q == nil {
		return nil, ErrNotFound
	}
	if strings.TrimSpace(q.Context) == "" {
		return nil, ErrMissingContext
	}
	return q, nil
}

func (s *service) GetDetail(ctx context.Context, ownerID string, quizID uuid.UUID) (*QuizDetailDTO, error) {
	log := config.WithContext(ctx)

	q, err := s.repo.GetByIDAndOwner(quizID.String(), ownerID)
	if err != nil {
		log.WithError(err).Error("failed to fetch quiz")
		return nil, err
	}
	if q == nil {
		return nil, ErrNotFound
	}

	questions, err := s.repo.ListQuestions(quizID.String())
	if err != nil {
		log.WithError(err).Error("failed to list quiz questions")
		return nil, err
	}

	// The guide and the deck live under independent keys with no ordering
	// dependency, so both reads go out at once.
	var (
		wg       sync.WaitGroup
		guide    *studyguide.StudyGuide
		set      *flashcard.FlashcardSet
		guideErr error
		setErr   error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		guide, guideErr = s.guides.GetByQuizAndOwner(quizID.String(), ownerID)
	}()
	go func() {
		defer wg.Done()
		set, setErr = s.cards.GetByQuizAndOwner(quizID.String(), ownerID)
	}()
	wg.Wait()

	if guideErr != nil {
		log.WithError(guideErr).Error("failed to fetch study guide")
		return nil, guideErr
	}
	if setErr != nil {
		log.WithError(setErr).Error("failed to fetch flashcard set")
		return nil, setErr
	}

	return &QuizDetailDTO{
		Quiz:         q,
		Questions:    questions,
		StudyGuide:   guide,
		FlashcardSet: set,
	}, nil
}

func (s *service) ListByClass(ctx context.Context, ownerID string, classID uuid.UUID) ([]*Quiz, error) {
	log := config.WithContext(ctx)

	quizzes, err := s.repo.ListByClassAndOwner(classID.String(), ownerID)
	if err != nil {
		log.WithError(err).Error("failed to list quizzes")
		return nil, err
	}
	return quizzes, nil
}
