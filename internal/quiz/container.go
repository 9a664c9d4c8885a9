package quiz

import (
	"gorm.io/gorm"

	"github.com/sonexa-app/sonexa-api/internal/cache"
	"github.com/sonexa-app/sonexa-api/internal/class"
	"github.com/sonexa-app/sonexa-api/internal/flashcard"
	"github.com/sonexa-app/sonexa-api/internal/generation"
	"github.com/sonexa-app/sonexa-api/internal/studyguide"
)

type QuizContainer struct {
	Repo    Repository
	Service Service
	Handler *Handler
}

func NewQuizContainer(
	db *gorm.DB,
	classes class.Repository,
	guides studyguide.Repository,
	cards flashcard.Repository,
	generator generation.Service,
	invalidator cache.Invalidator,
) *QuizContainer {
	repo := NewRepository(db)
	service := NewService(repo, classes, guides, cards, generator, invalidator)
	handler := NewHandler(service)

	return &QuizContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}
