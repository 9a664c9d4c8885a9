package container

import (
	"context"
	"log"

	"github.com/sonexa-app/sonexa-api/internal/auth"
	"github.com/sonexa-app/sonexa-api/internal/cache"
	"github.com/sonexa-app/sonexa-api/internal/class"
	"github.com/sonexa-app/sonexa-api/internal/config"
	"github.com/sonexa-app/sonexa-api/internal/flashcard"
	"github.com/sonexa-app/sonexa-api/internal/generation"
	"github.com/sonexa-app/sonexa-api/internal/quiz"
	"github.com/sonexa-app/sonexa-api/internal/studyguide"
	"github.com/sonexa-app/sonexa-api/internal/user"
)

type Container struct {
	Config              config.Config
	UserContainer       *user.UserContainer
	ClassContainer      *class.ClassContainer
	QuizContainer       *quiz.QuizContainer
	GenerationContainer *generation.GenerationContainer
}

func New() *Container {
	cfg := config.Load()
	config.Init()
	auth.Init()

	ctx := context.Background()

	db, err := config.Connect(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	if err := db.AutoMigrate(
		&user.User{},
		&class.Class{},
		&class.QuizContextRef{},
		&quiz.Quiz{},
		&quiz.QuizQuestion{},
		&studyguide.StudyGuide{},
		&flashcard.FlashcardSet{},
	); err != nil {
		log.Fatalf("failed to migrate schema: %v", err)
	}

	generationContainer, err := generation.NewGenerationContainer(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to configure generation provider: %v", err)
	}

	invalidator := cache.NewNoopInvalidator()
	if cfg.RedisAddr != "" {
		invalidator = cache.NewRedisInvalidator(cache.NewClient(cfg.RedisAddr))
	}

	userContainer := user.NewUserContainer(db)
	classContainer := class.NewClassContainer(db)

	studyGuideRepo := studyguide.NewRepository(db)
	flashcardRepo := flashcard.NewRepository(db)

	quizContainer := quiz.NewQuizContainer(
		db,
		classContainer.Repo,
		studyGuideRepo,
		flashcardRepo,
		generationContainer.Service,
		invalidator,
	)

	return &Container{
		Config:              cfg,
		UserContainer:       userContainer,
		ClassContainer:      classContainer,
		QuizContainer:       quizContainer,
		GenerationContainer: generationContainer,
	}
}
