package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/sonexa-app/sonexa-api/internal/auth"
	"github.com/sonexa-app/sonexa-api/internal/class"
	"github.com/sonexa-app/sonexa-api/internal/quiz"
	"github.com/sonexa-app/sonexa-api/internal/user"
)

type RouterConfig struct {
	UserHandler  *user.Handler
	ClassHandler *class.Handler
	QuizHandler  *quiz.Handler
}

func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Post("/auth/logout", auth.NewHandler().Logout)

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Mount("/users", user.Routes(cfg.UserHandler))
		r.Mount("/classes", class.Routes(cfg.ClassHandler))
		r.Mount("/quizzes", quiz.Routes(cfg.QuizHandler))

		r.Get("/classes/{id}/quizzes", cfg.QuizHandler.ListQuizzesByClass)
	})
	return r
}
