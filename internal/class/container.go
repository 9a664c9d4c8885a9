package class

import "gorm.io/gorm"

type ClassContainer struct {
	Repo    Repository
	Service Service
	Handler *Handler
}

func NewClassContainer(db *gorm.DB) *ClassContainer {
	repo := NewRepository(db)
	service := NewService(repo)
	handler := NewHandler(service)

	return &ClassContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}
