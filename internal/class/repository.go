package class

import (
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	Create(c *Class) error
	GetByIDAndOwner(id, ownerID string) (*Class, error)
	ListByOwner(ownerID string) ([]*Class, error)
	AppendQuizContext(ref *QuizContextRef) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(c *Class) error {
	return r.db.Create(c).Error
}

func (r *repository) GetByIDAndOwner(id, ownerID string) (*Class, error) {
	var c Class
	err := r.db.
		Preload("QuizContexts", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		First(&c, "id = ? AND owner_id = ?", id, ownerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *repository) ListByOwner(ownerID string) ([]*Class, error) {
	var classes []*Class
	if err := r.db.
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&classes).Error; err != nil {
		return nil, err
	}
	return classes, nil
}

func (r *repository) AppendQuizContext(ref *QuizContextRef) error {
	return r.db.Create(ref).Error
}
