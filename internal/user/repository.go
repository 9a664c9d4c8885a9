package user

import (
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	GetByExternalID(externalID string) (*User, error)
	Create(u *User) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByExternalID(externalID string) (*User, error) {
	var u User
	err := r.db.First(&u, "external_id = ?", externalID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *repository) Create(u *User) error {
	return r.db.Create(u).Error
}
