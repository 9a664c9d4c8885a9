package flashcard

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	Upsert(set *FlashcardSet) error
	GetByQuizAndOwner(quizID, ownerID string) (*FlashcardSet, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Upsert replaces any existing set for the same (quiz_id, owner_id) key,
// last write wins.
func (r *repository) Upsert(set *FlashcardSet) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "quiz_id"}, {Name: "owner_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"title", "cards", "updated_at"}),
	}).Create(set).Error
}

func (r *repository) GetByQuizAndOwner(quizID, ownerID string) (*FlashcardSet, error) {
	var set FlashcardSet
	err := r.db.First(&set, "quiz_id = ? AND owner_id = ?", quizID, ownerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &set, nil
}
