package studyguide

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	Upsert(g *StudyGuide) error
	GetByQuizAndOwner(quizID, ownerID string) (*StudyGuide, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Upsert replaces any existing guide for the same (quiz_id, owner_id) key,
// last write wins.
func (r *repository) Upsert(g *StudyGuide) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "quiz_id"}, {Name: "owner_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"title", "summary", "sections", "updated_at"}),
	}).Create(g).Error
}

func (r *repository) GetByQuizAndOwner(quizID, ownerID string) (*StudyGuide, error) {
	var guide StudyGuide
	err := r.db.First(&guide, "quiz_id = ? AND owner_id = ?", quizID, ownerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &guide, nil
}
