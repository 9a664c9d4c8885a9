package quiz

import (
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	CreateWithQuestions(q *Quiz, questions []*QuizQuestion) error
	GetByIDAndOwner(id, ownerID string) (*Quiz, error)
	ListByClassAndOwner(classID, ownerID string) ([]*Quiz, error)
	ListQuestions(quizID string) ([]*QuizQuestion, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// CreateWithQuestions writes the quiz and its ordered questions atomically.
func (r *repository) CreateWithQuestions(q *Quiz, questions []*QuizQuestion) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(q).Error; err != nil {
			return err
		}

		for i := range questions {
			questions[i].QuizID = q.ID
		}

		if len(questions) > 0 {
			if err := tx.Create(&questions).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *repository) GetByIDAndOwner(id, ownerID string) (*Quiz, error) {
	var q Quiz
	err := r.db.First(&q, "id = ? AND owner_id = ?", id, ownerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &q, nil
}

func (r *repository) ListByClassAndOwner(classID, ownerID string) ([]*Quiz, error) {
	var quizzes []*Quiz
	if err := r.db.
		Where("class_id = ? AND owner_id = ?", classID, ownerID).
		Order("created_at DESC").
		Find(&quizzes).Error; err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (r *repository) ListQuestions(quizID string) ([]*QuizQuestion, error) {
	var questions []*QuizQuestion
	if err := r.db.
		Where("quiz_id = ?", quizID).
		Order("order_index ASC").
		Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}
