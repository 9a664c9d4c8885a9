package flashcard

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// FlashcardSet is the derived deck for a quiz. At most one exists per
// (quiz_id, owner_id); regeneration replaces it in place.
type FlashcardSet struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	QuizID    uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_flashcard_sets_quiz_owner" json:"quiz_id"`
	OwnerID   string         `gorm:"type:text;not null;uniqueIndex:idx_flashcard_sets_quiz_owner;index" json:"owner_id"`
	Title     string         `gorm:"type:text;not null" json:"title"`
	Cards     datatypes.JSON `gorm:"type:jsonb;not null" json:"cards"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

type Card struct {
	Question string  `json:"question"`
	Answer   string  `json:"answer"`
	Hint     *string `json:"hint,omitempty"`
}
