package quiz

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Quiz is immutable after creation; derived artifacts reference it by id and
// reuse its stored Context for regeneration.
type Quiz struct {
	ID            uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ClassID       uuid.UUID `gorm:"type:uuid;not null;index" json:"class_id"`
	OwnerID       string    `gorm:"type:text;not null;index" json:"owner_id"`
	Title         string    `gorm:"type:text;not null" json:"title"`
	QuestionCount int       `gorm:"not null" json:"question_count"`
	Context       string    `gorm:"type:text;not null" json:"context"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`

	Questions []QuizQuestion `gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE" json:"questions,omitempty"`
}

type QuizQuestion struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	QuizID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"quiz_id"`
	Prompt      string         `gorm:"type:text;not null" json:"prompt"`
	Options     datatypes.JSON `gorm:"type:jsonb;not null" json:"options"`
	Answer      string         `gorm:"type:text;not null" json:"answer"`
	Explanation *string        `gorm:"type:text" json:"explanation,omitempty"`
	OrderIndex  int            `gorm:"not null" json:"order_index"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
}
