package class

import (
	"time"

	"github.com/google/uuid"
)

type Class struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	OwnerID     string    `gorm:"type:text;not null;index" json:"owner_id"`
	Name        string    `gorm:"type:text;not null" json:"name"`
	Subject     *string   `gorm:"type:text" json:"subject,omitempty"`
	Description *string   `gorm:"type:text" json:"description,omitempty"`
	AccentColor *string   `gorm:"type:text" json:"accent_color,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	QuizContexts []QuizContextRef `gorm:"foreignKey:ClassID;constraint:OnDelete:CASCADE" json:"quiz_contexts,omitempty"`
}

// QuizContextRef archives the material a quiz was generated from on its
// class. Rows are append-only; a ref is written right after its quiz, so a
// class never points at a quiz that does not exist.
type QuizContextRef struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ClassID   uuid.UUID `gorm:"type:uuid;not null;index" json:"class_id"`
	QuizID    uuid.UUID `gorm:"type:uuid;not null;index" json:"quiz_id"`
	Title     string    `gorm:"type:text" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (QuizContextRef) TableName() string {
	return "class_quiz_contexts"
}
