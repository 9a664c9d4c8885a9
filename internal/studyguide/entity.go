package studyguide

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// StudyGuide is the derived guide for a quiz. At most one exists per
// (quiz_id, owner_id); regeneration replaces it in place.
type StudyGuide struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	QuizID    uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_study_guides_quiz_owner" json:"quiz_id"`
	OwnerID   string         `gorm:"type:text;not null;uniqueIndex:idx_study_guides_quiz_owner;index" json:"owner_id"`
	Title     string         `gorm:"type:text;not null" json:"title"`
	Summary   string         `gorm:"type:text;not null" json:"summary"`
	Sections  datatypes.JSON `gorm:"type:jsonb;not null" json:"sections"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

type Section struct {
	Heading      string   `json:"heading"`
	Content      string   `json:"content"`
	BulletPoints []string `json:"bulletPoints"`
}
