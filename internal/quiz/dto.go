package quiz

import (
	"github.com/sonexa-app/sonexa-api/internal/flashcard"
	"github.com/sonexa-app/sonexa-api/internal/studyguide"
)

type GenerateQuizRequest struct {
	ClassID       string `json:"class_id"`
	Context       string `json:"context"`
	QuestionCount int    `json:"question_count"`
}

// QuizDetailDTO is the full quiz view: the quiz, its ordered questions, and
// whichever derived artifacts exist.
type QuizDetailDTO struct {
	Quiz         *Quiz                   `json:"quiz"`
	Questions    []*QuizQuestion         `json:"questions"`
	StudyGuide   *studyguide.StudyGuide  `json:"study_guide,omitempty"`
	FlashcardSet *flashcard.FlashcardSet `json:"flashcard_set,omitempty"`
}
