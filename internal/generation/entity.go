package generation

// Payload shapes the model is contracted to return, one per artifact kind.
// The validate tags are the declared schema; anything the model returns that
// does not satisfy them is rejected before it can reach storage.

type GeneratedQuiz struct {
	Title     string              `json:"title" validate:"notblank"`
	Questions []GeneratedQuestion `json:"questions" validate:"min=1,dive"`
}

type GeneratedQuestion struct {
	Prompt      string   `json:"prompt" validate:"notblank"`
	Options     []string `json:"options" validate:"min=2,dive,notblank"`
	Answer      string   `json:"answer" validate:"notblank"`
	Explanation *string  `json:"explanation"`
}

type GeneratedStudyGuide struct {
	Title    string             `json:"title" validate:"notblank"`
	Summary  string             `json:"summary" validate:"notblank"`
	Sections []GeneratedSection `json:"sections" validate:"min=1,dive"`
}

type GeneratedSection struct {
	Heading      string   `json:"heading" validate:"notblank"`
	Content      string   `json:"content" validate:"notblank"`
	BulletPoints []string `json:"bulletPoints" validate:"omitempty,dive,notblank"`
}

type GeneratedFlashcardSet struct {
	Title string          `json:"title" validate:"notblank"`
	Cards []GeneratedCard `json:"cards" validate:"min=1,dive"`
}

type GeneratedCard struct {
	Question string  `json:"question" validate:"notblank"`
	Answer   string  `json:"answer" validate:"notblank"`
	Hint     *string `json:"hint"`
}
