package generation

import "fmt"

// DefaultQuestionCount is used when the caller does not ask for a specific
// quiz length.
const DefaultQuestionCount = 20

const quizSystemPrompt = `You are Sonexa, an educational assistant that prepares concise study quizzes.

Respond strictly in JSON with the shape:
{
  "title": string,
  "questions": [
    {
      "prompt": string,
      "options": string[],
      "answer": string,
      "explanation": string
    }
  ]
}

Guidelines:
- Tailor the quiz to the provided class name and context.
- Provide only 4 options per question.
- Keep explanations brief (1-2 sentences).
- Do not include any additional text outside the JSON payload.`

const studyGuideSystemPrompt = `You are Sonexa, an educational assistant. Produce structured study guides in JSON with the shape:
{
  "title": string,
  "summary": string,
  "sections": [
    {
      "heading": string,
      "content": string,
      "bulletPoints": string[]
    }
  ]
}

Guidelines:
- Craft 3-5 sections that cover the most important ideas.
- Keep the summary under ~120 words.
- Bullet points should be concise (10 words or fewer).
- Never add extra text outside the JSON.`

const flashcardSystemPrompt = `You are Sonexa, an educational assistant. Produce flashcards in JSON with the shape:
{
  "title": string,
  "cards": [
    {
      "question": string,
      "answer": string,
      "hint": string
    }
  ]
}

Guidelines:
- Provide 10 flashcards unless fewer concepts exist.
- Questions should be clear and answerable in one sentence.
- Hints are optional; include them when they reinforce retrieval cues.
- Never return text outside the JSON.`

func buildQuizUserPrompt(className, contextText string, questionCount int) string {
	return fmt.Sprintf(
		"Create a %d-question multiple-choice quiz for the class %q. Use this context:\n\n%s",
		questionCount, className, contextText,
	)
}

func buildStudyGuideUserPrompt(className, contextText string) string {
	return fmt.Sprintf(
		"Create a study guide for the %q class using the following material:\n\n%s",
		className, contextText,
	)
}

func buildFlashcardUserPrompt(className, contextText string) string {
	return fmt.Sprintf(
		"Generate a flashcard deck for the %q class using this material:\n\n%s",
		className, contextText,
	)
}
