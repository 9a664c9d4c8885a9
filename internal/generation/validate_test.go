package generation_test

import (
	"errors"
	"testing"

	"github.com/sonexa-app/sonexa-api/internal/generation"
)

const validQuizJSON = `{
	"title": "Cell Biology Basics",
	"questions": [
		{
			"prompt": "What is the powerhouse of the cell?",
			"options": ["Mitochondria", "Nucleus", "Ribosome", "Golgi apparatus"],
			"answer": "Mitochondria",
			"explanation": "Mitochondria produce most of the cell's ATP."
		},
		{
			"prompt": "Which organelle stores genetic material?",
			"options": ["Nucleus", "Lysosome"],
			"answer": "Nucleus"
		},
		{
			"prompt": "Where does protein synthesis occur?",
			"options": ["Ribosome", "Vacuole", "Cell wall"],
			"answer": "Ribosome",
			"explanation": null
		}
	]
}`

func TestDecodeQuiz(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		quiz, err := generation.DecodeQuiz(validQuizJSON)
		if err != nil {
			t.Fatalf("DecodeQuiz rejected a valid payload: %v", err)
		}
		if quiz.Title != "Cell Biology Basics" {
			t.Errorf("wrong title: %q", quiz.Title)
		}
		if len(quiz.Questions) != 3 {
			t.Fatalf("want 3 questions, got %d", len(quiz.Questions))
		}
		if quiz.Questions[1].Explanation != nil {
			t.Error("absent explanation should decode as nil")
		}
		if quiz.Questions[2].Explanation != nil {
			t.Error("null explanation should decode as nil")
		}
	})

	t.Run("AnswerNotAmongOptionsIsAccepted", func(t *testing.T) {
		// Membership of answer in options is deliberately not checked.
		payload := `{"title":"T","questions":[{"prompt":"P?","options":["A","B"],"answer":"C"}]}`
		if _, err := generation.DecodeQuiz(payload); err != nil {
			t.Fatalf("payload should be accepted: %v", err)
		}
	})

	rejections := []struct {
		name string
		raw  string
	}{
		{"MissingTitle", `{"questions":[{"prompt":"P?","options":["A","B"],"answer":"A"}]}`},
		{"BlankTitle", `{"title":"   ","questions":[{"prompt":"P?","options":["A","B"],"answer":"A"}]}`},
		{"MissingQuestions", `{"title": "X"}`},
		{"EmptyQuestions", `{"title":"X","questions":[]}`},
		{"MissingPrompt", `{"title":"X","questions":[{"options":["A","B"],"answer":"A"}]}`},
		{"BlankPrompt", `{"title":"X","questions":[{"prompt":" ","options":["A","B"],"answer":"A"}]}`},
		{"MissingOptions", `{"title":"X","questions":[{"prompt":"P?","answer":"A"}]}`},
		{"SingleOption", `{"title":"X","questions":[{"prompt":"P?","options":["A"],"answer":"A"}]}`},
		{"BlankOption", `{"title":"X","questions":[{"prompt":"P?","options":["A","  "],"answer":"A"}]}`},
		{"MissingAnswer", `{"title":"X","questions":[{"prompt":"P?","options":["A","B"]}]}`},
		{"BlankAnswer", `{"title":"X","questions":[{"prompt":"P?","options":["A","B"],"answer":""}]}`},
		{"NumericExplanation", `{"title":"X","questions":[{"prompt":"P?","options":["A","B"],"answer":"A","explanation":7}]}`},
		{"QuestionsNotArray", `{"title":"X","questions":"none"}`},
		{"TopLevelArray", `[{"title":"X"}]`},
	}

	for _, tc := range rejections {
		t.Run(tc.name, func(t *testing.T) {
			_, err := generation.DecodeQuiz(tc.raw)
			if err == nil {
				t.Fatal("payload should have been rejected")
			}
			if !errors.Is(err, generation.ErrUnexpectedStructure) {
				t.Errorf("want ErrUnexpectedStructure, got: %v", err)
			}
		})
	}
}

func TestDecodeStudyGuide(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		payload := `{
			"title": "Guide",
			"summary": "A summary.",
			"sections": [
				{"heading": "H1", "content": "C1", "bulletPoints": ["one", "two"]},
				{"heading": "H2", "content": "C2"}
			]
		}`
		guide, err := generation.DecodeStudyGuide(payload)
		if err != nil {
			t.Fatalf("DecodeStudyGuide rejected a valid payload: %v", err)
		}
		if len(guide.Sections) != 2 {
			t.Fatalf("want 2 sections, got %d", len(guide.Sections))
		}
		if guide.Sections[1].BulletPoints != nil {
			t.Error("absent bulletPoints should decode as nil")
		}
	})

	rejections := []struct {
		name string
		raw  string
	}{
		{"MissingSummary", `{"title":"G","sections":[{"heading":"H","content":"C"}]}`},
		{"BlankSummary", `{"title":"G","summary":"  ","sections":[{"heading":"H","content":"C"}]}`},
		{"EmptySections", `{"title":"G","summary":"S","sections":[]}`},
		{"BlankHeading", `{"title":"G","summary":"S","sections":[{"heading":"","content":"C"}]}`},
		{"MissingContent", `{"title":"G","summary":"S","sections":[{"heading":"H"}]}`},
		{"BlankBulletPoint", `{"title":"G","summary":"S","sections":[{"heading":"H","content":"C","bulletPoints":[" "]}]}`},
		{"BulletPointsNotArray", `{"title":"G","summary":"S","sections":[{"heading":"H","content":"C","bulletPoints":"x"}]}`},
	}

	for _, tc := range rejections {
		t.Run(tc.name, func(t *testing.T) {
			_, err := generation.DecodeStudyGuide(tc.raw)
			if err == nil {
				t.Fatal("payload should have been rejected")
			}
			if !errors.Is(err, generation.ErrUnexpectedStructure) {
				t.Errorf("want ErrUnexpectedStructure, got: %v", err)
			}
		})
	}
}

func TestDecodeFlashcardSet(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		payload := `{
			"title": "Deck",
			"cards": [
				{"question": "Q1", "answer": "A1", "hint": "H1"},
				{"question": "Q2", "answer": "A2"},
				{"question": "Q3", "answer": "A3", "hint": null}
			]
		}`
		set, err := generation.DecodeFlashcardSet(payload)
		if err != nil {
			t.Fatalf("DecodeFlashcardSet rejected a valid payload: %v", err)
		}
		if len(set.Cards) != 3 {
			t.Fatalf("want 3 cards, got %d", len(set.Cards))
		}
		if set.Cards[0].Hint == nil || *set.Cards[0].Hint != "H1" {
			t.Error("hint should survive decoding")
		}
		if set.Cards[1].Hint != nil || set.Cards[2].Hint != nil {
			t.Error("absent and null hints should decode as nil")
		}
	})

	rejections := []struct {
		name string
		raw  string
	}{
		{"MissingCards", `{"title":"D"}`},
		{"EmptyCards", `{"title":"D","cards":[]}`},
		{"MissingQuestion", `{"title":"D","cards":[{"answer":"A"}]}`},
		{"BlankAnswer", `{"title":"D","cards":[{"question":"Q","answer":"  "}]}`},
		{"NumericHint", `{"title":"D","cards":[{"question":"Q","answer":"A","hint":3}]}`},
	}

	for _, tc := range rejections {
		t.Run(tc.name, func(t *testing.T) {
			_, err := generation.DecodeFlashcardSet(tc.raw)
			if err == nil {
				t.Fatal("payload should have been rejected")
			}
			if !errors.Is(err, generation.ErrUnexpectedStructure) {
				t.Errorf("want ErrUnexpectedStructure, got: %v", err)
			}
		})
	}
}

func TestInvalidJSONIsNeverStructural(t *testing.T) {
	inputs := []struct {
		name string
		raw  string
	}{
		{"Empty", ""},
		{"Prose", "Sorry, I cannot help with that."},
		{"Truncated", `{"title": "Cut off`},
		{"MarkdownFence", "```json\n{\"title\":\"X\"}\n```"},
	}

	for _, tc := range inputs {
		t.Run(tc.name, func(t *testing.T) {
			for _, decode := range []func(string) error{
				func(raw string) error { _, err := generation.DecodeQuiz(raw); return err },
				func(raw string) error { _, err := generation.DecodeStudyGuide(raw); return err },
				func(raw string) error { _, err := generation.DecodeFlashcardSet(raw); return err },
			} {
				err := decode(tc.raw)
				if err == nil {
					t.Fatal("non-JSON input should have been rejected")
				}
				if !errors.Is(err, generation.ErrInvalidJSON) {
					t.Errorf("want ErrInvalidJSON, got: %v", err)
				}
				if errors.Is(err, generation.ErrUnexpectedStructure) {
					t.Error("non-JSON input must never be reported as a structure mismatch")
				}
			}
		})
	}
}
