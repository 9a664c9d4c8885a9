package generation

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	return v
}

// decode runs the two-stage gate over raw model output: text that is not JSON
// at all is reported as ErrInvalidJSON; JSON that does not satisfy the
// declared shape (wrong types, missing or blank required fields) is reported
// as ErrUnexpectedStructure. Acceptance is all-or-nothing; nothing is
// repaired.
func decode(raw string, out interface{}) error {
	var probe interface{}
	if err := json.Unmarshal([]byte(raw), &probe); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return fmt.Errorf("%w: %v", ErrUnexpectedStructure, err)
	}

	if err := validate.Struct(out); err != nil {
		return fmt.Errorf("%w: %v", ErrUnexpectedStructure, err)
	}
	return nil
}

func DecodeQuiz(raw string) (*GeneratedQuiz, error) {
	var quiz GeneratedQuiz
	if err := decode(raw, &quiz); err != nil {
		return nil, err
	}
	return &quiz, nil
}

func DecodeStudyGuide(raw string) (*GeneratedStudyGuide, error) {
	var guide GeneratedStudyGuide
	if err := decode(raw, &guide); err != nil {
		return nil, err
	}
	return &guide, nil
}

func DecodeFlashcardSet(raw string) (*GeneratedFlashcardSet, error) {
	var set GeneratedFlashcardSet
	if err := decode(raw, &set); err != nil {
		return nil, err
	}
	return &set, nil
}
