package generation

import "errors"

var (
	// ErrEmptyContext rejects generation requests whose study material is
	// blank after trimming. Checked before any model call is made.
	ErrEmptyContext = errors.New("context is empty")

	// ErrInvalidJSON means the model output did not parse as JSON at all.
	ErrInvalidJSON = errors.New("model returned invalid JSON")

	// ErrUnexpectedStructure means the output parsed as JSON but does not
	// match the contracted shape for the artifact.
	ErrUnexpectedStructure = errors.New("model response has unexpected structure")
)
