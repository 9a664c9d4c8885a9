package class

import "strings"

type CreateClassInput struct {
	Name        string `json:"name"`
	Subject     string `json:"subject"`
	Description string `json:"description"`
	AccentColor string `json:"accent_color"`
}

// normalize trims every field and drops optional ones that end up blank.
func (in CreateClassInput) normalize() (string, *string, *string, *string) {
	return strings.TrimSpace(in.Name),
		optional(in.Subject),
		optional(in.Description),
		optional(in.AccentColor)
}

func optional(s string) *string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
