package ai

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrMissingAPIKey = errors.New("missing GEMINI_API_KEY (or GOOGLE_API_KEY)")
	ErrEmptyResponse = errors.New("model returned an empty response")
)

// Generator turns a prompt into a short free-form phrase.
type Generator interface {
	GenerateName(ctx context.Context, prompt string) (string, error)
}

// NamePrompt embeds an OCR excerpt in the fixed filename instruction.
func NamePrompt(excerpt string) string {
	var b strings.Builder
	b.WriteString("Based on the following text from a screenshot, generate a short, 2-6 word filename.\n")
	b.WriteString("The name should capture the main topic. Use underscores for spaces. No file extension.\n\n")
	b.WriteString("TEXT:\n---\n")
	b.WriteString(excerpt)
	b.WriteString("\n---\n\nFILENAME:")
	return b.String()
}

// Clean strips the wrapping a model tends to add around a one-line answer:
// code fences, quotes and backticks. Inner newlines become underscores.
func Clean(s string) string {
	s = stripCodeFences(s)
	s = strings.Trim(s, "\"'`")
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\n", "_")
}

func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "```") {
		if nl := strings.Index(s, "\n"); nl != -1 {
			s = s[nl+1:]
		} else {
			s = strings.TrimPrefix(s, "```")
		}
	}

	if strings.HasSuffix(s, "```") {
		s = strings.TrimSuffix(s, "```")
	}

	return strings.TrimSpace(s)
}
