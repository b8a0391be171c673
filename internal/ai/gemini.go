package ai

import (
	"context"
	"fmt"
	"net/http"
	"os"

	genai "google.golang.org/genai"
)

const DefaultModel = "gemini-2.5-flash"

const recognizePrompt = "Transcribe all text visible in this screenshot. Return only the text, no commentary. If there is no text, return nothing."

type Gemini struct {
	client *genai.Client
	model  string
}

// APIKeyFromEnv prefers GEMINI_API_KEY and falls back to GOOGLE_API_KEY.
func APIKeyFromEnv() string {
	if k := os.Getenv("GEMINI_API_KEY"); k != "" {
		return k
	}
	return os.Getenv("GOOGLE_API_KEY")
}

func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if model == "" {
		model = DefaultModel
	}
	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &Gemini{client: c, model: model}, nil
}

func (g *Gemini) Model() string { return g.model }

func (g *Gemini) generate(ctx context.Context, content []*genai.Content) (string, error) {
	res, err := g.client.Models.GenerateContent(ctx, g.model, content, nil)
	if err != nil {
		return "", fmt.Errorf("gemini API call failed: %w", err)
	}
	return res.Text(), nil
}

// GenerateName sends the prompt as a single user turn and returns the
// cleaned answer.
func (g *Gemini) GenerateName(ctx context.Context, prompt string) (string, error) {
	out, err := g.generate(ctx, []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	})
	if err != nil {
		return "", err
	}
	out = Clean(out)
	if out == "" {
		return "", ErrEmptyResponse
	}
	return out, nil
}

// Recognize is a vision OCR engine: the image bytes are sent inline with a
// transcription instruction. An image with no text yields "".
func (g *Gemini) Recognize(ctx context.Context, image []byte) (string, error) {
	if len(image) == 0 {
		return "", nil
	}
	prompt := &genai.Content{
		Role: genai.RoleUser,
		Parts: []*genai.Part{
			{Text: recognizePrompt},
			{InlineData: &genai.Blob{MIMEType: imageMIME(image), Data: image}},
		},
	}
	out, err := g.generate(ctx, []*genai.Content{prompt})
	if err != nil {
		return "", err
	}
	return stripCodeFences(out), nil
}

func imageMIME(b []byte) string {
	mt := http.DetectContentType(b)
	if mt == "application/octet-stream" {
		// net/http does not sniff tiff
		if isTIFF(b) {
			return "image/tiff"
		}
		return "image/png"
	}
	return mt
}

func isTIFF(b []byte) bool {
	if len(b) < 4 {
		return false
	}
	return (b[0] == 'I' && b[1] == 'I' && b[2] == 42 && b[3] == 0) ||
		(b[0] == 'M' && b[1] == 'M' && b[2] == 0 && b[3] == 42)
}
