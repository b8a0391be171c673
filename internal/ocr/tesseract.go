package ocr

import (
	"context"
	"fmt"

	"github.com/otiai10/gosseract/v2"
)

const DefaultLanguage = "eng"

// Tesseract runs the local tesseract library through gosseract. A fresh
// client is created per image; the pipeline is sequential so there is no
// pool to manage. The context is only checked before recognition starts;
// gosseract cannot be interrupted mid-call.
type Tesseract struct {
	Languages []string
}

func NewTesseract(langs ...string) *Tesseract {
	if len(langs) == 0 {
		langs = []string{DefaultLanguage}
	}
	return &Tesseract{Languages: langs}
}

func (t *Tesseract) Recognize(ctx context.Context, image []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(t.Languages...); err != nil {
		return "", fmt.Errorf("set tesseract language: %w", err)
	}
	if err := client.SetImageFromBytes(image); err != nil {
		return "", fmt.Errorf("load image: %w", err)
	}
	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("tesseract: %w", err)
	}
	return text, nil
}
