// Package ocr reads screenshot images and turns them into text.
//
// Recognition itself is delegated to an Engine (Tesseract locally, or a
// vision model). The Extractor wraps an Engine and never returns an error:
// any failure to read or recognise an image is logged and reported as
// empty text, which callers treat as "nothing to name".
package ocr

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// Engine recognises text in encoded image bytes.
type Engine interface {
	Recognize(ctx context.Context, image []byte) (string, error)
}

type Extractor struct {
	Fs      afero.Fs
	Engine  Engine
	Log     logrus.FieldLogger
	Timeout time.Duration // per image; zero means no limit
}

// Extract returns the text found in the image at path, or "" when the image
// cannot be read, recognition fails, or it contains only whitespace.
func (e *Extractor) Extract(ctx context.Context, path string) string {
	log := e.Log.WithField("file", path)

	b, err := afero.ReadFile(e.Fs, path)
	if err != nil {
		log.WithError(err).Warn("cannot read image")
		return ""
	}

	if e.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.Timeout)
		defer cancel()
	}

	text, err := e.Engine.Recognize(ctx, b)
	if err != nil {
		log.WithError(err).Warn("text recognition failed")
		return ""
	}
	if strings.TrimSpace(text) == "" {
		log.Debug("no text recognised")
		return ""
	}
	log.WithField("chars", len(text)).Debug("text recognised")
	return text
}
