package rename

import (
	"context"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/thywilljoshua/shotnamer/internal/ai"
)

const (
	// FallbackName is used for content-free text; the service is not called.
	FallbackName = "document_scan"
	// FailedName is used when the naming service errors.
	FailedName = "ai_naming_failed"
)

// Namer asks a Generator for a descriptive phrase for some OCR text.
type Namer struct {
	Generator ai.Generator
	MaxChars  int
	Timeout   time.Duration
	Log       logrus.FieldLogger
}

// Name always returns a phrase: the generated one, FallbackName for blank
// text, or FailedName when the service fails. The phrase is not sanitized.
func (n *Namer) Name(ctx context.Context, text string) string {
	if strings.TrimSpace(text) == "" {
		return FallbackName
	}

	excerpt := truncate(text, n.MaxChars)
	if len(excerpt) < len(text) {
		n.Log.WithField("chars", utf8.RuneCountInString(text)).Debugf("excerpt truncated to %d chars", n.MaxChars)
	}

	if n.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, n.Timeout)
		defer cancel()
	}

	name, err := n.Generator.GenerateName(ctx, ai.NamePrompt(excerpt))
	if err != nil {
		n.Log.WithError(err).Warn("naming service failed")
		return FailedName
	}
	return trimImageExt(strings.TrimSpace(name))
}

// truncate cuts s to at most limit characters.
func truncate(s string, limit int) string {
	if limit <= 0 || len(s) <= limit {
		return s
	}
	n := 0
	for i := range s {
		if n == limit {
			return s[:i]
		}
		n++
	}
	return s
}

// Models sometimes ignore "no file extension".
func trimImageExt(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".bmp", ".tiff", ".tif", ".gif", ".webp":
		return strings.TrimSuffix(name, name[len(name)-len(ext):])
	}
	return name
}
