package rename

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/thywilljoshua/shotnamer/internal/ai"
)

// DefaultExtensions are the image types the screenshot pipeline accepts.
var DefaultExtensions = []string{".png", ".jpg", ".jpeg", ".bmp", ".tiff"}

const DefaultMaxChars = 2000

// TextExtractor returns the text of one image, or "" when there is none.
type TextExtractor interface {
	Extract(ctx context.Context, path string) string
}

// Reporter receives per-file progress. Implementations must not fail.
type Reporter interface {
	Start(dir string, next int)
	Processing(name string)
	Skipped(name string, reason SkipReason)
	Renamed(from, to string, dryRun bool)
	Done(res Result)
}

type Config struct {
	Fs         afero.Fs
	Extensions []string // matched case-insensitively, leading dot optional
	MaxChars   int
	Timeout    time.Duration // per naming call
	DryRun     bool
	Extractor  TextExtractor
	Generator  ai.Generator
	Reporter   Reporter
	Log        logrus.FieldLogger
}

type SkipReason string

const (
	SkipNoText         SkipReason = "no_text"
	SkipEmptyName      SkipReason = "empty_name"
	SkipRenameError    SkipReason = "rename_error"
	SkipIndexExhausted SkipReason = "index_exhausted"
)

type Renamed struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Index int    `json:"index"`
}

type Skipped struct {
	File   string     `json:"file"`
	Reason SkipReason `json:"reason"`
}

type Result struct {
	Dir        string    `json:"dir"`
	StartIndex int       `json:"start_index"`
	NextIndex  int       `json:"next_index"`
	DryRun     bool      `json:"dry_run,omitempty"`
	Renamed    []Renamed `json:"renamed"`
	Skipped    []Skipped `json:"skipped,omitempty"`
	Indexed    int       `json:"already_indexed"`
}
