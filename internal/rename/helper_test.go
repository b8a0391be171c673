package rename

import (
	"context"
	"io"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// fakeExtractor returns canned text keyed by base name.
type fakeExtractor struct {
	text  map[string]string
	calls []string
	hook  func(path string)
}

func (f *fakeExtractor) Extract(ctx context.Context, path string) string {
	name := filepath.Base(path)
	f.calls = append(f.calls, name)
	if f.hook != nil {
		f.hook(path)
	}
	return f.text[name]
}

// fakeGenerator answers with fn, or echoes the excerpt when fn is nil.
type fakeGenerator struct {
	fn      func(prompt string) (string, error)
	prompts []string
}

func (f *fakeGenerator) GenerateName(ctx context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.fn != nil {
		return f.fn(prompt)
	}
	return excerptOf(prompt), nil
}

func excerptOf(prompt string) string {
	parts := strings.Split(prompt, "---")
	if len(parts) < 3 {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newFolder(t *testing.T, names ...string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	if err := fs.MkdirAll("/shots", 0o755); err != nil {
		t.Fatal(err)
	}
	for _, n := range names {
		if err := afero.WriteFile(fs, filepath.Join("/shots", n), []byte("img:"+n), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return fs
}

func folderNames(t *testing.T, fs afero.Fs) []string {
	t.Helper()
	infos, err := afero.ReadDir(fs, "/shots")
	if err != nil {
		t.Fatal(err)
	}
	var out []string
	for _, fi := range infos {
		out = append(out, fi.Name())
	}
	sort.Strings(out)
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
