package ocr

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

type stubEngine struct {
	text  string
	err   error
	calls int
	got   []byte
	dead  bool // context had a deadline
}

func (s *stubEngine) Recognize(ctx context.Context, image []byte) (string, error) {
	s.calls++
	s.got = image
	_, s.dead = ctx.Deadline()
	return s.text, s.err
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestExtract(t *testing.T) {
	tests := []struct {
		name      string
		write     bool
		engine    *stubEngine
		want      string
		wantCalls int
	}{
		{
			name:      "text passes through",
			write:     true,
			engine:    &stubEngine{text: "Invoice Total Due\n"},
			want:      "Invoice Total Due\n",
			wantCalls: 1,
		},
		{
			name:      "whitespace only is empty",
			write:     true,
			engine:    &stubEngine{text: " \n\t "},
			want:      "",
			wantCalls: 1,
		},
		{
			name:      "engine error is contained",
			write:     true,
			engine:    &stubEngine{err: errors.New("corrupt image")},
			want:      "",
			wantCalls: 1,
		},
		{
			name:      "missing file never reaches engine",
			write:     false,
			engine:    &stubEngine{text: "unused"},
			want:      "",
			wantCalls: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			if tt.write {
				if err := afero.WriteFile(fs, "/shots/a.png", []byte("PNGDATA"), 0o644); err != nil {
					t.Fatal(err)
				}
			}
			e := &Extractor{Fs: fs, Engine: tt.engine, Log: quietLogger()}

			got := e.Extract(context.Background(), "/shots/a.png")
			if got != tt.want {
				t.Errorf("Extract() = %q, want %q", got, tt.want)
			}
			if tt.engine.calls != tt.wantCalls {
				t.Errorf("engine calls = %d, want %d", tt.engine.calls, tt.wantCalls)
			}
			if tt.wantCalls > 0 && string(tt.engine.got) != "PNGDATA" {
				t.Errorf("engine got %q, want file bytes", tt.engine.got)
			}
		})
	}
}

func TestExtractAppliesTimeout(t *testing.T) {
	fs := afero.NewMemMapFs()
	_ = afero.WriteFile(fs, "/a.png", []byte("x"), 0o644)

	eng := &stubEngine{text: "hello"}
	e := &Extractor{Fs: fs, Engine: eng, Log: quietLogger(), Timeout: time.Minute}
	e.Extract(context.Background(), "/a.png")
	if !eng.dead {
		t.Error("expected engine context to carry a deadline")
	}

	eng = &stubEngine{text: "hello"}
	e = &Extractor{Fs: fs, Engine: eng, Log: quietLogger()}
	e.Extract(context.Background(), "/a.png")
	if eng.dead {
		t.Error("expected no deadline when Timeout is zero")
	}
}
