package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/thywilljoshua/shotnamer/internal/ai"
	"github.com/thywilljoshua/shotnamer/internal/rename"
)

func execRename(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := renameCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRenameFailsFastOnBadFolder(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")

	_, err := execRename(t, filepath.Join(t.TempDir(), "missing"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing folder: got %v, want ErrNotExist", err)
	}

	file := filepath.Join(t.TempDir(), "shot.png")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err = execRename(t, file)
	if !errors.Is(err, rename.ErrNotDirectory) {
		t.Errorf("file path: got %v, want ErrNotDirectory", err)
	}
}

func TestRenameRequiresAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "")

	_, err := execRename(t, t.TempDir())
	if !errors.Is(err, ai.ErrMissingAPIKey) {
		t.Errorf("got %v, want ErrMissingAPIKey", err)
	}
}

func TestRenameRequiresFolderArg(t *testing.T) {
	if _, err := execRename(t); err == nil {
		t.Error("expected an error without a folder argument")
	}
}

func TestSplitList(t *testing.T) {
	got := splitList(" .png, .JPG ,,tiff ")
	want := []string{".png", ".JPG", "tiff"}
	if len(got) != len(want) {
		t.Fatalf("splitList = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("splitList[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if splitList("") != nil {
		t.Error("empty list should be nil")
	}
}
