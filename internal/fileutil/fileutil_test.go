package fileutil_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"tunegrab/internal/fileutil"
)

func TestCopyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.mp3")
	dst := filepath.Join(dir, "dst.mp3")
	if err := os.WriteFile(src, []byte("audio-bytes"), 0o644); err != nil {
		t.Fatalf("write src: %v", err)
	}

	if err := fileutil.CopyFile(src, dst); err != nil {
		t.Fatalf("CopyFile: %v", err)
	}
	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("read dst: %v", err)
	}
	if string(got) != "audio-bytes" {
		t.Fatalf("unexpected dst contents: %q", got)
	}
}

func TestMoveFileOverwrites(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "staged.mp3")
	dst := filepath.Join(dir, "final.mp3")
	if err := os.WriteFile(src, []byte("new"), 0o644); err != nil {
		t.Fatalf("write src: %v", err)
	}
	if err := os.WriteFile(dst, []byte("old"), 0o644); err != nil {
		t.Fatalf("write dst: %v", err)
	}

	if err := fileutil.MoveFile(src, dst); err != nil {
		t.Fatalf("MoveFile: %v", err)
	}
	if _, err := os.Stat(src); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected source removed, got err=%v", err)
	}
	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("read dst: %v", err)
	}
	if string(got) != "new" {
		t.Fatalf("expected overwrite, got %q", got)
	}
}

func TestMoveFileMissingSource(t *testing.T) {
	dir := t.TempDir()
	err := fileutil.MoveFile(filepath.Join(dir, "absent"), filepath.Join(dir, "dst"))
	if err == nil {
		t.Fatal("expected error for missing source")
	}
}

func TestMoveFileFailureKeepsExistingTarget(t *testing.T) {
	dir := t.TempDir()
	dst := filepath.Join(dir, "final.mp3")
	if err := os.WriteFile(dst, []byte("keep"), 0o644); err != nil {
		t.Fatalf("write dst: %v", err)
	}

	if err := fileutil.MoveFile(filepath.Join(dir, "absent"), dst); err == nil {
		t.Fatal("expected error for missing source")
	}
	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("read dst: %v", err)
	}
	if string(got) != "keep" {
		t.Fatalf("existing target must survive a failed move, got %q", got)
	}
	if _, err := os.Stat(dst + ".partial"); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("no staging file should remain, got err=%v", err)
	}
}
