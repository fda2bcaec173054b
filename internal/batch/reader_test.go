package batch_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"tunegrab/internal/batch"
	"tunegrab/internal/services"
)

func writeList(t *testing.T, lines string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "urls.txt")
	if err := os.WriteFile(path, []byte(lines), 0o644); err != nil {
		t.Fatalf("write list: %v", err)
	}
	return path
}

func TestReadFileDeduplicatesAndCountsInvalid(t *testing.T) {
	path := writeList(t, "https://youtu.be/a\n\nbad-url\nhttps://youtu.be/a\n")

	urls, invalid, err := batch.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if urls.Len() != 1 {
		t.Fatalf("expected 1 distinct url, got %d: %v", urls.Len(), urls.Values())
	}
	if !urls.Contains("https://youtu.be/a") {
		t.Fatalf("expected set to contain the valid url, got %v", urls.Values())
	}
	if invalid != 1 {
		t.Fatalf("expected 1 invalid line, got %d", invalid)
	}
}

func TestReadFileSkipsCommentsAndWhitespace(t *testing.T) {
	path := writeList(t, "# playlist dump\n  https://youtu.be/a  \n#https://youtu.be/b\n\n")

	urls, invalid, err := batch.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if urls.Len() != 1 || !urls.Contains("https://youtu.be/a") {
		t.Fatalf("expected trimmed url only, got %v", urls.Values())
	}
	if invalid != 0 {
		t.Fatalf("comments must not count as invalid, got %d", invalid)
	}
}

func TestReadFileMissingPath(t *testing.T) {
	_, _, err := batch.ReadFile(filepath.Join(t.TempDir(), "absent.txt"))
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSetValuesSorted(t *testing.T) {
	set := batch.NewSet()
	for _, url := range []string{"https://youtu.be/c", "https://youtu.be/a", "https://youtu.be/b"} {
		set.Add(url)
	}
	if set.Add("https://youtu.be/a") {
		t.Fatal("duplicate Add must report false")
	}
	values := set.Values()
	want := []string{"https://youtu.be/a", "https://youtu.be/b", "https://youtu.be/c"}
	for i := range want {
		if values[i] != want[i] {
			t.Fatalf("unexpected order: got %v want %v", values, want)
		}
	}
}
