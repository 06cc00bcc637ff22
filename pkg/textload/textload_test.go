package textload

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeTemp(t, "essay.txt", []byte("the cat sat on the mat"))

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got != "the cat sat on the mat" {
		t.Errorf("Load() = %q, want %q", got, "the cat sat on the mat")
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	path := writeTemp(t, "empty.txt", nil)

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got != "" {
		t.Errorf("Load() = %q, want empty string", got)
	}
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Load() error = %v, want ErrNotFound", err)
	}
}

func TestLoad_BinaryContent(t *testing.T) {
	path := writeTemp(t, "binary.bin", []byte{0x00, 0x01, 0x02, 'a', 'b'})

	_, err := Load(path)
	if !errors.Is(err, ErrUnreadable) {
		t.Errorf("Load() error = %v, want ErrUnreadable", err)
	}
}

func TestLoad_InvalidUTF8(t *testing.T) {
	path := writeTemp(t, "latin1.txt", []byte{'c', 'a', 'f', 0xe9})

	_, err := Load(path)
	if !errors.Is(err, ErrUnreadable) {
		t.Errorf("Load() error = %v, want ErrUnreadable", err)
	}
}

func TestLoadLines(t *testing.T) {
	path := writeTemp(t, "urls.txt", []byte("https://example.com\n\n  https://example.org  \n"))

	lines, err := LoadLines(path)
	if err != nil {
		t.Fatalf("LoadLines() error = %v", err)
	}

	want := []string{"https://example.com", "https://example.org"}
	if len(lines) != len(want) {
		t.Fatalf("LoadLines() returned %d lines, want %d", len(lines), len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("LoadLines()[%d] = %q, want %q", i, lines[i], want[i])
		}
	}
}
