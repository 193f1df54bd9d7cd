package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestFileStorePutWritesAndReturnsURL(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir, "http://localhost:9110/static/")
	if err != nil {
		t.Fatalf("NewFileStore returned error: %v", err)
	}
	url, err := s.Put(context.Background(), "backgrounds/a.jpg", []byte("data"), "image/jpeg")
	if err != nil {
		t.Fatalf("Put returned error: %v", err)
	}
	if url != "http://localhost:9110/static/backgrounds/a.jpg" {
		t.Fatalf("url = %q", url)
	}
	got, err := os.ReadFile(filepath.Join(dir, "backgrounds", "a.jpg"))
	if err != nil {
		t.Fatalf("reading written file: %v", err)
	}
	if string(got) != "data" {
		t.Fatalf("file contents = %q", got)
	}
}

func TestFileStoreRejectsTraversal(t *testing.T) {
	s, err := NewFileStore(t.TempDir(), "http://localhost")
	if err != nil {
		t.Fatalf("NewFileStore returned error: %v", err)
	}
	if _, err := s.Put(context.Background(), "../escape.jpg", []byte("x"), "image/jpeg"); err == nil {
		t.Fatal("expected error for traversal key")
	}
	if _, err := s.Put(context.Background(), "   ", []byte("x"), "image/jpeg"); err == nil {
		t.Fatal("expected error for empty key")
	}
}
