package download

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSaveWritesBody(t *testing.T) {
	payload := []byte("fake-image-bytes")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "image/jpeg")
		w.Write(payload)
	}))
	defer srv.Close()

	dir := t.TempDir()
	dl := New(nil)

	path, err := dl.Save(context.Background(), srv.URL, filepath.Join(dir, "nested", "front.jpg"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read saved file: %v", err)
	}
	if string(got) != string(payload) {
		t.Fatalf("saved body = %q", got)
	}
}

func TestSaveDerivesExtensionFromContentType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write([]byte("png-bytes"))
	}))
	defer srv.Close()

	dir := t.TempDir()
	dl := New(nil)

	path, err := dl.Save(context.Background(), srv.URL, filepath.Join(dir, "front"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !strings.HasSuffix(path, ".png") {
		t.Fatalf("path = %q, want .png suffix", path)
	}
}

func TestSaveRejectsNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "gone", http.StatusGone)
	}))
	defer srv.Close()

	dl := New(nil)
	if _, err := dl.Save(context.Background(), srv.URL, filepath.Join(t.TempDir(), "x.jpg")); err == nil {
		t.Fatalf("expected error on non-200 response")
	}
}
