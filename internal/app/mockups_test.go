package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Sufmax/printful-sdk/internal/config"
	"github.com/Sufmax/printful-sdk/internal/download"
	"github.com/Sufmax/printful-sdk/internal/storage"
	"github.com/Sufmax/printful-sdk/pkg/httpclient"
	"github.com/Sufmax/printful-sdk/pkg/jobs"
	"github.com/Sufmax/printful-sdk/pkg/notify"
)

type fakeImageResponse struct {
	body []byte
}

func (r fakeImageResponse) Body() []byte       { return r.body }
func (r fakeImageResponse) StatusCode() int    { return 200 }
func (fakeImageResponse) Header(string) string { return "image/jpeg" }

type fakeImageClient struct {
	bodies map[string]string
}

func (c fakeImageClient) Get(_ context.Context, url string, _ map[string]string) (httpclient.Response, error) {
	return fakeImageResponse{body: []byte(c.bodies[url])}, nil
}

func newTestMockups(t *testing.T, client httpclient.Client) *Mockups {
	t.Helper()

	store, err := storage.NewStore("none", "", storage.Options{})
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	return &Mockups{
		cfg:        &config.Config{OutputDir: t.TempDir()},
		store:      store,
		downloader: download.New(client),
		fanout:     notify.NewFanout(nil),
	}
}

func TestCollectKeepsSamePlacementMockupsApart(t *testing.T) {
	client := fakeImageClient{bodies: map[string]string{
		"https://img.example/front-a": "FIRST",
		"https://img.example/front-b": "SECOND",
	}}
	m := newTestMockups(t, client)

	job := jobs.Job{ID: "tee", ProductID: 71}
	task := &mockupTask{
		TaskKey: "task-1",
		Status:  taskStatusCompleted,
		Mockups: []taskMockup{
			{Placement: "front", VariantIDs: []int64{4011}, MockupURL: "https://img.example/front-a"},
			{Placement: "front", VariantIDs: []int64{4012, 4013}, MockupURL: "https://img.example/front-b"},
		},
	}

	if err := m.collect(context.Background(), job, task); err != nil {
		t.Fatalf("collect: %v", err)
	}

	dir := filepath.Join(m.cfg.OutputDir, "tee")
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 2 {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Fatalf("downloaded %d files (%v), want 2", len(entries), names)
	}

	seen := map[string]bool{}
	for _, e := range entries {
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			t.Fatalf("ReadFile %s: %v", e.Name(), err)
		}
		seen[string(data)] = true
	}
	if !seen["FIRST"] || !seen["SECOND"] {
		t.Fatalf("file contents = %v, want both images", seen)
	}
}

func TestCollectDownloadsExtraFiles(t *testing.T) {
	client := fakeImageClient{bodies: map[string]string{
		"https://img.example/front":      "MAIN",
		"https://img.example/front-zoom": "ZOOM",
	}}
	m := newTestMockups(t, client)

	job := jobs.Job{ID: "tee", ProductID: 71}
	task := &mockupTask{
		TaskKey: "task-2",
		Status:  taskStatusCompleted,
		Mockups: []taskMockup{
			{
				Placement: "front",
				MockupURL: "https://img.example/front",
				Extra:     []taskMockupFile{{Title: "Front zoom", URL: "https://img.example/front-zoom"}},
			},
		},
	}

	if err := m.collect(context.Background(), job, task); err != nil {
		t.Fatalf("collect: %v", err)
	}

	entries, err := os.ReadDir(filepath.Join(m.cfg.OutputDir, "tee"))
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("downloaded %d files, want 2", len(entries))
	}
}
