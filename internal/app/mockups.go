package app

import (
	"context"
	"crypto/sha1" //nolint:gosec // non-cryptographic content addressing
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Sufmax/printful-sdk/internal/config"
	"github.com/Sufmax/printful-sdk/internal/download"
	"github.com/Sufmax/printful-sdk/internal/logger"
	"github.com/Sufmax/printful-sdk/internal/storage"
	"github.com/Sufmax/printful-sdk/pkg/jobs"
	"github.com/Sufmax/printful-sdk/pkg/notify"
	"github.com/Sufmax/printful-sdk/pkg/printful"
)

const (
	taskStatusCompleted = "completed"
	taskStatusFailed    = "failed"
)

// Mockups renders every enabled job from the registry: it submits a mockup
// generation task, polls until the generator finishes, downloads the produced
// images, and fans out a completion event per new file.
type Mockups struct {
	cfg        *config.Config
	client     *printful.Client
	registry   *jobs.Registry
	fanout     *notify.Fanout
	store      storage.Store
	downloader *download.Downloader
	log        *logger.Logger
}

// NewMockups wires the mockup pipeline from config. Notifier configuration is
// optional; when the registry file is absent the pipeline only downloads.
func NewMockups(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Mockups, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}

	registry, err := jobs.LoadRegistry(cfg.JobsFile)
	if err != nil {
		return nil, fmt.Errorf("load jobs registry: %w", err)
	}
	if len(registry.Enabled()) == 0 {
		return nil, fmt.Errorf("no enabled jobs in %s", cfg.JobsFile)
	}

	fanout, err := buildFanout(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	store, err := storage.NewStore(cfg.StorageType, cfg.BBoltPath, storage.Options{
		FileTTL:         cfg.StorageTTL,
		CleanupInterval: cfg.StorageCleanupInterval,
	})
	if err != nil {
		return nil, fmt.Errorf("open download ledger: %w", err)
	}

	client := printful.New(
		printful.WithAPIKey(cfg.APIKey),
		printful.WithStoreID(cfg.StoreID),
		printful.WithBaseURL(cfg.BaseURL),
		printful.WithTimeout(cfg.RequestTimeout),
		printful.WithLogger(log),
	)

	return &Mockups{
		cfg:        cfg,
		client:     client,
		registry:   registry,
		fanout:     fanout,
		store:      store,
		downloader: download.New(nil),
		log:        log,
	}, nil
}

func buildFanout(ctx context.Context, cfg *config.Config, log *logger.Logger) (*notify.Fanout, error) {
	if cfg.NotifiersFile == "" {
		return notify.NewFanout(nil), nil
	}

	configs, err := notify.LoadRegistry(cfg.NotifiersFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.WarnObj("notifier registry missing; completion events disabled", "path", cfg.NotifiersFile)
			return notify.NewFanout(nil), nil
		}
		return nil, fmt.Errorf("load notifier registry: %w", err)
	}

	notifiers, err := notify.BuildAll(ctx, notify.DefaultRegistry(), configs.Enabled(), log)
	if err != nil {
		return nil, fmt.Errorf("build notifiers: %w", err)
	}
	return notify.NewFanout(notifiers), nil
}

// Run renders all enabled jobs. Job failures are collected so one broken job
// does not stop the rest of the batch.
func (m *Mockups) Run(ctx context.Context) error {
	defer m.closeStore()

	var errs []error
	for _, job := range m.registry.Enabled() {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		if err := m.runJob(ctx, job); err != nil {
			m.log.ErrorObj("mockup job failed", "job", map[string]any{
				"id":    job.ID,
				"error": err.Error(),
			})
			errs = append(errs, fmt.Errorf("job %s: %w", job.ID, err))
			continue
		}
	}
	return errors.Join(errs...)
}

func (m *Mockups) closeStore() {
	if m.store == nil {
		return
	}
	if err := m.store.Close(); err != nil {
		m.log.WarnObj("failed to close download ledger", "error", err.Error())
	}
}

type mockupTask struct {
	TaskKey string       `json:"task_key"`
	Status  string       `json:"status"`
	Error   string       `json:"error"`
	Mockups []taskMockup `json:"mockups"`
}

type taskMockup struct {
	Placement  string           `json:"placement"`
	VariantIDs []int64          `json:"variant_ids"`
	MockupURL  string           `json:"mockup_url"`
	Extra      []taskMockupFile `json:"extra"`
}

type taskMockupFile struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

func (m *Mockups) runJob(ctx context.Context, job jobs.Job) error {
	files := make([]map[string]any, 0, len(job.Files))
	for _, f := range job.Files {
		files = append(files, map[string]any{
			"placement": f.Placement,
			"image_url": f.ImageURL,
		})
	}

	resp, err := m.client.CreateMockupTask(ctx, job.ProductID, printful.CreateMockupTaskParams{
		VariantIDs: job.VariantIDs,
		Files:      files,
		Format:     job.Format,
		Width:      job.Width,
	})
	if err != nil {
		return fmt.Errorf("create mockup task: %w", err)
	}

	var task mockupTask
	if err := resp.Decode(&task); err != nil {
		return fmt.Errorf("decode mockup task: %w", err)
	}
	if task.TaskKey == "" {
		return fmt.Errorf("mockup task response has no task key")
	}
	m.log.InfoObj("mockup task created", "task", map[string]any{
		"job_id":   job.ID,
		"task_key": task.TaskKey,
		"status":   task.Status,
	})

	result, err := m.awaitTask(ctx, task.TaskKey)
	if err != nil {
		return err
	}

	return m.collect(ctx, job, result)
}

func (m *Mockups) awaitTask(ctx context.Context, taskKey string) (*mockupTask, error) {
	for attempt := 1; attempt <= m.cfg.PollMaxAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(m.cfg.PollInterval):
		}

		resp, err := m.client.MockupTaskResult(ctx, taskKey)
		if err != nil {
			return nil, fmt.Errorf("poll mockup task: %w", err)
		}

		var task mockupTask
		if err := resp.Decode(&task); err != nil {
			return nil, fmt.Errorf("decode mockup task result: %w", err)
		}

		switch task.Status {
		case taskStatusCompleted:
			return &task, nil
		case taskStatusFailed:
			return nil, fmt.Errorf("mockup task %s failed: %s", taskKey, task.Error)
		default:
			m.log.DebugObj("mockup task pending", "poll", map[string]any{
				"task_key": taskKey,
				"status":   task.Status,
				"attempt":  attempt,
			})
		}
	}
	return nil, fmt.Errorf("mockup task %s did not complete after %d attempts", taskKey, m.cfg.PollMaxAttempts)
}

func (m *Mockups) collect(ctx context.Context, job jobs.Job, task *mockupTask) error {
	outputDir := job.OutputDir
	if outputDir == "" {
		outputDir = m.cfg.OutputDir
	}
	outputDir = filepath.Join(outputDir, job.ID)

	// A task returns one entry per variant group, so the same placement can
	// appear several times; the entry index keeps their filenames distinct.
	var errs []error
	downloaded := 0
	for idx, mockup := range task.Mockups {
		name := fmt.Sprintf("%s-%s-%d", job.ID, mockup.Placement, idx+1)
		if err := m.fetchFile(ctx, job, task.TaskKey, mockup.Placement, mockup.MockupURL, filepath.Join(outputDir, name)); err != nil {
			errs = append(errs, err)
		} else {
			downloaded++
		}
		for i, extra := range mockup.Extra {
			extraName := fmt.Sprintf("%s-extra-%d", name, i+1)
			if err := m.fetchFile(ctx, job, task.TaskKey, extra.Title, extra.URL, filepath.Join(outputDir, extraName)); err != nil {
				errs = append(errs, err)
			} else {
				downloaded++
			}
		}
	}

	m.log.InfoObj("mockup job finished", "summary", map[string]any{
		"job_id":     job.ID,
		"task_key":   task.TaskKey,
		"mockups":    len(task.Mockups),
		"downloaded": downloaded,
		"failed":     len(errs),
	})
	return errors.Join(errs...)
}

func (m *Mockups) fetchFile(ctx context.Context, job jobs.Job, taskKey, placement, fileURL, basePath string) error {
	if fileURL == "" {
		return nil
	}

	id := hashURL(fileURL)
	seen, err := m.store.SeenFile(id)
	if err != nil {
		return fmt.Errorf("check download ledger: %w", err)
	}
	if seen {
		m.log.DebugObj("mockup already downloaded", "url", fileURL)
		return nil
	}

	saved, err := m.downloader.Save(ctx, fileURL, basePath)
	if err != nil {
		return fmt.Errorf("download %s: %w", fileURL, err)
	}
	if err := m.store.MarkFile(id); err != nil {
		return fmt.Errorf("record download: %w", err)
	}

	event := notify.NewEvent(job.ID, job.ProductID, taskKey, notify.MockupFile{
		Placement: placement,
		URL:       fileURL,
		LocalPath: saved,
	})
	event.StoreID = m.cfg.StoreID
	if published, err := m.fanout.Publish(ctx, event); err != nil {
		m.log.WarnObj("event fanout incomplete", "fanout", map[string]any{
			"file":      saved,
			"published": published,
			"error":     err.Error(),
		})
	}

	m.log.InfoObj("mockup downloaded", "file", map[string]any{
		"job_id": job.ID,
		"path":   saved,
	})
	return nil
}

func hashURL(raw string) string {
	sum := sha1.Sum([]byte(raw)) //nolint:gosec
	return hex.EncodeToString(sum[:])
}
