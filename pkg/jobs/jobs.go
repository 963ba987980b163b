package jobs

// Package jobs contains the mockup render job registry loaded from
// YAML/JSON config files.

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// configFile represents the structure of the jobs configuration file.
type configFile struct {
	Jobs []Job `json:"jobs" yaml:"jobs"`
}

// PrintFile is a design file applied to a placement area.
type PrintFile struct {
	Placement string `json:"placement" yaml:"placement"`
	ImageURL  string `json:"image_url" yaml:"image_url"`
}

// Job describes a single mockup render job.
type Job struct {
	ID         string      `json:"id" yaml:"id"`
	ProductID  int64       `json:"product_id" yaml:"product_id"`
	VariantIDs []int64     `json:"variant_ids" yaml:"variant_ids"`
	Format     string      `json:"format" yaml:"format"`
	Width      int         `json:"width" yaml:"width"`
	Files      []PrintFile `json:"files" yaml:"files"`
	OutputDir  string      `json:"output_dir" yaml:"output_dir"`
	Enabled    *bool       `json:"enabled" yaml:"enabled"`
}

// EnabledValue returns the enabled flag defaulting to true.
func (j Job) EnabledValue() bool {
	if j.Enabled == nil {
		return true
	}
	return *j.Enabled
}

// Registry materializes job definitions loaded from config files.
type Registry struct {
	mu   sync.RWMutex
	jobs []Job
	idx  map[string]Job
}

// LoadRegistry loads the job registry from a YAML/JSON file.
func LoadRegistry(path string) (*Registry, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("jobs file path is empty")
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open jobs file: %w", err)
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read jobs file: %w", err)
	}

	fileReg, err := parseRegistry(raw, filepath.Ext(path))
	if err != nil {
		return nil, err
	}
	if len(fileReg.Jobs) == 0 {
		return nil, errors.New("jobs file contains no jobs entries")
	}

	reg := &Registry{
		jobs: make([]Job, len(fileReg.Jobs)),
		idx:  make(map[string]Job, len(fileReg.Jobs)),
	}

	for i := range fileReg.Jobs {
		job := sanitizeJob(fileReg.Jobs[i])
		if err := validateJob(job); err != nil {
			return nil, fmt.Errorf("jobs[%d]: %w", i, err)
		}
		if _, exists := reg.idx[job.ID]; exists {
			return nil, fmt.Errorf("duplicate job id %q", job.ID)
		}
		reg.jobs[i] = job
		reg.idx[job.ID] = job
	}

	return reg, nil
}

// parseRegistry attempts to decode the jobs file content.
func parseRegistry(data []byte, ext string) (configFile, error) {
	ext = strings.ToLower(strings.TrimSpace(ext))
	decoders := []struct {
		name string
		ext  string
		fn   func([]byte, any) error
	}{
		{name: "yaml", ext: ".yaml", fn: yaml.Unmarshal},
		{name: "yaml", ext: ".yml", fn: yaml.Unmarshal},
		{name: "json", ext: ".json", fn: json.Unmarshal},
	}

	for _, d := range decoders {
		if ext != "" && ext != d.ext {
			continue
		}
		var reg configFile
		if err := d.fn(data, &reg); err == nil {
			return reg, nil
		}
	}

	return configFile{}, errors.New("jobs file format not recognized (expected YAML or JSON)")
}

// sanitizeJob trims and normalizes the job fields.
func sanitizeJob(job Job) Job {
	job.ID = strings.TrimSpace(job.ID)
	job.Format = strings.ToLower(strings.TrimSpace(job.Format))
	job.OutputDir = strings.TrimSpace(job.OutputDir)

	files := make([]PrintFile, 0, len(job.Files))
	for _, f := range job.Files {
		f.Placement = strings.TrimSpace(f.Placement)
		f.ImageURL = strings.TrimSpace(f.ImageURL)
		if f.Placement == "" && f.ImageURL == "" {
			continue
		}
		files = append(files, f)
	}
	job.Files = files

	if job.Enabled == nil {
		def := true
		job.Enabled = &def
	}

	return job
}

// validateJob checks that required fields are present.
func validateJob(job Job) error {
	if job.ID == "" {
		return errors.New("id is required")
	}
	if job.ProductID <= 0 {
		return fmt.Errorf("product_id is required for job %q", job.ID)
	}
	if len(job.VariantIDs) == 0 {
		return fmt.Errorf("variant_ids are required for job %q", job.ID)
	}
	if len(job.Files) == 0 {
		return fmt.Errorf("files are required for job %q", job.ID)
	}
	for i, f := range job.Files {
		if f.Placement == "" {
			return fmt.Errorf("files[%d].placement is required for job %q", i, job.ID)
		}
		if f.ImageURL == "" {
			return fmt.Errorf("files[%d].image_url is required for job %q", i, job.ID)
		}
	}
	if job.Width < 0 {
		return fmt.Errorf("width must not be negative for job %q", job.ID)
	}
	return nil
}

// ByID returns the job config by id.
func (r *Registry) ByID(id string) (Job, bool) {
	if r == nil {
		return Job{}, false
	}

	id = strings.TrimSpace(id)
	if id == "" {
		return Job{}, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	job, ok := r.idx[id]
	return job, ok
}

// All returns all configured jobs.
func (r *Registry) All() []Job {
	if r == nil {
		return nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Job, len(r.jobs))
	copy(out, r.jobs)
	return out
}

// Enabled returns jobs that are enabled.
func (r *Registry) Enabled() []Job {
	all := r.All()
	if len(all) == 0 {
		return nil
	}

	out := make([]Job, 0, len(all))
	for _, job := range all {
		if job.EnabledValue() {
			out = append(out, job)
		}
	}
	return out
}
