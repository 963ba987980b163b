package storage

import (
	"fmt"
	"strings"
	"time"
)

// Package storage provides the local download ledger abstraction.

// Store tracks mockup files that have already been downloaded.
type Store interface {
	Close() error
	SeenFile(id string) (bool, error)
	MarkFile(id string) error
}

// Options controls retention characteristics for concrete store implementations.
type Options struct {
	FileTTL         time.Duration
	CleanupInterval time.Duration
}

const (
	defaultFileTTL         = 30 * 24 * time.Hour
	defaultCleanupInterval = 12 * time.Hour
)

// NewStore creates the configured storage backend.
func NewStore(typ, path string, opts Options) (Store, error) {
	typ = strings.TrimSpace(strings.ToLower(typ))
	opts = normalizeOptions(opts)

	switch typ {
	case "", "none", "disabled":
		return noopStore{}, nil
	case "bbolt":
		if strings.TrimSpace(path) == "" {
			return nil, fmt.Errorf("bbolt storage requires a path")
		}
		return openBolt(path, opts)
	default:
		return nil, fmt.Errorf("unsupported storage type %q", typ)
	}
}

func normalizeOptions(opts Options) Options {
	if opts.FileTTL <= 0 {
		opts.FileTTL = defaultFileTTL
	}
	if opts.CleanupInterval <= 0 {
		opts.CleanupInterval = defaultCleanupInterval
	}
	return opts
}

type noopStore struct{}

func (noopStore) Close() error                  { return nil }
func (noopStore) SeenFile(string) (bool, error) { return false, nil }
func (noopStore) MarkFile(string) error         { return nil }
