// Package backend selects the record-store implementation from
// configuration: real CSV files on disk, or a throwaway in-memory store.
package backend

import (
	"fmt"
	"log/slog"

	"hourtrack/internal/config"
	"hourtrack/internal/storage"
	"hourtrack/internal/storage/memory"
)

type Type string

const (
	CSVBackend    Type = "csv"
	MemoryBackend Type = "memory"
)

func (t Type) IsValid() bool {
	return t == CSVBackend || t == MemoryBackend
}

// NewStore builds the record store named by the configuration.
func NewStore(cfg *config.Config, logger *slog.Logger) (storage.RecordStore, error) {
	if logger == nil {
		logger = slog.Default()
	}

	switch Type(cfg.DataBackend) {
	case CSVBackend:
		logger.Info("Initialized CSV backend", "data_dir", cfg.DataDir)
		return storage.NewCSVStore(cfg.DataDir), nil
	case MemoryBackend:
		logger.Info("Initialized memory backend")
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("unsupported backend type: %s", cfg.DataBackend)
	}
}
