package backend

import (
	"testing"
	"time"

	"hourtrack/internal/config"
	"hourtrack/internal/storage"
	"hourtrack/internal/storage/memory"
)

func TestNewStore(t *testing.T) {
	cases := []struct {
		backend string
		wantCSV bool
		wantMem bool
		wantErr bool
	}{
		{backend: "csv", wantCSV: true},
		{backend: "memory", wantMem: true},
		{backend: "redis", wantErr: true},
		{backend: "", wantErr: true},
	}
	for _, tc := range cases {
		cfg := &config.Config{
			DataDir:              t.TempDir(),
			DataBackend:          tc.backend,
			SettingsDBPath:       "./settings.db",
			ReminderPollInterval: time.Minute,
		}
		store, err := NewStore(cfg, nil)
		if tc.wantErr {
			if err == nil {
				t.Errorf("backend %q: expected error", tc.backend)
			}
			continue
		}
		if err != nil {
			t.Errorf("backend %q: %v", tc.backend, err)
			continue
		}
		if _, ok := store.(*storage.CSVStore); ok != tc.wantCSV {
			t.Errorf("backend %q: csv = %v", tc.backend, ok)
		}
		if _, ok := store.(*memory.Store); ok != tc.wantMem {
			t.Errorf("backend %q: memory = %v", tc.backend, ok)
		}
	}
}

func TestTypeIsValid(t *testing.T) {
	if !CSVBackend.IsValid() || !MemoryBackend.IsValid() {
		t.Fatal("known backends must validate")
	}
	if Type("sqlite").IsValid() {
		t.Fatal("unknown backend must not validate")
	}
}
