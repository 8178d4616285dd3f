// Package localfs persists the ledger document as a JSON file on local disk.
package localfs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"localpay-gateway/internal/core/domain"
	"localpay-gateway/internal/core/ports"

	"github.com/rs/zerolog"
)

// StateFile implements ports.StateStore. Save writes a temp file in the same
// directory, syncs it and renames it over the target, so a crash leaves
// either the previous or the new document.
type StateFile struct {
	path       string
	legacyPath string
	log        zerolog.Logger
	mu         sync.Mutex
}

var _ ports.StateStore = (*StateFile)(nil)

// NewStateFile creates a file store at path. legacyPath may be empty.
func NewStateFile(path, legacyPath string, log zerolog.Logger) *StateFile {
	return &StateFile{path: path, legacyPath: legacyPath, log: log}
}

func (s *StateFile) Load(ctx context.Context) (domain.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	switch {
	case err == nil:
		return domain.DecodeState(data)
	case !errors.Is(err, fs.ErrNotExist):
		return domain.State{}, fmt.Errorf("read state file: %w", err)
	}

	if s.legacyPath == "" {
		return domain.State{}, ports.ErrStateNotFound
	}
	data, err = os.ReadFile(s.legacyPath)
	if errors.Is(err, fs.ErrNotExist) {
		return domain.State{}, ports.ErrStateNotFound
	}
	if err != nil {
		return domain.State{}, fmt.Errorf("read legacy state file: %w", err)
	}
	s.log.Info().Str("path", s.legacyPath).Msg("loading legacy invoice file")
	return domain.DecodeLegacyState(data)
}

func (s *StateFile) Save(ctx context.Context, state domain.State) error {
	data, err := json.Marshal(state.Normalize())
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp state file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) //nolint:errcheck

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp state file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync temp state file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp state file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replace state file: %w", err)
	}
	return nil
}

// HealthCheck reports whether the state directory is writable.
type HealthCheck struct {
	path string
}

func NewHealthCheck(path string) *HealthCheck {
	return &HealthCheck{path: path}
}

func (h *HealthCheck) Ping(ctx context.Context) error {
	dir := filepath.Dir(h.path)
	f, err := os.CreateTemp(dir, ".health.*")
	if err != nil {
		return fmt.Errorf("state dir not writable: %w", err)
	}
	name := f.Name()
	f.Close()
	return os.Remove(name)
}

func (h *HealthCheck) Name() string { return "state_file" }
