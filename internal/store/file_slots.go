// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/go-qr-keeper/internal/logger"
)

const memoryPath = ":memory:"

type fileSlotStorage struct {
	path     string
	inMemory bool
	logger   *logger.Logger

	mu    sync.RWMutex
	slots map[string]string
}

type filePersistedState struct {
	Slots map[string]string `json:"slots"`
}

// NewFileSlotStorage opens the JSON document at path that holds every slot.
// A missing file is an empty store. An unreadable document is logged and
// treated as empty; the next write replaces it. An empty path or ":memory:"
// keeps slots in memory only.
func NewFileSlotStorage(path string, log *logger.Logger) (SlotStorage, error) {
	if path == "" {
		path = memoryPath
	}

	s := &fileSlotStorage{
		path:     path,
		inMemory: path == memoryPath,
		logger:   log,
		slots:    make(map[string]string),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *fileSlotStorage) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.slots[key]
	return v, ok, nil
}

func (s *fileSlotStorage) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, had := s.slots[key]
	s.slots[key] = value
	if err := s.persist(); err != nil {
		if had {
			s.slots[key] = prev
		} else {
			delete(s.slots, key)
		}
		return err
	}
	return nil
}

func (s *fileSlotStorage) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, had := s.slots[key]
	if !had {
		return nil
	}
	delete(s.slots, key)
	if err := s.persist(); err != nil {
		s.slots[key] = prev
		return err
	}
	return nil
}

func (s *fileSlotStorage) Close() error {
	return nil
}

func (s *fileSlotStorage) load() error {
	if s.inMemory {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read slot file: %w", err)
	}

	var st filePersistedState
	if err = json.Unmarshal(data, &st); err != nil {
		s.logger.Warn().Err(err).
			Str("func", "fileSlotStorage.load").
			Str("path", s.path).
			Msg("slot file is corrupt, starting empty")
		return nil
	}

	if st.Slots != nil {
		s.slots = st.Slots
	}
	return nil
}

// persist writes the whole document to a temporary file and renames it over
// the target so readers never see a partial write.
func (s *fileSlotStorage) persist() error {
	if s.inMemory {
		return nil
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: create dir: %w", ErrWritingSlotFile, err)
	}

	payload, err := json.MarshalIndent(filePersistedState{Slots: s.slots}, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode: %w", ErrWritingSlotFile, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWritingSlotFile, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err = tmp.Write(payload); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %w", ErrWritingSlotFile, err)
	}
	if err = tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %w", ErrWritingSlotFile, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingSlotFile, err)
	}
	if err = os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingSlotFile, err)
	}

	return nil
}
