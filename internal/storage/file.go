package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/tradi3/chatquest/internal/domain"
)

// FileStore keeps the snapshot in memory and mirrors every successful
// Update to a JSON document on disk, with a ".bak" sibling holding the
// previous good copy.
type FileStore struct {
	path string

	mu   sync.RWMutex
	snap *domain.Snapshot
}

// Open loads (or initializes) the document at path. A corrupt or missing
// primary falls back to the backup copy; if that also fails the store
// starts from an empty valid shape. Open never fails on bad content,
// only on unusable directories.
func Open(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf(ErrMsgCreateDataDirFailed, err)
	}

	snap, err := readDocument(path)
	if err != nil {
		slog.Warn(LogMsgPrimaryUnreadable, "path", path, "error", err)
		snap, err = readDocument(backupPath(path))
		if err != nil {
			slog.Warn(LogMsgBackupUnreadable, "path", backupPath(path), "error", err)
			snap = domain.NewSnapshot()
		}
	}

	return &FileStore{path: path, snap: snap}, nil
}

func backupPath(path string) string {
	return path + BackupSuffix
}

// readDocument parses one candidate file into a normalized snapshot.
func readDocument(path string) (*domain.Snapshot, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return domain.NewSnapshot(), nil
	}
	if err != nil {
		return nil, err
	}
	return Normalize(data)
}

func (s *FileStore) View(ctx context.Context, fn func(*domain.Snapshot) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.snap)
}

func (s *FileStore) Update(ctx context.Context, fn func(*domain.Snapshot) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Mutate a deep copy so a failing fn leaves the live snapshot intact.
	work, err := cloneSnapshot(s.snap)
	if err != nil {
		return fmt.Errorf(ErrMsgCloneSnapshotFailed, err)
	}

	if err := fn(work); err != nil {
		return err
	}

	if err := s.persist(work); err != nil {
		return err
	}

	s.snap = work
	return nil
}

// CheckHealth verifies the in-memory snapshot is readable. Used by the
// readiness probe.
func (s *FileStore) CheckHealth(ctx context.Context) error {
	return s.View(ctx, func(*domain.Snapshot) error { return nil })
}

// persist writes the snapshot atomically: previous file becomes the
// backup, the new content lands via tmp+rename.
func (s *FileStore) persist(snap *domain.Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf(ErrMsgEncodeSnapshotFailed, err)
	}

	if prev, err := os.ReadFile(s.path); err == nil {
		if err := os.WriteFile(backupPath(s.path), prev, 0o644); err != nil {
			slog.Warn(LogMsgBackupWriteFailed, "path", backupPath(s.path), "error", err)
		}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf(ErrMsgWriteSnapshotFailed, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf(ErrMsgWriteSnapshotFailed, err)
	}
	return nil
}

func cloneSnapshot(snap *domain.Snapshot) (*domain.Snapshot, error) {
	data, err := json.Marshal(snap)
	if err != nil {
		return nil, err
	}
	out := domain.NewSnapshot()
	if err := json.Unmarshal(data, out); err != nil {
		return nil, err
	}
	if out.Players == nil {
		out.Players = make(map[string]*domain.Player)
	}
	if out.Bosses == nil {
		out.Bosses = make(map[string]*domain.ChannelBoss)
	}
	return out, nil
}
