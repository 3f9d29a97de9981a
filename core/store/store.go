package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"catalog-sync/core/storage"
	"catalog-sync/feature/catalog/models"

	"go.uber.org/zap"
)

const backupTimeLayout = "20060102-150405.000000000"

// Store persists the catalog document with crash-safe writes and a bounded
// ring of backups. It assumes a single logical writer; concurrent sync runs
// against the same file are a documented precondition violation.
type Store struct {
	cfg    Config
	mirror *storage.Mirror
	logger *zap.Logger
	now    func() time.Time
}

// New creates a store over the configured canonical file. mirror may be nil.
func New(cfg Config, mirror *storage.Mirror, logger *zap.Logger) *Store {
	return &Store{
		cfg:    cfg,
		mirror: mirror,
		logger: logger,
		now:    time.Now,
	}
}

// Path returns the canonical store file location.
func (s *Store) Path() string { return s.cfg.Path }

// Load reads the canonical file. A missing file yields an empty document. On
// parse failure it falls back to the most recent valid backup and logs a
// recovery notice; with no usable backup it fails with a CorruptError.
func (s *Store) Load() (*Document, error) {
	data, err := os.ReadFile(s.cfg.Path)
	if os.IsNotExist(err) {
		return NewDocument(), nil
	}
	if err != nil {
		return nil, &PersistError{Op: "read", Err: err}
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		recovered, backup, recErr := s.recover()
		if recErr != nil {
			return nil, &CorruptError{Path: s.cfg.Path, Err: err}
		}
		s.logger.Warn("store file is corrupt, recovered from backup",
			zap.String("path", s.cfg.Path),
			zap.String("backup", backup),
		)
		return recovered, nil
	}
	return &doc, nil
}

// Save rewrites the whole collection atomically: back up the current file,
// serialize to a temporary file in the same directory, then rename over the
// canonical location. The canonical file is never left partially written.
func (s *Store) Save(doc *Document) error {
	doc.Metadata.Version = documentVersion
	doc.Metadata.Count = len(doc.Products)

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return &PersistError{Op: "encode", Err: err}
	}

	dir := filepath.Dir(s.cfg.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &PersistError{Op: "mkdir", Err: err}
	}

	if err := s.backup(); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.cfg.Path)+".tmp-*")
	if err != nil {
		return &PersistError{Op: "create temp", Err: err}
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &PersistError{Op: "write temp", Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &PersistError{Op: "close temp", Err: err}
	}
	if err := os.Rename(tmpName, s.cfg.Path); err != nil {
		os.Remove(tmpName)
		return &PersistError{Op: "rename", Err: err}
	}

	s.pruneBackups()
	s.mirrorSnapshot(data)
	return nil
}

// Upsert merges item into the stored collection and persists the result.
// Returns true when the item was created rather than updated.
func (s *Store) Upsert(item models.CatalogItem) (bool, error) {
	doc, err := s.Load()
	if err != nil {
		return false, err
	}
	created := doc.Upsert(item)
	doc.Metadata.LastSync = s.now()
	if err := s.Save(doc); err != nil {
		return false, err
	}
	return created, nil
}

// Delete removes the item with the given sync identifier, recording it in the
// monthly deletion ledger first. Returns nil when no such item exists.
func (s *Store) Delete(syncID string) (*models.CatalogItem, error) {
	doc, err := s.Load()
	if err != nil {
		return nil, err
	}

	removed, found := doc.Remove(syncID)
	if !found {
		return nil, nil
	}

	if s.cfg.Ledger {
		if err := s.appendLedger(removed); err != nil {
			// Ledger writes are best effort; losing one must not block the
			// deletion itself.
			s.logger.Warn("failed to write deletion ledger", zap.Error(err))
		}
	}

	if err := s.Save(doc); err != nil {
		return nil, err
	}
	return &removed, nil
}

// Status summarizes the persisted store.
type Status struct {
	Path      string    `json:"path"`
	Exists    bool      `json:"exists"`
	Items     int       `json:"items"`
	LastSync  time.Time `json:"last_sync"`
	SizeBytes int64     `json:"size_bytes"`
}

// Status reports the item count, last sync time, and file size.
func (s *Store) Status() (*Status, error) {
	status := &Status{Path: s.cfg.Path}

	info, err := os.Stat(s.cfg.Path)
	if os.IsNotExist(err) {
		return status, nil
	}
	if err != nil {
		return nil, &PersistError{Op: "stat", Err: err}
	}
	status.Exists = true
	status.SizeBytes = info.Size()

	doc, err := s.Load()
	if err != nil {
		return nil, err
	}
	status.Items = len(doc.Products)
	status.LastSync = doc.Metadata.LastSync
	return status, nil
}

// ledgerEntry is one recorded deletion.
type ledgerEntry struct {
	DeletedAt time.Time          `json:"deleted_at"`
	Item      models.CatalogItem `json:"item"`
}

// appendLedger records a deleted item in the ledger file for its month.
func (s *Store) appendLedger(item models.CatalogItem) error {
	now := s.now()
	path := filepath.Join(filepath.Dir(s.cfg.Path), fmt.Sprintf("deleted-%s.json", now.Format("2006-01")))

	entries := []ledgerEntry{}
	if data, err := os.ReadFile(path); err == nil {
		if err := json.Unmarshal(data, &entries); err != nil {
			return fmt.Errorf("failed to parse ledger %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	entries = append(entries, ledgerEntry{DeletedAt: now, Item: item})
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// WriteErrorBatch persists a dated record of per-item failures from a sync
// batch next to the store file and returns the record path.
func (s *Store) WriteErrorBatch(entries any) (string, error) {
	path := filepath.Join(filepath.Dir(s.cfg.Path),
		fmt.Sprintf("sync-errors-%s.json", s.now().Format("20060102-150405")))

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return "", &PersistError{Op: "encode error batch", Err: err}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", &PersistError{Op: "mkdir", Err: err}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", &PersistError{Op: "write error batch", Err: err}
	}
	return path, nil
}

// backup copies the current canonical file to a timestamped sibling.
func (s *Store) backup() error {
	data, err := os.ReadFile(s.cfg.Path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return &PersistError{Op: "read for backup", Err: err}
	}

	name := fmt.Sprintf("%s.backup-%s", s.cfg.Path, s.now().Format(backupTimeLayout))
	if err := os.WriteFile(name, data, 0o644); err != nil {
		return &PersistError{Op: "write backup", Err: err}
	}
	return nil
}

// listBackups returns backup paths for the canonical file, newest first.
// The fixed-width timestamp in the name makes lexicographic order temporal.
func (s *Store) listBackups() []string {
	pattern := s.cfg.Path + ".backup-*"
	matches, err := filepath.Glob(pattern)
	if err != nil || len(matches) == 0 {
		return nil
	}
	sort.Sort(sort.Reverse(sort.StringSlice(matches)))
	return matches
}

// pruneBackups deletes all but the most recent BackupCount backups.
func (s *Store) pruneBackups() {
	keep := s.cfg.BackupCount
	if keep <= 0 {
		keep = 5
	}
	backups := s.listBackups()
	for _, old := range backups[min(keep, len(backups)):] {
		if err := os.Remove(old); err != nil {
			s.logger.Warn("failed to prune old backup", zap.String("path", old), zap.Error(err))
		}
	}
}

// recover loads the most recent parseable backup.
func (s *Store) recover() (*Document, string, error) {
	for _, backup := range s.listBackups() {
		data, err := os.ReadFile(backup)
		if err != nil {
			continue
		}
		var doc Document
		if err := json.Unmarshal(data, &doc); err != nil {
			continue
		}
		return &doc, backup, nil
	}
	return nil, "", fmt.Errorf("no valid backup found")
}

// mirrorSnapshot uploads the serialized document to the configured mirror.
func (s *Store) mirrorSnapshot(data []byte) {
	if s.mirror == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	base := strings.TrimSuffix(filepath.Base(s.cfg.Path), filepath.Ext(s.cfg.Path))
	name := fmt.Sprintf("%s-%s.json", base, s.now().Format("20060102-150405"))
	if err := s.mirror.Upload(ctx, name, data); err != nil {
		s.logger.Warn("failed to mirror store snapshot", zap.Error(err))
	}
}
