// Package snapshot provides snapshot file management for HashSnap.
//
// @req RQ-0303
// @design DS-0304
package snapshot

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/yndnr/hashsnap-go/internal/hashtable"
	"github.com/yndnr/hashsnap-go/internal/serializer"
	"github.com/yndnr/hashsnap-go/internal/stream"
	"github.com/yndnr/hashsnap-go/internal/telemetry/logger"
)

const (
	filePrefix    = "snapshot-"
	fileExtension = ".snap"

	DefaultRetentionCount = 5
	DefaultRetentionDays  = 7
)

// ErrNoSnapshots reports that no loadable snapshot exists in the directory.
var ErrNoSnapshots = errors.New("snapshot: no snapshots available")

// Config configures the snapshot manager.
type Config struct {
	Dir string

	RetentionCount int
	RetentionDays  int

	// Properties is passed through to the deserializer. Reserved.
	Properties serializer.Properties

	Logger logger.Logger
}

// DefaultConfig returns a config with default retention for dir.
func DefaultConfig(dir string) Config {
	return Config{
		Dir:            dir,
		RetentionCount: DefaultRetentionCount,
		RetentionDays:  DefaultRetentionDays,
	}
}

// Manager creates, loads, lists and prunes snapshot files in one
// directory. File names are snapshot-<ulid>.snap; ULIDs sort
// lexicographically by creation time, so name order is age order.
type Manager struct {
	cfg Config
	log logger.Logger

	// entropy is shared across Create calls so ids generated within the
	// same millisecond still sort strictly.
	entropy *ulid.MonotonicEntropy
}

// NewManager creates the snapshot directory if needed and returns a
// manager over it.
func NewManager(cfg Config) (*Manager, error) {
	if cfg.Dir == "" {
		return nil, fmt.Errorf("snapshot: dir is required")
	}
	if err := os.MkdirAll(cfg.Dir, 0750); err != nil {
		return nil, fmt.Errorf("snapshot: create dir: %w", err)
	}
	if cfg.RetentionCount == 0 {
		cfg.RetentionCount = DefaultRetentionCount
	}
	if cfg.RetentionDays == 0 {
		cfg.RetentionDays = DefaultRetentionDays
	}
	log := cfg.Logger
	if log == nil {
		log = logger.Default()
	}

	return &Manager{
		cfg:     cfg,
		log:     log,
		entropy: ulid.Monotonic(rand.Reader, 0),
	}, nil
}

// Info contains metadata about a snapshot file.
type Info struct {
	ID          string `json:"id"`
	RecordCount int64  `json:"record_count"`
	CreatedAt   int64  `json:"created_at"`
	Size        int64  `json:"size"`
	Path        string `json:"path"`
	Checksum    string `json:"checksum"`
}

// Create serializes table into a new snapshot file. The file is written to
// a temp path and renamed into place only after the checksum trailer is
// synced, so a crash never leaves a half-written .snap behind.
//
// The caller guarantees no concurrent writer mutates table for the
// duration of the call.
func (m *Manager) Create(table *hashtable.Table) (*Info, error) {
	now := time.Now()
	id := m.generateID(now)

	tempPath := filepath.Join(m.cfg.Dir, id+".tmp")
	fw, err := stream.NewFileWriter(tempPath)
	if err != nil {
		return nil, err
	}
	defer os.Remove(tempPath)

	if err := serializer.NewSerializer().Serialize(table, fw); err != nil {
		fw.Close()
		return nil, err
	}
	sum := fw.Checksum()
	if err := fw.Close(); err != nil {
		return nil, fmt.Errorf("snapshot: close: %w", err)
	}

	stat, err := os.Stat(tempPath)
	if err != nil {
		return nil, err
	}

	finalPath := filepath.Join(m.cfg.Dir, id+fileExtension)
	if err := os.Rename(tempPath, finalPath); err != nil {
		return nil, fmt.Errorf("snapshot: rename: %w", err)
	}

	info := &Info{
		ID:          id,
		RecordCount: table.PerfData().Get(hashtable.RecordsSavedFromSerializer),
		CreatedAt:   now.UnixMilli(),
		Size:        stat.Size(),
		Path:        finalPath,
		Checksum:    hex.EncodeToString(sum),
	}

	m.log.Info("snapshot created",
		"id", info.ID,
		"records", info.RecordCount,
		"size", info.Size,
	)
	return info, nil
}

// Load reconstructs a table from the latest valid snapshot. A snapshot
// failing magic or checksum validation is skipped with a warning and the
// next older one is tried; any other error propagates immediately.
func (m *Manager) Load(alloc hashtable.Allocator) (*hashtable.Table, *Info, error) {
	infos, err := m.List()
	if err != nil {
		return nil, nil, err
	}
	if len(infos) == 0 {
		return nil, nil, ErrNoSnapshots
	}

	for i := len(infos) - 1; i >= 0; i-- {
		table, info, err := m.loadFile(infos[i].Path, alloc)
		if err == nil {
			return table, info, nil
		}
		if errors.Is(err, stream.ErrChecksumMismatch) || errors.Is(err, stream.ErrInvalidMagic) {
			m.log.Warn("skipping corrupt snapshot",
				"path", infos[i].Path,
				"error", err,
			)
			continue
		}
		return nil, nil, err
	}

	return nil, nil, ErrNoSnapshots
}

func (m *Manager) loadFile(path string, alloc hashtable.Allocator) (*hashtable.Table, *Info, error) {
	fr, err := stream.NewFileReader(path)
	if err != nil {
		return nil, nil, err
	}
	defer fr.Close()

	table, err := serializer.NewDeserializer(m.cfg.Properties).Deserialize(alloc, fr)
	if err != nil {
		return nil, nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, nil, err
	}

	info := &Info{
		ID:          strings.TrimSuffix(filepath.Base(path), fileExtension),
		RecordCount: table.PerfData().Get(hashtable.RecordsLoadedFromSerializer),
		CreatedAt:   stat.ModTime().UnixMilli(),
		Size:        stat.Size(),
		Path:        path,
		Checksum:    hex.EncodeToString(fr.Checksum()),
	}
	return table, info, nil
}

// List lists snapshot files oldest first (metadata only).
func (m *Manager) List() ([]*Info, error) {
	entries, err := os.ReadDir(m.cfg.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasPrefix(name, filePrefix) && strings.HasSuffix(name, fileExtension) {
			paths = append(paths, filepath.Join(m.cfg.Dir, name))
		}
	}
	sort.Strings(paths)

	var infos []*Info
	for _, p := range paths {
		stat, err := os.Stat(p)
		if err != nil {
			continue
		}
		infos = append(infos, &Info{
			ID:        strings.TrimSuffix(filepath.Base(p), fileExtension),
			Path:      p,
			Size:      stat.Size(),
			CreatedAt: stat.ModTime().UnixMilli(),
		})
	}
	return infos, nil
}

// Prune applies the retention policy and deletes old snapshots. The newest
// snapshot is always kept.
func (m *Manager) Prune() error {
	infos, err := m.List()
	if err != nil {
		return err
	}
	if len(infos) <= 1 {
		return nil
	}

	keep := make(map[string]struct{}, len(infos))

	if m.cfg.RetentionCount > 0 {
		start := len(infos) - m.cfg.RetentionCount
		if start < 0 {
			start = 0
		}
		for _, info := range infos[start:] {
			keep[info.Path] = struct{}{}
		}
	}

	if m.cfg.RetentionDays > 0 {
		cutoff := time.Now().Add(-time.Duration(m.cfg.RetentionDays) * 24 * time.Hour)
		for _, info := range infos {
			st, err := os.Stat(info.Path)
			if err != nil {
				continue
			}
			if st.ModTime().After(cutoff) {
				keep[info.Path] = struct{}{}
			}
		}
	}

	keep[infos[len(infos)-1].Path] = struct{}{}

	for _, info := range infos {
		if _, ok := keep[info.Path]; ok {
			continue
		}
		if err := os.Remove(info.Path); err == nil {
			m.log.Info("pruned snapshot", "path", info.Path)
		}
	}
	return nil
}

func (m *Manager) generateID(t time.Time) string {
	id, err := ulid.New(ulid.Timestamp(t), m.entropy)
	if err != nil {
		// ulid.New only fails when the entropy source does; fall back
		// to a timestamp id rather than failing the snapshot.
		return filePrefix + t.UTC().Format("20060102150405.000")
	}
	return filePrefix + strings.ToLower(id.String())
}
