// Package storage writes exported artefacts under an output directory.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/dtnitsch/polishpages/models"
)

// Layout of the output directory.
const (
	PagesDir   = "pages"
	CorpusFile = "corpus.json"
)

type Storage struct {
	Root string
}

// FileStats holds metadata about a file without reading its contents.
type FileStats struct {
	SizeBytes int64
	ModTime   time.Time
}

// New returns a Storage rooted at root.
func New(root string) *Storage {
	return &Storage{Root: root}
}

// Path joins rel onto the storage root.
func (s *Storage) Path(rel string) string {
	return filepath.Join(s.Root, rel)
}

// SaveFile writes content to rel, creating parent directories.
func (s *Storage) SaveFile(rel string, content []byte) error {
	full := s.Path(rel)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("error creating directory for %s: %w", rel, err)
	}
	if err := os.WriteFile(full, content, 0o644); err != nil {
		return fmt.Errorf("error saving file: %w", err)
	}
	return nil
}

func (s *Storage) ReadFile(rel string) ([]byte, error) {
	data, err := os.ReadFile(s.Path(rel))
	if err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}
	return data, nil
}

func (s *Storage) HasFile(rel string) bool {
	_, err := os.Stat(s.Path(rel))
	return err == nil
}

// GetFileStats returns metadata about a file using os.Stat.
func (s *Storage) GetFileStats(rel string) (*FileStats, error) {
	info, err := os.Stat(s.Path(rel))
	if err != nil {
		return nil, fmt.Errorf("error getting file stats: %w", err)
	}
	return &FileStats{
		SizeBytes: info.Size(),
		ModTime:   info.ModTime(),
	}, nil
}

// PageFile returns the relative file name of a page: the last segment of
// its URL under PagesDir.
func PageFile(rec models.PageRecord) string {
	return filepath.Join(PagesDir, path.Base(rec.URL)+".json")
}

// WritePages writes each record as indented JSON and returns the total
// number of bytes written.
func (s *Storage) WritePages(records []models.PageRecord) (int64, error) {
	var total int64
	for _, r := range records {
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return total, fmt.Errorf("error marshalling page %s: %w", r.URL, err)
		}
		if err := s.SaveFile(PageFile(r), data); err != nil {
			return total, err
		}
		total += int64(len(data))
	}
	return total, nil
}

// WriteCorpus writes every record into one JSON array.
func (s *Storage) WriteCorpus(records []models.PageRecord) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshalling corpus: %w", err)
	}
	return s.SaveFile(CorpusFile, data)
}

// LoadCorpus reads a corpus file written by WriteCorpus. file is used as
// given, not relative to the root.
func LoadCorpus(file string) ([]models.PageRecord, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("error reading corpus: %w", err)
	}
	var records []models.PageRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("error decoding corpus %s: %w", file, err)
	}
	return records, nil
}
