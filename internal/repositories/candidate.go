package repositories

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"alfredoptarigan/talentscout/internal/models"
)

const candidatesFilename = "candidates.jsonl"

type CandidateRepository interface {
	Append(record *models.CandidateRecord) error
	Path() string
}

// jsonlCandidateRepository appends one JSON line per finalized session to an
// append-only log. The mutex makes each line write atomic even when several
// sessions finalize at once; the file is never rewritten or truncated.
type jsonlCandidateRepository struct {
	path string
	mu   sync.Mutex
}

func NewCandidateRepository(dataDir string) (CandidateRepository, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return &jsonlCandidateRepository{
		path: filepath.Join(dataDir, candidatesFilename),
	}, nil
}

// Append implements CandidateRepository.
func (r *jsonlCandidateRepository) Append(record *models.CandidateRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode candidate record: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open candidates log: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to append candidate record: %w", err)
	}

	return nil
}

// Path implements CandidateRepository.
func (r *jsonlCandidateRepository) Path() string {
	return r.path
}
