package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/artem13815/resumeflow/pkg/resume"
)

// ResumeRepository keeps records in process memory. Used when no DATABASE_URL is configured and in tests.
type ResumeRepository struct {
	mu      sync.RWMutex
	records map[uuid.UUID]resume.Record
}

func NewResumeRepository() *ResumeRepository {
	return &ResumeRepository{records: make(map[uuid.UUID]resume.Record)}
}

func (r *ResumeRepository) Insert(_ context.Context, rec resume.Record) (uuid.UUID, error) {
	rec = rec.Clone()
	rec.ID = uuid.New()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	r.mu.Lock()
	r.records[rec.ID] = rec
	r.mu.Unlock()
	return rec.ID, nil
}

func (r *ResumeRepository) FindByID(_ context.Context, id uuid.UUID) (resume.Record, error) {
	r.mu.RLock()
	rec, ok := r.records[id]
	r.mu.RUnlock()
	if !ok {
		return resume.Record{}, resume.ErrNotFound
	}
	return rec.Clone(), nil
}

// Len reports how many records are stored.
func (r *ResumeRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}
