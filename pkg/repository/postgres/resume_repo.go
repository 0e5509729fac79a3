package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/resumeflow/pkg/resume"
)

// ResumeRepository хранит нормализованные записи резюме.
// Experience и education лежат в JSONB, навыки в TEXT[].
type ResumeRepository struct {
	pool *pgxpool.Pool
}

func NewResumeRepository(pool *pgxpool.Pool) *ResumeRepository {
	return &ResumeRepository{pool: pool}
}

func (r *ResumeRepository) Insert(ctx context.Context, rec resume.Record) (uuid.UUID, error) {
	rec = rec.Clone()
	id := uuid.New()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	_, err := r.pool.Exec(ctx, `
INSERT INTO resumes (id, name, experience, education, skills, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
`, id, rec.Name, rec.Experience, rec.Education, rec.Skills, rec.CreatedAt)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (r *ResumeRepository) FindByID(ctx context.Context, id uuid.UUID) (resume.Record, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, name, experience, education, skills, created_at
FROM resumes WHERE id = $1
`, id)
	var rec resume.Record
	var created time.Time
	if err := row.Scan(&rec.ID, &rec.Name, &rec.Experience, &rec.Education, &rec.Skills, &created); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return resume.Record{}, resume.ErrNotFound
		}
		return resume.Record{}, err
	}
	rec.CreatedAt = created.UTC()
	return rec.Clone(), nil
}
