package resume

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned by Repository.FindByID for unknown ids.
	ErrNotFound = errors.New("resume not found")
	// ErrPersistence wraps any store failure.
	ErrPersistence = errors.New("persistence failure")
)

// Record: нормализованный результат извлечения одного резюме.
// После сохранения запись не изменяется.
type Record struct {
	ID         uuid.UUID    `json:"id"`
	Name       string       `json:"name"`
	Experience []Experience `json:"experience"`
	Education  []Education  `json:"education"`
	Skills     []string     `json:"skills"`
	CreatedAt  time.Time    `json:"createdAt"`
}

type Experience struct {
	JobTitle string `json:"jobTitle"`
	Company  string `json:"company"`
	Dates    string `json:"dates"`
}

type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Dates       string `json:"dates"`
}

// Repository: порт хранилища записей. Обновления и удаления нет.
type Repository interface {
	// Insert assigns the identity and creation time and returns the id.
	Insert(ctx context.Context, r Record) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (Record, error)
}

// Clone returns a deep copy so callers cannot mutate stored state.
func (r Record) Clone() Record {
	out := r
	out.Experience = append([]Experience{}, r.Experience...)
	out.Education = append([]Education{}, r.Education...)
	out.Skills = append([]string{}, r.Skills...)
	return out
}
