package resume

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/artem13815/resumeflow/pkg/document"
	"github.com/artem13815/resumeflow/pkg/extraction"
	"github.com/artem13815/resumeflow/pkg/logging"
)

// FieldExtractor is the Structured-Field Extractor port.
type FieldExtractor interface {
	Extract(ctx context.Context, text string) (extraction.Raw, error)
}

// IngestUseCase описывает сценарии загрузки и чтения резюме.
type IngestUseCase interface {
	// Ingest runs text extraction, field extraction, normalization and persistence in order.
	Ingest(ctx context.Context, data []byte) (Record, error)
	Get(ctx context.Context, id uuid.UUID) (Record, error)
}

type ingestService struct {
	docs   document.Extractor
	fields FieldExtractor
	repo   Repository
	now    func() time.Time
	log    *logging.Logger
}

func NewIngestService(docs document.Extractor, fields FieldExtractor, repo Repository, log *logging.Logger) IngestUseCase {
	return &ingestService{
		docs:   docs,
		fields: fields,
		repo:   repo,
		now:    func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
		log:    logging.OrNop(log).Named("ingest"),
	}
}

func (s *ingestService) Ingest(ctx context.Context, data []byte) (Record, error) {
	log := s.log.With("size_b", len(data))
	log.Debug("ingest.received")

	text, err := s.docs.ExtractText(data)
	if err != nil {
		return Record{}, err
	}
	log.Debug("ingest.text_extracted", "chars", len(text))

	raw, err := s.fields.Extract(ctx, text)
	if err != nil {
		return Record{}, err
	}
	log.Debug("ingest.fields_extracted")

	rec, err := Normalize(raw)
	if err != nil {
		return Record{}, err
	}
	log.Debug("ingest.normalized", "experience", len(rec.Experience), "education", len(rec.Education), "skills", len(rec.Skills))

	rec.CreatedAt = s.now()
	id, err := s.repo.Insert(ctx, rec)
	if err != nil {
		return Record{}, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	rec.ID = id
	log.Info("ingest.persisted", "id", id.String())
	return rec, nil
}

func (s *ingestService) Get(ctx context.Context, id uuid.UUID) (Record, error) {
	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Record{}, err
		}
		return Record{}, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return rec, nil
}
