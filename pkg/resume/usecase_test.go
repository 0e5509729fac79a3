package resume

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/resumeflow/pkg/document"
	"github.com/artem13815/resumeflow/pkg/extraction"
)

type fakeDocs struct {
	text string
	err  error
}

func (f fakeDocs) ExtractText([]byte) (string, error) { return f.text, f.err }

type fakeFields struct {
	raw   string
	err   error
	calls int
	got   string
}

func (f *fakeFields) Extract(_ context.Context, text string) (extraction.Raw, error) {
	f.calls++
	f.got = text
	if f.err != nil {
		return extraction.Raw{}, f.err
	}
	return extraction.NewRaw([]byte(f.raw)), nil
}

type fakeRepo struct {
	records   map[uuid.UUID]Record
	insertErr error
	findErr   error
}

func newFakeRepo() *fakeRepo { return &fakeRepo{records: map[uuid.UUID]Record{}} }

func (r *fakeRepo) Insert(_ context.Context, rec Record) (uuid.UUID, error) {
	if r.insertErr != nil {
		return uuid.Nil, r.insertErr
	}
	id := uuid.New()
	rec.ID = id
	r.records[id] = rec.Clone()
	return id, nil
}

func (r *fakeRepo) FindByID(_ context.Context, id uuid.UUID) (Record, error) {
	if r.findErr != nil {
		return Record{}, r.findErr
	}
	rec, ok := r.records[id]
	if !ok {
		return Record{}, ErrNotFound
	}
	return rec.Clone(), nil
}

func TestIngestPersistsNormalizedRecord(t *testing.T) {
	fields := &fakeFields{raw: `{"Name": "Jane", "Skills": "Go, SQL"}`}
	repo := newFakeRepo()
	svc := NewIngestService(fakeDocs{text: "Jane Doe resume"}, fields, repo, nil)

	rec, err := svc.Ingest(context.Background(), []byte("%PDF-"))
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe resume", fields.got)
	assert.NotEqual(t, uuid.Nil, rec.ID)
	assert.Equal(t, "Jane", rec.Name)
	assert.Equal(t, []string{"Go", "SQL"}, rec.Skills)
	assert.False(t, rec.CreatedAt.IsZero())

	stored, err := svc.Get(context.Background(), rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.Name, stored.Name)
	assert.Equal(t, rec.Skills, stored.Skills)
	assert.True(t, rec.CreatedAt.Equal(stored.CreatedAt))
}

func TestIngestFailuresLeaveStoreUnchanged(t *testing.T) {
	tests := []struct {
		name    string
		docs    fakeDocs
		fields  *fakeFields
		wantErr error
		calls   int
	}{
		{
			name:    "unreadable document",
			docs:    fakeDocs{err: document.ErrUnreadableDocument},
			fields:  &fakeFields{},
			wantErr: document.ErrUnreadableDocument,
			calls:   0,
		},
		{
			name:    "completion failed",
			docs:    fakeDocs{text: "x"},
			fields:  &fakeFields{err: extraction.ErrCompletionFailed},
			wantErr: extraction.ErrCompletionFailed,
			calls:   1,
		},
		{
			name:    "malformed output",
			docs:    fakeDocs{text: "x"},
			fields:  &fakeFields{raw: `{"Name": "no skills"}`},
			wantErr: extraction.ErrMalformedOutput,
			calls:   1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo()
			svc := NewIngestService(tt.docs, tt.fields, repo, nil)

			_, err := svc.Ingest(context.Background(), []byte("data"))
			require.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.calls, tt.fields.calls)
			assert.Empty(t, repo.records)
		})
	}
}

func TestIngestPersistenceFailure(t *testing.T) {
	repo := newFakeRepo()
	repo.insertErr = errors.New("connection reset")
	svc := NewIngestService(fakeDocs{text: "x"}, &fakeFields{raw: `{"Skills": "Go"}`}, repo, nil)

	_, err := svc.Ingest(context.Background(), []byte("data"))
	require.ErrorIs(t, err, ErrPersistence)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestGetErrors(t *testing.T) {
	repo := newFakeRepo()
	svc := NewIngestService(fakeDocs{}, &fakeFields{}, repo, nil)

	_, err := svc.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrPersistence)

	repo.findErr = errors.New("pool closed")
	_, err = svc.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrPersistence)
}
