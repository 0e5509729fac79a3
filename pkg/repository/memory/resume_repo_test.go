package memory

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/resumeflow/pkg/resume"
)

func TestInsertAssignsIdentity(t *testing.T) {
	repo := NewResumeRepository()
	ctx := context.Background()
	rec := resume.Record{Name: "Jane", Skills: []string{"Go"}}

	id1, err := repo.Insert(ctx, rec)
	require.NoError(t, err)
	id2, err := repo.Insert(ctx, rec)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, id1)
	assert.NotEqual(t, id1, id2, "duplicate submissions produce distinct records")
	assert.Equal(t, 2, repo.Len())

	got, err := repo.FindByID(ctx, id1)
	require.NoError(t, err)
	assert.Equal(t, id1, got.ID)
	assert.Equal(t, "Jane", got.Name)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestStoredRecordsAreImmutable(t *testing.T) {
	repo := NewResumeRepository()
	ctx := context.Background()
	skills := []string{"Go"}
	id, err := repo.Insert(ctx, resume.Record{Skills: skills})
	require.NoError(t, err)

	skills[0] = "mutated"
	got, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	got.Skills[0] = "also mutated"

	again, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []string{"Go"}, again.Skills)
}

func TestFindByIDNotFound(t *testing.T) {
	_, err := NewResumeRepository().FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, resume.ErrNotFound)
}
