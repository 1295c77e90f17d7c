package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/tutor-booking-api/internal/models"
	appErrors "github.com/noah-isme/tutor-booking-api/pkg/errors"
)

func seedTutors(t *testing.T) *TutorStore {
	t.Helper()
	store := NewTutorStore()
	store.Initialize(context.Background(), []models.Tutor{
		{ID: "t1", Name: "Ava Jones", Department: "Mathematics", Subjects: []string{"Calculus", "Statistics"}, Modalities: []models.Modality{models.ModalityOnline}},
		{ID: "t2", Name: "Ben Smith", Department: "Physics", Subjects: []string{"Mechanics"}, Modalities: []models.Modality{models.ModalityInPerson}},
		{ID: "t3", Name: "Cleo Park", Department: "Mathematics", Subjects: []string{"Linear Algebra"}, Modalities: []models.Modality{models.ModalityOnline}},
	})
	return store
}

func TestTutorStoreInitializeReplaces(t *testing.T) {
	store := seedTutors(t)
	require.Len(t, store.FindAll(context.Background()), 3)

	store.Initialize(context.Background(), []models.Tutor{{ID: "t9", Name: "Solo"}})
	all := store.FindAll(context.Background())
	require.Len(t, all, 1)
	assert.Equal(t, "t9", all[0].ID)
}

func TestTutorStoreFindVersusGet(t *testing.T) {
	store := seedTutors(t)
	ctx := context.Background()

	// find* is absent-tolerant.
	assert.Nil(t, store.FindByID(ctx, "missing"))
	require.NotNil(t, store.FindByID(ctx, "t1"))

	// get* asserts presence.
	_, err := store.GetByID(ctx, "missing")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)

	tutor, err := store.GetByID(ctx, "t2")
	require.NoError(t, err)
	assert.Equal(t, "Ben Smith", tutor.Name)
}

func TestTutorStoreSearch(t *testing.T) {
	store := seedTutors(t)
	ctx := context.Background()

	assert.Len(t, store.Search(ctx, ""), 3)
	assert.Len(t, store.Search(ctx, "mathematics"), 2)
	assert.Len(t, store.Search(ctx, "calculus"), 1)
	assert.Len(t, store.Search(ctx, "ava"), 1)
	assert.Empty(t, store.Search(ctx, "zoology"))
}

func TestTutorStoreExcluding(t *testing.T) {
	store := seedTutors(t)
	ctx := context.Background()

	all := store.FindAllExcluding(ctx, "t1")
	require.Len(t, all, 2)
	for _, tutor := range all {
		assert.NotEqual(t, "t1", tutor.ID)
	}

	found := store.SearchExcluding(ctx, "mathematics", "t3")
	require.Len(t, found, 1)
	assert.Equal(t, "t1", found[0].ID)
}

func TestTutorStoreFindBySubject(t *testing.T) {
	store := seedTutors(t)

	found := store.FindBySubject(context.Background(), "calculus")
	require.Len(t, found, 1)
	assert.Equal(t, "t1", found[0].ID)
}

func TestTutorStoreAggregates(t *testing.T) {
	store := seedTutors(t)
	ctx := context.Background()

	assert.Equal(t, []string{"Mathematics", "Physics"}, store.Departments(ctx))
	assert.Equal(t, []string{"Calculus", "Linear Algebra", "Mechanics", "Statistics"}, store.Subjects(ctx))
}
