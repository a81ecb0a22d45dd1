package viewstate

import (
	"context"
	"hospital-web-service/internal/app/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryViewStateRepository_SaveAndLoad(t *testing.T) {
	repo := NewMemoryViewStateRepository(time.Hour)
	ctx := context.Background()

	state := &models.ListState[models.Department]{
		Items:  []models.Department{{ID: 1, Name: "Cardiology"}},
		Loaded: true,
		Edit:   &models.RowEdit[models.Department]{RowID: 1, Pending: models.Department{ID: 1, Name: "Cardio"}},
	}
	require.NoError(t, repo.Save(ctx, "s1", "departments", state))

	loaded := new(models.ListState[models.Department])
	found, err := repo.Load(ctx, "s1", "departments", loaded)

	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, state, loaded)
}

func TestMemoryViewStateRepository_StoredCopyIsIsolated(t *testing.T) {
	repo := NewMemoryViewStateRepository(time.Hour)
	ctx := context.Background()

	state := &models.ListState[models.Department]{Items: []models.Department{{ID: 1, Name: "Cardiology"}}}
	require.NoError(t, repo.Save(ctx, "s1", "departments", state))
	state.Items[0].Name = "changed after save"

	loaded := new(models.ListState[models.Department])
	_, err := repo.Load(ctx, "s1", "departments", loaded)

	require.NoError(t, err)
	assert.Equal(t, "Cardiology", loaded.Items[0].Name)
}

func TestMemoryViewStateRepository_SessionsAndViewsAreSeparate(t *testing.T) {
	repo := NewMemoryViewStateRepository(time.Hour)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "s1", "departments", &models.ListState[models.Department]{Loaded: true}))

	found, err := repo.Load(ctx, "s2", "departments", new(models.ListState[models.Department]))
	require.NoError(t, err)
	assert.False(t, found)

	found, err = repo.Load(ctx, "s1", "doctors", new(models.ListState[models.Doctor]))
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryViewStateRepository_Expiry(t *testing.T) {
	repo := NewMemoryViewStateRepository(time.Minute).(*memoryViewStateRepository)
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "s1", "appointments", &models.AppointmentState{Loaded: true}))

	now = now.Add(2 * time.Minute)
	found, err := repo.Load(ctx, "s1", "appointments", new(models.AppointmentState))

	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryViewStateRepository_Delete(t *testing.T) {
	repo := NewMemoryViewStateRepository(0)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "s1", "doctors", &models.ListState[models.Doctor]{Loaded: true}))
	require.NoError(t, repo.Delete(ctx, "s1", "doctors"))

	found, err := repo.Load(ctx, "s1", "doctors", new(models.ListState[models.Doctor]))
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, "memory", repo.Name())
}
