package repository_test

import (
	"context"
	"testing"

	"siteops/internal/model"
	"siteops/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDependencyRepository_CreateAndGet(t *testing.T) {
	db := testDB(t)
	repo := repository.NewDependencyRepository(db)
	ctx := context.Background()

	projectID := uuid.New()
	dep := &model.TaskDependency{
		ID:            uuid.New(),
		ProjectID:     projectID,
		PredecessorID: uuid.New(),
		SuccessorID:   uuid.New(),
	}
	require.NoError(t, repo.Create(ctx, dep))

	deps, err := repo.GetByProjectID(ctx, projectID)
	require.NoError(t, err)
	require.Len(t, deps, 1)
	assert.Equal(t, dep.PredecessorID, deps[0].PredecessorID)
	assert.Equal(t, dep.SuccessorID, deps[0].SuccessorID)
}

func TestDependencyRepository_DuplicateEdgeRejected(t *testing.T) {
	db := testDB(t)
	repo := repository.NewDependencyRepository(db)
	ctx := context.Background()

	projectID := uuid.New()
	predecessorID := uuid.New()
	successorID := uuid.New()

	first := &model.TaskDependency{ID: uuid.New(), ProjectID: projectID, PredecessorID: predecessorID, SuccessorID: successorID}
	require.NoError(t, repo.Create(ctx, first))

	duplicate := &model.TaskDependency{ID: uuid.New(), ProjectID: projectID, PredecessorID: predecessorID, SuccessorID: successorID}
	err := repo.Create(ctx, duplicate)
	assert.ErrorIs(t, err, repository.ErrDependencyExists)
}

func TestDependencyRepository_Delete(t *testing.T) {
	db := testDB(t)
	repo := repository.NewDependencyRepository(db)
	ctx := context.Background()

	dep := &model.TaskDependency{
		ID:            uuid.New(),
		ProjectID:     uuid.New(),
		PredecessorID: uuid.New(),
		SuccessorID:   uuid.New(),
	}
	require.NoError(t, repo.Create(ctx, dep))

	require.NoError(t, repo.Delete(ctx, dep.SuccessorID, dep.PredecessorID))

	deps, err := repo.GetByProjectID(ctx, dep.ProjectID)
	require.NoError(t, err)
	assert.Empty(t, deps)
}

func TestDependencyRepository_DeleteMissingEdge(t *testing.T) {
	db := testDB(t)
	repo := repository.NewDependencyRepository(db)

	err := repo.Delete(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrDependencyNotFound)
}
