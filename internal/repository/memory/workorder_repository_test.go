package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"techsync/internal/domain"
	"techsync/internal/repository"
)

func TestWorkOrderRepository_Seeded(t *testing.T) {
	ctx := context.Background()
	repo := NewWorkOrderRepository()

	orders, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "Leak under kitchen sink", orders[0].Title)
	assert.Equal(t, domain.WorkOrderStatusScheduled, orders[0].Status)
	assert.Equal(t, domain.WorkOrderStatusPending, orders[1].Status)
}

func TestWorkOrderRepository_CreateAssignsIncrementalIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewWorkOrderRepository()

	first := &domain.WorkOrder{Title: "Replace smoke detector", Status: domain.WorkOrderStatusPending}
	id, err := repo.Create(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, int64(3), id)

	second := &domain.WorkOrder{Title: "Repaint hallway", Status: domain.WorkOrderStatusPending}
	id, err = repo.Create(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, int64(4), id)
}

func TestWorkOrderRepository_GetUpdateDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewEmptyWorkOrderRepository()

	desc := "Check thermostat wiring"
	order := &domain.WorkOrder{Title: "HVAC inspection", Description: &desc, Status: domain.WorkOrderStatusPending}
	id, err := repo.Create(ctx, order)
	require.NoError(t, err)

	got, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "HVAC inspection", got.Title)
	require.NotNil(t, got.Description)
	assert.Equal(t, desc, *got.Description)

	got.Status = domain.WorkOrderStatusCompleted
	require.NoError(t, repo.Update(ctx, got))

	updated, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.WorkOrderStatusCompleted, updated.Status)

	require.NoError(t, repo.Delete(ctx, id))
	_, err = repo.Get(ctx, id)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestWorkOrderRepository_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewEmptyWorkOrderRepository()

	_, err := repo.Get(ctx, 42)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	err = repo.Update(ctx, &domain.WorkOrder{ID: 42, Title: "x", Status: domain.WorkOrderStatusPending})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	err = repo.Delete(ctx, 42)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestWorkOrderRepository_GetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	repo := NewWorkOrderRepository()

	got, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	got.Title = "mutated"

	again, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Leak under kitchen sink", again.Title)
}
