package repository

import (
	"context"

	"techsync/internal/domain"
)

// WorkOrderRepository exposes persistence operations for WorkOrder entities.
type WorkOrderRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, order *domain.WorkOrder) (int64, error)
	Update(ctx context.Context, order *domain.WorkOrder) error
	Delete(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (*domain.WorkOrder, error)
	List(ctx context.Context) ([]domain.WorkOrder, error)
}
