package memory

import (
	"context"
	"sync"

	"techsync/internal/domain"
	"techsync/internal/repository"
)

// WorkOrderRepository is the in-memory fallback used when no database is
// configured, seeded so the API has something to serve.
type WorkOrderRepository struct {
	mu     sync.Mutex
	nextID int64
	orders []domain.WorkOrder
}

func NewWorkOrderRepository() repository.WorkOrderRepository {
	sinkDesc := "Tenant reports slow drip, assign to plumbing tech."
	cleanDesc := "Full move-out clean before new tenant move-in."
	return &WorkOrderRepository{
		nextID: 3,
		orders: []domain.WorkOrder{
			{ID: 1, Title: "Leak under kitchen sink", Description: &sinkDesc, Status: domain.WorkOrderStatusScheduled},
			{ID: 2, Title: "Turnover cleaning - Unit 3B", Description: &cleanDesc, Status: domain.WorkOrderStatusPending},
		},
	}
}

// NewEmptyWorkOrderRepository returns an unseeded store, mainly for tests.
func NewEmptyWorkOrderRepository() repository.WorkOrderRepository {
	return &WorkOrderRepository{nextID: 1}
}

func (r *WorkOrderRepository) Init(ctx context.Context) error {
	return nil
}

func (r *WorkOrderRepository) Create(ctx context.Context, order *domain.WorkOrder) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order.ID = r.nextID
	r.nextID++
	r.orders = append(r.orders, cloneOrder(*order))
	return order.ID, nil
}

func (r *WorkOrderRepository) Update(ctx context.Context, order *domain.WorkOrder) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.orders {
		if r.orders[i].ID == order.ID {
			r.orders[i] = cloneOrder(*order)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *WorkOrderRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.orders {
		if r.orders[i].ID == id {
			r.orders = append(r.orders[:i], r.orders[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *WorkOrderRepository) Get(ctx context.Context, id int64) (*domain.WorkOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.orders {
		if r.orders[i].ID == id {
			order := cloneOrder(r.orders[i])
			return &order, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *WorkOrderRepository) List(ctx context.Context) ([]domain.WorkOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	orders := make([]domain.WorkOrder, len(r.orders))
	for i := range r.orders {
		orders[i] = cloneOrder(r.orders[i])
	}
	return orders, nil
}

func cloneOrder(order domain.WorkOrder) domain.WorkOrder {
	if order.Description != nil {
		desc := *order.Description
		order.Description = &desc
	}
	return order
}
