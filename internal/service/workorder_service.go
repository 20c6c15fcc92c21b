package service

import (
	"context"
	"strings"

	"techsync/internal/domain"
	"techsync/internal/repository"
)

// WorkOrderInput carries the mutable fields of a work order.
type WorkOrderInput struct {
	Title       string
	Description *string
	Status      domain.WorkOrderStatus
}

// WorkOrderService coordinates work order CRUD backed by a repository.
type WorkOrderService interface {
	Create(ctx context.Context, input WorkOrderInput) (*domain.WorkOrder, error)
	Get(ctx context.Context, id int64) (*domain.WorkOrder, error)
	List(ctx context.Context) ([]domain.WorkOrder, error)
	Update(ctx context.Context, id int64, input WorkOrderInput) (*domain.WorkOrder, error)
	Delete(ctx context.Context, id int64) error
}

type workOrderService struct {
	orders repository.WorkOrderRepository
}

func NewWorkOrderService(orders repository.WorkOrderRepository) WorkOrderService {
	return &workOrderService{orders: orders}
}

func (s *workOrderService) Create(ctx context.Context, input WorkOrderInput) (*domain.WorkOrder, error) {
	normalized, err := normalizeWorkOrder(input)
	if err != nil {
		return nil, err
	}

	order := &domain.WorkOrder{
		Title:       normalized.Title,
		Description: normalized.Description,
		Status:      normalized.Status,
	}
	if _, err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *workOrderService) Get(ctx context.Context, id int64) (*domain.WorkOrder, error) {
	return s.orders.Get(ctx, id)
}

func (s *workOrderService) List(ctx context.Context) ([]domain.WorkOrder, error) {
	return s.orders.List(ctx)
}

func (s *workOrderService) Update(ctx context.Context, id int64, input WorkOrderInput) (*domain.WorkOrder, error) {
	normalized, err := normalizeWorkOrder(input)
	if err != nil {
		return nil, err
	}

	order := &domain.WorkOrder{
		ID:          id,
		Title:       normalized.Title,
		Description: normalized.Description,
		Status:      normalized.Status,
	}
	if err := s.orders.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *workOrderService) Delete(ctx context.Context, id int64) error {
	return s.orders.Delete(ctx, id)
}

func normalizeWorkOrder(input WorkOrderInput) (WorkOrderInput, error) {
	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" {
		return input, invalid("title", "cannot be empty")
	}
	if input.Status == "" {
		input.Status = domain.WorkOrderStatusPending
	}
	if !input.Status.Valid() {
		return input, invalid("status", "unknown work order status")
	}
	if input.Description != nil && strings.TrimSpace(*input.Description) == "" {
		input.Description = nil
	}
	return input, nil
}
