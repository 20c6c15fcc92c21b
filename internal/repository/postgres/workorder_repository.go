package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"techsync/internal/domain"
	"techsync/internal/repository"
)

const createWorkOrdersTable = `
CREATE TABLE IF NOT EXISTS work_orders (
	id BIGSERIAL PRIMARY KEY,
	title TEXT NOT NULL,
	description TEXT,
	status TEXT NOT NULL DEFAULT 'pending'
);
`

type WorkOrderRepository struct {
	db *pgxpool.Pool
}

func NewWorkOrderRepository(db *pgxpool.Pool) repository.WorkOrderRepository {
	return &WorkOrderRepository{db: db}
}

func (r *WorkOrderRepository) Init(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, createWorkOrdersTable); err != nil {
		return fmt.Errorf("create work_orders table: %w", err)
	}
	return nil
}

func (r *WorkOrderRepository) Create(ctx context.Context, order *domain.WorkOrder) (int64, error) {
	err := r.db.QueryRow(ctx, `
INSERT INTO work_orders (title, description, status)
VALUES ($1, $2, $3)
RETURNING id`,
		order.Title,
		order.Description,
		order.Status,
	).Scan(&order.ID)
	if err != nil {
		return 0, fmt.Errorf("insert work order: %w", err)
	}
	return order.ID, nil
}

func (r *WorkOrderRepository) Update(ctx context.Context, order *domain.WorkOrder) error {
	tag, err := r.db.Exec(ctx, `
UPDATE work_orders
SET title = $1, description = $2, status = $3
WHERE id = $4`,
		order.Title,
		order.Description,
		order.Status,
		order.ID,
	)
	if err != nil {
		return fmt.Errorf("update work order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *WorkOrderRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM work_orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete work order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *WorkOrderRepository) Get(ctx context.Context, id int64) (*domain.WorkOrder, error) {
	var order domain.WorkOrder
	err := r.db.QueryRow(ctx, `
SELECT id, title, description, status
FROM work_orders
WHERE id = $1`,
		id,
	).Scan(
		&order.ID,
		&order.Title,
		&order.Description,
		&order.Status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("select work order: %w", err)
	}
	return &order, nil
}

func (r *WorkOrderRepository) List(ctx context.Context) ([]domain.WorkOrder, error) {
	rows, err := r.db.Query(ctx, `
SELECT id, title, description, status
FROM work_orders
ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list work orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.WorkOrder
	for rows.Next() {
		var order domain.WorkOrder
		if err := rows.Scan(&order.ID, &order.Title, &order.Description, &order.Status); err != nil {
			return nil, fmt.Errorf("scan work order: %w", err)
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate work orders: %w", err)
	}
	return orders, nil
}
