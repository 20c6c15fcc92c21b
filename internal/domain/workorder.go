package domain

type WorkOrderStatus string

const (
	WorkOrderStatusPending    WorkOrderStatus = "pending"
	WorkOrderStatusScheduled  WorkOrderStatus = "scheduled"
	WorkOrderStatusInProgress WorkOrderStatus = "in_progress"
	WorkOrderStatusCompleted  WorkOrderStatus = "completed"
	WorkOrderStatusCancelled  WorkOrderStatus = "cancelled"
)

// Valid reports whether s is one of the known work order statuses.
func (s WorkOrderStatus) Valid() bool {
	switch s {
	case WorkOrderStatusPending, WorkOrderStatusScheduled, WorkOrderStatusInProgress,
		WorkOrderStatusCompleted, WorkOrderStatusCancelled:
		return true
	}
	return false
}

// WorkOrder represents a field service job tracked by the system.
type WorkOrder struct {
	ID          int64
	Title       string
	Description *string
	Status      WorkOrderStatus
}
