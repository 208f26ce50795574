package workorder

import "time"

// Status is the lifecycle state of a work order.
type Status string

// Status values shown in the console.
const (
	StatusOpen       Status = "Open"
	StatusInProgress Status = "In Progress"
	StatusOnHold     Status = "On Hold"
	StatusCompleted  Status = "Completed"
	StatusCancelled  Status = "Cancelled"
)

// Priority is the urgency classification of a work order.
type Priority string

// Priority values shown in the console.
const (
	PriorityLow      Priority = "Low"
	PriorityMedium   Priority = "Medium"
	PriorityHigh     Priority = "High"
	PriorityCritical Priority = "Critical"
)

// StatusOptions lists all statuses in display order.
var StatusOptions = []Status{
	StatusOpen,
	StatusInProgress,
	StatusOnHold,
	StatusCompleted,
	StatusCancelled,
}

// PriorityOptions lists all priorities in display order.
var PriorityOptions = []Priority{
	PriorityLow,
	PriorityMedium,
	PriorityHigh,
	PriorityCritical,
}

// Departments lists the departments work orders are assigned to.
var Departments = []string{
	"Engineering",
	"Facilities",
	"Operations",
	"Logistics",
	"Safety",
	"IT",
}

// Order is a single maintenance work order. Orders are generated or
// fetched once per session and never mutated afterwards; filtering only
// selects subsets.
type Order struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Assignee    string    `json:"assignee"`
	Department  string    `json:"department"`
	Priority    Priority  `json:"priority"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	DueAt       time.Time `json:"due_at"`
}

// Overdue reports whether the order is past due and still unresolved.
func (o Order) Overdue(now time.Time) bool {
	if o.Status == StatusCompleted || o.Status == StatusCancelled {
		return false
	}
	return o.DueAt.Before(now)
}
