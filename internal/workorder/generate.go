package workorder

import (
	"fmt"
	"math/rand"
	"time"
)

// DefaultSeed keeps generated demo data identical across runs.
const DefaultSeed = 20240217

var workCategories = []string{
	"Equipment Repair",
	"Safety Inspection",
	"HVAC Maintenance",
	"Electrical Audit",
	"Plumbing Overhaul",
	"Calibration Check",
	"Preventive Service",
	"Network Patch",
}

var assignees = []string{
	"Alice Johnson",
	"Bob Martinez",
	"Carla Nguyen",
	"Derek Osei",
	"Elena Petrova",
	"Frank Delgado",
	"Grace Kim",
	"Hiro Tanaka",
	"Ingrid Larsen",
	"Jamal Wright",
}

var descriptionNotes = []string{
	"Reported during routine walkthrough.",
	"Escalated after repeat fault.",
	"Scheduled under quarterly plan.",
	"Requested by floor supervisor.",
	"Follow-up to previous ticket.",
	"Flagged by monitoring system.",
}

// Generate returns n synthetic work orders with the default seed.
func Generate(n int) []Order {
	return GenerateSeeded(n, DefaultSeed)
}

// GenerateSeeded returns n synthetic work orders. The same seed always
// produces the same sequence, so demo sessions and tests are stable.
// IDs are WO-000001 upwards in input order.
func GenerateSeeded(n int, seed int64) []Order {
	if n <= 0 {
		return nil
	}
	rng := rand.New(rand.NewSource(seed))
	now := time.Now().Truncate(time.Minute)

	orders := make([]Order, 0, n)
	for i := 0; i < n; i++ {
		category := workCategories[rng.Intn(len(workCategories))]
		department := Departments[rng.Intn(len(Departments))]
		created := now.AddDate(0, 0, -rng.Intn(90)).Add(-time.Duration(rng.Intn(24*60)) * time.Minute)
		due := created.AddDate(0, 0, 1+rng.Intn(30))

		orders = append(orders, Order{
			ID:          fmt.Sprintf("WO-%06d", i+1),
			Title:       fmt.Sprintf("%s - %s #%d", category, department, i+1),
			Description: fmt.Sprintf("%s for %s. %s", category, department, descriptionNotes[rng.Intn(len(descriptionNotes))]),
			Assignee:    assignees[rng.Intn(len(assignees))],
			Department:  department,
			Priority:    PriorityOptions[rng.Intn(len(PriorityOptions))],
			Status:      StatusOptions[rng.Intn(len(StatusOptions))],
			CreatedAt:   created,
			DueAt:       due,
		})
	}
	return orders
}
