package workorder

import (
	"strings"
	"time"
)

// Criteria is a structured filter. Zero-valued fields mean "All": no
// constraint on that field. All present constraints are conjunctive.
type Criteria struct {
	Status     Status
	Priority   Priority
	Department string

	// Inclusive created-date range. Zero times are unconstrained.
	CreatedFrom time.Time
	CreatedTo   time.Time
}

// IsZero reports whether no constraint is set.
func (c Criteria) IsZero() bool {
	return c.Status == "" && c.Priority == "" && c.Department == "" &&
		c.CreatedFrom.IsZero() && c.CreatedTo.IsZero()
}

// Matches reports whether the order passes every present constraint.
func (c Criteria) Matches(o Order) bool {
	if c.Status != "" && o.Status != c.Status {
		return false
	}
	if c.Priority != "" && o.Priority != c.Priority {
		return false
	}
	if c.Department != "" && o.Department != c.Department {
		return false
	}
	if !c.CreatedFrom.IsZero() && o.CreatedAt.Before(c.CreatedFrom) {
		return false
	}
	if !c.CreatedTo.IsZero() && o.CreatedAt.After(c.CreatedTo) {
		return false
	}
	return true
}

// termFields returns the searchable fields in their fixed match order.
func termFields(o Order) [5]string {
	return [5]string{o.ID, o.Title, o.Assignee, o.Department, string(o.Status)}
}

// ByTerm returns the orders whose ID, title, assignee, department, or
// status contains term as a case-insensitive substring. A blank term
// returns the input unchanged. The result preserves input order and the
// input is always scanned in full; results are never narrowed from a
// previous filtered subset, so relaxing a term cannot compound stale
// exclusions.
func ByTerm(orders []Order, term string) []Order {
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return orders
	}
	matched := make([]Order, 0, len(orders))
	for _, o := range orders {
		for _, field := range termFields(o) {
			if strings.Contains(strings.ToLower(field), needle) {
				matched = append(matched, o)
				break
			}
		}
	}
	return matched
}

// ByCriteria returns the orders passing every constraint in c, in input
// order. A zero Criteria returns the input unchanged.
func ByCriteria(orders []Order, c Criteria) []Order {
	if c.IsZero() {
		return orders
	}
	matched := make([]Order, 0, len(orders))
	for _, o := range orders {
		if c.Matches(o) {
			matched = append(matched, o)
		}
	}
	return matched
}

// Apply runs the free-text term and the structured criteria as an
// intersection over the full base set.
func Apply(orders []Order, term string, c Criteria) []Order {
	return ByCriteria(ByTerm(orders, term), c)
}
