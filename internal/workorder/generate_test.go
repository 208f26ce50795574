package workorder

import (
	"testing"
)

func TestGenerateSeeded_Deterministic(t *testing.T) {
	a := GenerateSeeded(200, 42)
	b := GenerateSeeded(200, 42)

	if len(a) != 200 || len(b) != 200 {
		t.Fatalf("generated %d and %d orders, want 200", len(a), len(b))
	}
	for i := range a {
		if a[i].ID != b[i].ID || a[i].Title != b[i].Title || a[i].Assignee != b[i].Assignee ||
			a[i].Status != b[i].Status || a[i].Priority != b[i].Priority {
			t.Fatalf("same seed diverged at index %d: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestGenerateSeeded_IDFormat(t *testing.T) {
	orders := GenerateSeeded(3, 1)

	want := []string{"WO-000001", "WO-000002", "WO-000003"}
	for i, o := range orders {
		if o.ID != want[i] {
			t.Fatalf("order %d ID = %q, want %q", i, o.ID, want[i])
		}
	}
}

func TestGenerateSeeded_FieldsPopulated(t *testing.T) {
	orders := GenerateSeeded(500, 9)

	for _, o := range orders {
		if o.Title == "" || o.Description == "" || o.Assignee == "" || o.Department == "" {
			t.Fatalf("order %s has empty textual fields: %+v", o.ID, o)
		}
		if o.Status == "" || o.Priority == "" {
			t.Fatalf("order %s missing categorical fields", o.ID)
		}
		if o.CreatedAt.IsZero() || o.DueAt.IsZero() {
			t.Fatalf("order %s missing dates", o.ID)
		}
		if o.DueAt.Before(o.CreatedAt) {
			t.Fatalf("order %s due %v before created %v", o.ID, o.DueAt, o.CreatedAt)
		}
	}
}

func TestGenerate_EmptyAndNegativeCounts(t *testing.T) {
	if got := Generate(0); got != nil {
		t.Fatalf("Generate(0) = %v, want nil", got)
	}
	if got := Generate(-5); got != nil {
		t.Fatalf("Generate(-5) = %v, want nil", got)
	}
}
