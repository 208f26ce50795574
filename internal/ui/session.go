package ui

import (
	"time"

	"github.com/tbranch/foreman/internal/datasource"
	"github.com/tbranch/foreman/internal/workorder"
)

// Session is the single state value held by the application store. Every
// update replaces the whole value; slices are shared, never mutated.
type Session struct {
	// Orders is the immutable base record set for the session.
	Orders []workorder.Order

	// Query is the free-text search term as typed.
	Query string

	// Criteria is the active structured filter.
	Criteria workorder.Criteria

	// Feed records which collaborator produced Orders.
	Feed Feed
}

// Feed is the provenance of the loaded record set.
type Feed struct {
	Source         datasource.Source
	FallbackReason string
	Total          int
	LoadedAt       time.Time
}

// filterInputs is the projection watched for filter recomputation. All
// fields compare one level deep: the base set by slice identity, the
// term by value, the criteria fieldwise.
type filterInputs struct {
	Orders   []workorder.Order
	Query    string
	Criteria workorder.Criteria
}

func selectFilterInputs(s Session) filterInputs {
	return filterInputs{Orders: s.Orders, Query: s.Query, Criteria: s.Criteria}
}

func selectFeed(s Session) Feed {
	return s.Feed
}
