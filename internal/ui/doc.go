// Package ui implements the foreman terminal console on bubbletea.
//
// The model owns a store of the whole Session and two watchers over it:
// one for the filter inputs (base set, search term, criteria) and one
// for the feed provenance. Key handling writes to the store
// synchronously, so typed input is reflected in the very next View;
// recomputing the visible set over the full base set runs as a
// bubbletea command, tagged with a generation counter so that only the
// newest result is ever applied.
package ui
