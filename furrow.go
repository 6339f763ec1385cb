// Package furrow browses farm work listings in the terminal.
package furrow

import (
	"context"

	nt "furrow/entity"
)

// Store specifies a backing datastore for jobs.
type Store interface {
	// Name returns the name of the data source
	Name() string
	// Load replaces stored jobs
	Load(ctx context.Context, jobs []nt.Job) (err error)
	// Query returns jobs matching every filter in set, in load order
	Query(ctx context.Context, set nt.Set) (jobs []nt.Job, err error)
	// Facets counts values of field among jobs matching set's other filters
	Facets(ctx context.Context, set nt.Set, field string) (counts []nt.ValueCount, err error)
	// Close releases resources
	Close()
}
