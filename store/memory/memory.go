// Package memory keeps jobs in a slice and filters them with facet.
package memory

import (
	"context"
	"slices"

	nt "furrow/entity"
	"furrow/facet"
)

// Memory is an in-process job store.
type Memory struct {
	jobs   []nt.Job
	logger nt.Logger
}

// New creates an empty store.
func New(lgr nt.Logger) *Memory {
	return &Memory{logger: lgr}
}

// Name returns the name of the data source.
func (mem *Memory) Name() string {
	return "memory"
}

// Load replaces stored jobs with a copy of jobs.
func (mem *Memory) Load(ctx context.Context, jobs []nt.Job) error {

	mem.jobs = slices.Clone(jobs)
	mem.logger.Info(ctx, "loaded jobs", "store", mem.Name(), "count", len(jobs))
	return nil
}

// Query returns the jobs matching set in load order.
func (mem *Memory) Query(ctx context.Context, set nt.Set) ([]nt.Job, error) {
	return facet.Apply(mem.jobs, set), nil
}

// Facets counts the values of field among jobs matching the other filters in set.
func (mem *Memory) Facets(ctx context.Context, set nt.Set, field string) ([]nt.ValueCount, error) {
	return facet.Counts(mem.jobs, set, field), nil
}

// Close is a no-op.
func (mem *Memory) Close() {}
