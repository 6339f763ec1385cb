// Package sqlstore is a job store over database/sql, shared by the duckdb and sqlite stores.
package sqlstore

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"

	nt "furrow/entity"
	"furrow/facet"
	"furrow/store/sqlbuild"
)

// Store keeps jobs in a sql table and pushes filters down as sql.
type Store struct {
	db      *sql.DB
	name    string
	dialect sqlbuild.Dialect
	logger  nt.Logger
}

// New creates the jobs table in db.
func New(ctx context.Context, db *sql.DB, name string, dialect sqlbuild.Dialect, lgr nt.Logger) (store *Store, err error) {

	_, err = db.ExecContext(ctx, sqlbuild.CreateJobs)
	if err != nil {
		err = errors.Wrapf(err, "failed to create jobs table")
		return
	}

	store = &Store{
		db:      db,
		name:    name,
		dialect: dialect,
		logger:  lgr,
	}
	return
}

// Name returns the name of the data source.
func (store *Store) Name() string {
	return store.name
}

// Close releases the database.
func (store *Store) Close() {
	store.db.Close()
}

// Load replaces stored jobs.
func (store *Store) Load(ctx context.Context, jobs []nt.Job) (err error) {

	err = sqlbuild.InsertJobs(ctx, store.db, jobs)
	if err != nil {
		return
	}

	store.logger.Info(ctx, "loaded jobs", "store", store.name, "count", len(jobs))
	return
}

// Query returns the jobs matching set in load order.
func (store *Store) Query(ctx context.Context, set nt.Set) (jobs []nt.Job, err error) {

	clause := sqlbuild.Build(set, sqlbuild.JobColumns, store.dialect)

	jobs, err = sqlbuild.SelectJobs(ctx, store.db, clause)
	if err != nil {
		return
	}

	if len(clause.Residual) > 0 {
		store.logger.Info(ctx, "filtering residual", "store", store.name, "count", len(clause.Residual))
		jobs = facet.Apply(jobs, clause.Residual)
	}
	return
}

// Facets counts the values of field among jobs matching the other filters in set.
func (store *Store) Facets(ctx context.Context, set nt.Set, field string) (counts []nt.ValueCount, err error) {

	others := set.Without(field)
	clause := sqlbuild.Build(others, sqlbuild.JobColumns, store.dialect)

	col, known := sqlbuild.JobColumns[field]
	if known && col.Kind == sqlbuild.Text && len(clause.Residual) == 0 {
		counts, err = sqlbuild.CountValues(ctx, store.db, col, clause)
		return
	}

	jobs, err := sqlbuild.SelectJobs(ctx, store.db, clause)
	if err != nil {
		return
	}

	counts = facet.Counts(jobs, clause.Residual, field)
	return
}
