package sqlbuild

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	nt "furrow/entity"
)

// CreateJobs is ddl for the jobs table; the types suit both duckdb and sqlite.
const CreateJobs = `
	CREATE TABLE IF NOT EXISTS jobs (
		seq INTEGER NOT NULL,
		id VARCHAR NOT NULL,
		title VARCHAR,
		description VARCHAR,
		category VARCHAR,
		price VARCHAR,
		price_type VARCHAR,
		location VARCHAR,
		distance DOUBLE,
		"date" VARCHAR,
		"time" VARCHAR,
		tags VARCHAR,
		urgent BOOLEAN,
		applicants INTEGER,
		status VARCHAR
	)
`

const jobCols = `seq, id, title, description, category, price, price_type, location, distance, "date", "time", tags, urgent, applicants, status`

// InsertJobs replaces the contents of the jobs table, keeping slice order in seq.
func InsertJobs(ctx context.Context, db *sql.DB, jobs []nt.Job) (err error) {

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		err = errors.Wrapf(err, "failed to begin load")
		return
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	_, err = tx.ExecContext(ctx, "DELETE FROM jobs")
	if err != nil {
		err = errors.Wrapf(err, "failed to clear jobs")
		return
	}

	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf(
		"INSERT INTO jobs (%s) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)", jobCols))
	if err != nil {
		err = errors.Wrapf(err, "failed to prepare insert")
		return
	}
	defer stmt.Close()

	for i, job := range jobs {
		_, err = stmt.ExecContext(ctx,
			i, job.ID, job.Title, job.Description, job.Category, job.Price, job.PriceType,
			job.Location, job.Distance, job.Date, job.Time, strings.Join(job.Tags, TagSep),
			job.Urgent, job.Applicants, job.Status,
		)
		if err != nil {
			err = errors.Wrapf(err, "failed to insert job %s", job.ID)
			return
		}
	}

	err = tx.Commit()
	err = errors.Wrapf(err, "failed to commit load")
	return
}

// SelectJobs returns the jobs matching the clause's sql conditions in load order.
// The residual set is not applied here.
func SelectJobs(ctx context.Context, db *sql.DB, clause Clause) (jobs []nt.Job, err error) {

	query := fmt.Sprintf("SELECT %s FROM jobs %s ORDER BY seq", jobCols, clause.Where)

	rows, err := db.QueryContext(ctx, query, clause.Args...)
	if err != nil {
		err = errors.Wrapf(err, "failed to query jobs")
		return
	}
	defer rows.Close()

	jobs = []nt.Job{}
	for rows.Next() {
		var (
			job  nt.Job
			seq  int
			tags string
		)
		err = rows.Scan(
			&seq, &job.ID, &job.Title, &job.Description, &job.Category, &job.Price, &job.PriceType,
			&job.Location, &job.Distance, &job.Date, &job.Time, &tags,
			&job.Urgent, &job.Applicants, &job.Status,
		)
		if err != nil {
			err = errors.Wrapf(err, "failed to scan job")
			return
		}
		if tags != "" {
			job.Tags = strings.Split(tags, TagSep)
		}
		jobs = append(jobs, job)
	}

	err = rows.Err()
	err = errors.Wrapf(err, "error iterating jobs")
	return
}

// CountValues groups a text column under the clause, busiest value first.
// Empty values are not counted.
func CountValues(ctx context.Context, db *sql.DB, col Column, clause Clause) (counts []nt.ValueCount, err error) {

	if col.Kind != Text {
		err = errors.Errorf("cannot group %s in sql", col.Name)
		return
	}
	name := Quote(col.Name)

	query := fmt.Sprintf(
		"SELECT %s, COUNT(*) AS n FROM jobs %s GROUP BY %s ORDER BY n DESC, %s",
		name, clause.And(fmt.Sprintf("%s <> ''", name)), name, name)

	rows, err := db.QueryContext(ctx, query, clause.Args...)
	if err != nil {
		err = errors.Wrapf(err, "failed to count %s", col.Name)
		return
	}
	defer rows.Close()

	counts = []nt.ValueCount{}
	for rows.Next() {
		var vc nt.ValueCount
		if err = rows.Scan(&vc.Value, &vc.Count); err != nil {
			err = errors.Wrapf(err, "failed to scan count")
			return
		}
		counts = append(counts, vc)
	}

	err = rows.Err()
	err = errors.Wrapf(err, "error iterating counts")
	return
}
