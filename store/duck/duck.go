// Package duck stores jobs in an in-memory duckdb.
package duck

import (
	"context"
	"database/sql"

	_ "github.com/marcboeker/go-duckdb"
	"github.com/pkg/errors"

	nt "furrow/entity"
	"furrow/store/sqlbuild"
	"furrow/store/sqlstore"
)

// Duck is a duckdb backed job store.
type Duck struct {
	*sqlstore.Store
}

// New opens an in-memory duckdb.
func New(ctx context.Context, lgr nt.Logger) (dk *Duck, err error) {

	db, err := sql.Open("duckdb", "")
	if err != nil {
		err = errors.Wrapf(err, "failed to open memo duck")
		return
	}

	// duckdb lower differs from strings.ToLower, so text search stays in go
	store, err := sqlstore.New(ctx, db, "duckdb", sqlbuild.Dialect{}, lgr)
	if err != nil {
		db.Close()
		return
	}

	dk = &Duck{Store: store}
	return
}
