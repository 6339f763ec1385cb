// Package lite stores jobs in sqlite.
package lite

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"strings"

	"github.com/pkg/errors"
	"modernc.org/sqlite"

	nt "furrow/entity"
	"furrow/store/sqlbuild"
	"furrow/store/sqlstore"
)

// Memory is the path for a private in-memory database.
const Memory = ":memory:"

// lowerFunc folds case as the in-memory engine does, where sqlite lower folds ascii only.
const lowerFunc = "furrow_lower"

func init() {
	sqlite.MustRegisterDeterministicScalarFunction(lowerFunc, 1, lower)
}

// Lite is a sqlite backed job store.
type Lite struct {
	*sqlstore.Store
}

// New opens sqlite at path.
func New(ctx context.Context, path string, lgr nt.Logger) (lt *Lite, err error) {

	db, err := sql.Open("sqlite", path)
	if err != nil {
		err = errors.Wrapf(err, "failed to open sqlite at %s", path)
		return
	}
	// each connection to :memory: is its own database
	db.SetMaxOpenConns(1)

	store, err := sqlstore.New(ctx, db, "sqlite", sqlbuild.Dialect{Lower: lowerFunc}, lgr)
	if err != nil {
		db.Close()
		return
	}

	lt = &Lite{Store: store}
	return
}

// unexported

func lower(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {

	switch arg := args[0].(type) {
	case nil:
		return nil, nil
	case string:
		return strings.ToLower(arg), nil
	case []byte:
		return strings.ToLower(string(arg)), nil
	}
	return nil, errors.Errorf("cannot lower %T", args[0])
}
