package repository

import (
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// deleteByID removes a single row by id, translating "nothing deleted" into
// sql.ErrNoRows so services can map it to a not-found error. The table name
// is always a compile-time constant at the call sites.
func deleteByID(db *sqlx.DB, table, id string) error {
	res, err := db.Exec(fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, table), id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
