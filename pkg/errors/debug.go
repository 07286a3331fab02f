package errors

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

const (
	StorePostgres = "postgres"
	StoreSQLite   = "sqlite"
)

// ErrorDump flattens an error for structured logs. The DB fields are filled
// from postgres errors (pgx or pq) and from sqlite constraint messages.
type ErrorDump struct {
	TopMessage string `json:"top_message"`
	Code       Code   `json:"code,omitempty"`

	Chain []string `json:"chain,omitempty"`

	Store        string `json:"db_store,omitempty"`
	DBCode       string `json:"db_code,omitempty"`
	DBConstraint string `json:"db_constraint,omitempty"`
	DBTable      string `json:"db_table,omitempty"`
	DBColumn     string `json:"db_column,omitempty"`
	DBDetail     string `json:"db_detail,omitempty"`
	DBMessage    string `json:"db_message,omitempty"`
}

// sqlite reports e.g. "UNIQUE constraint failed: shop_products.shop_id, shop_products.product_id".
var sqliteConstraintRe = regexp.MustCompile(`(UNIQUE|FOREIGN KEY|CHECK|NOT NULL) constraint failed(?::\s*(.+))?`)

func Dump(err error) ErrorDump {
	if err == nil {
		return ErrorDump{}
	}

	d := ErrorDump{
		TopMessage: err.Error(),
	}

	if te := As(err); te != nil {
		d.Code = te.Code()
	}

	for e := err; e != nil; e = errors.Unwrap(e) {
		d.Chain = append(d.Chain, fmt.Sprintf("%T: %v", e, e))
	}

	if dumpPostgres(&d, err) {
		return d
	}
	dumpSQLite(&d, err.Error())
	return d
}

func dumpPostgres(d *ErrorDump, err error) bool {
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		d.Store = StorePostgres
		d.DBCode = pgxErr.Code
		d.DBConstraint = pgxErr.ConstraintName
		d.DBTable = pgxErr.TableName
		d.DBColumn = pgxErr.ColumnName
		d.DBDetail = pgxErr.Detail
		d.DBMessage = pgxErr.Message
		return true
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		d.Store = StorePostgres
		d.DBCode = string(pqErr.Code)
		d.DBConstraint = pqErr.Constraint
		d.DBTable = pqErr.Table
		d.DBColumn = pqErr.Column
		d.DBDetail = pqErr.Detail
		d.DBMessage = pqErr.Message
		return true
	}
	return false
}

func dumpSQLite(d *ErrorDump, msg string) {
	m := sqliteConstraintRe.FindStringSubmatch(msg)
	if m == nil {
		return
	}
	d.Store = StoreSQLite
	d.DBCode = m[1]
	d.DBMessage = m[0]

	target := strings.TrimSpace(m[2])
	if target == "" {
		return
	}
	if m[1] == "CHECK" {
		d.DBConstraint = target
		return
	}
	var columns []string
	for _, qualified := range strings.Split(target, ",") {
		table, column, ok := strings.Cut(strings.TrimSpace(qualified), ".")
		if !ok {
			continue
		}
		d.DBTable = table
		columns = append(columns, column)
	}
	d.DBColumn = strings.Join(columns, ",")
}
