package repo

import (
	"context"
	"strings"

	"github.com/angelmondragon/dashboard-backend/pkg/db"
	pkgerrors "github.com/angelmondragon/dashboard-backend/pkg/errors"
	"gorm.io/gorm"
)

// Base provides a shared foundation for the dashboard repositories.
type Base struct {
	db       *gorm.DB
	resource string
}

// NewBase constructs a Base repository for the named resource ("product", "order", ...).
func NewBase(conn *gorm.DB, resource string) Base {
	return Base{db: conn, resource: resource}
}

// DB returns the GORM connection bound to the supplied context (if any).
func (b Base) DB(ctx context.Context) *gorm.DB {
	if ctx == nil {
		return b.db
	}
	return b.db.WithContext(ctx)
}

// Resource is the singular name used in error messages.
func (b Base) Resource() string {
	return b.resource
}

// Err classifies a store error for this repository's resource.
func (b Base) Err(err error) error {
	return db.MapError(err, b.resource)
}

// DeleteErr classifies a delete failure. A foreign key violation means other
// rows still reference this one, which is reported as CONFLICT with referenced
// as the message.
func (b Base) DeleteErr(err error, referenced string) error {
	if err != nil && db.IsForeignKeyViolation(err) {
		return pkgerrors.Wrap(pkgerrors.CodeConflict, err, referenced)
	}
	return b.Err(err)
}

// Contains filters query to rows where any of the columns contains term,
// case-insensitively. A blank term leaves the query untouched.
func Contains(query *gorm.DB, term string, columns ...string) *gorm.DB {
	term = strings.TrimSpace(term)
	if term == "" || len(columns) == 0 {
		return query
	}
	pattern := LikePattern(term)
	clauses := make([]string, 0, len(columns))
	args := make([]any, 0, len(columns))
	for _, column := range columns {
		clauses = append(clauses, "LOWER("+column+") LIKE ? ESCAPE '\\'")
		args = append(args, pattern)
	}
	return query.Where("("+strings.Join(clauses, " OR ")+")", args...)
}

// LikePattern lower-cases term, escapes LIKE wildcards and wraps it in %.
func LikePattern(term string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(strings.ToLower(term))
	return "%" + escaped + "%"
}
