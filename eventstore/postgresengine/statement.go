package postgresengine

import (
	"errors"

	"github.com/AntonStoeckl/catalog-uow-go/eventstore"
)

// Statement is one parameterized SQL statement, queued by value.
type Statement struct {
	SQL  string
	Args []any
}

// SQLBuilder is implemented by goqu datasets (select, insert, update, delete).
type SQLBuilder interface {
	ToSQL() (string, []any, error)
}

// BuildStatement renders a goqu dataset into a Statement.
// Datasets should be in prepared mode so that values travel as arguments and never as SQL text.
func BuildStatement(builder SQLBuilder) (Statement, error) {
	sqlQuery, args, toSQLErr := builder.ToSQL()
	if toSQLErr != nil {
		return Statement{}, errors.Join(eventstore.ErrBuildingQueryFailed, toSQLErr)
	}

	return Statement{SQL: sqlQuery, Args: args}, nil
}
