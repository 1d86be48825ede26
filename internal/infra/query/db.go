// Package query holds every SQL statement the application runs. Static
// statements are constants; filters that vary per request are assembled with
// squirrel. Methods take the DBTX to run on so the same Queries value serves
// pooled connections and transactions alike.
package query

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

type Queries struct {
	psql sq.StatementBuilderType
}

func New() *Queries {
	return &Queries{psql: sq.StatementBuilder.PlaceholderFormat(sq.Dollar)}
}
