package checks

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
)

// RowQuerier is satisfied by *pgx.Conn, *pgxpool.Pool and pgx.Tx.
type RowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ExistsInPostgres passes when a row of table has column equal to the value.
// table may be schema qualified ("billing.accounts"); both identifiers are
// quoted.
//
//	validator.RuleFor(v, "CountryCode", func(o Order) string { return o.CountryCode }).
//	    MustAsync(checks.ExistsInPostgres[string](pool, "countries", "code"), "Unknown country.")
func ExistsInPostgres[P any](db RowQuerier, table, column string) Predicate[P] {
	query := existsQuery(table, column)
	return func(ctx context.Context, value P) (bool, error) {
		v, ok := lookupValue(value)
		if !ok {
			return true, nil
		}

		var exists bool
		if err := db.QueryRow(ctx, query, v).Scan(&exists); err != nil {
			return false, errors.Join(ErrLookup, fmt.Errorf("postgres %s.%s: %w", table, column, err))
		}
		return exists, nil
	}
}

// UniqueInPostgres passes when no row of table has column equal to the value.
func UniqueInPostgres[P any](db RowQuerier, table, column string) Predicate[P] {
	return negate(ExistsInPostgres[P](db, table, column))
}

func existsQuery(table, column string) string {
	if table == "" || column == "" {
		panic(fmt.Errorf("%w: table and column are required", ErrInvalidTarget))
	}
	return fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)",
		pgx.Identifier(strings.Split(table, ".")).Sanitize(),
		pgx.Identifier{column}.Sanitize(),
	)
}
