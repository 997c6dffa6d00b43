package main

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/UBF21/Vali-Validation/pkg/validator"
)

// execer is satisfied by *pgxpool.Pool.
type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type account struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Country  string `json:"country"`
	Stored   bool   `json:"stored"`
}

// accounts persists validated signups. Without a database it only echoes them.
type accounts struct {
	db  execer
	log *slog.Logger
}

func (a accounts) create(ctx context.Context, req signupRequest) (any, error) {
	acc := account{
		Username: req.Username,
		Email:    strings.ToLower(req.Email),
		Country:  strings.ToUpper(req.Country),
	}
	if a.db == nil {
		return acc, nil
	}

	_, err := a.db.Exec(ctx,
		`INSERT INTO users (username, email, country) VALUES ($1, $2, $3)`,
		acc.Username, acc.Email, acc.Country,
	)
	if err != nil {
		// Another request may have taken the name between validation and insert.
		if res := conflictResult(err); res != nil {
			return nil, res.Err()
		}
		return nil, err
	}

	a.log.InfoContext(ctx, "account created", slog.String("username", acc.Username))
	acc.Stored = true
	return acc, nil
}

// conflictResult maps a unique violation (SQLSTATE 23505) to a validation
// report under the offending property. Other errors return nil.
func conflictResult(err error) *validator.Result {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return nil
	}

	res := validator.NewResult()
	switch {
	case strings.Contains(pgErr.ConstraintName, "email"):
		res.AddError("Email", "The Email is already registered.")
	case strings.Contains(pgErr.ConstraintName, "username"):
		res.AddError("Username", "The Username is already taken.")
	default:
		return nil
	}
	return res
}
