package acts

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore persists acts in the "acts" table.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	if err := initSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}

	return &PostgresStore{pool: pool}, nil
}

func initSchema(ctx context.Context, pool *pgxpool.Pool) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS acts (
			user_id BIGINT NOT NULL,
			name TEXT NOT NULL,
			date TEXT NOT NULL,
			time TEXT NOT NULL,
			location TEXT NOT NULL,
			description TEXT NOT NULL
		);`,
	}

	for _, stmt := range stmts {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema failed on %q: %w", stmt, err)
		}
	}
	return nil
}

func (s *PostgresStore) Insert(ctx context.Context, act Act) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO acts (user_id, name, date, time, location, description)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		act.SubmitterID,
		act.SubmitterName,
		act.Date,
		act.Time,
		act.Location,
		act.Description,
	)
	if err != nil {
		return fmt.Errorf("insert act: %w", err)
	}
	return nil
}

func (s *PostgresStore) ScanAll(ctx context.Context) ([]Act, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT user_id, name, date, time, location, description FROM acts`,
	)
	if err != nil {
		return nil, fmt.Errorf("query acts: %w", err)
	}
	defer rows.Close()

	var items []Act
	for rows.Next() {
		var a Act
		if err := rows.Scan(&a.SubmitterID, &a.SubmitterName, &a.Date, &a.Time, &a.Location, &a.Description); err != nil {
			return nil, fmt.Errorf("scan act row: %w", err)
		}
		items = append(items, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate act rows: %w", err)
	}
	return items, nil
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}
