package ledger

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"time"

	_ "github.com/lib/pq"
)

type PostgresService struct {
	db *sql.DB
}

func NewPostgresServiceFromEnv() (*PostgresService, error) {
	dsn := strings.TrimSpace(os.Getenv("LEDGER_DATABASE_URL"))
	if dsn == "" {
		return nil, fmt.Errorf("LEDGER_DATABASE_URL is not set")
	}
	return NewPostgresService(dsn)
}

func NewPostgresService(dsn string) (*PostgresService, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetConnMaxLifetime(time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	if _, err := db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS runs (
	id BIGSERIAL PRIMARY KEY,
	class TEXT NOT NULL,
	ascension INTEGER NOT NULL,
	floor INTEGER NOT NULL,
	score INTEGER NOT NULL,
	victory BOOLEAN NOT NULL,
	seed BIGINT NOT NULL,
	ended_at TIMESTAMPTZ NOT NULL
)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create runs table: %w", err)
	}
	return &PostgresService{db: db}, nil
}

func (s *PostgresService) RecordRun(ctx context.Context, run RunResult) error {
	_, err := s.db.ExecContext(ctx, `
INSERT INTO runs (class, ascension, floor, score, victory, seed, ended_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		run.Class, run.Ascension, run.Floor, run.Score, run.Victory, run.Seed, run.EndedAt)
	return err
}

func (s *PostgresService) RecentRuns(ctx context.Context, limit int) ([]RunResult, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
SELECT class, ascension, floor, score, victory, seed, ended_at
FROM runs ORDER BY id DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RunResult
	for rows.Next() {
		var run RunResult
		if err := rows.Scan(&run.Class, &run.Ascension, &run.Floor, &run.Score, &run.Victory, &run.Seed, &run.EndedAt); err != nil {
			return nil, err
		}
		out = append(out, run)
	}
	return out, rows.Err()
}

func (s *PostgresService) Close() error { return s.db.Close() }
