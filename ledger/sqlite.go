package ledger

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const defaultLocalDBName = "spirebot_runs.db"

type SQLiteService struct {
	db *sql.DB
}

func NewSQLiteServiceFromEnv() (*SQLiteService, error) {
	dbPath := strings.TrimSpace(os.Getenv("LEDGER_SQLITE_PATH"))
	if dbPath == "" {
		dbPath = defaultLocalDBName
	}
	return NewSQLiteService(dbPath)
}

func NewSQLiteService(dbPath string) (*SQLiteService, error) {
	dbPath = strings.TrimSpace(dbPath)
	if dbPath == "" {
		return nil, fmt.Errorf("empty sqlite database path")
	}
	if dbPath != ":memory:" {
		parent := filepath.Dir(dbPath)
		if parent != "" && parent != "." {
			if err := os.MkdirAll(parent, 0o755); err != nil {
				return nil, err
			}
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if _, err := db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS runs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	class TEXT NOT NULL,
	ascension INTEGER NOT NULL,
	floor INTEGER NOT NULL,
	score INTEGER NOT NULL,
	victory INTEGER NOT NULL,
	seed INTEGER NOT NULL,
	ended_at INTEGER NOT NULL
)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create runs table: %w", err)
	}
	return &SQLiteService{db: db}, nil
}

func (s *SQLiteService) RecordRun(ctx context.Context, run RunResult) error {
	victory := 0
	if run.Victory {
		victory = 1
	}
	_, err := s.db.ExecContext(ctx, `
INSERT INTO runs (class, ascension, floor, score, victory, seed, ended_at)
VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.Class, run.Ascension, run.Floor, run.Score, victory, run.Seed, run.EndedAt.Unix())
	return err
}

func (s *SQLiteService) RecentRuns(ctx context.Context, limit int) ([]RunResult, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
SELECT class, ascension, floor, score, victory, seed, ended_at
FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RunResult
	for rows.Next() {
		var run RunResult
		var victory int
		var endedAt int64
		if err := rows.Scan(&run.Class, &run.Ascension, &run.Floor, &run.Score, &victory, &run.Seed, &endedAt); err != nil {
			return nil, err
		}
		run.Victory = victory != 0
		run.EndedAt = time.Unix(endedAt, 0)
		out = append(out, run)
	}
	return out, rows.Err()
}

func (s *SQLiteService) Close() error { return s.db.Close() }
