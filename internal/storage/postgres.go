package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/romangod6/sitemapgen/internal/models"
)

type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(connStr string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) Initialize() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS runs (
            id UUID PRIMARY KEY,
            generated_at TIMESTAMPTZ NOT NULL,
            base_url VARCHAR(2048) NOT NULL,
            output_path TEXT NOT NULL,
            scanned INTEGER NOT NULL,
            skipped TEXT[]
        )`,
		`CREATE TABLE IF NOT EXISTS run_entries (
            run_id UUID NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
            position INTEGER NOT NULL,
            loc VARCHAR(2048) NOT NULL,
            lastmod VARCHAR(32),
            changefreq VARCHAR(16),
            priority VARCHAR(8),
            PRIMARY KEY (run_id, position)
        )`,
		`CREATE INDEX IF NOT EXISTS idx_runs_generated_at ON runs(generated_at)`,
	}

	for _, query := range queries {
		if _, err := s.db.Exec(query); err != nil {
			return fmt.Errorf("error executing query %s: %w", query, err)
		}
	}

	return nil
}

func (s *PostgresStore) RecordRun(ctx context.Context, run *models.Run) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
        INSERT INTO runs (id, generated_at, base_url, output_path, scanned, skipped)
        VALUES ($1, $2, $3, $4, $5, $6)
    `,
		run.ID,
		run.GeneratedAt,
		run.BaseURL,
		run.OutputPath,
		run.Scanned,
		pq.Array(run.Skipped),
	)
	if err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, pq.CopyIn("run_entries",
		"run_id", "position", "loc", "lastmod", "changefreq", "priority"))
	if err != nil {
		return err
	}
	for i, entry := range run.Entries {
		if _, err := stmt.ExecContext(ctx, run.ID.String(), i, entry.Loc, entry.LastMod, string(entry.ChangeFreq), entry.Priority); err != nil {
			stmt.Close()
			return err
		}
	}
	if _, err := stmt.ExecContext(ctx); err != nil {
		stmt.Close()
		return err
	}
	if err := stmt.Close(); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *PostgresStore) GetRun(ctx context.Context, id uuid.UUID) (*models.Run, error) {
	query := `
        SELECT id, generated_at, base_url, output_path, scanned, skipped
        FROM runs
        WHERE id = $1
    `

	run, err := scanPostgresRun(s.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
        SELECT loc, lastmod, changefreq, priority
        FROM run_entries
        WHERE run_id = $1
        ORDER BY position
    `, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry models.URL
		var changeFreq string
		if err := rows.Scan(&entry.Loc, &entry.LastMod, &changeFreq, &entry.Priority); err != nil {
			return nil, err
		}
		entry.ChangeFreq = models.ChangeFreq(changeFreq)
		run.Entries = append(run.Entries, entry)
	}

	return run, rows.Err()
}

func (s *PostgresStore) ListRuns(ctx context.Context, limit, offset int) ([]*models.Run, error) {
	query := `
        SELECT id, generated_at, base_url, output_path, scanned, skipped
        FROM runs
        ORDER BY generated_at DESC
        LIMIT $1 OFFSET $2
    `

	rows, err := s.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*models.Run
	for rows.Next() {
		run, err := scanPostgresRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

func scanPostgresRun(row rowScanner) (*models.Run, error) {
	run := &models.Run{}
	var skipped []string

	err := row.Scan(
		&run.ID,
		&run.GeneratedAt,
		&run.BaseURL,
		&run.OutputPath,
		&run.Scanned,
		pq.Array(&skipped),
	)
	if err != nil {
		return nil, err
	}

	run.Skipped = skipped
	return run, nil
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}
