package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/romangod6/sitemapgen/internal/models"
)

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Initialize() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS runs (
            id TEXT PRIMARY KEY,
            generated_at DATETIME NOT NULL,
            base_url TEXT NOT NULL,
            output_path TEXT NOT NULL,
            scanned INTEGER NOT NULL,
            skipped TEXT
        )`,
		`CREATE TABLE IF NOT EXISTS run_entries (
            run_id TEXT NOT NULL,
            position INTEGER NOT NULL,
            loc TEXT NOT NULL,
            lastmod TEXT,
            changefreq TEXT,
            priority TEXT,
            PRIMARY KEY(run_id, position),
            FOREIGN KEY(run_id) REFERENCES runs(id)
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

func (s *SQLiteStore) RecordRun(ctx context.Context, run *models.Run) error {
	skippedJSON, err := json.Marshal(run.Skipped)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
        INSERT INTO runs (id, generated_at, base_url, output_path, scanned, skipped)
        VALUES (?, ?, ?, ?, ?, ?)
    `,
		run.ID.String(),
		run.GeneratedAt,
		run.BaseURL,
		run.OutputPath,
		run.Scanned,
		string(skippedJSON),
	)
	if err != nil {
		return err
	}

	for i, entry := range run.Entries {
		_, err := tx.ExecContext(ctx, `
            INSERT INTO run_entries (run_id, position, loc, lastmod, changefreq, priority)
            VALUES (?, ?, ?, ?, ?, ?)
        `,
			run.ID.String(),
			i,
			entry.Loc,
			entry.LastMod,
			string(entry.ChangeFreq),
			entry.Priority,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) GetRun(ctx context.Context, id uuid.UUID) (*models.Run, error) {
	query := `
        SELECT id, generated_at, base_url, output_path, scanned, skipped
        FROM runs
        WHERE id = ?
    `

	run, err := scanSQLiteRun(s.db.QueryRowContext(ctx, query, id.String()))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
        SELECT loc, lastmod, changefreq, priority
        FROM run_entries
        WHERE run_id = ?
        ORDER BY position
    `, id.String())
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

func (s *SQLiteStore) ListRuns(ctx context.Context, limit, offset int) ([]*models.Run, error) {
	query := `
        SELECT id, generated_at, base_url, output_path, scanned, skipped
        FROM runs
        ORDER BY generated_at DESC
        LIMIT ? OFFSET ?
    `

	rows, err := s.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*models.Run
	for rows.Next() {
		run, err := scanSQLiteRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSQLiteRun(row rowScanner) (*models.Run, error) {
	run := &models.Run{}
	var idStr string
	var skippedJSON sql.NullString

	err := row.Scan(
		&idStr,
		&run.GeneratedAt,
		&run.BaseURL,
		&run.OutputPath,
		&run.Scanned,
		&skippedJSON,
	)
	if err != nil {
		return nil, err
	}

	if run.ID, err = uuid.Parse(idStr); err != nil {
		return nil, fmt.Errorf("invalid run id %q: %w", idStr, err)
	}
	if skippedJSON.Valid {
		if err := json.Unmarshal([]byte(skippedJSON.String), &run.Skipped); err != nil {
			return nil, fmt.Errorf("invalid skipped list for run %s: %w", run.ID, err)
		}
	}

	return run, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
