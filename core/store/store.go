// Package store persists assembled blueprints to a local SQLite database.
// It serves the CLI's save and inspection commands; the generation pipeline
// itself never touches it.
package store

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/veltaire/planforge/core/blueprint"
)

//go:embed schema.sql
var schemaSQL string

// Store wraps a SQLite handle. Safe for concurrent use; database/sql
// serializes access per connection.
type Store struct {
	db   *sql.DB
	path string
}

// Record is one persisted blueprint row with its decoded payload.
type Record struct {
	ID           string
	Company      string
	Pattern      string
	Provider     string
	Model        string
	QualityScore int
	Attempts     int
	CreatedAt    time.Time
	Blueprint    *blueprint.AgenticBlueprint
}

func Open(path string) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_pragma=synchronous(NORMAL)", path)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database at %s: %w", path, err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database at %s: %w", path, err)
	}

	s := &Store{db: db, path: path}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database at %s: %w", path, err)
	}

	return s, nil
}

func (s *Store) migrate() error {
	_, err := s.db.Exec(schemaSQL)
	return err
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Save upserts one blueprint keyed by its provenance ID.
func (s *Store) Save(ctx context.Context, company string, bp *blueprint.AgenticBlueprint) error {
	payload, err := json.Marshal(bp)
	if err != nil {
		return fmt.Errorf("failed to encode blueprint %s: %w", bp.Provenance.BlueprintID, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO blueprints (id, company, pattern, provider, model, quality_score, attempts, created_at, payload)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			company = excluded.company,
			pattern = excluded.pattern,
			provider = excluded.provider,
			model = excluded.model,
			quality_score = excluded.quality_score,
			attempts = excluded.attempts,
			payload = excluded.payload`,
		bp.Provenance.BlueprintID,
		company,
		string(bp.Pattern),
		bp.Provenance.Provider,
		bp.Provenance.Model,
		bp.QualityScore,
		bp.Provenance.Attempts,
		bp.Provenance.GeneratedAt.UTC().Format(time.RFC3339),
		string(payload),
	)
	if err != nil {
		return fmt.Errorf("failed to save blueprint %s: %w", bp.Provenance.BlueprintID, err)
	}
	return nil
}

// Get loads one blueprint by ID. Returns (nil, nil) when absent.
func (s *Store) Get(ctx context.Context, id string) (*Record, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, company, pattern, provider, model, quality_score, attempts, created_at, payload
		FROM blueprints WHERE id = ?`, id)

	rec, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load blueprint %s: %w", id, err)
	}
	return rec, nil
}

// List returns the most recent blueprints, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]*Record, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, company, pattern, provider, model, quality_score, attempts, created_at, payload
		FROM blueprints ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list blueprints: %w", err)
	}
	defer rows.Close()

	var records []*Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan blueprint row: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(sc scanner) (*Record, error) {
	var rec Record
	var createdAt, payload string

	err := sc.Scan(
		&rec.ID, &rec.Company, &rec.Pattern, &rec.Provider, &rec.Model,
		&rec.QualityScore, &rec.Attempts, &createdAt, &payload,
	)
	if err != nil {
		return nil, err
	}

	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		rec.CreatedAt = t
	}

	var bp blueprint.AgenticBlueprint
	if err := json.Unmarshal([]byte(payload), &bp); err != nil {
		return nil, fmt.Errorf("corrupt blueprint payload for %s: %w", rec.ID, err)
	}
	rec.Blueprint = &bp

	return &rec, nil
}
