package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/sells-group/resale-intel/internal/research"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS snapshots (
	id               TEXT PRIMARY KEY,
	category         TEXT NOT NULL,
	brand            TEXT NOT NULL DEFAULT '',
	assessment       TEXT NOT NULL,
	price_multiplier REAL NOT NULL,
	doc              TEXT NOT NULL,
	created_at       DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_snapshots_category ON snapshots(category);
CREATE INDEX IF NOT EXISTS idx_snapshots_brand ON snapshots(brand);
CREATE INDEX IF NOT EXISTS idx_snapshots_assessment ON snapshots(assessment);
CREATE INDEX IF NOT EXISTS idx_snapshots_created_at ON snapshots(created_at);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) SaveSnapshot(ctx context.Context, snapshot *research.Snapshot) error {
	doc, err := json.Marshal(snapshot)
	if err != nil {
		return eris.Wrap(err, "sqlite: marshal snapshot")
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO snapshots (id, category, brand, assessment, price_multiplier, doc, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   assessment = excluded.assessment,
		   price_multiplier = excluded.price_multiplier,
		   doc = excluded.doc`,
		snapshot.ID,
		string(snapshot.Category),
		snapshot.Brand,
		string(snapshot.Authenticity.Assessment),
		snapshot.PriceMultiplier,
		string(doc),
		snapshot.CreatedAt,
	)
	if err != nil {
		return eris.Wrapf(err, "sqlite: insert snapshot %s", snapshot.ID)
	}
	return nil
}

func (s *SQLiteStore) SaveSnapshots(ctx context.Context, snapshots []*research.Snapshot) (int, error) {
	saved := 0
	for _, snap := range snapshots {
		if err := s.SaveSnapshot(ctx, snap); err != nil {
			return saved, err
		}
		saved++
	}
	return saved, nil
}

func (s *SQLiteStore) GetSnapshot(ctx context.Context, id string) (*research.Snapshot, error) {
	var doc string
	err := s.db.QueryRowContext(ctx, `SELECT doc FROM snapshots WHERE id = ?`, id).Scan(&doc)
	if err != nil {
		if eris.Is(err, sql.ErrNoRows) {
			return nil, eris.Errorf("sqlite: snapshot %s not found", id)
		}
		return nil, eris.Wrapf(err, "sqlite: get snapshot %s", id)
	}

	var snapshot research.Snapshot
	if err := json.Unmarshal([]byte(doc), &snapshot); err != nil {
		return nil, eris.Wrapf(err, "sqlite: unmarshal snapshot %s", id)
	}
	return &snapshot, nil
}

func (s *SQLiteStore) ListSnapshots(ctx context.Context, filter SnapshotFilter) ([]research.Snapshot, error) {
	query := `SELECT doc FROM snapshots WHERE 1=1`
	var args []any

	if filter.Category != "" {
		query += ` AND category = ?`
		args = append(args, string(filter.Category))
	}
	if filter.Brand != "" {
		query += ` AND brand = ?`
		args = append(args, filter.Brand)
	}
	if filter.Assessment != "" {
		query += ` AND assessment = ?`
		args = append(args, string(filter.Assessment))
	}
	query += ` ORDER BY created_at DESC`
	if filter.Limit > 0 {
		query += fmt.Sprintf(` LIMIT %d`, filter.Limit)
		if filter.Offset > 0 {
			query += fmt.Sprintf(` OFFSET %d`, filter.Offset)
		}
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list snapshots")
	}
	defer rows.Close()

	var snapshots []research.Snapshot
	for rows.Next() {
		var doc string
		if err := rows.Scan(&doc); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan snapshot row")
		}
		var snapshot research.Snapshot
		if err := json.Unmarshal([]byte(doc), &snapshot); err != nil {
			return nil, eris.Wrap(err, "sqlite: unmarshal snapshot row")
		}
		snapshots = append(snapshots, snapshot)
	}
	if err := rows.Err(); err != nil {
		return nil, eris.Wrap(err, "sqlite: iterate snapshots")
	}
	return snapshots, nil
}
