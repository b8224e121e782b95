package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"

	"github.com/sells-group/resale-intel/internal/db"
	"github.com/sells-group/resale-intel/internal/research"
)

// PostgresStore implements Store on top of a pgx pool.
type PostgresStore struct {
	pool db.Pool

	// closer is set when the store owns the underlying pgxpool.
	closer func()
}

// NewPostgres connects to Postgres with the given connection string.
func NewPostgres(ctx context.Context, connString string) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: parse config")
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: connect")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "postgres: ping")
	}

	return &PostgresStore{pool: pool, closer: pool.Close}, nil
}

// NewPostgresWithPool wraps an existing pool. The caller keeps ownership
// of the pool's lifecycle; Close is a no-op. Used by tests with pgxmock.
func NewPostgresWithPool(pool db.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

const postgresMigration = `
CREATE TABLE IF NOT EXISTS snapshots (
	id               UUID PRIMARY KEY,
	category         TEXT NOT NULL,
	brand            TEXT NOT NULL DEFAULT '',
	assessment       TEXT NOT NULL,
	price_multiplier DOUBLE PRECISION NOT NULL,
	doc              JSONB NOT NULL,
	created_at       TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_snapshots_category ON snapshots(category);
CREATE INDEX IF NOT EXISTS idx_snapshots_brand ON snapshots(brand);
CREATE INDEX IF NOT EXISTS idx_snapshots_assessment ON snapshots(assessment);
CREATE INDEX IF NOT EXISTS idx_snapshots_created_at ON snapshots(created_at);
`

func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, postgresMigration)
	return eris.Wrap(err, "postgres: migrate")
}

func (s *PostgresStore) Close() error {
	if s.closer != nil {
		s.closer()
	}
	return nil
}

func (s *PostgresStore) SaveSnapshot(ctx context.Context, snapshot *research.Snapshot) error {
	doc, err := json.Marshal(snapshot)
	if err != nil {
		return eris.Wrap(err, "postgres: marshal snapshot")
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO snapshots (id, category, brand, assessment, price_multiplier, doc, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (id) DO UPDATE SET
		   assessment = EXCLUDED.assessment,
		   price_multiplier = EXCLUDED.price_multiplier,
		   doc = EXCLUDED.doc`,
		snapshot.ID,
		string(snapshot.Category),
		snapshot.Brand,
		string(snapshot.Authenticity.Assessment),
		snapshot.PriceMultiplier,
		doc,
		snapshot.CreatedAt,
	)
	if err != nil {
		return eris.Wrapf(err, "postgres: insert snapshot %s", snapshot.ID)
	}
	return nil
}

// SaveSnapshots bulk-inserts snapshots via the COPY protocol. Unlike
// SaveSnapshot it does not upsert; snapshots carry fresh UUIDs so
// collisions do not occur in practice.
func (s *PostgresStore) SaveSnapshots(ctx context.Context, snapshots []*research.Snapshot) (int, error) {
	if len(snapshots) == 0 {
		return 0, nil
	}

	rows := make([][]any, 0, len(snapshots))
	for _, snap := range snapshots {
		doc, err := json.Marshal(snap)
		if err != nil {
			return 0, eris.Wrapf(err, "postgres: marshal snapshot %s", snap.ID)
		}
		rows = append(rows, []any{
			snap.ID,
			string(snap.Category),
			snap.Brand,
			string(snap.Authenticity.Assessment),
			snap.PriceMultiplier,
			doc,
			snap.CreatedAt,
		})
	}

	columns := []string{"id", "category", "brand", "assessment", "price_multiplier", "doc", "created_at"}
	n, err := db.CopyFrom(ctx, s.pool, "snapshots", columns, rows)
	if err != nil {
		return 0, eris.Wrap(err, "postgres: bulk save snapshots")
	}
	return int(n), nil
}

func (s *PostgresStore) GetSnapshot(ctx context.Context, id string) (*research.Snapshot, error) {
	var doc []byte
	err := s.pool.QueryRow(ctx, `SELECT doc FROM snapshots WHERE id = $1`, id).Scan(&doc)
	if err != nil {
		if eris.Is(err, pgx.ErrNoRows) {
			return nil, eris.Errorf("postgres: snapshot %s not found", id)
		}
		return nil, eris.Wrapf(err, "postgres: get snapshot %s", id)
	}

	var snapshot research.Snapshot
	if err := json.Unmarshal(doc, &snapshot); err != nil {
		return nil, eris.Wrapf(err, "postgres: unmarshal snapshot %s", id)
	}
	return &snapshot, nil
}

func (s *PostgresStore) ListSnapshots(ctx context.Context, filter SnapshotFilter) ([]research.Snapshot, error) {
	query := `SELECT doc FROM snapshots WHERE 1=1`
	var args []any

	if filter.Category != "" {
		args = append(args, string(filter.Category))
		query += fmt.Sprintf(` AND category = $%d`, len(args))
	}
	if filter.Brand != "" {
		args = append(args, filter.Brand)
		query += fmt.Sprintf(` AND brand = $%d`, len(args))
	}
	if filter.Assessment != "" {
		args = append(args, string(filter.Assessment))
		query += fmt.Sprintf(` AND assessment = $%d`, len(args))
	}
	query += ` ORDER BY created_at DESC`
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(` LIMIT $%d`, len(args))
		if filter.Offset > 0 {
			args = append(args, filter.Offset)
			query += fmt.Sprintf(` OFFSET $%d`, len(args))
		}
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: list snapshots")
	}
	defer rows.Close()

	var snapshots []research.Snapshot
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, eris.Wrap(err, "postgres: scan snapshot row")
		}
		var snapshot research.Snapshot
		if err := json.Unmarshal(doc, &snapshot); err != nil {
			return nil, eris.Wrap(err, "postgres: unmarshal snapshot row")
		}
		snapshots = append(snapshots, snapshot)
	}
	if err := rows.Err(); err != nil {
		return nil, eris.Wrap(err, "postgres: iterate snapshots")
	}
	return snapshots, nil
}
