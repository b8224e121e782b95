// Package store persists research snapshots. Two backends exist:
// SQLite for local single-user runs and Postgres for shared deployments.
package store

import (
	"context"

	"github.com/sells-group/resale-intel/internal/model"
	"github.com/sells-group/resale-intel/internal/research"
)

// SnapshotFilter specifies criteria for listing snapshots.
type SnapshotFilter struct {
	Category   model.CategoryID `json:"category,omitempty"`
	Brand      string           `json:"brand,omitempty"`
	Assessment model.Assessment `json:"assessment,omitempty"`
	Limit      int              `json:"limit,omitempty"`
	Offset     int              `json:"offset,omitempty"`
}

// Store defines the persistence interface for research snapshots.
type Store interface {
	SaveSnapshot(ctx context.Context, snapshot *research.Snapshot) error
	SaveSnapshots(ctx context.Context, snapshots []*research.Snapshot) (int, error)
	GetSnapshot(ctx context.Context, id string) (*research.Snapshot, error)
	ListSnapshots(ctx context.Context, filter SnapshotFilter) ([]research.Snapshot, error)

	// Lifecycle
	Migrate(ctx context.Context) error
	Close() error
}
