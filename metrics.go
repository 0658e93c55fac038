package rustedbrain

import (
	"database/sql"
	"fmt"
	"path/filepath"

	_ "github.com/glebarez/go-sqlite"
)

// RunMetrics are aggregates over the whole run_records table. Queried with
// raw SQL against the same file the gorm layer writes.
type RunMetrics struct {
	TotalRuns   uint
	Completed   uint
	Faulted     uint
	Limited     uint
	AvgSteps    float64
	MaxSteps    uint
	AvgFidelity float64
}

func QueryRunMetrics(config *PersistenceConfig) (*RunMetrics, error) {
	if config == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	db, err := sql.Open("sqlite", filepath.Join(config.Path, config.Name))
	if err != nil {
		return nil, fmt.Errorf("Failed to open run database: %v", err)
	}
	defer db.Close()

	row := db.QueryRow(`
		SELECT COUNT(*),
		       COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
		       COALESCE(AVG(steps_executed), 0),
		       COALESCE(MAX(steps_executed), 0),
		       COALESCE(AVG(fidelity), 0)
		FROM run_records`,
		RunCompleted, RunFaulted, RunLimited)

	m := &RunMetrics{}
	if err := row.Scan(
		&m.TotalRuns,
		&m.Completed,
		&m.Faulted,
		&m.Limited,
		&m.AvgSteps,
		&m.MaxSteps,
		&m.AvgFidelity,
	); err != nil {
		return nil, fmt.Errorf("Failed to query run metrics: %v", err)
	}

	return m, nil
}
