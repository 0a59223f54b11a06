package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/roach88/conformer/pkg/conformer"
)

// ErrRunNotFound is returned when no run matches the requested ID.
var ErrRunNotFound = errors.New("run not found")

const runColumns = `id, seq, suite_title, suite_description, implementation, passed, failed, digest`

// ListRuns returns stored runs, newest first. limit <= 0 means no limit.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]RunRecord, error) {
	query := `SELECT ` + runColumns + ` FROM runs ORDER BY seq DESC`
	var args []any
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	return s.queryRuns(ctx, query, args...)
}

// SuiteHistory returns the runs of one suite, oldest first.
func (s *Store) SuiteHistory(ctx context.Context, suiteTitle string) ([]RunRecord, error) {
	return s.queryRuns(ctx, `
		SELECT `+runColumns+`
		FROM runs
		WHERE suite_title = ?
		ORDER BY seq ASC
	`, suiteTitle)
}

// GetRun returns the summary of a run. id may be a unique prefix of the run ID.
// The prefix is compared literally; it is not a pattern.
func (s *Store) GetRun(ctx context.Context, id string) (RunRecord, error) {
	if id == "" {
		return RunRecord{}, fmt.Errorf("empty run ID: %w", ErrRunNotFound)
	}
	runs, err := s.queryRuns(ctx, `
		SELECT `+runColumns+`
		FROM runs
		WHERE substr(id, 1, length(?)) = ?
		ORDER BY (id = ?) DESC, seq ASC
		LIMIT 2
	`, id, id, id)
	if err != nil {
		return RunRecord{}, err
	}

	switch {
	case len(runs) == 0:
		return RunRecord{}, fmt.Errorf("run %s: %w", id, ErrRunNotFound)
	case runs[0].ID == id, len(runs) == 1:
		return runs[0], nil
	default:
		return RunRecord{}, fmt.Errorf("run ID prefix %q is ambiguous", id)
	}
}

// LoadRun reads a stored run back as a ResultSet, preserving case order
// and metadata. id may be a unique prefix of the run ID.
func (s *Store) LoadRun(ctx context.Context, id string) (*conformer.ResultSet, RunRecord, error) {
	rec, err := s.GetRun(ctx, id)
	if err != nil {
		return nil, RunRecord{}, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT position, title, description, passed
		FROM results
		WHERE run_id = ?
		ORDER BY position ASC
	`, rec.ID)
	if err != nil {
		return nil, RunRecord{}, fmt.Errorf("query results: %w", err)
	}

	var results []*conformer.Result
	for rows.Next() {
		var (
			pos         int
			title, desc string
			passed      int
		)
		if err := rows.Scan(&pos, &title, &desc, &passed); err != nil {
			rows.Close()
			return nil, RunRecord{}, fmt.Errorf("scan result: %w", err)
		}
		results = append(results, conformer.NewResult(title, desc, passed != 0))
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, RunRecord{}, fmt.Errorf("iterate results: %w", err)
	}
	rows.Close()

	if err := s.loadMetadata(ctx, rec.ID, results); err != nil {
		return nil, RunRecord{}, err
	}

	rs, err := conformer.NewResultSet(rec.SuiteTitle, rec.SuiteDescription, results)
	if err != nil {
		return nil, RunRecord{}, fmt.Errorf("run %s: %w", rec.ID, err)
	}
	return rs, rec, nil
}

func (s *Store) loadMetadata(ctx context.Context, runID string, results []*conformer.Result) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT position, key, kind, text_value, blob_value
		FROM metadata
		WHERE run_id = ?
		ORDER BY position ASC, key ASC
	`, runID)
	if err != nil {
		return fmt.Errorf("query metadata: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			pos       int
			key, kind string
			text      sql.NullString
			blob      []byte
		)
		if err := rows.Scan(&pos, &key, &kind, &text, &blob); err != nil {
			return fmt.Errorf("scan metadata: %w", err)
		}
		if pos < 0 || pos >= len(results) {
			return fmt.Errorf("metadata %q references missing result %d", key, pos)
		}

		mk, ok := conformer.ParseMetaKind(kind)
		if !ok {
			return fmt.Errorf("metadata %q has unknown kind %q", key, kind)
		}
		switch mk {
		case conformer.MetaText:
			results[pos].SetMetadata(key, conformer.Text(text.String))
		case conformer.MetaBinary:
			results[pos].SetMetadata(key, conformer.Binary(blob))
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate metadata: %w", err)
	}
	return nil
}

func (s *Store) queryRuns(ctx context.Context, query string, args ...any) ([]RunRecord, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	runs := []RunRecord{}
	for rows.Next() {
		var r RunRecord
		if err := rows.Scan(&r.ID, &r.Seq, &r.SuiteTitle, &r.SuiteDescription, &r.Implementation, &r.Passed, &r.Failed, &r.Digest); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}
