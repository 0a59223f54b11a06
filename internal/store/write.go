package store

import (
	"context"
	"fmt"

	"github.com/roach88/conformer/internal/canon"
	"github.com/roach88/conformer/pkg/conformer"
	"github.com/roach88/conformer/pkg/conformer/view"
)

// RunRecord summarises a stored run.
type RunRecord struct {
	ID               string `json:"id"`
	Seq              int64  `json:"seq"`
	SuiteTitle       string `json:"suite_title"`
	SuiteDescription string `json:"suite_description"`
	Implementation   string `json:"implementation,omitempty"`
	Passed           int    `json:"passed"`
	Failed           int    `json:"failed"`
	Digest           string `json:"digest"` // SHA-256 of the canonical JSON report
}

// DidPass reports whether every case of the run passed.
func (r RunRecord) DidPass() bool {
	return r.Failed == 0
}

// SaveRun stores rs together with the name of the implementation it was run
// against. The run, its results and their metadata are written in a single
// transaction.
func (s *Store) SaveRun(ctx context.Context, implementation string, rs *conformer.ResultSet) (RunRecord, error) {
	if rs == nil || rs.Len() == 0 {
		return RunRecord{}, fmt.Errorf("save run: %w", conformer.ErrEmptyResultSet)
	}
	digest, err := canon.Digest(view.Document(rs))
	if err != nil {
		return RunRecord{}, fmt.Errorf("save run: digest: %w", err)
	}

	rec := RunRecord{
		ID:               s.ids.Generate(),
		Seq:              s.clock.Next(),
		SuiteTitle:       rs.SuiteTitle(),
		SuiteDescription: rs.SuiteDescription(),
		Implementation:   implementation,
		Passed:           rs.Passed(),
		Failed:           rs.Failed(),
		Digest:           digest,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return RunRecord{}, fmt.Errorf("save run: begin tx: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs
		(id, seq, suite_title, suite_description, implementation, passed, failed, digest)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		rec.ID,
		rec.Seq,
		rec.SuiteTitle,
		rec.SuiteDescription,
		rec.Implementation,
		rec.Passed,
		rec.Failed,
		rec.Digest,
	)
	if err != nil {
		return RunRecord{}, fmt.Errorf("save run: insert run: %w", err)
	}

	for pos, r := range rs.Results() {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO results (run_id, position, title, description, passed)
			VALUES (?, ?, ?, ?, ?)
		`, rec.ID, pos, r.Title(), r.Description(), boolToInt(r.Passed()))
		if err != nil {
			return RunRecord{}, fmt.Errorf("save run: insert result %d: %w", pos, err)
		}

		for _, key := range r.MetadataKeys() {
			v, _ := r.Metadata(key)
			var textValue, blobValue any
			if txt, ok := v.AsText(); ok {
				textValue = txt
			} else if b, ok := v.AsBinary(); ok {
				blobValue = b
			} else {
				return RunRecord{}, fmt.Errorf("save run: result %d: metadata %q has no value", pos, key)
			}

			_, err := tx.ExecContext(ctx, `
				INSERT INTO metadata (run_id, position, key, kind, text_value, blob_value)
				VALUES (?, ?, ?, ?, ?, ?)
			`, rec.ID, pos, key, v.Kind().String(), textValue, blobValue)
			if err != nil {
				return RunRecord{}, fmt.Errorf("save run: insert metadata %q for result %d: %w", key, pos, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return RunRecord{}, fmt.Errorf("save run: commit: %w", err)
	}

	return rec, nil
}

// DeleteRun removes a run and everything stored under it.
func (s *Store) DeleteRun(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM runs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete run: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete run: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("delete run %s: %w", id, ErrRunNotFound)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
