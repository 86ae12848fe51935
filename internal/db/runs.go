package db

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/banshee-data/isometry-bench/internal/bench"
	"github.com/banshee-data/isometry-bench/internal/version"
)

// RunRecord is one stored benchmark run.
type RunRecord struct {
	RunID          string
	StartedAt      time.Time
	Seed           uint64
	TotalSamples   int
	SubSamples     int
	Verified       int
	VerifyFailures int
	BuildVersion   string
	Timings        []TimingRecord
}

// TimingRecord is the stored total and statistics of one representation.
type TimingRecord struct {
	Representation    string
	Total             time.Duration
	MeanSampleSecs    float64
	StdDevSampleSecs  float64
	NanosPerIteration float64
}

// RecordRun stores res and its per-representation timings in one
// transaction.
func (db *DB) RecordRun(ctx context.Context, res *bench.Result) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO bench_runs (
			run_id, started_at_ns, seed, total_samples, sub_samples,
			verified, verify_failures, build_version
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		res.RunID,
		res.StartedAt.UnixNano(),
		strconv.FormatUint(res.Seed, 10),
		res.TotalSamples,
		res.SubSamples,
		res.Verified,
		res.VerifyFailures,
		version.Version,
	)
	if err != nil {
		return fmt.Errorf("failed to insert run %s: %w", res.RunID, err)
	}

	for _, t := range res.Timings {
		s := t.Stats(res.SubSamples)
		_, err = tx.ExecContext(ctx, `
			INSERT INTO bench_timings (
				run_id, representation, total_ns,
				mean_sample_secs, stddev_sample_secs, ns_per_iteration
			) VALUES (?, ?, ?, ?, ?, ?)`,
			res.RunID,
			string(t.Representation),
			t.Total.Nanoseconds(),
			s.MeanSampleSeconds,
			s.StdDevSampleSeconds,
			s.NanosPerIteration,
		)
		if err != nil {
			return fmt.Errorf("failed to insert %s timing for run %s: %w", t.Representation, res.RunID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit run %s: %w", res.RunID, err)
	}
	return nil
}

// ListRuns returns up to limit runs, newest first, with their timings.
func (db *DB) ListRuns(ctx context.Context, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		return nil, nil
	}

	rows, err := db.QueryContext(ctx, `
		SELECT run_id, started_at_ns, seed, total_samples, sub_samples,
		       verified, verify_failures, build_version
		FROM bench_runs
		ORDER BY started_at_ns DESC, run_id
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var (
			r         RunRecord
			startedNs int64
			seed      string
		)
		if err := rows.Scan(&r.RunID, &startedNs, &seed, &r.TotalSamples, &r.SubSamples,
			&r.Verified, &r.VerifyFailures, &r.BuildVersion); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		r.StartedAt = time.Unix(0, startedNs).UTC()
		if r.Seed, err = strconv.ParseUint(seed, 10, 64); err != nil {
			return nil, fmt.Errorf("run %s has invalid seed %q: %w", r.RunID, seed, err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate runs: %w", err)
	}
	rows.Close()

	for i := range runs {
		timings, err := db.listTimings(ctx, runs[i].RunID)
		if err != nil {
			return nil, err
		}
		runs[i].Timings = timings
	}
	return runs, nil
}

func (db *DB) listTimings(ctx context.Context, runID string) ([]TimingRecord, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT representation, total_ns, mean_sample_secs, stddev_sample_secs, ns_per_iteration
		FROM bench_timings
		WHERE run_id = ?
		ORDER BY rowid`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query timings for run %s: %w", runID, err)
	}
	defer rows.Close()

	var out []TimingRecord
	for rows.Next() {
		var (
			t       TimingRecord
			totalNs int64
		)
		if err := rows.Scan(&t.Representation, &totalNs, &t.MeanSampleSecs, &t.StdDevSampleSecs, &t.NanosPerIteration); err != nil {
			return nil, fmt.Errorf("failed to scan timing: %w", err)
		}
		t.Total = time.Duration(totalNs)
		out = append(out, t)
	}
	return out, rows.Err()
}

// CountRuns returns the number of stored runs.
func (db *DB) CountRuns(ctx context.Context) (int, error) {
	var n int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM bench_runs").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count runs: %w", err)
	}
	return n, nil
}
