package recorder

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists run history to a SQLite database.
type SQLiteRecorder struct {
	db  *sql.DB
	mu  sync.Mutex
	log zerolog.Logger
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string, log zerolog.Logger) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL so dashboards can read while a run writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db, log: log.With().Str("component", "recorder").Logger()}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	r.log.Info().Str("path", dbPath).Msg("sqlite recorder opened")
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS screening_runs (
			run_id          TEXT PRIMARY KEY,
			timestamp       INTEGER NOT NULL,
			source          TEXT,
			screened        INTEGER,
			rejected        INTEGER,
			mean_score      REAL,
			mean_drawdown   REAL,
			deepest_drawdown REAL,
			mean_recovery   REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_ts ON screening_runs(timestamp)`,

		`CREATE TABLE IF NOT EXISTS screened_funds (
			id                 INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id             TEXT NOT NULL REFERENCES screening_runs(run_id),
			rank               INTEGER,
			fund_name          TEXT,
			fund_code          TEXT,
			category           TEXT,
			return_1y          REAL,
			current_nav        REAL,
			high_52w           REAL,
			low_52w            REAL,
			momentum_score     INTEGER,
			drawdown_from_high REAL,
			recovery_potential REAL,
			beaten_down_level  TEXT,
			recommendation     TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_funds_run ON screened_funds(run_id)`,
		`CREATE INDEX IF NOT EXISTS idx_funds_code ON screened_funds(fund_code)`,

		`CREATE TABLE IF NOT EXISTS rejected_funds (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id    TEXT NOT NULL REFERENCES screening_runs(run_id),
			fund_name TEXT,
			reason    TEXT
		)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// RecordRun writes the run row and its fund rows in one transaction.
func (r *SQLiteRecorder) RecordRun(snap *RunSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	s := snap.Summary
	if _, err := tx.Exec(`INSERT INTO screening_runs
		(run_id, timestamp, source, screened, rejected,
		 mean_score, mean_drawdown, deepest_drawdown, mean_recovery)
		VALUES (?,?,?,?,?,?,?,?,?)`,
		snap.RunID, snap.StartedAt.Unix(), snap.Source, len(snap.Funds), len(snap.Rejected),
		s.MeanScore, s.MeanDrawdown, s.DeepestDrawdown, s.MeanRecovery,
	); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	for i, f := range snap.Funds {
		if _, err := tx.Exec(`INSERT INTO screened_funds
			(run_id, rank, fund_name, fund_code, category, return_1y,
			 current_nav, high_52w, low_52w,
			 momentum_score, drawdown_from_high, recovery_potential,
			 beaten_down_level, recommendation)
			VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
			snap.RunID, i+1, f.Name, f.Code, f.Category, f.Return1Y,
			f.CurrentNAV, f.High52w, f.Low52w,
			f.Score, f.DrawdownFromHigh, f.RecoveryPotentialPc,
			string(f.BeatenDownLevel), string(f.Recommendation),
		); err != nil {
			return fmt.Errorf("insert fund %q: %w", f.Name, err)
		}
	}

	for _, rj := range snap.Rejected {
		if _, err := tx.Exec(`INSERT INTO rejected_funds (run_id, fund_name, reason) VALUES (?,?,?)`,
			snap.RunID, rj.Fund.Name, rj.Reason,
		); err != nil {
			return fmt.Errorf("insert rejected %q: %w", rj.Fund.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	r.log.Debug().Str("run_id", snap.RunID).Int("funds", len(snap.Funds)).Msg("run recorded")
	return nil
}

func (r *SQLiteRecorder) Close() error {
	r.log.Info().Msg("closing sqlite recorder")
	return r.db.Close()
}
