/*
Package sqlite persists calculation history for the cooperative engine.

PURPOSE:
  The engine itself is pure; this store records what was calculated so
  dashboards and reports can show past loan quotes and SHU distribution
  runs without recomputing them.

KEY TABLES:
  loan_quotes:      One row per amortization quote served
  shu_runs:         One row per distribution run (pool, reconciled total)
  shu_allocations:  Per-member breakdown rows belonging to a run

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging):
  - Multiple readers don't block
  - Single writer at a time
  - Better crash recovery

CONCURRENCY:
  Uses sync.RWMutex for thread-safety. With PostgreSQL the database-level
  concurrency control would handle this instead.

USAGE:
  store, err := sqlite.New("./data/koperasi.db")  // ":memory:" for tests
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

SEE ALSO:
  - api/handlers.go: writes history rows after each calculation
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/koperasi/finance-engine/loan"
	"github.com/koperasi/finance-engine/money"
	"github.com/koperasi/finance-engine/shu"
)

// Store implements calculation-history persistence using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	-- Loan quotes served through the API
	CREATE TABLE IF NOT EXISTS loan_quotes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		principal INTEGER NOT NULL,
		annual_rate_percent REAL NOT NULL,
		term_months INTEGER NOT NULL,
		monthly_payment INTEGER NOT NULL,
		total_payment INTEGER NOT NULL,
		total_interest INTEGER NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_loan_quotes_created
		ON loan_quotes(created_at DESC);

	-- SHU distribution runs
	CREATE TABLE IF NOT EXISTS shu_runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		total_shu INTEGER NOT NULL,
		total_distributed INTEGER NOT NULL,
		member_count INTEGER NOT NULL,
		created_at TEXT NOT NULL
	);

	-- Per-member breakdowns of a run
	CREATE TABLE IF NOT EXISTS shu_allocations (
		run_id INTEGER NOT NULL REFERENCES shu_runs(id) ON DELETE CASCADE,
		member_id TEXT NOT NULL,
		member_name TEXT NOT NULL,
		savings_share INTEGER NOT NULL,
		transaction_share INTEGER NOT NULL,
		equal_share INTEGER NOT NULL,
		membership_bonus INTEGER NOT NULL,
		total INTEGER NOT NULL,
		PRIMARY KEY (run_id, member_id)
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// LOAN QUOTES
// =============================================================================

// LoanQuote is one served amortization quote.
type LoanQuote struct {
	ID                int64
	Principal         int64
	AnnualRatePercent float64
	TermMonths        int
	MonthlyPayment    int64
	TotalPayment      int64
	TotalInterest     int64
	CreatedAt         time.Time
}

// SaveLoanQuote records a quote and returns its row ID.
func (s *Store) SaveLoanQuote(ctx context.Context, annualRatePercent float64, termMonths int, result loan.Result) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO loan_quotes
			(principal, annual_rate_percent, term_months, monthly_payment, total_payment, total_interest, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		result.Principal, annualRatePercent, termMonths,
		result.MonthlyPayment, result.TotalPayment, result.TotalInterest,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListLoanQuotes returns the most recent quotes, newest first.
func (s *Store) ListLoanQuotes(ctx context.Context, limit int) ([]LoanQuote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, principal, annual_rate_percent, term_months,
		       monthly_payment, total_payment, total_interest, created_at
		FROM loan_quotes ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var quotes []LoanQuote
	for rows.Next() {
		var q LoanQuote
		var createdAt string
		if err := rows.Scan(&q.ID, &q.Principal, &q.AnnualRatePercent, &q.TermMonths,
			&q.MonthlyPayment, &q.TotalPayment, &q.TotalInterest, &createdAt); err != nil {
			return nil, err
		}
		q.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		quotes = append(quotes, q)
	}
	return quotes, rows.Err()
}

// =============================================================================
// SHU RUNS
// =============================================================================

// DistributionRun is a stored SHU run header.
type DistributionRun struct {
	ID               int64
	Name             string
	TotalSHU         int64
	TotalDistributed int64
	MemberCount      int
	CreatedAt        time.Time
}

// SaveDistributionRun records a run and its per-member breakdown in one
// transaction, returning the run ID.
func (s *Store) SaveDistributionRun(ctx context.Context, name string, totalSHU int64, result shu.Result) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO shu_runs (name, total_shu, total_distributed, member_count, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		name, totalSHU, result.TotalDistributed, len(result.Breakdown),
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return 0, err
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	for _, a := range result.Breakdown {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO shu_allocations
				(run_id, member_id, member_name, savings_share, transaction_share, equal_share, membership_bonus, total)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			runID, a.MemberID, a.MemberName,
			a.SavingsShare, a.TransactionShare, a.EqualShare, a.MembershipBonus, a.TotalSHU,
		); err != nil {
			return 0, err
		}
	}

	return runID, tx.Commit()
}

// ListDistributionRuns returns run headers, newest first.
func (s *Store) ListDistributionRuns(ctx context.Context, limit int) ([]DistributionRun, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, total_shu, total_distributed, member_count, created_at
		FROM shu_runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []DistributionRun
	for rows.Next() {
		var r DistributionRun
		var createdAt string
		if err := rows.Scan(&r.ID, &r.Name, &r.TotalSHU, &r.TotalDistributed, &r.MemberCount, &createdAt); err != nil {
			return nil, err
		}
		r.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// GetDistributionRun returns a run header and its member breakdown.
func (s *Store) GetDistributionRun(ctx context.Context, runID int64) (DistributionRun, []shu.Allocation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var run DistributionRun
	var createdAt string
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, total_shu, total_distributed, member_count, created_at
		FROM shu_runs WHERE id = ?`, runID).
		Scan(&run.ID, &run.Name, &run.TotalSHU, &run.TotalDistributed, &run.MemberCount, &createdAt)
	if err != nil {
		return DistributionRun{}, nil, err
	}
	run.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)

	rows, err := s.db.QueryContext(ctx, `
		SELECT member_id, member_name, savings_share, transaction_share, equal_share, membership_bonus, total
		FROM shu_allocations WHERE run_id = ? ORDER BY member_id`, runID)
	if err != nil {
		return DistributionRun{}, nil, err
	}
	defer rows.Close()

	var allocations []shu.Allocation
	for rows.Next() {
		var a shu.Allocation
		if err := rows.Scan(&a.MemberID, &a.MemberName, &a.SavingsShare,
			&a.TransactionShare, &a.EqualShare, &a.MembershipBonus, &a.TotalSHU); err != nil {
			return DistributionRun{}, nil, err
		}
		a.FormattedTotal = money.Format(float64(a.TotalSHU))
		allocations = append(allocations, a)
	}
	return run, allocations, rows.Err()
}
