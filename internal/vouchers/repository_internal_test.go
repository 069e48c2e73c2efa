package vouchers

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/JaimeStill/registry-admin/pkg/clock"
	"github.com/JaimeStill/registry-admin/pkg/logging"
	"github.com/JaimeStill/registry-admin/pkg/pagination"
	"github.com/jackc/pgx/v5/pgconn"
)

// fakeStore is a database/sql connector that records statements.
// Exec results are taken from execErrs in order; queries return row, or no rows when nil.
type fakeStore struct {
	mu        sync.Mutex
	execErrs  []error
	execs     []fakeExec
	queries   []string
	row       []driver.Value
	commits   int
	rollbacks int
}

type fakeExec struct {
	query string
	args  []driver.NamedValue
}

func (s *fakeStore) Connect(context.Context) (driver.Conn, error) { return &fakeConn{store: s}, nil }
func (s *fakeStore) Driver() driver.Driver                        { return fakeDriver{store: s} }

type fakeDriver struct{ store *fakeStore }

func (d fakeDriver) Open(string) (driver.Conn, error) { return &fakeConn{store: d.store}, nil }

type fakeConn struct{ store *fakeStore }

func (c *fakeConn) Prepare(string) (driver.Stmt, error) { return nil, errors.New("prepare unsupported") }
func (c *fakeConn) Close() error                        { return nil }
func (c *fakeConn) Begin() (driver.Tx, error)           { return fakeTx{store: c.store}, nil }

func (c *fakeConn) ExecContext(_ context.Context, query string, args []driver.NamedValue) (driver.Result, error) {
	s := c.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.execs = append(s.execs, fakeExec{query: query, args: args})
	if len(s.execErrs) > 0 {
		err := s.execErrs[0]
		s.execErrs = s.execErrs[1:]
		if err != nil {
			return nil, err
		}
	}
	return driver.RowsAffected(1), nil
}

func (c *fakeConn) QueryContext(_ context.Context, query string, _ []driver.NamedValue) (driver.Rows, error) {
	s := c.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.queries = append(s.queries, query)
	return &fakeRows{row: s.row}, nil
}

type fakeTx struct{ store *fakeStore }

func (t fakeTx) Commit() error {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	t.store.commits++
	return nil
}

func (t fakeTx) Rollback() error {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	t.store.rollbacks++
	return nil
}

type fakeRows struct {
	row  []driver.Value
	done bool
}

func (r *fakeRows) Columns() []string {
	return []string{
		"id", "voucher_number", "attendee_id", "event_id",
		"soft_drinks_total", "soft_drinks_claimed",
		"hard_drinks_total", "hard_drinks_claimed",
		"is_fully_claimed", "created_at",
	}
}

func (r *fakeRows) Close() error { return nil }

func (r *fakeRows) Next(dest []driver.Value) error {
	if r.done || r.row == nil {
		return io.EOF
	}
	copy(dest, r.row)
	r.done = true
	return nil
}

func uniqueErr(constraint string) error {
	return &pgconn.PgError{Code: uniqueViolation, ConstraintName: constraint}
}

func voucherRow(softClaimed, hardClaimed int64) []driver.Value {
	return []driver.Value{
		"1792432800000", "VP20260042", "SH-000101", "agm-2026",
		int64(2), softClaimed,
		int64(2), hardClaimed,
		softClaimed == 2 && hardClaimed == 2,
		time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC),
	}
}

func newTestRepository(store *fakeStore, attempts int) System {
	calls := 0
	clk := clock.Func(func() time.Time {
		calls++
		return time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC).Add(time.Duration(calls) * time.Millisecond)
	})

	draws := 0
	gen := NewGenerator(clk, WithRandom(func(int) int {
		draws++
		return draws
	}))

	return New(sql.OpenDB(store), gen, logging.Discard(), pagination.Config{DefaultPageSize: 20, MaxPageSize: 100}, attempts)
}

func TestUniqueConstraint(t *testing.T) {
	wrapped := fmt.Errorf("insert voucher: %w", uniqueErr(constraintAttendeeEvent))

	name, ok := uniqueConstraint(wrapped)
	if !ok || name != constraintAttendeeEvent {
		t.Errorf("uniqueConstraint() = %q, %v; want %q, true", name, ok, constraintAttendeeEvent)
	}

	if _, ok := uniqueConstraint(&pgconn.PgError{Code: "23503"}); ok {
		t.Error("foreign key violation reported as unique violation")
	}

	if _, ok := uniqueConstraint(errors.New("boom")); ok {
		t.Error("plain error reported as unique violation")
	}
}

func TestIssue_Collisions(t *testing.T) {
	numberTaken := uniqueErr("vouchers_voucher_number_key")
	idTaken := uniqueErr("vouchers_pkey")
	pairTaken := uniqueErr(constraintAttendeeEvent)

	tests := []struct {
		name      string
		attempts  int
		execErrs  []error
		wantErr   error
		wantExecs int
	}{
		{"first insert succeeds", 5, nil, nil, 1},
		{"number and id collisions retried", 5, []error{numberTaken, idTaken, nil}, nil, 3},
		{"attendee and event taken", 5, []error{numberTaken, pairTaken}, ErrDuplicate, 2},
		{"attempts exhausted", 3, []error{numberTaken, numberTaken, numberTaken}, ErrNumberExhausted, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore{execErrs: tt.execErrs}
			repo := newTestRepository(store, tt.attempts)

			v, err := repo.Issue(context.Background(), IssueCommand{AttendeeID: "SH-000101", EventID: "agm-2026"})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Issue() error = %v, want %v", err, tt.wantErr)
			}
			if len(store.execs) != tt.wantExecs {
				t.Fatalf("inserts = %d, want %d", len(store.execs), tt.wantExecs)
			}

			if tt.wantErr != nil {
				if v != nil {
					t.Errorf("Issue() = %+v, want nil on error", v)
				}
				return
			}

			last := store.execs[len(store.execs)-1].args
			if v.ID != last[0].Value || v.VoucherNumber != last[1].Value {
				t.Errorf("returned %s/%s, stored %v/%v", v.ID, v.VoucherNumber, last[0].Value, last[1].Value)
			}

			seen := make(map[any]bool)
			for _, e := range store.execs {
				if seen[e.args[1].Value] {
					t.Errorf("voucher number %v reused across attempts", e.args[1].Value)
				}
				seen[e.args[1].Value] = true
			}
		})
	}
}

func TestIssue_OtherErrorsNotRetried(t *testing.T) {
	store := &fakeStore{execErrs: []error{errors.New("connection reset")}}
	repo := newTestRepository(store, 5)

	_, err := repo.Issue(context.Background(), IssueCommand{AttendeeID: "SH-1", EventID: "agm-2026"})
	if err == nil || errors.Is(err, ErrNumberExhausted) || errors.Is(err, ErrDuplicate) {
		t.Fatalf("Issue() error = %v, want the insert error", err)
	}
	if len(store.execs) != 1 {
		t.Errorf("inserts = %d, want 1", len(store.execs))
	}
}

func TestIssue_InvalidCommandSkipsStore(t *testing.T) {
	store := &fakeStore{}
	repo := newTestRepository(store, 5)

	_, err := repo.Issue(context.Background(), IssueCommand{AttendeeID: "SH-1"})
	if !errors.Is(err, ErrInvalidCommand) {
		t.Fatalf("Issue() error = %v, want ErrInvalidCommand", err)
	}
	if len(store.execs) != 0 {
		t.Errorf("inserts = %d, want 0", len(store.execs))
	}
}

func TestClaim(t *testing.T) {
	tests := []struct {
		name          string
		row           []driver.Value
		kind          DrinkKind
		wantErr       error
		wantUpdates   int
		wantCommits   int
		wantRollbacks int
	}{
		{"soft drink claimed", voucherRow(0, 0), DrinkSoft, nil, 1, 1, 0},
		{"hard quota exhausted", voucherRow(0, 2), DrinkHard, ErrQuotaExhausted, 0, 0, 1},
		{"voucher missing", nil, DrinkSoft, ErrNotFound, 0, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore{row: tt.row}
			repo := newTestRepository(store, 5)

			v, err := repo.Claim(context.Background(), "1792432800000", ClaimCommand{Kind: tt.kind})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Claim() error = %v, want %v", err, tt.wantErr)
			}

			if len(store.queries) != 1 || !strings.HasSuffix(store.queries[0], "FOR UPDATE") {
				t.Errorf("queries = %q, want one row-locking select", store.queries)
			}
			if len(store.execs) != tt.wantUpdates {
				t.Errorf("updates = %d, want %d", len(store.execs), tt.wantUpdates)
			}
			if store.commits != tt.wantCommits || store.rollbacks != tt.wantRollbacks {
				t.Errorf("commits/rollbacks = %d/%d, want %d/%d",
					store.commits, store.rollbacks, tt.wantCommits, tt.wantRollbacks)
			}

			if tt.wantErr == nil {
				if v.SoftDrinks.Claimed != 1 {
					t.Errorf("soft claimed = %d, want 1", v.SoftDrinks.Claimed)
				}
				if got := store.execs[0].args[0].Value; got != int64(1) {
					t.Errorf("stored soft claimed = %v, want 1", got)
				}
			}
		})
	}
}

func TestClaim_InvalidKindSkipsStore(t *testing.T) {
	store := &fakeStore{row: voucherRow(0, 0)}
	repo := newTestRepository(store, 5)

	_, err := repo.Claim(context.Background(), "1792432800000", ClaimCommand{Kind: "wine"})
	if !errors.Is(err, ErrInvalidKind) {
		t.Fatalf("Claim() error = %v, want ErrInvalidKind", err)
	}
	if len(store.queries) != 0 || store.commits+store.rollbacks != 0 {
		t.Error("invalid kind reached the store")
	}
}
