package vouchers

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/JaimeStill/registry-admin/pkg/pagination"
	"github.com/JaimeStill/registry-admin/pkg/query"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

const constraintAttendeeEvent = "vouchers_attendee_event_key"

// DefaultIssueAttempts bounds retries after voucher number or ID collisions.
const DefaultIssueAttempts = 5

type repository struct {
	db         *sql.DB
	generator  *Generator
	logger     *slog.Logger
	pagination pagination.Config
	attempts   int
}

// New creates a voucher system backed by db.
// attempts below one fall back to DefaultIssueAttempts.
func New(
	db *sql.DB,
	generator *Generator,
	logger *slog.Logger,
	pagination pagination.Config,
	attempts int,
) System {
	if attempts < 1 {
		attempts = DefaultIssueAttempts
	}
	return &repository{
		db:         db,
		generator:  generator,
		logger:     logger.With("system", "voucher"),
		pagination: pagination,
		attempts:   attempts,
	}
}

func (r *repository) Issue(ctx context.Context, cmd IssueCommand) (*Voucher, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	q := `
		INSERT INTO vouchers (
			id, voucher_number, attendee_id, event_id,
			soft_drinks_total, soft_drinks_claimed,
			hard_drinks_total, hard_drinks_claimed,
			is_fully_claimed, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	for attempt := 1; attempt <= r.attempts; attempt++ {
		v := r.generator.New(cmd.AttendeeID, cmd.EventID)

		_, err := r.db.ExecContext(ctx, q,
			v.ID, v.VoucherNumber, v.AttendeeID, v.EventID,
			v.SoftDrinks.Total, v.SoftDrinks.Claimed,
			v.HardDrinks.Total, v.HardDrinks.Claimed,
			v.IsFullyClaimed, v.CreatedAt,
		)
		if err == nil {
			r.logger.Info("voucher issued",
				"id", v.ID,
				"number", v.VoucherNumber,
				"event_id", v.EventID,
				"attempt", attempt,
			)
			return &v, nil
		}

		constraint, ok := uniqueConstraint(err)
		if !ok {
			return nil, fmt.Errorf("insert voucher: %w", err)
		}
		if constraint == constraintAttendeeEvent {
			return nil, ErrDuplicate
		}

		r.logger.Warn("voucher collision, regenerating",
			"constraint", constraint,
			"number", v.VoucherNumber,
			"attempt", attempt,
		)

		// IDs are millisecond timestamps; let the clock advance before retrying.
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(time.Millisecond):
		}
	}

	return nil, ErrNumberExhausted
}

func (r *repository) Find(ctx context.Context, id string) (*Voucher, error) {
	return r.findBy(ctx, "ID", id)
}

func (r *repository) FindByNumber(ctx context.Context, number string) (*Voucher, error) {
	return r.findBy(ctx, "VoucherNumber", number)
}

func (r *repository) findBy(ctx context.Context, field, value string) (*Voucher, error) {
	q, args := query.NewBuilder(projection, defaultSort).BuildSingle(field, value)

	v, err := scanVoucher(r.db.QueryRowContext(ctx, q, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query voucher: %w", err)
	}
	return &v, nil
}

func (r *repository) List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Voucher], error) {
	page.Normalize(r.pagination)

	qb := filters.Apply(query.NewBuilder(projection, defaultSort)).
		WhereSearch(page.Search, "VoucherNumber", "AttendeeID").
		OrderBy(page.Sort...)

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count vouchers: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	rows, err := r.db.QueryContext(ctx, pageSQL, pageArgs...)
	if err != nil {
		return nil, fmt.Errorf("query vouchers: %w", err)
	}
	defer rows.Close()

	vouchers := make([]Voucher, 0)
	for rows.Next() {
		v, err := scanVoucher(rows)
		if err != nil {
			return nil, fmt.Errorf("scan voucher: %w", err)
		}
		vouchers = append(vouchers, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	result := pagination.NewPageResult(vouchers, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repository) Claim(ctx context.Context, id string, cmd ClaimCommand) (*Voucher, error) {
	if cmd.Kind != DrinkSoft && cmd.Kind != DrinkHard {
		return nil, fmt.Errorf("%w: %q", ErrInvalidKind, cmd.Kind)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	q, args := query.NewBuilder(projection, defaultSort).BuildSingle("ID", id)
	v, err := scanVoucher(tx.QueryRowContext(ctx, q+" FOR UPDATE", args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("lock voucher: %w", err)
	}

	if err := v.Redeem(cmd.Kind); err != nil {
		return nil, err
	}

	update := `
		UPDATE vouchers
		SET soft_drinks_claimed = $1, hard_drinks_claimed = $2, is_fully_claimed = $3
		WHERE id = $4`

	if _, err := tx.ExecContext(ctx, update,
		v.SoftDrinks.Claimed, v.HardDrinks.Claimed, v.IsFullyClaimed, v.ID,
	); err != nil {
		return nil, fmt.Errorf("update voucher: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}

	r.logger.Info("drink claimed",
		"id", v.ID,
		"kind", cmd.Kind,
		"fully_claimed", v.IsFullyClaimed,
	)
	return &v, nil
}

func uniqueConstraint(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return pgErr.ConstraintName, true
	}
	return "", false
}
