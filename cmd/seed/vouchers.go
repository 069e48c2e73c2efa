package main

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"os"
	"time"

	"github.com/JaimeStill/registry-admin/internal/vouchers"
	"github.com/JaimeStill/registry-admin/pkg/clock"
	"gopkg.in/yaml.v3"
)

//go:embed seeds/*.yaml
var seedFiles embed.FS

const maxSeedAttempts = 5

func init() {
	registerSeeder(&VoucherSeeder{})
}

// VoucherSeedData represents the YAML structure for voucher seed files.
type VoucherSeedData struct {
	Vouchers []vouchers.IssueCommand `yaml:"vouchers"`
}

// VoucherSeeder implements Seeder for event drink vouchers.
// It loads seed data from an embedded file or an external file path.
type VoucherSeeder struct {
	file string
}

func (s *VoucherSeeder) Name() string {
	return "vouchers"
}

func (s *VoucherSeeder) Description() string {
	return "Seeds drink vouchers for attendee and event pairs"
}

// SetFile configures an external seed file path, overriding the embedded default.
func (s *VoucherSeeder) SetFile(path string) {
	s.file = path
}

// Seed issues a voucher for every pair that does not already hold one.
// Existing vouchers are left untouched, so repeated runs are idempotent.
func (s *VoucherSeeder) Seed(ctx context.Context, tx *sql.Tx) error {
	data, err := s.loadSeedData()
	if err != nil {
		return err
	}

	gen := vouchers.NewGenerator(clock.NewSystem())

	for _, cmd := range data.Vouchers {
		if cmd.AttendeeID == "" || cmd.EventID == "" {
			return fmt.Errorf("seed entry requires attendee_id and event_id: %+v", cmd)
		}
		if err := s.saveVoucher(ctx, tx, gen, cmd); err != nil {
			return fmt.Errorf("save voucher %s/%s: %w", cmd.EventID, cmd.AttendeeID, err)
		}
	}

	return nil
}

func (s *VoucherSeeder) loadSeedData() (*VoucherSeedData, error) {
	var content []byte
	var err error

	if s.file != "" {
		content, err = os.ReadFile(s.file)
		if err != nil {
			return nil, fmt.Errorf("read seed file: %w", err)
		}
	} else {
		content, err = seedFiles.ReadFile("seeds/vouchers.yaml")
		if err != nil {
			return nil, fmt.Errorf("read embedded seed file: %w", err)
		}
	}

	var data VoucherSeedData
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("parse seed data: %w", err)
	}

	return &data, nil
}

// saveVoucher inserts with ON CONFLICT DO NOTHING so a collision never aborts
// the transaction. A skipped insert is either an existing pair or a number/id
// collision; only the latter is retried.
func (s *VoucherSeeder) saveVoucher(ctx context.Context, tx *sql.Tx, gen *vouchers.Generator, cmd vouchers.IssueCommand) error {
	const insert = `
		INSERT INTO vouchers (
			id, voucher_number, attendee_id, event_id,
			soft_drinks_total, soft_drinks_claimed,
			hard_drinks_total, hard_drinks_claimed,
			is_fully_claimed, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT DO NOTHING`

	const exists = `SELECT EXISTS (SELECT 1 FROM vouchers WHERE attendee_id = $1 AND event_id = $2)`

	for range maxSeedAttempts {
		v := gen.New(cmd.AttendeeID, cmd.EventID)

		res, err := tx.ExecContext(ctx, insert,
			v.ID, v.VoucherNumber, v.AttendeeID, v.EventID,
			v.SoftDrinks.Total, v.SoftDrinks.Claimed,
			v.HardDrinks.Total, v.HardDrinks.Claimed,
			v.IsFullyClaimed, v.CreatedAt,
		)
		if err != nil {
			return err
		}

		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 1 {
			return nil
		}

		var found bool
		if err := tx.QueryRowContext(ctx, exists, cmd.AttendeeID, cmd.EventID).Scan(&found); err != nil {
			return err
		}
		if found {
			return nil
		}

		time.Sleep(time.Millisecond)
	}

	return vouchers.ErrNumberExhausted
}
