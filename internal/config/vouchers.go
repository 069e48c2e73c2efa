package config

import (
	"fmt"
	"os"
	"strconv"
)

const EnvVouchersMaxIssueAttempts = "VOUCHERS_MAX_ISSUE_ATTEMPTS"

// VouchersConfig holds voucher issuance settings.
type VouchersConfig struct {
	// MaxIssueAttempts bounds how many generated numbers are tried
	// before Issue gives up on a collision.
	MaxIssueAttempts int `toml:"max_issue_attempts"`
}

func (c *VouchersConfig) Finalize() error {
	if c.MaxIssueAttempts == 0 {
		c.MaxIssueAttempts = 5
	}
	if v := os.Getenv(EnvVouchersMaxIssueAttempts); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvVouchersMaxIssueAttempts, err)
		}
		c.MaxIssueAttempts = n
	}
	if c.MaxIssueAttempts < 1 {
		return fmt.Errorf("max_issue_attempts must be positive")
	}
	return nil
}

func (c *VouchersConfig) Merge(overlay *VouchersConfig) {
	if overlay.MaxIssueAttempts != 0 {
		c.MaxIssueAttempts = overlay.MaxIssueAttempts
	}
}
