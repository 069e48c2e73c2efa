package vouchers

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/JaimeStill/registry-admin/pkg/clock"
)

// NumberPrefix starts every voucher number.
const NumberPrefix = "VP"

const numberSpace = 10000

// Generator builds voucher numbers and initial voucher records.
// Neither numbers nor IDs are guaranteed unique: numbers draw from 10,000
// values per year and IDs have millisecond resolution. Uniqueness is enforced
// by the store.
type Generator struct {
	clock  clock.Clock
	random func(n int) int
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithRandom overrides the source of the number's random component.
// fn must return a value in [0, n).
func WithRandom(fn func(n int) int) GeneratorOption {
	return func(g *Generator) {
		if fn != nil {
			g.random = fn
		}
	}
}

func NewGenerator(clk clock.Clock, opts ...GeneratorOption) *Generator {
	g := &Generator{
		clock:  clk,
		random: rand.IntN,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// GenerateNumber returns "VP", the current four-digit UTC year, and a uniformly
// drawn four-digit zero-padded number in [0000, 9999].
func (g *Generator) GenerateNumber() string {
	return formatNumber(g.clock.Now().UTC().Year(), g.random(numberSpace))
}

// New returns the initial voucher for an attendee at an event.
// The IDs are not validated; empty values are carried through.
func (g *Generator) New(attendeeID, eventID string) Voucher {
	now := g.clock.Now().UTC().Truncate(time.Millisecond)

	return Voucher{
		ID:            strconv.FormatInt(now.UnixMilli(), 10),
		VoucherNumber: formatNumber(now.Year(), g.random(numberSpace)),
		AttendeeID:    attendeeID,
		EventID:       eventID,
		SoftDrinks:    Quota{Total: DefaultSoftDrinks},
		HardDrinks:    Quota{Total: DefaultHardDrinks},
		CreatedAt:     now,
	}
}

func formatNumber(year, n int) string {
	return fmt.Sprintf("%s%04d%04d", NumberPrefix, year, n)
}
