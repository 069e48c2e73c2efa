package main

import (
	"fmt"

	"github.com/JaimeStill/registry-admin/internal/vouchers"
	"github.com/JaimeStill/registry-admin/pkg/clock"
	"github.com/spf13/cobra"
)

type numberOutput struct {
	VoucherNumber string `json:"voucher_number" yaml:"voucher_number"`
}

func newVoucherCmd() *cobra.Command {
	var (
		attendee string
		event    string
		format   string
	)

	cmd := &cobra.Command{
		Use:   "voucher",
		Short: "Generate a voucher without persisting it",
		Long: `Generate a voucher number, or a complete voucher record when both
--attendee and --event are given (empty values are allowed). A bare number
is printed as plain text unless --format is set. Nothing is written to the
database, so uniqueness is not checked.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gen := vouchers.NewGenerator(clock.NewSystem())
			flags := cmd.Flags()
			w := cmd.OutOrStdout()

			withAttendee, withEvent := flags.Changed("attendee"), flags.Changed("event")
			if withAttendee != withEvent {
				return fmt.Errorf("--attendee and --event must be given together")
			}

			if withAttendee {
				return write(w, format, gen.New(attendee, event))
			}

			number := gen.GenerateNumber()
			if !flags.Changed("format") {
				fmt.Fprintln(w, number)
				return nil
			}
			return write(w, format, numberOutput{VoucherNumber: number})
		},
	}

	cmd.Flags().StringVar(&attendee, "attendee", "", "attendee id")
	cmd.Flags().StringVar(&event, "event", "", "event id")
	cmd.Flags().StringVar(&format, "format", "json", "output format for records, or for the number when set (yaml|json)")

	return cmd
}
