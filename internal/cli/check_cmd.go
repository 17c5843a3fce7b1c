package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/chairside/internal/cli/formatter"
	"github.com/alexanderramin/chairside/internal/contract"
	"github.com/alexanderramin/chairside/internal/domain"
	"github.com/spf13/cobra"
)

func newCheckCmd(a *App) *cobra.Command {
	var slot slotFlags
	var appointmentID string
	var history int
	var noRecord bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check a booking for conflicts without saving it",
		Long: `Check a proposed booking (--barber, --start, --duration) or a stored one
(--appointment) against the barber's day. Prints conflicts, a risk score
and ranked fixes. --history lists earlier checks instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			out := cmd.OutOrStdout()

			if cmd.Flags().Changed("history") {
				runs, err := a.Analyzer.History(ctx, history)
				if err != nil {
					return err
				}
				if len(runs) == 0 {
					fmt.Fprintln(out, "No checks recorded yet.")
					return nil
				}
				names, err := barberNames(ctx, a)
				if err != nil {
					return err
				}
				fmt.Fprint(out, formatter.FormatHistory(runs, names))
				return nil
			}

			req := contract.NewAnalyzeRequest()
			req.Record = !noRecord
			now := a.now()
			req.Now = &now
			if appointmentID != "" {
				req.AppointmentID = appointmentID
			} else {
				appt, err := slot.appointment(ctx, a, cmd.Flags())
				if err != nil {
					return err
				}
				req.Candidate = appt
			}

			resp, err := a.checkUseCase().Analyze(ctx, req)
			if err != nil {
				return err
			}

			names := make(map[string]string, len(resp.Barbers))
			for _, b := range resp.Barbers {
				names[b.ID] = b.Name
			}
			fmt.Fprintln(out, formatter.FormatAnalysis(resp.Analysis, names))
			if sev := resp.Analysis.MaxSeverity(); sev == domain.SeverityHigh || sev == domain.SeverityCritical {
				fmt.Fprintln(out, formatter.StyleRed.Render("Booking this slot needs --force."))
			}
			return nil
		},
	}

	slot.register(cmd.Flags())
	cmd.Flags().StringVar(&appointmentID, "appointment", "", "Check a stored appointment by ID")
	cmd.Flags().IntVar(&history, "history", 20, "List the most recent checks")
	cmd.Flags().Lookup("history").NoOptDefVal = "20"
	cmd.Flags().BoolVar(&noRecord, "no-record", false, "Do not store this check in the history")
	cmd.MarkFlagsMutuallyExclusive("appointment", "barber")
	cmd.MarkFlagsMutuallyExclusive("appointment", "history")

	return cmd
}
