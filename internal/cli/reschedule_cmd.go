package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/chairside/internal/cli/formatter"
	"github.com/alexanderramin/chairside/internal/contract"
	"github.com/spf13/cobra"
)

func newRescheduleCmd(a *App) *cobra.Command {
	var date string
	var ids []string
	var apply, force bool

	cmd := &cobra.Command{
		Use:   "reschedule",
		Short: "Suggest new slots for conflicting appointments",
		Long: `Find new slots for the given appointments (--ids), or for every booking
on --date that currently has a conflict. Suggestions are printed; --apply
moves the bookings when the recommendation is auto_apply, or always with
--force.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			out := cmd.OutOrStdout()

			req := contract.NewRescheduleRequest()
			req.AppointmentIDs = ids
			req.Apply = apply
			req.Force = force
			now := a.now()
			req.Now = &now
			if date != "" {
				d, err := parseDate(date)
				if err != nil {
					return err
				}
				req.Date = &d
			}

			resp, err := a.rescheduleUseCase().Reschedule(ctx, req)
			if err != nil {
				var rerr *contract.RescheduleError
				if errors.As(err, &rerr) && rerr.Code == contract.RescheduleErrNothingToDo {
					fmt.Fprintln(out, "Nothing to reschedule.")
					return nil
				}
				return err
			}

			fmt.Fprintln(out, formatter.FormatReschedule(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day whose conflicting bookings to move (YYYY-MM-DD)")
	cmd.Flags().StringSliceVar(&ids, "ids", nil, "Appointment IDs to move (comma separated)")
	cmd.Flags().BoolVar(&apply, "apply", false, "Persist the primary suggestions")
	cmd.Flags().BoolVar(&force, "force", false, "Apply even when the recommendation is not auto_apply")
	cmd.MarkFlagsOneRequired("date", "ids")

	return cmd
}
