package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/alexanderramin/chairside/internal/cli/formatter"
	"github.com/alexanderramin/chairside/internal/contract"
	"github.com/alexanderramin/chairside/internal/domain"
	"github.com/spf13/cobra"
)

func newAppointmentCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "appointment",
		Aliases: []string{"appt"},
		Short:   "Book and manage appointments",
	}

	cmd.AddCommand(
		newAppointmentAddCmd(a),
		newAppointmentListCmd(a),
		newAppointmentCancelCmd(a),
		newAppointmentStatusCmd(a),
	)

	return cmd
}

func newAppointmentAddCmd(a *App) *cobra.Command {
	var slot slotFlags
	var force bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Book an appointment after a conflict check",
		Long: `Book an appointment. The booking is checked against the barber's day
first; high or critical conflicts refuse it unless --force is given.
Run without flags on a terminal to fill in a form instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if cmd.Flags().NFlag() == 0 && a.interactive() {
				ok, err := runBookingForm(ctx, a, &slot)
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Cancelled."))
					return nil
				}
			}

			appt, err := slot.appointment(ctx, a, cmd.Flags())
			if err != nil {
				return err
			}

			resp, err := a.bookUseCase().Book(ctx, contract.BookRequest{Appointment: appt, Force: force})
			if err != nil {
				return explainBookingError(cmd.OutOrStdout(), err)
			}

			out := cmd.OutOrStdout()
			booked := resp.Appointment
			fmt.Fprintf(out, "Booked %s for %s (%s)\n",
				formatter.Slot(booked.StartTime, booked.DurationMin), booked.ClientName, booked.ID)
			if resp.Analysis.HasConflicts {
				label := "Booked with conflicts:"
				if resp.Forced {
					label = "Booked with --force despite:"
				}
				fmt.Fprintln(out, formatter.StyleYellow.Render(label))
				fmt.Fprint(out, formatter.FormatConflicts(resp.Analysis.Conflicts))
			}
			return nil
		},
	}

	slot.register(cmd.Flags())
	cmd.Flags().BoolVar(&force, "force", false, "Book even when high or critical conflicts exist")

	return cmd
}

// explainBookingError prints the blocking conflicts of a refused booking.
func explainBookingError(w io.Writer, err error) error {
	var aerr *contract.AnalyzeError
	if errors.As(err, &aerr) && len(aerr.Conflicts) > 0 {
		fmt.Fprint(w, formatter.FormatConflicts(aerr.Conflicts))
	}
	return err
}

func newAppointmentListCmd(a *App) *cobra.Command {
	var date, barber string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show one day's bookings and barber utilization",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			day := domain.StartOfDay(a.now())
			if date != "" {
				d, err := parseDate(date)
				if err != nil {
					return err
				}
				day = d
			}

			var barberID string
			if barber != "" {
				id, err := resolveBarberID(ctx, a, barber)
				if err != nil {
					return err
				}
				barberID = id
			}

			appts, err := a.Appointments.ListByDate(ctx, day, barberID)
			if err != nil {
				return err
			}
			names, err := barberNames(ctx, a)
			if err != nil {
				return err
			}
			util, err := a.Appointments.DayUtilization(ctx, day)
			if err != nil {
				return err
			}
			rules, err := a.Rules.Get(ctx)
			if err != nil {
				return err
			}

			data := formatter.DayBoardData{
				Day:          day,
				Appointments: appts,
				BarberNames:  names,
				TargetPct:    rules.TargetUtilizationPct,
			}
			for _, u := range util {
				if barberID != "" && u.BarberID != barberID {
					continue
				}
				data.Utilization = append(data.Utilization, formatter.UtilizationRow{
					BarberName:     u.BarberName,
					Appointments:   u.Appointments,
					BookedMin:      u.BookedMin,
					UtilizationPct: u.UtilizationPct,
				})
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatDayBoard(data))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day to show (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&barber, "barber", "", "Only this barber")

	return cmd
}

func newAppointmentCancelCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "cancel ID",
		Short: "Cancel an appointment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.Appointments.Cancel(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cancelled appointment %s\n", args[0])
			return nil
		},
	}
}

func newAppointmentStatusCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:       "status ID STATUS",
		Short:     "Set an appointment's status",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"scheduled", "completed", "cancelled", "no_show"},
		RunE: func(cmd *cobra.Command, args []string) error {
			status := domain.AppointmentStatus(args[1])
			if err := a.Appointments.SetStatus(context.Background(), args[0], status); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Appointment %s is now %s\n", args[0], status)
			return nil
		},
	}
}
