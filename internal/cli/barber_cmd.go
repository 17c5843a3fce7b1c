package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/chairside/internal/cli/formatter"
	"github.com/alexanderramin/chairside/internal/domain"
	"github.com/spf13/cobra"
)

func newBarberCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "barber",
		Short: "Manage barbers",
	}

	cmd.AddCommand(
		newBarberAddCmd(a),
		newBarberListCmd(a),
		newBarberShowCmd(a),
		newBarberAvailabilityCmd(a),
	)

	return cmd
}

func newBarberAddCmd(a *App) *cobra.Command {
	var name, email, hours, days, breakLabel string
	var breaks, skills []string
	var unavailable bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a barber",
		RunE: func(cmd *cobra.Command, args []string) error {
			b := &domain.Barber{
				Name:      name,
				Email:     email,
				Skills:    skills,
				Available: !unavailable,
			}

			if hours != "" {
				w, err := domain.ParseWindow(hours)
				if err != nil {
					return fmt.Errorf("invalid --hours: %w", err)
				}
				wd, err := parseDays(days)
				if err != nil {
					return fmt.Errorf("invalid --days: %w", err)
				}
				b.WorkingHours = &domain.WorkingHours{Start: w.Start, End: w.End, Days: wd}
			}

			for _, spec := range breaks {
				br, err := parseBreak(spec, breakLabel)
				if err != nil {
					return err
				}
				b.Breaks = append(b.Breaks, br)
			}

			if err := a.Barbers.Create(context.Background(), b); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added barber %s (%s)\n", b.Name, b.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Barber name")
	cmd.Flags().StringVar(&email, "email", "", "Contact email")
	cmd.Flags().StringVar(&hours, "hours", "", "Daily working window, e.g. 09:00-18:00")
	cmd.Flags().StringVar(&days, "days", "mon,tue,wed,thu,fri,sat", "Working days")
	cmd.Flags().StringArrayVar(&breaks, "break", nil, "Break window, e.g. 13:00-13:30 or 13:00-13:30@mon,fri (repeatable)")
	cmd.Flags().StringVar(&breakLabel, "break-label", "", "Label for the given breaks")
	cmd.Flags().StringSliceVar(&skills, "skill", nil, "Skill tag (repeatable)")
	cmd.Flags().BoolVar(&unavailable, "unavailable", false, "Add the barber as unavailable")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newBarberListCmd(a *App) *cobra.Command {
	var availableOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List barbers",
		RunE: func(cmd *cobra.Command, args []string) error {
			barbers, err := a.Barbers.List(context.Background(), availableOnly)
			if err != nil {
				return err
			}
			if len(barbers) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No barbers found.")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatBarberList(barbers))
			return nil
		},
	}

	cmd.Flags().BoolVar(&availableOnly, "available", false, "Only list available barbers")

	return cmd
}

func newBarberShowCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show BARBER",
		Short: "Show barber details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveBarberID(ctx, a, args[0])
			if err != nil {
				return err
			}
			b, err := a.Barbers.GetByID(ctx, id)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatBarber(b))
			return nil
		},
	}
}

func newBarberAvailabilityCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:       "availability BARBER on|off",
		Short:     "Mark a barber available or unavailable",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"on", "off"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var available bool
			switch args[1] {
			case "on":
				available = true
			case "off":
			default:
				return fmt.Errorf("availability must be on or off, got %q", args[1])
			}

			ctx := context.Background()
			id, err := resolveBarberID(ctx, a, args[0])
			if err != nil {
				return err
			}
			if err := a.Barbers.SetAvailable(ctx, id, available); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Barber %s is now %s\n", args[0], map[bool]string{true: "available", false: "unavailable"}[available])
			return nil
		},
	}
}
