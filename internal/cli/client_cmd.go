package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/chairside/internal/cli/formatter"
	"github.com/alexanderramin/chairside/internal/domain"
	"github.com/alexanderramin/chairside/internal/repository"
	"github.com/spf13/cobra"
)

func newClientCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "client",
		Short: "Manage client scheduling preferences",
	}

	cmd.AddCommand(
		newClientShowCmd(a),
		newClientListCmd(a),
		newClientSetCmd(a),
	)

	return cmd
}

func newClientShowCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show CLIENT",
		Short: "Show a client's preferences",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.Clients.Get(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatClient(p))
			return nil
		},
	}
}

func newClientListCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List clients with stored preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			clients, err := a.Clients.List(context.Background())
			if err != nil {
				return err
			}
			if len(clients) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No clients found.")
				return nil
			}
			rows := make([][]string, 0, len(clients))
			for _, c := range clients {
				rows = append(rows, []string{
					formatter.Bold(c.ClientID),
					formatter.Windows(c.PreferredTimes),
					fmt.Sprintf("%.2f", c.FlexibilityScore),
					fmt.Sprintf("%d", c.ReschedulingCount),
				})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable([]string{"CLIENT", "PREFERS", "FLEX", "MOVES"}, rows))
			return nil
		},
	}
}

func newClientSetCmd(a *App) *cobra.Command {
	var prefer, avoid []string
	var days string
	var flexibility float64

	cmd := &cobra.Command{
		Use:   "set CLIENT",
		Short: "Create or update a client's preferences",
		Long:  "Only the given flags change; other preferences are kept.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			p, err := a.Clients.Get(ctx, args[0])
			if errors.Is(err, repository.ErrNotFound) {
				p = &domain.ClientPreferences{ClientID: args[0], FlexibilityScore: 0.5}
			} else if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("prefer") {
				if p.PreferredTimes, err = parseWindows(prefer); err != nil {
					return fmt.Errorf("invalid --prefer: %w", err)
				}
			}
			if flags.Changed("avoid") {
				if p.AvoidTimes, err = parseWindows(avoid); err != nil {
					return fmt.Errorf("invalid --avoid: %w", err)
				}
			}
			if flags.Changed("days") {
				if p.PreferredDays, err = parseDays(days); err != nil {
					return fmt.Errorf("invalid --days: %w", err)
				}
			}
			if flags.Changed("flexibility") {
				p.FlexibilityScore = flexibility
			}

			if err := a.Clients.Set(ctx, p); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved preferences for %s\n", p.ClientID)
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&prefer, "prefer", nil, "Preferred window, e.g. 09:00-12:00 (repeatable)")
	cmd.Flags().StringArrayVar(&avoid, "avoid", nil, "Window to avoid, e.g. 17:00-19:00 (repeatable)")
	cmd.Flags().StringVar(&days, "days", "", "Preferred days, e.g. mon,fri")
	cmd.Flags().Float64Var(&flexibility, "flexibility", 0.5, "How readily the client accepts moves (0-1)")

	return cmd
}
