package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/chairside/internal/cli/formatter"
	"github.com/alexanderramin/chairside/internal/domain"
	"github.com/spf13/cobra"
)

func newRulesCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Show or change the shop's business rules",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show the business rules",
			RunE: func(cmd *cobra.Command, args []string) error {
				rules, err := a.Rules.Get(context.Background())
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatRules(rules))
				return nil
			},
		},
		newRulesSetCmd(a),
	)

	return cmd
}

func newRulesSetCmd(a *App) *cobra.Command {
	var notice, maxMoves int
	var target float64
	var peak []string
	var weekends bool

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change business rules; unset flags keep their value",
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch domain.BusinessRulesPatch
			flags := cmd.Flags()
			if flags.Changed("min-notice-hours") {
				patch.MinimumNoticeHours = &notice
			}
			if flags.Changed("max-reschedulings") {
				patch.MaxReschedulingsPerClient = &maxMoves
			}
			if flags.Changed("target-utilization") {
				patch.TargetUtilizationPct = &target
			}
			if flags.Changed("allow-weekends") {
				patch.AllowWeekendScheduling = &weekends
			}
			if flags.Changed("peak") {
				windows, err := parseWindows(peak)
				if err != nil {
					return fmt.Errorf("invalid --peak: %w", err)
				}
				patch.PeakHours = &windows
			}

			rules, err := a.Rules.Update(context.Background(), patch)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatRules(rules))
			return nil
		},
	}

	cmd.Flags().IntVar(&notice, "min-notice-hours", 24, "Hours of notice required before moving a booking")
	cmd.Flags().IntVar(&maxMoves, "max-reschedulings", 3, "Moves allowed per client")
	cmd.Flags().Float64Var(&target, "target-utilization", 85, "Target chair utilization in percent")
	cmd.Flags().StringArrayVar(&peak, "peak", nil, "Peak window, e.g. 10:00-12:00 (repeatable, replaces the list)")
	cmd.Flags().BoolVar(&weekends, "allow-weekends", false, "Allow moving bookings onto weekends")

	return cmd
}
