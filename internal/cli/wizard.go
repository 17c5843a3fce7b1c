package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/alexanderramin/chairside/internal/cli/formatter"
	"github.com/alexanderramin/chairside/internal/importer"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

func chairsideHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// bookingForm collects an appointment interactively. The barber select is
// filled from the roster.
func bookingForm(barbers []huh.Option[string], slot *slotFlags, duration *string, confirmed *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Barber").
				Options(barbers...).
				Value(&slot.barber),
			huh.NewInput().
				Title("Start").
				Placeholder(time.Now().Add(24*time.Hour).Format("2006-01-02") + " 10:00").
				Value(&slot.start).
				Validate(validateInstant),
			huh.NewInput().
				Title("Duration (minutes)").
				Placeholder("30").
				Value(duration).
				Validate(validatePositiveInt),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Client").
				Value(&slot.client).
				Validate(validateRequired("client")),
			huh.NewInput().
				Title("Service").
				Placeholder("Haircut").
				Value(&slot.service),
			huh.NewConfirm().
				Title("Book it?").
				Affirmative("Book").
				Negative("Cancel").
				Value(confirmed),
		),
	).WithTheme(chairsideHuhTheme()).WithShowHelp(false)
}

// runBookingForm fills slot from the form. It reports false when the user
// backed out.
func runBookingForm(ctx context.Context, a *App, slot *slotFlags) (bool, error) {
	barbers, err := a.Barbers.List(ctx, true)
	if err != nil {
		return false, err
	}
	if len(barbers) == 0 {
		return false, fmt.Errorf("no available barbers; add one with \"chairside barber add\"")
	}
	opts := make([]huh.Option[string], 0, len(barbers))
	for _, b := range barbers {
		opts = append(opts, huh.NewOption(b.Name, b.ID))
	}

	var duration string
	var confirmed bool
	if err := bookingForm(opts, slot, &duration, &confirmed).RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, err
	}
	if !confirmed {
		return false, nil
	}
	slot.duration, _ = strconv.Atoi(duration)
	return true, nil
}

func validateInstant(s string) error {
	if _, err := importer.ParseInstant(s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD HH:MM")
	}
	return nil
}

func validatePositiveInt(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}

func validateRequired(field string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}
