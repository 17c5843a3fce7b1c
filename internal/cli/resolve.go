package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/chairside/internal/domain"
)

// resolveBarberID accepts a full ID, a case-insensitive name or an ID prefix.
func resolveBarberID(ctx context.Context, a *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("barber is required")
	}

	barbers, err := a.Barbers.List(ctx, false)
	if err != nil {
		return "", err
	}

	for _, b := range barbers {
		if b.ID == input {
			return b.ID, nil
		}
	}

	var named []string
	for _, b := range barbers {
		if strings.EqualFold(b.Name, input) {
			named = append(named, b.ID)
		}
	}
	if len(named) == 1 {
		return named[0], nil
	}
	if len(named) > 1 {
		return "", fmt.Errorf("barber name %q is ambiguous (%d matches); use the ID", input, len(named))
	}

	var matches []string
	for _, b := range barbers {
		if strings.HasPrefix(b.ID, input) {
			matches = append(matches, b.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("barber not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("barber ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// barberNames maps every barber ID to its display name.
func barberNames(ctx context.Context, a *App) (map[string]string, error) {
	barbers, err := a.Barbers.List(ctx, false)
	if err != nil {
		return nil, err
	}
	return namesOf(barbers), nil
}

func namesOf(barbers []*domain.Barber) map[string]string {
	names := make(map[string]string, len(barbers))
	for _, b := range barbers {
		names[b.ID] = b.Name
	}
	return names
}
