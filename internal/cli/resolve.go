package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/semainier/internal/domain"
)

// resolveListID maps user input to a list ID: exact title match first
// (case-insensitive), then exact UUID, then UUID prefix.
func resolveListID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("list is required")
	}

	lists, err := app.Lists.List(ctx)
	if err != nil {
		return "", err
	}

	for _, l := range lists {
		if strings.EqualFold(l.Title, input) {
			return l.ID, nil
		}
	}
	for _, l := range lists {
		if l.ID == input {
			return l.ID, nil
		}
	}

	var matches []string
	for _, l := range lists {
		if strings.HasPrefix(l.ID, input) {
			matches = append(matches, l.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("list not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("list %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveSublistID maps user input to a sublist ID within a list, by title
// or UUID prefix.
func resolveSublistID(ctx context.Context, app *App, listID, input string) (string, error) {
	sublists, err := app.Sublists.ListByList(ctx, listID)
	if err != nil {
		return "", err
	}

	for _, s := range sublists {
		if strings.EqualFold(s.Title, input) {
			return s.ID, nil
		}
	}

	var matches []string
	for _, s := range sublists {
		if strings.HasPrefix(s.ID, input) {
			matches = append(matches, s.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("sublist not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("sublist %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveActivity maps user input to an activity: exact UUID first, then a
// unique exact title match (case-insensitive), then a unique UUID prefix.
func resolveActivity(ctx context.Context, app *App, input string) (*domain.Activity, error) {
	if input == "" {
		return nil, fmt.Errorf("activity is required")
	}

	if a, err := app.Activities.GetByID(ctx, input); err == nil {
		return a, nil
	}

	lists, err := app.Lists.List(ctx)
	if err != nil {
		return nil, err
	}

	var byTitle, byPrefix []*domain.Activity
	for _, l := range lists {
		activities, err := app.Activities.ListByList(ctx, l.ID)
		if err != nil {
			return nil, err
		}
		for _, a := range activities {
			if strings.EqualFold(a.Title, input) {
				byTitle = append(byTitle, a)
			}
			if strings.HasPrefix(a.ID, input) {
				byPrefix = append(byPrefix, a)
			}
		}
	}

	if len(byTitle) == 1 {
		return byTitle[0], nil
	}
	if len(byTitle) > 1 {
		return nil, fmt.Errorf("activity title %q is ambiguous (%d matches), use an ID", input, len(byTitle))
	}

	switch len(byPrefix) {
	case 0:
		return nil, fmt.Errorf("activity not found: %q", input)
	case 1:
		return byPrefix[0], nil
	default:
		return nil, fmt.Errorf("activity ID prefix %q is ambiguous (%d matches)", input, len(byPrefix))
	}
}
