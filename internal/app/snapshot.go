package app

import (
	"context"

	"github.com/ternarybob/pageobjects/internal/pages"
)

// StatusSnapshot is a point in time reading of the status bar indicators
type StatusSnapshot struct {
	Language    string   `json:"language" yaml:"language"`
	LineEnding  string   `json:"line_ending" yaml:"line_ending"`
	Encoding    string   `json:"encoding" yaml:"encoding"`
	Indentation string   `json:"indentation" yaml:"indentation"`
	Position    string   `json:"position" yaml:"position"`
	Items       []string `json:"items" yaml:"items"`
}

// Snapshot reads every editor indicator and the titles of all status bar items.
// The first failing read aborts the snapshot.
func (a *App) Snapshot(ctx context.Context) (*StatusSnapshot, error) {
	statusBar := a.StatusBar()
	snapshot := &StatusSnapshot{}

	reads := []struct {
		dst *string
		get func(*pages.StatusBar, context.Context) (string, error)
	}{
		{&snapshot.Language, (*pages.StatusBar).GetCurrentLanguage},
		{&snapshot.LineEnding, (*pages.StatusBar).GetCurrentLineEnding},
		{&snapshot.Encoding, (*pages.StatusBar).GetCurrentEncoding},
		{&snapshot.Indentation, (*pages.StatusBar).GetCurrentIndentation},
		{&snapshot.Position, (*pages.StatusBar).GetCurrentPosition},
	}
	for _, r := range reads {
		value, err := r.get(statusBar, ctx)
		if err != nil {
			return nil, err
		}
		*r.dst = value
	}

	items, err := statusBar.GetItems(ctx)
	if err != nil {
		return nil, err
	}
	snapshot.Items = make([]string, 0, len(items))
	for _, item := range items {
		title, err := item.Attribute(ctx, a.Locators.StatusBar.ItemTitle)
		if err != nil {
			return nil, err
		}
		snapshot.Items = append(snapshot.Items, title)
	}

	a.Logger.Debug().
		Str("language", snapshot.Language).
		Int("items", len(snapshot.Items)).
		Msg("Captured status bar snapshot")

	return snapshot, nil
}
