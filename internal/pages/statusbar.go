package pages

import (
	"context"
	"errors"
	"fmt"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/pageobjects/internal/interfaces"
	"github.com/ternarybob/pageobjects/internal/locators"
	"github.com/ternarybob/pageobjects/internal/models"
)

// StatusBar is the status bar at the bottom of the workbench.
// The editor indicators (language, line ending, encoding, indentation and
// position) only exist while an editor is open; without one the driver's
// not-found error is returned unchanged.
type StatusBar struct {
	*Element
	table *locators.Table
	locs  locators.StatusBarLocators
}

// NewStatusBar creates the status bar page object
func NewStatusBar(driver interfaces.Driver, table *locators.Table, logger arbor.ILogger) *StatusBar {
	workbench := NewElement(driver, table.Workbench.Constructor, nil, logger)
	return &StatusBar{
		Element: NewElement(driver, table.StatusBar.Constructor, workbench, logger),
		table:   table,
		locs:    table.StatusBar,
	}
}

// OpenNotificationsCenter opens the notifications panel unless it is already open
func (s *StatusBar) OpenNotificationsCenter(ctx context.Context) (*NotificationsCenter, error) {
	if err := s.toggleNotificationsCenter(ctx, true); err != nil {
		return nil, err
	}
	return NewNotificationsCenter(s.driver, s.table, s.logger), nil
}

// CloseNotificationsCenter closes the notifications panel unless it is already closed
func (s *StatusBar) CloseNotificationsCenter(ctx context.Context) error {
	return s.toggleNotificationsCenter(ctx, false)
}

// OpenLanguageSelection opens the language mode quick pick
func (s *StatusBar) OpenLanguageSelection(ctx context.Context) error {
	return s.click(ctx, s.locs.Language)
}

// GetCurrentLanguage returns the language mode label
func (s *StatusBar) GetCurrentLanguage(ctx context.Context) (string, error) {
	return s.text(ctx, s.locs.Language)
}

// OpenLineEndingSelection opens the end of line sequence quick pick
func (s *StatusBar) OpenLineEndingSelection(ctx context.Context) error {
	return s.click(ctx, s.locs.Lines)
}

// GetCurrentLineEnding returns the end of line label, e.g. "LF"
func (s *StatusBar) GetCurrentLineEnding(ctx context.Context) (string, error) {
	return s.text(ctx, s.locs.Lines)
}

// OpenEncodingSelection opens the file encoding quick pick
func (s *StatusBar) OpenEncodingSelection(ctx context.Context) error {
	return s.click(ctx, s.locs.Encoding)
}

// GetCurrentEncoding returns the file encoding label, e.g. "UTF-8"
func (s *StatusBar) GetCurrentEncoding(ctx context.Context) (string, error) {
	return s.text(ctx, s.locs.Encoding)
}

// OpenIndentationSelection opens the indentation quick pick
func (s *StatusBar) OpenIndentationSelection(ctx context.Context) error {
	return s.click(ctx, s.locs.Indent)
}

// GetCurrentIndentation returns the indentation label, e.g. "Spaces: 4"
func (s *StatusBar) GetCurrentIndentation(ctx context.Context) (string, error) {
	return s.text(ctx, s.locs.Indent)
}

// OpenLineSelection opens the go to line input box
func (s *StatusBar) OpenLineSelection(ctx context.Context) error {
	return s.click(ctx, s.locs.Selection)
}

// GetCurrentPosition returns the cursor position label, e.g. "Ln 1, Col 1"
func (s *StatusBar) GetCurrentPosition(ctx context.Context) (string, error) {
	return s.text(ctx, s.locs.Selection)
}

// GetItems returns every item currently shown in the status bar
func (s *StatusBar) GetItems(ctx context.Context) ([]interfaces.Element, error) {
	return s.FindElements(ctx, s.locs.Item)
}

// GetItem returns the first status bar item whose title matches.
// When no item matches the error satisfies errors.Is(err, models.ErrElementNotFound).
func (s *StatusBar) GetItem(ctx context.Context, title string) (interfaces.Element, error) {
	items, err := s.GetItems(ctx)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		itemTitle, err := item.Attribute(ctx, s.locs.ItemTitle)
		if err != nil {
			return nil, err
		}
		if itemTitle == title {
			return item, nil
		}
	}
	return nil, fmt.Errorf("no status bar item titled %q: %w", title, models.ErrElementNotFound)
}

func (s *StatusBar) toggleNotificationsCenter(ctx context.Context, open bool) error {
	visible, err := s.notificationsVisible(ctx)
	if err != nil {
		return err
	}
	if !shouldToggle(visible, open) {
		s.logger.Debug().Bool("visible", visible).Msg("Notifications center already in requested state")
		return nil
	}
	return s.click(ctx, s.locs.Bell)
}

// notificationsVisible checks the notifications panel inside the workbench.
// The panel is only rendered after the bell is first clicked, so a missing
// panel counts as closed. Any other failure is returned.
func (s *StatusBar) notificationsVisible(ctx context.Context) (bool, error) {
	workbench, err := s.Enclosing().Resolve(ctx)
	if err != nil {
		return false, err
	}
	center, err := workbench.FindElement(ctx, s.locs.Notifications)
	if errors.Is(err, models.ErrElementNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	class, err := center.Attribute(ctx, "class")
	if err != nil {
		return false, err
	}
	return hasClass(class, visibleClass), nil
}
