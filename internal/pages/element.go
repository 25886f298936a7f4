// Package pages holds page objects for the workbench UI.
// Page objects never keep element handles: every operation resolves its
// scope chain from the document root again.
package pages

import (
	"context"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/pageobjects/internal/interfaces"
	"github.com/ternarybob/pageobjects/internal/models"
)

// Element is the base of every page object. It is located by its own locator
// inside its enclosing page object, or inside the document when it has none.
type Element struct {
	driver    interfaces.Driver
	locator   models.Locator
	enclosing *Element
	logger    arbor.ILogger
}

// NewElement creates a page object rooted at locator inside enclosing.
// enclosing may be nil for top level page objects.
func NewElement(driver interfaces.Driver, locator models.Locator, enclosing *Element, logger arbor.ILogger) *Element {
	return &Element{
		driver:    driver,
		locator:   locator,
		enclosing: enclosing,
		logger:    logger,
	}
}

// Locator returns the locator of the page object root
func (e *Element) Locator() models.Locator {
	return e.locator
}

// Enclosing returns the enclosing page object, or nil
func (e *Element) Enclosing() *Element {
	return e.enclosing
}

// Resolve looks up the page object root, walking the enclosing chain first.
// Lookup errors are returned as they come from the driver.
func (e *Element) Resolve(ctx context.Context) (interfaces.Element, error) {
	var scope interfaces.SearchContext = e.driver
	if e.enclosing != nil {
		parent, err := e.enclosing.Resolve(ctx)
		if err != nil {
			return nil, err
		}
		scope = parent
	}
	return scope.FindElement(ctx, e.locator)
}

// FindElement looks up the first element matching locator inside the page object root
func (e *Element) FindElement(ctx context.Context, locator models.Locator) (interfaces.Element, error) {
	root, err := e.Resolve(ctx)
	if err != nil {
		return nil, err
	}
	return root.FindElement(ctx, locator)
}

// FindElements looks up every element matching locator inside the page object root
func (e *Element) FindElements(ctx context.Context, locator models.Locator) ([]interfaces.Element, error) {
	root, err := e.Resolve(ctx)
	if err != nil {
		return nil, err
	}
	return root.FindElements(ctx, locator)
}

// click locates an element inside the root and clicks it
func (e *Element) click(ctx context.Context, locator models.Locator) error {
	el, err := e.FindElement(ctx, locator)
	if err != nil {
		return err
	}
	e.logger.Debug().Str("locator", locator.String()).Msg("Clicking element")
	return el.Click(ctx)
}

// text locates an element inside the root and returns its text unchanged
func (e *Element) text(ctx context.Context, locator models.Locator) (string, error) {
	el, err := e.FindElement(ctx, locator)
	if err != nil {
		return "", err
	}
	text, err := el.Text(ctx)
	if err != nil {
		return "", err
	}
	e.logger.Debug().Str("locator", locator.String()).Str("text", text).Msg("Read element text")
	return text, nil
}
