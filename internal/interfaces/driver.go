package interfaces

import (
	"context"

	"github.com/ternarybob/pageobjects/internal/models"
)

// SearchContext resolves locators within a scope
type SearchContext interface {
	// FindElement returns the first element matching the locator.
	// When nothing matches the error satisfies errors.Is(err, models.ErrElementNotFound).
	FindElement(ctx context.Context, locator models.Locator) (Element, error)

	// FindElements returns all matching elements, possibly none
	FindElements(ctx context.Context, locator models.Locator) ([]Element, error)
}

// Element is a handle to a located UI element.
// A handle may go stale when the UI re-renders; callers are expected to look elements up again
// rather than hold on to them.
type Element interface {
	SearchContext

	// Click performs a left click on the element
	Click(ctx context.Context) error

	// Text returns the rendered text of the element
	Text(ctx context.Context) (string, error)

	// Attribute returns the value of the named attribute, or "" when it is not set
	Attribute(ctx context.Context, name string) (string, error)
}

// Driver is an automation session. Its search scope is the whole document.
type Driver interface {
	SearchContext
}
