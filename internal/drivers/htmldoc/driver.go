// Package htmldoc implements the automation driver over a static HTML document.
// It lets page objects run against a captured or hand written workbench DOM
// without a browser. Clicks are recorded and can be given behaviour with OnClick.
package htmldoc

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/ternarybob/arbor"
	"golang.org/x/net/html"

	"github.com/ternarybob/pageobjects/internal/interfaces"
	"github.com/ternarybob/pageobjects/internal/models"
)

// ClickHandler is called for every click, with the driver lock held.
// It may mutate the document, e.g. to add or toggle a class.
type ClickHandler func(doc *goquery.Document, clicked *goquery.Selection)

// Driver serves lookups from a goquery document
type Driver struct {
	doc     *goquery.Document
	logger  arbor.ILogger
	mu      sync.Mutex
	clicks  []string
	onClick ClickHandler
}

// New creates a driver over doc
func New(doc *goquery.Document, logger arbor.ILogger) *Driver {
	return &Driver{
		doc:    doc,
		logger: logger,
	}
}

// NewFromReader parses HTML from r and creates a driver over it
func NewFromReader(r io.Reader, logger arbor.ILogger) (*Driver, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML document: %w", err)
	}
	return New(doc, logger), nil
}

// NewFromString parses an HTML string and creates a driver over it
func NewFromString(s string, logger arbor.ILogger) (*Driver, error) {
	return NewFromReader(strings.NewReader(s), logger)
}

// OnClick installs the click handler
func (d *Driver) OnClick(fn ClickHandler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.onClick = fn
}

// Clicks returns a description of every clicked element, in click order.
// Elements are described by id when they have one, otherwise by tag name.
func (d *Driver) Clicks() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]string, len(d.clicks))
	copy(out, d.clicks)
	return out
}

// HTML renders the current document
func (d *Driver) HTML() (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return goquery.OuterHtml(d.doc.Selection)
}

// FindElement looks up the first match in the whole document
func (d *Driver) FindElement(ctx context.Context, locator models.Locator) (interfaces.Element, error) {
	return d.find(ctx, d.doc.Selection, locator)
}

// FindElements looks up every match in the whole document
func (d *Driver) FindElements(ctx context.Context, locator models.Locator) ([]interfaces.Element, error) {
	return d.findAll(ctx, d.doc.Selection, locator)
}

func (d *Driver) find(ctx context.Context, scope *goquery.Selection, locator models.Locator) (interfaces.Element, error) {
	all, err := d.findAll(ctx, scope, locator)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, models.NewNotFoundError(locator)
	}
	return all[0], nil
}

func (d *Driver) findAll(ctx context.Context, scope *goquery.Selection, locator models.Locator) ([]interfaces.Element, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	selector, ok := locator.CSS()
	if !ok {
		return nil, fmt.Errorf("%w: %s is not supported by the HTML document driver", models.ErrUnsupportedLocator, locator)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if scope != d.doc.Selection && !d.attached(scope) {
		return nil, models.ErrStaleElement
	}

	found := scope.Find(selector)
	elements := make([]interfaces.Element, 0, found.Length())
	found.Each(func(_ int, sel *goquery.Selection) {
		elements = append(elements, &Element{driver: d, sel: sel})
	})

	d.logger.Debug().Str("locator", locator.String()).Int("matches", len(elements)).Msg("Resolved locator")
	return elements, nil
}

// attached reports whether the selection's node is still part of the document.
// The caller holds d.mu.
func (d *Driver) attached(sel *goquery.Selection) bool {
	if sel.Length() == 0 {
		return false
	}
	root := d.doc.Selection.Nodes[0]
	for n := sel.Nodes[0]; n != nil; n = n.Parent {
		if n == root {
			return true
		}
	}
	return false
}

// Element is a handle to a node of the document
type Element struct {
	driver *Driver
	sel    *goquery.Selection
}

// FindElement looks up the first match inside the element
func (e *Element) FindElement(ctx context.Context, locator models.Locator) (interfaces.Element, error) {
	return e.driver.find(ctx, e.sel, locator)
}

// FindElements looks up every match inside the element
func (e *Element) FindElements(ctx context.Context, locator models.Locator) ([]interfaces.Element, error) {
	return e.driver.findAll(ctx, e.sel, locator)
}

// Click records the click and runs the click handler
func (e *Element) Click(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	d := e.driver
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.attached(e.sel) {
		return models.ErrStaleElement
	}
	d.clicks = append(d.clicks, describe(e.sel.Nodes[0]))
	if d.onClick != nil {
		d.onClick(d.doc, e.sel)
	}
	return nil
}

// Text returns the text content of the element, unmodified
func (e *Element) Text(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	d := e.driver
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.attached(e.sel) {
		return "", models.ErrStaleElement
	}
	return e.sel.Text(), nil
}

// Attribute returns the attribute value, or "" when the attribute is absent
func (e *Element) Attribute(ctx context.Context, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	d := e.driver
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.attached(e.sel) {
		return "", models.ErrStaleElement
	}
	value, _ := e.sel.Attr(name)
	return value, nil
}

func describe(n *html.Node) string {
	for _, attr := range n.Attr {
		if attr.Key == "id" && attr.Val != "" {
			return attr.Val
		}
	}
	return n.Data
}
