// Package browser implements the automation driver on top of chromedp.
//
// Every context passed to the driver and its elements must be derived from
// the chromedp context returned by Connect (or any chromedp.NewContext).
package browser

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/dom"
	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"
	"github.com/go-json-experiment/json"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/pageobjects/internal/common"
	"github.com/ternarybob/pageobjects/internal/interfaces"
	"github.com/ternarybob/pageobjects/internal/models"
)

const innerTextFunc = `function() { return this.innerText; }`

// Driver resolves locators in the page attached to the chromedp context
type Driver struct {
	implicitWait time.Duration
	logger       arbor.ILogger
}

// New creates a driver. With implicitWait 0 lookups never wait for an element to appear.
func New(implicitWait time.Duration, logger arbor.ILogger) *Driver {
	return &Driver{
		implicitWait: implicitWait,
		logger:       logger,
	}
}

// Connect allocates a browser page as described by config and returns a driver for it
// together with the chromedp context to pass to page objects.
// A remote URL attaches to a browser that is already running; otherwise a local
// browser is launched. The caller owns the returned cancel func.
func Connect(parent context.Context, config common.DriverConfig, logger arbor.ILogger) (*Driver, context.Context, context.CancelFunc, error) {
	wait, err := config.ImplicitWaitDuration()
	if err != nil {
		return nil, nil, nil, err
	}

	var allocCtx context.Context
	var cancelAlloc context.CancelFunc
	if config.RemoteURL != "" {
		allocCtx, cancelAlloc = chromedp.NewRemoteAllocator(parent, config.RemoteURL)
	} else {
		opts := append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", config.Headless),
			chromedp.Flag("disable-gpu", config.DisableGPU),
			chromedp.Flag("no-sandbox", config.NoSandbox),
			chromedp.Flag("disable-dev-shm-usage", true),
		)
		if config.WindowWidth > 0 && config.WindowHeight > 0 {
			opts = append(opts, chromedp.WindowSize(config.WindowWidth, config.WindowHeight))
		}
		allocCtx, cancelAlloc = chromedp.NewExecAllocator(parent, opts...)
	}

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	cancel := func() {
		cancelBrowser()
		cancelAlloc()
	}

	// The first Run allocates the page. It runs on the long lived context so
	// that per-call timeouts later on cannot tear the page down.
	var actions []chromedp.Action
	if config.WorkbenchURL != "" {
		actions = append(actions, chromedp.Navigate(config.WorkbenchURL))
	}
	if err := chromedp.Run(browserCtx, actions...); err != nil {
		cancel()
		return nil, nil, nil, fmt.Errorf("failed to open workbench page: %w", err)
	}

	logger.Info().
		Str("remote_url", config.RemoteURL).
		Str("workbench_url", config.WorkbenchURL).
		Dur("implicit_wait", wait).
		Msg("Connected to workbench")

	return New(wait, logger), browserCtx, cancel, nil
}

// FindElement returns the first element in the document matching locator
func (d *Driver) FindElement(ctx context.Context, locator models.Locator) (interfaces.Element, error) {
	return d.findFirst(ctx, nil, locator)
}

// FindElements returns every element in the document matching locator
func (d *Driver) FindElements(ctx context.Context, locator models.Locator) ([]interfaces.Element, error) {
	return d.findAll(ctx, nil, locator)
}

func (d *Driver) findFirst(ctx context.Context, scope *cdp.Node, locator models.Locator) (interfaces.Element, error) {
	elements, err := d.findAll(ctx, scope, locator)
	if err != nil {
		return nil, err
	}
	if len(elements) == 0 {
		return nil, models.NewNotFoundError(locator)
	}
	return elements[0], nil
}

func (d *Driver) findAll(ctx context.Context, scope *cdp.Node, locator models.Locator) ([]interfaces.Element, error) {
	sel, opts, err := queryOptions(scope, locator)
	if err != nil {
		return nil, err
	}

	if scope != nil {
		// A detached scope would make the query poll until the context ends
		if err := chromedp.Run(ctx, chromedp.ActionFunc(func(ctx context.Context) error {
			_, err := dom.DescribeNode().WithNodeID(scope.NodeID).Do(ctx)
			return err
		})); err != nil {
			return nil, classify(err)
		}
	}

	nodes, err := d.query(ctx, sel, opts)
	if err != nil {
		return nil, err
	}

	d.logger.Debug().Str("locator", locator.String()).Int("matches", len(nodes)).Msg("Resolved locator")

	elements := make([]interfaces.Element, 0, len(nodes))
	for _, n := range nodes {
		elements = append(elements, &Element{driver: d, node: n})
	}
	return elements, nil
}

// query runs the chromedp query, waiting up to the implicit wait for a match
func (d *Driver) query(ctx context.Context, sel string, opts []chromedp.QueryOption) ([]*cdp.Node, error) {
	var nodes []*cdp.Node

	if d.implicitWait <= 0 {
		opts = append(opts, chromedp.AtLeast(0))
		if err := chromedp.Run(ctx, chromedp.Nodes(sel, &nodes, opts...)); err != nil {
			return nil, fmt.Errorf("failed to query %s: %w", sel, err)
		}
		return nodes, nil
	}

	waitCtx, cancel := context.WithTimeout(ctx, d.implicitWait)
	defer cancel()
	if err := chromedp.Run(waitCtx, chromedp.Nodes(sel, &nodes, opts...)); err != nil {
		// The implicit wait ran out while the caller is still waiting: nothing matched
		if ctx.Err() == nil && errors.Is(waitCtx.Err(), context.DeadlineExceeded) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query %s: %w", sel, err)
	}
	return nodes, nil
}

// queryOptions maps a locator onto a chromedp selector
func queryOptions(scope *cdp.Node, locator models.Locator) (string, []chromedp.QueryOption, error) {
	if locator.By == models.StrategyXPath {
		if scope != nil {
			return "", nil, fmt.Errorf("%w: %s can only be resolved from the document", models.ErrUnsupportedLocator, locator)
		}
		return locator.Value, []chromedp.QueryOption{chromedp.BySearch}, nil
	}

	sel, ok := locator.CSS()
	if !ok {
		return "", nil, fmt.Errorf("%w: %s", models.ErrUnsupportedLocator, locator)
	}
	opts := []chromedp.QueryOption{chromedp.ByQueryAll}
	if scope != nil {
		opts = append(opts, chromedp.FromNode(scope))
	}
	return sel, opts, nil
}

// classify marks protocol errors about unknown node ids as stale element errors
func classify(err error) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	if strings.Contains(msg, "node with given id") || strings.Contains(msg, "Node is detached") {
		return fmt.Errorf("%w: %v", models.ErrStaleElement, err)
	}
	return err
}

// Element is a handle to a DOM node of the page
type Element struct {
	driver *Driver
	node   *cdp.Node
}

// FindElement returns the first descendant matching locator
func (e *Element) FindElement(ctx context.Context, locator models.Locator) (interfaces.Element, error) {
	return e.driver.findFirst(ctx, e.node, locator)
}

// FindElements returns every descendant matching locator
func (e *Element) FindElements(ctx context.Context, locator models.Locator) ([]interfaces.Element, error) {
	return e.driver.findAll(ctx, e.node, locator)
}

// Click scrolls the element into view and clicks its centre
func (e *Element) Click(ctx context.Context) error {
	return classify(chromedp.Run(ctx, chromedp.MouseClickNode(e.node)))
}

// Text returns the element's innerText
func (e *Element) Text(ctx context.Context) (string, error) {
	var text string
	err := chromedp.Run(ctx, chromedp.ActionFunc(func(ctx context.Context) error {
		obj, err := dom.ResolveNode().WithNodeID(e.node.NodeID).Do(ctx)
		if err != nil {
			return err
		}
		defer func() {
			_ = runtime.ReleaseObject(obj.ObjectID).Do(ctx)
		}()

		res, exception, err := runtime.CallFunctionOn(innerTextFunc).
			WithObjectID(obj.ObjectID).
			WithReturnByValue(true).
			Do(ctx)
		if err != nil {
			return err
		}
		if exception != nil {
			return exception
		}
		if len(res.Value) == 0 {
			return nil
		}
		return json.Unmarshal(res.Value, &text)
	}))
	if err != nil {
		return "", classify(err)
	}
	return text, nil
}

// Attribute returns the value of the named attribute, or "" when it is not set
func (e *Element) Attribute(ctx context.Context, name string) (string, error) {
	var value string
	err := chromedp.Run(ctx, chromedp.ActionFunc(func(ctx context.Context) error {
		attrs, err := dom.GetAttributes(e.node.NodeID).Do(ctx)
		if err != nil {
			return err
		}
		// attrs is a flat list of name, value pairs
		for i := 0; i+1 < len(attrs); i += 2 {
			if attrs[i] == name {
				value = attrs[i+1]
				return nil
			}
		}
		return nil
	}))
	if err != nil {
		return "", classify(err)
	}
	return value, nil
}
