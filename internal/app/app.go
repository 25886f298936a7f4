package app

import (
	"context"
	"fmt"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/pageobjects/internal/common"
	"github.com/ternarybob/pageobjects/internal/drivers/browser"
	"github.com/ternarybob/pageobjects/internal/interfaces"
	"github.com/ternarybob/pageobjects/internal/locators"
	"github.com/ternarybob/pageobjects/internal/pages"
)

// App holds the driver session and locator table shared by the page objects
type App struct {
	Config   *common.Config
	Logger   arbor.ILogger
	Locators *locators.Table
	Driver   interfaces.Driver

	// ctx is the driver session context; page object calls must derive from it
	ctx       context.Context
	cancelCtx context.CancelFunc
}

// New loads the locator table and connects to the workbench browser described by cfg
func New(parent context.Context, cfg *common.Config, logger arbor.ILogger) (*App, error) {
	table, err := locators.Load(cfg.Locators.File)
	if err != nil {
		return nil, fmt.Errorf("failed to load locators: %w", err)
	}

	driver, ctx, cancel, err := browser.Connect(parent, cfg.Driver, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect driver: %w", err)
	}

	app := NewWithDriver(ctx, cfg, table, driver, logger)
	app.cancelCtx = cancel
	return app, nil
}

// NewWithDriver wires an already connected driver. ctx is the context page object
// calls are made with.
func NewWithDriver(ctx context.Context, cfg *common.Config, table *locators.Table, driver interfaces.Driver, logger arbor.ILogger) *App {
	logger.Debug().
		Str("locators_file", cfg.Locators.File).
		Str("workbench_url", cfg.Driver.WorkbenchURL).
		Msg("Application initialized")

	return &App{
		Config:   cfg,
		Logger:   logger,
		Locators: table,
		Driver:   driver,
		ctx:      ctx,
	}
}

// Context returns the session context
func (a *App) Context() context.Context {
	return a.ctx
}

// StatusBar returns a status bar page object bound to the session driver
func (a *App) StatusBar() *pages.StatusBar {
	return pages.NewStatusBar(a.Driver, a.Locators, a.Logger)
}

// NotificationsCenter returns a notifications center page object bound to the session driver
func (a *App) NotificationsCenter() *pages.NotificationsCenter {
	return pages.NewNotificationsCenter(a.Driver, a.Locators, a.Logger)
}

// Close ends the driver session. It is safe to call more than once.
func (a *App) Close() error {
	if a.cancelCtx != nil {
		a.Logger.Info().Msg("Closing driver session")
		a.cancelCtx()
		a.cancelCtx = nil
	}
	return nil
}
