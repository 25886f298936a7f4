package pages

import (
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/pageobjects/internal/interfaces"
	"github.com/ternarybob/pageobjects/internal/locators"
)

// NotificationsCenter is the notifications panel of the workbench
type NotificationsCenter struct {
	*Element
}

// NewNotificationsCenter creates the notifications panel page object, located inside the workbench
func NewNotificationsCenter(driver interfaces.Driver, table *locators.Table, logger arbor.ILogger) *NotificationsCenter {
	workbench := NewElement(driver, table.Workbench.Constructor, nil, logger)
	return &NotificationsCenter{
		Element: NewElement(driver, table.NotificationsCenter.Constructor, workbench, logger),
	}
}
