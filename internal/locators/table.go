package locators

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/ternarybob/pageobjects/internal/models"
)

// Table holds the locators used by the page objects, grouped by page object
type Table struct {
	Workbench           WorkbenchLocators           `toml:"workbench" yaml:"workbench"`
	StatusBar           StatusBarLocators           `toml:"status_bar" yaml:"status_bar"`
	NotificationsCenter NotificationsCenterLocators `toml:"notifications_center" yaml:"notifications_center"`
}

// WorkbenchLocators locates the workbench root, the outermost scope
type WorkbenchLocators struct {
	Constructor models.Locator `toml:"constructor" yaml:"constructor"`
}

// StatusBarLocators locates the status bar and its items.
// Item locators are resolved inside the status bar, except Notifications which is
// resolved inside the workbench.
type StatusBarLocators struct {
	Constructor   models.Locator `toml:"constructor" yaml:"constructor"`
	Language      models.Locator `toml:"language" yaml:"language"`
	Lines         models.Locator `toml:"lines" yaml:"lines"`
	Encoding      models.Locator `toml:"encoding" yaml:"encoding"`
	Indent        models.Locator `toml:"indent" yaml:"indent"`
	Selection     models.Locator `toml:"selection" yaml:"selection"`
	Notifications models.Locator `toml:"notifications" yaml:"notifications"`
	Bell          models.Locator `toml:"bell" yaml:"bell"`
	Item          models.Locator `toml:"item" yaml:"item"`
	ItemTitle     string         `toml:"item_title" yaml:"item_title" validate:"required"` // attribute holding an item's title
}

// NotificationsCenterLocators locates the notifications panel
type NotificationsCenterLocators struct {
	Constructor models.Locator `toml:"constructor" yaml:"constructor"`
}

// Default returns the locators of a VS Code workbench
func Default() *Table {
	return &Table{
		Workbench: WorkbenchLocators{
			Constructor: models.ByClassName("monaco-workbench"),
		},
		StatusBar: StatusBarLocators{
			Constructor:   models.ByID("workbench.parts.statusbar"),
			Language:      models.ByID("status.editor.mode"),
			Lines:         models.ByID("status.editor.eol"),
			Encoding:      models.ByID("status.editor.encoding"),
			Indent:        models.ByID("status.editor.indentation"),
			Selection:     models.ByCSS(`[id="status.editor.selection"]`),
			Notifications: models.ByClassName("notifications-center"),
			Bell:          models.ByID("status.notifications"),
			Item:          models.ByClassName("statusbar-item"),
			ItemTitle:     "aria-label",
		},
		NotificationsCenter: NotificationsCenterLocators{
			Constructor: models.ByClassName("notifications-center"),
		},
	}
}

// Load returns the default table with the given file merged over it.
// The format is picked from the extension: .toml, .yaml or .yml.
// An empty path returns the defaults.
func Load(path string) (*Table, error) {
	table := Default()
	if path == "" {
		return table, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read locator file %s: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, table)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, table)
	default:
		return nil, fmt.Errorf("unsupported locator file extension %q (want .toml, .yaml or .yml)", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse locator file %s: %w", path, err)
	}

	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("invalid locator file %s: %w", path, err)
	}
	return table, nil
}

// Validate checks every locator has a known strategy and a value
func (t *Table) Validate() error {
	validate := validator.New()
	return validate.Struct(t)
}
