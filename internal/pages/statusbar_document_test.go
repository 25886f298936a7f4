package pages

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/pageobjects/internal/drivers/htmldoc"
	"github.com/ternarybob/pageobjects/internal/locators"
	"github.com/ternarybob/pageobjects/internal/models"
)

// loadWorkbench parses the workbench fixture. The bell behaves like the real
// one: the first click renders the notifications panel, later clicks toggle it.
func loadWorkbench(t *testing.T) (*goquery.Document, *htmldoc.Driver) {
	t.Helper()
	f, err := os.Open(filepath.Join("testdata", "workbench.html"))
	require.NoError(t, err)
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	require.NoError(t, err)

	driver := htmldoc.New(doc, arbor.NewLogger())
	driver.OnClick(func(doc *goquery.Document, clicked *goquery.Selection) {
		if clicked.AttrOr("id", "") != "status.notifications" {
			return
		}
		center := doc.Find(".notifications-center")
		if center.Length() == 0 {
			doc.Find(".monaco-workbench").AppendHtml(`<div class="notifications-center visible"></div>`)
			return
		}
		center.ToggleClass("visible")
	})
	return doc, driver
}

func TestStatusBarDocument_Indicators(t *testing.T) {
	_, driver := loadWorkbench(t)
	statusBar := NewStatusBar(driver, locators.Default(), arbor.NewLogger())
	ctx := context.Background()

	tests := []struct {
		name string
		get  func(*StatusBar, context.Context) (string, error)
		want string
	}{
		{"language", (*StatusBar).GetCurrentLanguage, "Markdown"},
		{"line ending", (*StatusBar).GetCurrentLineEnding, "LF"},
		{"encoding", (*StatusBar).GetCurrentEncoding, "UTF-8"},
		{"indentation", (*StatusBar).GetCurrentIndentation, "Spaces: 2"},
		{"position", (*StatusBar).GetCurrentPosition, "Ln 3, Col 14"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.get(statusBar, ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
	assert.Empty(t, driver.Clicks())
}

func TestStatusBarDocument_OpenSelections(t *testing.T) {
	_, driver := loadWorkbench(t)
	statusBar := NewStatusBar(driver, locators.Default(), arbor.NewLogger())
	ctx := context.Background()

	require.NoError(t, statusBar.OpenLanguageSelection(ctx))
	require.NoError(t, statusBar.OpenLineEndingSelection(ctx))
	require.NoError(t, statusBar.OpenEncodingSelection(ctx))
	require.NoError(t, statusBar.OpenIndentationSelection(ctx))
	require.NoError(t, statusBar.OpenLineSelection(ctx))

	assert.Equal(t, []string{
		"status.editor.mode",
		"status.editor.eol",
		"status.editor.encoding",
		"status.editor.indentation",
		"status.editor.selection",
	}, driver.Clicks())
}

func TestStatusBarDocument_NotificationsCenterLifecycle(t *testing.T) {
	doc, driver := loadWorkbench(t)
	statusBar := NewStatusBar(driver, locators.Default(), arbor.NewLogger())
	ctx := context.Background()

	// never opened: closing is a no-op
	require.NoError(t, statusBar.CloseNotificationsCenter(ctx))
	assert.Empty(t, driver.Clicks())

	center, err := statusBar.OpenNotificationsCenter(ctx)
	require.NoError(t, err)
	assert.True(t, doc.Find(".notifications-center").HasClass("visible"))

	_, err = center.Resolve(ctx)
	require.NoError(t, err)

	_, err = statusBar.OpenNotificationsCenter(ctx)
	require.NoError(t, err)
	assert.Len(t, driver.Clicks(), 1)

	require.NoError(t, statusBar.CloseNotificationsCenter(ctx))
	require.NoError(t, statusBar.CloseNotificationsCenter(ctx))
	assert.False(t, doc.Find(".notifications-center").HasClass("visible"))
	assert.Equal(t, []string{"status.notifications", "status.notifications"}, driver.Clicks())
}

func TestStatusBarDocument_NoEditor(t *testing.T) {
	doc, driver := loadWorkbench(t)
	doc.Find(`[id^="status.editor."]`).Remove()
	table := locators.Default()
	statusBar := NewStatusBar(driver, table, arbor.NewLogger())

	err := statusBar.OpenLanguageSelection(context.Background())
	require.Error(t, err)

	var nf *models.NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, table.StatusBar.Language, nf.Locator)
	assert.Empty(t, driver.Clicks())
}

func TestStatusBarDocument_Items(t *testing.T) {
	_, driver := loadWorkbench(t)
	statusBar := NewStatusBar(driver, locators.Default(), arbor.NewLogger())
	ctx := context.Background()

	items, err := statusBar.GetItems(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 7)

	item, err := statusBar.GetItem(ctx, "No Problems")
	require.NoError(t, err)
	text, err := item.Text(ctx)
	require.NoError(t, err)
	assert.Equal(t, "0 0", text)

	_, err = statusBar.GetItem(ctx, "Live Share")
	assert.ErrorIs(t, err, models.ErrElementNotFound)
}
