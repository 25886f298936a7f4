package locators

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ternarybob/pageobjects/internal/models"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	table := Default()

	assert.Equal(t, models.ByClassName("monaco-workbench"), table.Workbench.Constructor)
	assert.Equal(t, models.ByID("workbench.parts.statusbar"), table.StatusBar.Constructor)
	assert.Equal(t, models.ByID("status.editor.encoding"), table.StatusBar.Encoding)
	assert.Equal(t, models.ByID("status.notifications"), table.StatusBar.Bell)
	assert.Equal(t, "aria-label", table.StatusBar.ItemTitle)
	assert.NoError(t, table.Validate())
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	table, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), table)
}

func TestLoad_TOMLOverridesDefaults(t *testing.T) {
	path := writeFile(t, "locators.toml", `
[status_bar]
encoding = { by = "css", value = "#encoding-indicator" }
item_title = "title"
`)

	table, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, models.ByCSS("#encoding-indicator"), table.StatusBar.Encoding)
	assert.Equal(t, "title", table.StatusBar.ItemTitle)
	// untouched entries keep their defaults
	assert.Equal(t, models.ByID("status.editor.mode"), table.StatusBar.Language)
	assert.Equal(t, models.ByClassName("monaco-workbench"), table.Workbench.Constructor)
}

func TestLoad_YAMLOverridesDefaults(t *testing.T) {
	path := writeFile(t, "locators.yaml", `
workbench:
  constructor:
    by: css
    value: div.workbench-root
status_bar:
  bell:
    by: xpath
    value: '//a[@aria-label="Notifications"]'
`)

	table, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, models.ByCSS("div.workbench-root"), table.Workbench.Constructor)
	assert.Equal(t, models.ByXPath(`//a[@aria-label="Notifications"]`), table.StatusBar.Bell)
	assert.Equal(t, models.ByID("status.editor.eol"), table.StatusBar.Lines)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantErr string
	}{
		{
			name:    "unknown strategy",
			file:    "bad.toml",
			content: "[status_bar]\nlanguage = { by = \"link_text\", value = \"Plain Text\" }\n",
			wantErr: "invalid locator file",
		},
		{
			name:    "empty value",
			file:    "bad.yml",
			content: "status_bar:\n  indent:\n    by: id\n    value: \"\"\n",
			wantErr: "invalid locator file",
		},
		{
			name:    "malformed toml",
			file:    "broken.toml",
			content: "[status_bar\n",
			wantErr: "failed to parse locator file",
		},
		{
			name:    "unsupported extension",
			file:    "locators.json",
			content: "{}",
			wantErr: "unsupported locator file extension",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)

			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
