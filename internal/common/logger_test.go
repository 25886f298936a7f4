package common

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor/models"
)

func TestInitLogger_ReplacesGlobalLogger(t *testing.T) {
	config := NewDefaultConfig()
	config.Logging.Level = "debug"

	logger := InitLogger(config)

	assert.NotNil(t, logger)
	assert.Equal(t, logger, GetLogger())
}

func TestInitLogger_FileOutputUsesConfiguredPath(t *testing.T) {
	config := NewDefaultConfig()
	config.Logging.Output = []string{"file"}
	config.Logging.File = filepath.Join(t.TempDir(), "nested", "statusbar.log")

	logger := InitLogger(config)

	info, err := os.Stat(filepath.Dir(config.Logging.File))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, config.Logging.File, logger.GetLogFilePath())
}

func TestWriterConfig(t *testing.T) {
	tests := []struct {
		name       string
		logging    LoggingConfig
		wantFormat string
	}{
		{"default time format", LoggingConfig{}, "15:04:05"},
		{"configured time format", LoggingConfig{TimeFormat: "2006-01-02 15:04:05"}, "2006-01-02 15:04:05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := writerConfig(models.LogWriterTypeConsole, tt.logging)
			assert.Equal(t, models.LogWriterTypeConsole, cfg.Type)
			assert.Equal(t, tt.wantFormat, cfg.TimeFormat)
		})
	}
}
