package common

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/arbor/models"
)

const defaultTimeFormat = "15:04:05"

var (
	globalLogger arbor.ILogger
	loggerMutex  sync.RWMutex
)

// GetLogger returns the global logger, creating a console logger on first use
func GetLogger() arbor.ILogger {
	loggerMutex.RLock()
	logger := globalLogger
	loggerMutex.RUnlock()
	if logger != nil {
		return logger
	}

	loggerMutex.Lock()
	defer loggerMutex.Unlock()
	if globalLogger == nil {
		globalLogger = arbor.NewLogger().WithConsoleWriter(writerConfig(models.LogWriterTypeConsole, LoggingConfig{}))
	}
	return globalLogger
}

// InitLogger builds the logger described by config.Logging and stores it as the global logger.
// A log file directory that cannot be created disables the file output with a warning.
func InitLogger(config *Config) arbor.ILogger {
	loggerMutex.Lock()
	defer loggerMutex.Unlock()

	logging := config.Logging
	logger := arbor.NewLogger()

	if logging.FileOutput() {
		if err := os.MkdirAll(filepath.Dir(logging.File), 0755); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to create log directory for %s: %v\n", logging.File, err)
		} else {
			fileConfig := writerConfig(models.LogWriterTypeFile, logging)
			fileConfig.FileName = logging.File
			fileConfig.MaxSize = 10 * 1024 * 1024 // 10 MB
			fileConfig.MaxBackups = 3
			fileConfig.OutputType = models.OutputFormat(logging.Format)
			logger = logger.WithFileWriter(fileConfig)
		}
	}

	if logging.ConsoleOutput() {
		logger = logger.WithConsoleWriter(writerConfig(models.LogWriterTypeConsole, logging))
	}

	logger = logger.WithLevelFromString(logging.Level)

	globalLogger = logger
	return logger
}

// writerConfig maps the logging section onto an arbor writer configuration
func writerConfig(writerType models.LogWriterType, logging LoggingConfig) models.WriterConfiguration {
	timeFormat := logging.TimeFormat
	if timeFormat == "" {
		timeFormat = defaultTimeFormat
	}
	return models.WriterConfiguration{
		Type:       writerType,
		TimeFormat: timeFormat,
	}
}
