package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/osse101/lootforge/internal/config"
	"github.com/osse101/lootforge/internal/logger"
)

// SetupLogger initializes the application logger. Output goes to stdout,
// and also to a timestamped file under cfg.LogDir when one is configured.
// Returns the log file handle (caller must close, nil without LogDir).
func SetupLogger(cfg *config.Config) (*os.File, error) {
	var (
		w       io.Writer = os.Stdout
		logFile *os.File
	)

	if cfg.LogDir != "" {
		if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
			return nil, fmt.Errorf("%s: %w", LogMsgFailedCreateLogsDir, err)
		}

		cleanupLogs(cfg.LogDir)

		timestamp := time.Now().Format(LogFileTimestampFormat)
		logFileName := filepath.Join(cfg.LogDir, fmt.Sprintf(LogFileNamePattern, timestamp))

		f, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", LogMsgFailedOpenLogFile, err)
		}
		logFile = f
		w = io.MultiWriter(os.Stdout, logFile)
	}

	// Source locations only in development
	addSource := strings.EqualFold(cfg.Environment, "dev") || strings.EqualFold(cfg.Environment, "development")

	logger.InitLoggerWithWriter(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		addSource,
	), w)

	slog.Info(LogMsgLoggingInitialized, "level", cfg.LogLevel, "format", cfg.LogFormat)
	slog.Info(LogMsgStartingService,
		"environment", cfg.Environment,
		"version", cfg.Version)

	slog.Debug(LogMsgConfigurationLoaded,
		"port", cfg.Port,
		"inventory_capacity", cfg.InventoryCapacity,
		"catalog_path", cfg.CatalogPath,
		"database", cfg.UsesDatabase(),
		"autosave_interval", cfg.AutosaveInterval)

	for _, warning := range cfg.Warnings() {
		slog.Warn(LogMsgConfigWarning, "detail", warning)
	}

	return logFile, nil
}

// cleanupLogs removes old log files, keeping only the most recent ones.
// Timestamped names sort chronologically.
func cleanupLogs(logDir string) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	var logFiles []os.DirEntry
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), LogFileExtension) {
			logFiles = append(logFiles, entry)
		}
	}

	if len(logFiles) >= LogFileRetentionLimit {
		toDelete := len(logFiles) - LogFileRetentionCount
		for i := 0; i < toDelete; i++ {
			if err := os.Remove(filepath.Join(logDir, logFiles[i].Name())); err != nil {
				slog.Warn(LogMsgFailedDeleteOldLog, "file", logFiles[i].Name(), "error", err)
			}
		}
	}
}
