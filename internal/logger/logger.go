package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/Fivegen-LLC/arin-enricher/internal/constants"
)

// SetLogLevel sets the global zerolog level by name (trace, debug, info...).
func SetLogLevel(level string) (err error) {
	logLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("SetLogLevel: %w", err)
	}

	zerolog.SetGlobalLevel(logLevel)
	return nil
}

// SetOutput replaces the global logger output.
func SetOutput(w io.Writer) {
	log.Logger = log.Output(w)
}

// SetupRollingLogFile creates the log file (and its dir) if missing and returns a rotating writer.
func SetupRollingLogFile(filename string) (logWriter *lumberjack.Logger, err error) {
	// create log dir if not exists
	if err = os.MkdirAll(filepath.Dir(filename), constants.FilePerm); err != nil {
		return logWriter, fmt.Errorf("SetupRollingLogFile: %w", err)
	}

	if _, statErr := os.Stat(filename); statErr != nil {
		if !os.IsNotExist(statErr) {
			return logWriter, fmt.Errorf("SetupRollingLogFile: %w", statErr)
		}

		logFile, err := os.OpenFile(filename, os.O_CREATE, constants.LogFilePerm)
		if err != nil {
			return logWriter, fmt.Errorf("SetupRollingLogFile: %w", err)
		}
		defer logFile.Close()
	}

	return &lumberjack.Logger{
		Filename:   filename,
		MaxSize:    15,   // megabytes per log file
		MaxAge:     30,   // days to retain old log files
		MaxBackups: 10,   // retained log files
		Compress:   true, // gzip rotated files
	}, nil
}
