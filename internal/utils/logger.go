package utils

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

// RunLogger writes progress of a sitemap run to the console and, when a log
// directory is configured, to a timestamped file as well.
type RunLogger struct {
	file    *os.File
	console *log.Logger
	logger  *log.Logger
}

// NewRunLogger logs to out only. Use NewFileRunLogger to keep a copy on disk.
func NewRunLogger(out io.Writer) *RunLogger {
	return &RunLogger{
		console: log.New(out, "", 0),
		logger:  log.New(out, "", log.Ldate|log.Ltime),
	}
}

func NewFileRunLogger(out io.Writer, logsDir string) (*RunLogger, error) {
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create logs directory: %w", err)
	}

	timestamp := time.Now().Format("2006-01-02_15-04-05")
	logPath := filepath.Join(logsDir, fmt.Sprintf("sitemap_%s.log", timestamp))

	file, err := os.Create(logPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create log file: %w", err)
	}

	multiWrite := io.MultiWriter(out, file)
	return &RunLogger{
		file:    file,
		console: log.New(multiWrite, "", 0),
		logger:  log.New(multiWrite, "", log.Ldate|log.Ltime|log.Lmicroseconds),
	}, nil
}

// Progress prints a bare line, without timestamp or level.
func (rl *RunLogger) Progress(format string, v ...interface{}) {
	rl.console.Printf(format, v...)
}

func (rl *RunLogger) LogInfo(format string, v ...interface{}) {
	rl.log("INFO", format, v...)
}

func (rl *RunLogger) LogError(format string, v ...interface{}) {
	rl.log("ERROR", format, v...)
}

func (rl *RunLogger) LogDebug(format string, v ...interface{}) {
	rl.log("DEBUG", format, v...)
}

func (rl *RunLogger) log(level string, format string, v ...interface{}) {
	message := fmt.Sprintf(format, v...)
	rl.logger.Printf("[%s] %s", level, message)
}

// Path returns the log file path, or "" when logging to the console only.
func (rl *RunLogger) Path() string {
	if rl.file == nil {
		return ""
	}
	return rl.file.Name()
}

func (rl *RunLogger) Close() error {
	if rl.file == nil {
		return nil
	}
	return rl.file.Close()
}
