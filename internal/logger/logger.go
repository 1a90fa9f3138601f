// Package logger provides a thread-safe, structured JSON logging solution.
// A TUI owns stdout, so all logging goes to a file in the data directory.
package logger

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// LogLevel represents the severity level of a log entry.
type LogLevel string

const (
	Info  LogLevel = "INFO"
	Error LogLevel = "ERROR"
	Warn  LogLevel = "WARN"
	Debug LogLevel = "DEBUG"
)

// LogEntry is a single log line. Data carries optional structured context.
type LogEntry struct {
	Timestamp time.Time       `json:"timestamp"`
	Level     LogLevel        `json:"level"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data,omitempty"`
}

// Logger writes JSON log entries to a file. It is safe for concurrent use.
type Logger struct {
	file    *os.File
	encoder *json.Encoder
	mu      sync.Mutex
}

var (
	singleton *Logger
	once      sync.Once
)

// NewLogger creates a logger that appends to the file at logPath, creating
// the parent directory if needed.
func NewLogger(logPath string) (*Logger, error) {
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return &Logger{
		file:    file,
		encoder: json.NewEncoder(file),
	}, nil
}

// GetLogger returns the process-wide logger, creating it on first call.
// Later calls ignore logPath and return the same instance.
func GetLogger(logPath string) (*Logger, error) {
	var err error
	once.Do(func() {
		singleton, err = NewLogger(logPath)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return singleton, nil
}

// Close closes the underlying log file.
func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

func (l *Logger) log(level LogLevel, message string, data interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry := LogEntry{
		Timestamp: time.Now().UTC(),
		Level:     level,
		Message:   message,
	}

	if data != nil {
		if jsonData, err := json.Marshal(data); err == nil {
			entry.Data = json.RawMessage(jsonData)
		}
		// On marshal failure the message still goes out, just without data.
	}

	if l.encoder != nil {
		_ = l.encoder.Encode(entry)
	}
}

// Info logs an informational message with optional structured data.
func (l *Logger) Info(message string, data interface{}) {
	l.log(Info, message, data)
}

// Error logs an error condition. The error text is merged into the data map
// under the "error" key.
func (l *Logger) Error(message string, err error, data interface{}) {
	if err == nil {
		l.log(Warn, message+" (no error provided)", data)
		return
	}

	if data == nil {
		data = make(map[string]interface{})
	}
	if dataMap, ok := data.(map[string]interface{}); ok {
		if _, exists := dataMap["error"]; !exists {
			dataMap["error"] = err.Error()
		}
	}

	l.log(Error, message, data)
}

// Warn logs a warning message.
func (l *Logger) Warn(message string, data interface{}) {
	l.log(Warn, message, data)
}

// Debug logs a debug message.
func (l *Logger) Debug(message string, data interface{}) {
	l.log(Debug, message, data)
}
