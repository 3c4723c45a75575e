package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Level represents log severity
type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
)

// String returns the string representation of the log level
func (l Level) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func (l Level) zerolog() zerolog.Level {
	switch l {
	case DEBUG:
		return zerolog.DebugLevel
	case WARN:
		return zerolog.WarnLevel
	case ERROR:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// ParseLevel converts a string to a Level
func ParseLevel(s string) Level {
	switch s {
	case "DEBUG", "debug":
		return DEBUG
	case "INFO", "info":
		return INFO
	case "WARN", "warn":
		return WARN
	case "ERROR", "error":
		return ERROR
	default:
		return INFO
	}
}

// Field represents a key-value pair for structured logging
type Field struct {
	Key   string
	Value interface{}
}

// F is a shorthand for creating a Field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Config holds logger configuration
type Config struct {
	Level      Level  // Minimum log level
	FilePath   string // Path to log file, empty disables file output
	MaxSize    int64  // Max size in bytes before rotation (default: 10MB)
	MaxAge     int    // Max age in days (default: 7)
	MaxBackups int    // Max number of backup files (default: 5)
	Console    bool   // Enable console logging
	Writer     io.Writer
}

// DefaultConfig returns default logger configuration
func DefaultConfig() Config {
	home, _ := os.UserHomeDir()
	logPath := filepath.Join(home, ".shootcal", "logs", "shootcal.log")

	return Config{
		Level:      INFO,
		FilePath:   logPath,
		MaxSize:    10 * 1024 * 1024, // 10MB
		MaxAge:     7,
		MaxBackups: 5,
		Console:    false, // Disabled by default to not interfere with the watch view
	}
}

// sink is shared by a logger and every logger derived from it via WithFields
type sink struct {
	mu     sync.Mutex
	config Config
	file   *os.File
	zl     zerolog.Logger
}

// Logger is the main logger instance
type Logger struct {
	sink   *sink
	fields []Field
}

var (
	globalLogger *Logger
	once         sync.Once
)

// Init initializes the global logger
func Init(config Config) error {
	var err error
	once.Do(func() {
		globalLogger, err = New(config)
	})
	return err
}

// New creates a new logger instance
func New(config Config) (*Logger, error) {
	s := &sink{config: config}

	if config.FilePath != "" {
		logDir := filepath.Dir(config.FilePath)
		if err := os.MkdirAll(logDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}

		file, err := os.OpenFile(config.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		s.file = file

		if err := s.rotateIfNeeded(); err != nil {
			return nil, err
		}
	}
	s.build()

	return &Logger{sink: s}, nil
}

// build assembles the zerolog logger over the current outputs
func (s *sink) build() {
	var writers []io.Writer
	if s.file != nil {
		writers = append(writers, zerolog.SyncWriter(s.file))
	}
	if s.config.Writer != nil {
		writers = append(writers, s.config.Writer)
	}
	if s.config.Console {
		writers = append(writers, zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})
	}

	if len(writers) == 0 {
		s.zl = zerolog.Nop()
		return
	}
	s.zl = zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(s.config.Level.zerolog()).
		With().Timestamp().Logger()
}

// rotateIfNeeded checks if log rotation is needed and performs it.
// Callers hold s.mu or own s exclusively.
func (s *sink) rotateIfNeeded() error {
	if s.file == nil || s.config.MaxSize <= 0 {
		return nil
	}

	info, err := s.file.Stat()
	if err != nil {
		return err
	}

	if info.Size() >= s.config.MaxSize {
		return s.rotate()
	}

	if s.config.MaxAge > 0 && info.Size() > 0 &&
		time.Since(info.ModTime()) > time.Duration(s.config.MaxAge)*24*time.Hour {
		return s.rotate()
	}

	return nil
}

// rotate shifts backups and reopens the log file
func (s *sink) rotate() error {
	if s.file != nil {
		s.file.Close()
	}

	for i := s.config.MaxBackups - 1; i >= 1; i-- {
		oldPath := fmt.Sprintf("%s.%d", s.config.FilePath, i)
		newPath := fmt.Sprintf("%s.%d", s.config.FilePath, i+1)
		os.Rename(oldPath, newPath)
	}

	if _, err := os.Stat(s.config.FilePath); err == nil {
		backupPath := fmt.Sprintf("%s.1", s.config.FilePath)
		if err := os.Rename(s.config.FilePath, backupPath); err != nil {
			return err
		}
	}

	file, err := os.OpenFile(s.config.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	s.file = file
	s.build()

	return nil
}

// log writes a log entry
func (l *Logger) log(level Level, msg string, fields []Field) {
	s := l.sink
	if level < s.config.Level {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_ = s.rotateIfNeeded()

	_, file, line, ok := runtime.Caller(2)
	caller := "???"
	if ok {
		caller = fmt.Sprintf("%s:%d", filepath.Base(file), line)
	}

	ev := s.zl.WithLevel(level.zerolog())
	if ev == nil {
		return
	}
	ev = ev.Str("caller", caller)
	for _, f := range l.fields {
		ev = withField(ev, f)
	}
	for _, f := range fields {
		ev = withField(ev, f)
	}
	ev.Msg(msg)
}

func withField(ev *zerolog.Event, f Field) *zerolog.Event {
	switch v := f.Value.(type) {
	case error:
		return ev.AnErr(f.Key, v)
	case string:
		return ev.Str(f.Key, v)
	case time.Time:
		return ev.Time(f.Key, v)
	case fmt.Stringer:
		return ev.Stringer(f.Key, v)
	default:
		return ev.Interface(f.Key, v)
	}
}

// WithFields creates a new logger with preset fields
func (l *Logger) WithFields(fields ...Field) *Logger {
	merged := make([]Field, 0, len(l.fields)+len(fields))
	merged = append(merged, l.fields...)
	merged = append(merged, fields...)
	return &Logger{sink: l.sink, fields: merged}
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields ...Field) {
	l.log(DEBUG, msg, fields)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields ...Field) {
	l.log(INFO, msg, fields)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields ...Field) {
	l.log(WARN, msg, fields)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields ...Field) {
	l.log(ERROR, msg, fields)
}

// Close closes the logger's file output
func (l *Logger) Close() error {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()

	if l.sink.file != nil {
		err := l.sink.file.Close()
		l.sink.file = nil
		l.sink.build()
		return err
	}
	return nil
}

// Global logger functions

// Debug logs a debug message using the global logger
func Debug(msg string, fields ...Field) {
	if globalLogger != nil {
		globalLogger.log(DEBUG, msg, fields)
	}
}

// Info logs an info message using the global logger
func Info(msg string, fields ...Field) {
	if globalLogger != nil {
		globalLogger.log(INFO, msg, fields)
	}
}

// Warn logs a warning message using the global logger
func Warn(msg string, fields ...Field) {
	if globalLogger != nil {
		globalLogger.log(WARN, msg, fields)
	}
}

// Error logs an error message using the global logger
func Error(msg string, fields ...Field) {
	if globalLogger != nil {
		globalLogger.log(ERROR, msg, fields)
	}
}

// WithFields creates a new logger with preset fields using the global logger
func WithFields(fields ...Field) *Logger {
	if globalLogger != nil {
		return globalLogger.WithFields(fields...)
	}
	return nil
}

// Close closes the global logger
func Close() error {
	if globalLogger != nil {
		return globalLogger.Close()
	}
	return nil
}

// GetConfig returns the current logger configuration
func GetConfig() Config {
	if globalLogger != nil {
		return globalLogger.sink.config
	}
	return DefaultConfig()
}
