package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var DefaultLevel = "warn"

const (
	LogLevel = "HMAC_CHALLENGE_LOG_LEVEL"
	LogPath  = "HMAC_CHALLENGE_LOG_FILE"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

type Config struct {
	Level      Level
	FilePath   string
	AlsoStderr bool
}

type logger struct {
	mu     sync.Mutex
	level  Level
	logger *log.Logger
	file   *os.File
}

var defaultLogger = newLogger(os.Stderr)

func newLogger(w io.Writer) *logger {
	return &logger{
		level:  parseLevel(DefaultLevel),
		logger: log.New(w, "", log.LstdFlags|log.LUTC),
	}
}

// ConfigureDefault 根据环境变量配置全局日志。
func ConfigureDefault() error {
	return defaultLogger.configure(Config{
		Level:      parseLevel(firstNonEmpty(os.Getenv(LogLevel), DefaultLevel)),
		FilePath:   os.Getenv(LogPath),
		AlsoStderr: true,
	})
}

// SetLevel 调整全局日志级别，未知取值按 info 处理。
func SetLevel(value string) {
	defaultLogger.mu.Lock()
	defaultLogger.level = parseLevel(value)
	defaultLogger.mu.Unlock()
}

func (l *logger) configure(cfg Config) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file != nil {
		l.file.Close()
		l.file = nil
	}

	var writers []io.Writer
	if cfg.FilePath != "" {
		f, err := openFile(cfg.FilePath)
		if err != nil {
			return err
		}
		l.file = f
		writers = append(writers, f)
	}
	if cfg.AlsoStderr || len(writers) == 0 {
		writers = append(writers, os.Stderr)
	}

	l.logger.SetOutput(io.MultiWriter(writers...))
	l.level = cfg.Level
	return nil
}

func openFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
}

func parseLevel(value string) Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

func (l *logger) logf(level Level, format string, args ...any) {
	l.mu.Lock()
	enabled := level >= l.level
	logger := l.logger
	l.mu.Unlock()
	if !enabled || logger == nil {
		return
	}
	logger.Printf("[%s] %s", level.String(), fmt.Sprintf(format, args...))
}

// Debugf 输出调试日志。
func Debugf(format string, args ...any) {
	defaultLogger.logf(LevelDebug, format, args...)
}

// Infof 输出信息级别日志。
func Infof(format string, args ...any) {
	defaultLogger.logf(LevelInfo, format, args...)
}

// Warnf 输出警告级别日志。
func Warnf(format string, args ...any) {
	defaultLogger.logf(LevelWarn, format, args...)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}
