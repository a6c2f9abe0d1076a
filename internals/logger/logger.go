package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARNING
	ERROR
)

var levelNames = map[LogLevel]string{
	DEBUG:   "DEBUG",
	INFO:    "INFO",
	WARNING: "WARNING",
	ERROR:   "ERROR",
}

type Logger struct {
	level LogLevel
	out   *log.Logger
	mu    sync.RWMutex
}

var instance *Logger
var once sync.Once

func GetInstance() *Logger {
	once.Do(func() {
		instance = &Logger{
			level: INFO,
			out:   log.New(os.Stderr, "", log.LstdFlags|log.Lshortfile),
		}
	})
	return instance
}

// Initialize points the logger (and the standard log package) at stdout plus
// a size-rotated file under logDir.
func (l *Logger) Initialize(logDir string, level LogLevel) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.level = level

	if err := os.MkdirAll(logDir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	fileWriter := &lumberjack.Logger{
		Filename:   filepath.Join(logDir, "app.log"),
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     28,
		Compress:   true,
	}

	multiWriter := io.MultiWriter(os.Stdout, fileWriter)
	l.out = log.New(multiWriter, "", log.LstdFlags|log.Lshortfile)

	// handlers log with the std package; route it through the same writers
	log.SetOutput(multiWriter)

	return nil
}

func (l *Logger) SetLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

func (l *Logger) logf(level LogLevel, format string, args ...interface{}) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if level < l.level {
		return
	}
	l.out.Printf("["+levelNames[level]+"] "+format, args...)
}

func (l *Logger) Debugf(format string, args ...interface{}) {
	l.logf(DEBUG, format, args...)
}

func (l *Logger) Infof(format string, args ...interface{}) {
	l.logf(INFO, format, args...)
}

func (l *Logger) Warnf(format string, args ...interface{}) {
	l.logf(WARNING, format, args...)
}

func (l *Logger) Errorf(format string, args ...interface{}) {
	l.logf(ERROR, format, args...)
}
