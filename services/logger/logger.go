package logger

import "log"

// Level là ngưỡng log tối thiểu sẽ được ghi ra
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	ErrorLevel
)

// Logger là interface log dùng chung cho cron jobs và các tiến trình nền
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// DefaultLogger ghi log qua package log chuẩn kèm tag mức độ
type DefaultLogger struct {
	level  Level
	prefix string
}

func NewDefaultLogger(level Level) *DefaultLogger {
	return &DefaultLogger{level: level}
}

// WithPrefix trả về logger mới gắn thêm prefix trước mỗi dòng log
func (l *DefaultLogger) WithPrefix(prefix string) *DefaultLogger {
	return &DefaultLogger{level: l.level, prefix: prefix}
}

func (l *DefaultLogger) write(tag, format string, v ...interface{}) {
	log.Printf(tag+" "+l.prefix+format, v...)
}

func (l *DefaultLogger) Debug(format string, v ...interface{}) {
	if l.level <= DebugLevel {
		l.write("[DEBUG]", format, v...)
	}
}

func (l *DefaultLogger) Info(format string, v ...interface{}) {
	if l.level <= InfoLevel {
		l.write("[INFO]", format, v...)
	}
}

func (l *DefaultLogger) Error(format string, v ...interface{}) {
	if l.level <= ErrorLevel {
		l.write("[ERROR]", format, v...)
	}
}
