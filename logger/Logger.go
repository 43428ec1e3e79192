package logger

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

var Log = New()

// Logger writes JSON log lines through logrus. Until Init is called it writes to stderr.
type Logger struct {
	base *logrus.Logger
}

func New() *Logger {
	base := logrus.New()
	base.SetFormatter(&logrus.JSONFormatter{})
	return &Logger{base: base}
}

type properties struct {
	logFilename string
	maxSize     int
	maxBackups  int
	maxAge      int
	compress    bool
	level       string
}

func readLoggerProperties(dir string) (properties, error) {
	v := viper.New()
	v.SetConfigName("logger")
	v.SetConfigType("properties")
	v.AddConfigPath(dir)

	v.SetDefault("logFilename", "pong.log")
	v.SetDefault("maxSize", 10)
	v.SetDefault("maxBackups", 3)
	v.SetDefault("maxAge", 28)
	v.SetDefault("compress", false)
	v.SetDefault("level", "Info")

	if err := v.ReadInConfig(); err != nil {
		return properties{}, fmt.Errorf("read logger properties: %w", err)
	}

	return properties{
		logFilename: cast.ToString(v.Get("logFilename")),
		maxSize:     cast.ToInt(v.Get("maxSize")),
		maxBackups:  cast.ToInt(v.Get("maxBackups")),
		maxAge:      cast.ToInt(v.Get("maxAge")),
		compress:    cast.ToBool(v.Get("compress")),
		level:       cast.ToString(v.Get("level")),
	}, nil
}

// Init points the logger at the rotating file described by <dir>/logger.properties.
func (l *Logger) Init(dir string) error {
	p, err := readLoggerProperties(dir)
	if err != nil {
		return err
	}

	l.SetOutput(&lumberjack.Logger{
		Filename:   p.logFilename,
		MaxSize:    p.maxSize,
		MaxBackups: p.maxBackups,
		MaxAge:     p.maxAge,
		Compress:   p.compress,
	})
	l.base.SetLevel(parseLevel(p.level))
	return nil
}

func parseLevel(level string) logrus.Level {
	switch level {
	case "Trace":
		return logrus.TraceLevel
	case "Debug":
		return logrus.DebugLevel
	case "Info":
		return logrus.InfoLevel
	case "Warn":
		return logrus.WarnLevel
	case "Error":
		return logrus.ErrorLevel
	case "Fatal":
		return logrus.FatalLevel
	default:
		return logrus.DebugLevel
	}
}

func (l *Logger) SetOutput(w io.Writer) {
	l.base.SetOutput(w)
}

func (l *Logger) SetLevel(level string) {
	l.base.SetLevel(parseLevel(level))
}

// IsTrace guards payloads that are expensive to build every frame.
func (l *Logger) IsTrace() bool {
	return l.base.IsLevelEnabled(logrus.TraceLevel)
}

func (l *Logger) Trace(message string) {
	l.base.Trace(message)
}

func (l *Logger) Debug(message string) {
	l.base.Debug(message)
}

func (l *Logger) Info(message string) {
	l.base.Info(message)
}

func (l *Logger) Warn(message string) {
	l.base.Warn(message)
}

func (l *Logger) Error(message string) {
	l.base.Error(message)
}

func (l *Logger) Fatal(message string) {
	l.base.Fatal(message)
}
