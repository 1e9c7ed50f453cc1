// SPDX-License-Identifier: MIT

// Package logging builds the zap loggers used by the command line tools.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level is the minimum severity written by a logger.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = map[string]Level{
	"DEBUG": LevelDebug,
	"INFO":  LevelInfo,
	"WARN":  LevelWarn,
	"ERROR": LevelError,
}

// ParseLevel maps "debug", "info", "warn" or "error" (any case) to a Level.
func ParseLevel(s string) (Level, error) {
	l, ok := levelNames[strings.ToUpper(strings.TrimSpace(s))]
	if !ok {
		return LevelInfo, errors.Errorf("unknown log level %q", s)
	}

	return l, nil
}

func (l Level) zapLevel() zapcore.Level {
	switch l {
	case LevelDebug:
		return zap.DebugLevel
	case LevelInfo:
		return zap.InfoLevel
	case LevelWarn:
		return zap.WarnLevel
	case LevelError:
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}

// Config describes where and how much to log.
type Config struct {
	Level Level

	// Console receives log lines when non-nil (stderr for the CLI).
	Console io.Writer

	// FilePath enables a rotating file sink named FilePath.%Y%m%d%H.
	FilePath       string
	RotationTime   int // hours between rotations
	RotationSize   int // megabytes before an early rotation
	RotationMaxAge int // days to keep rotated files

	ShowLine bool
}

// DefaultConfig logs at info level to stderr with no file sink.
func DefaultConfig() Config {
	return Config{
		Level:          LevelInfo,
		Console:        os.Stderr,
		RotationTime:   24,
		RotationSize:   30,
		RotationMaxAge: 7,
	}
}

// New builds a named SugaredLogger from lc. With neither a console nor a
// file sink it returns a no-op logger.
func New(name string, lc Config) (*zap.SugaredLogger, error) {
	minLevel := lc.Level.zapLevel()
	priority := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl >= minLevel
	})

	var syncers []zapcore.WriteSyncer
	if lc.Console != nil {
		syncers = append(syncers, zapcore.AddSync(lc.Console))
	}
	if lc.FilePath != "" {
		w, err := rotatelogs.New(
			lc.FilePath+".%Y%m%d%H",
			rotatelogs.WithRotationTime(time.Duration(lc.RotationTime)*time.Hour),
			rotatelogs.WithRotationSize(int64(lc.RotationSize)*1024*1024),
			rotatelogs.WithMaxAge(time.Duration(lc.RotationMaxAge)*24*time.Hour),
		)
		if err != nil {
			return nil, errors.Wrap(err, "new rotation log")
		}
		syncers = append(syncers, zapcore.AddSync(w))
	}
	if len(syncers) == 0 {
		return zap.NewNop().Sugar(), nil
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig()), zapcore.NewMultiWriteSyncer(syncers...), priority)
	logger := zap.New(core).Named(name)
	if lc.ShowLine {
		logger = logger.WithOptions(zap.AddCaller())
	}

	return logger.Sugar(), nil
}

func encoderConfig() zapcore.EncoderConfig {
	levelEncoder := func(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString("[" + level.CapitalString() + "]")
	}
	timeEncoder := func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.Format("2006-01-02 15:04:05.000"))
	}

	return zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "line",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    levelEncoder,
		EncodeTime:     timeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}
}
