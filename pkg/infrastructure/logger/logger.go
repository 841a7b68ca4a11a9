package logger

import (
	"context"
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config describes how the global logger is built
type Config struct {
	Level  string
	AsJSON bool
	// File enables an additional rotating JSON sink when non-empty
	File string
}

type ctxKey struct{}

var (
	mu     sync.RWMutex
	global = zap.NewNop()
)

// Init replaces the global logger. Until it is called every log call is a
// no-op.
func Init(cfg Config) error {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return fmt.Errorf("logger.Init: %w", err)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	if cfg.AsJSON {
		encoder = zapcore.NewJSONEncoder(encCfg)
	} else {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encCfg)
	}

	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), level),
	}
	if cfg.File != "" {
		rotating := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    64,
			MaxBackups: 7,
			MaxAge:     7,
		}
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(rotating),
			level,
		))
	}

	SetLogger(zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddCallerSkip(2)))
	return nil
}

// SetLogger swaps the global logger, mainly for tests
func SetLogger(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	global = l
}

// L returns the global logger
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// Sync flushes buffered entries
func Sync() error {
	return L().Sync()
}

// WithFields returns a context carrying fields that every ctx-aware log
// call appends
func WithFields(ctx context.Context, fields ...Field) context.Context {
	prev, _ := ctx.Value(ctxKey{}).([]Field)
	merged := make([]Field, 0, len(prev)+len(fields))
	merged = append(merged, prev...)
	merged = append(merged, fields...)
	return context.WithValue(ctx, ctxKey{}, merged)
}

// Logger is a field-scoped logger with the same ctx-first API as the package
type Logger struct {
	fields []Field
}

// With returns a logger that adds fields to every entry
func With(fields ...Field) *Logger {
	return &Logger{fields: append([]Field(nil), fields...)}
}

func (l *Logger) Debug(ctx context.Context, msg string, fields ...Field) {
	log(ctx, zapcore.DebugLevel, msg, l.merge(fields)...)
}

func (l *Logger) Info(ctx context.Context, msg string, fields ...Field) {
	log(ctx, zapcore.InfoLevel, msg, l.merge(fields)...)
}

func (l *Logger) Warn(ctx context.Context, msg string, fields ...Field) {
	log(ctx, zapcore.WarnLevel, msg, l.merge(fields)...)
}

func (l *Logger) Error(ctx context.Context, msg string, fields ...Field) {
	log(ctx, zapcore.ErrorLevel, msg, l.merge(fields)...)
}

func (l *Logger) merge(fields []Field) []Field {
	out := make([]Field, 0, len(l.fields)+len(fields))
	out = append(out, l.fields...)
	return append(out, fields...)
}

func Debug(ctx context.Context, msg string, fields ...Field) {
	log(ctx, zapcore.DebugLevel, msg, fields...)
}

func Info(ctx context.Context, msg string, fields ...Field) {
	log(ctx, zapcore.InfoLevel, msg, fields...)
}

func Warn(ctx context.Context, msg string, fields ...Field) {
	log(ctx, zapcore.WarnLevel, msg, fields...)
}

func Error(ctx context.Context, msg string, fields ...Field) {
	log(ctx, zapcore.ErrorLevel, msg, fields...)
}

func log(ctx context.Context, level zapcore.Level, msg string, fields ...Field) {
	if ctxFields, ok := ctx.Value(ctxKey{}).([]Field); ok {
		fields = append(ctxFields[:len(ctxFields):len(ctxFields)], fields...)
	}
	if ce := L().Check(level, msg); ce != nil {
		ce.Write(fields...)
	}
}
