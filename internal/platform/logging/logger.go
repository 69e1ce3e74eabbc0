// Package logging is the structured logger shared by every layer. It wraps
// zap behind a key/value API so call sites read like
// logger.Info("team created", "team_id", id).
package logging

import (
	"io"
	"os"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Level = zapcore.Level

const (
	LevelDebug = zapcore.DebugLevel
	LevelInfo  = zapcore.InfoLevel
	LevelWarn  = zapcore.WarnLevel
	LevelError = zapcore.ErrorLevel
)

// Repeated identical lines beyond sampleFirst per sampleTick are thinned to
// one in sampleThereafter. A failing resolver on a wide list otherwise logs
// once per row.
const (
	sampleTick       = time.Second
	sampleFirst      = 100
	sampleThereafter = 20
)

type Options struct {
	Level Level
	// Output defaults to stdout.
	Output io.Writer
	// Fields are key/value pairs attached to every line.
	Fields []any
	// DisableSampling keeps every line. Tests use it.
	DisableSampling bool
}

type Logger struct {
	zap    *zap.Logger
	synced atomic.Bool
}

var defaultLogger atomic.Pointer[Logger]

func init() {
	defaultLogger.Store(NewNop())
}

// New builds a JSON logger.
func New(opts Options) *Logger {
	var sink zapcore.WriteSyncer = zapcore.Lock(os.Stdout)
	if opts.Output != nil {
		sink = zapcore.AddSync(opts.Output)
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "time"
	encoderCfg.EncodeTime = zapcore.RFC3339NanoTimeEncoder
	encoderCfg.EncodeDuration = zapcore.StringDurationEncoder
	encoderCfg.FunctionKey = zapcore.OmitKey

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), sink, opts.Level)
	if !opts.DisableSampling {
		core = zapcore.NewSamplerWithOptions(core, sampleTick, sampleFirst, sampleThereafter)
	}

	// Two frames sit between the caller and zap: the level method and log.
	z := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(2), zap.AddStacktrace(zapcore.ErrorLevel))
	return &Logger{zap: z.With(zapFields(opts.Fields)...)}
}

func NewNop() *Logger {
	return &Logger{zap: zap.NewNop()}
}

func Default() *Logger {
	if logger := defaultLogger.Load(); logger != nil {
		return logger
	}
	return NewNop()
}

func SetDefault(logger *Logger) {
	if logger == nil {
		logger = NewNop()
	}
	defaultLogger.Store(logger)
}

// Sync flushes buffered lines once. Later calls are no-ops.
func (l *Logger) Sync() error {
	if l == nil || l.zap == nil {
		return nil
	}
	if l.synced.CompareAndSwap(false, true) {
		return l.zap.Sync()
	}
	return nil
}

func (l *Logger) With(args ...any) *Logger {
	if l == nil {
		return NewNop()
	}
	return &Logger{zap: l.zap.With(zapFields(args)...)}
}

func (l *Logger) Debug(msg string, args ...any) { l.log(nil, zap.DebugLevel, msg, args) }
func (l *Logger) Info(msg string, args ...any)  { l.log(nil, zap.InfoLevel, msg, args) }
func (l *Logger) Warn(msg string, args ...any)  { l.log(nil, zap.WarnLevel, msg, args) }
func (l *Logger) Error(msg string, args ...any) { l.log(nil, zap.ErrorLevel, msg, args) }
