package diag

import (
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger 为结构化日志器：单行 JSON，经 zap 写入轮转文件。
// 每条事件带 corr_id/comp/stage，与错误分类代码、耗时字段一起便于汇总。
type Logger struct {
	z    *zap.Logger
	sink *RotatingFile
}

// NewLogger 通过配置的 level 初始化，并将日志写入 dir，10MiB 轮转。
func NewLogger(corrID, level, dir string) *Logger {
	sink := NewRotatingFile(dir, 10*1024*1024)
	l := NewLoggerTo(zapcore.AddSync(sink), corrID, level)
	l.sink = sink
	return l
}

// NewLoggerTo 将日志写入任意 WriteSyncer（测试或 stderr 后备）。
func NewLoggerTo(ws zapcore.WriteSyncer, corrID, level string) *Logger {
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig()), ws, parseLevel(strings.TrimSpace(level)))
	z := zap.New(core, zap.ErrorOutput(zapcore.Lock(os.Stderr)))
	if corrID != "" {
		z = z.With(zap.String("corr_id", corrID))
	}
	return &Logger{z: z}
}

// Nop 返回丢弃一切输出的 Logger。
func Nop() *Logger { return &Logger{z: zap.NewNop()} }

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		MessageKey:     "msg",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.RFC3339TimeEncoder,
		EncodeDuration: zapcore.MillisDurationEncoder,
	}
}

func parseLevel(s string) zapcore.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Zap 暴露底层 zap.Logger。
func (l *Logger) Zap() *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l.z
}

// Start 记录 start 事件；返回计时器用于 Finish。
func (l *Logger) Start(comp, msg string, fields ...zap.Field) *Timer {
	l.Zap().Info(msg, append([]zap.Field{zap.String("comp", comp), zap.String("stage", "start")}, fields...)...)
	return &Timer{l: l, comp: comp, t0: time.Now()}
}

// Debug 输出调试事件（仅在 level=debug 时生效）。
func (l *Logger) Debug(comp, msg string, fields ...zap.Field) {
	l.Zap().Debug(msg, append([]zap.Field{zap.String("comp", comp)}, fields...)...)
}

// Warn 输出告警事件。
func (l *Logger) Warn(comp, msg string, fields ...zap.Field) {
	l.Zap().Warn(msg, append([]zap.Field{zap.String("comp", comp)}, fields...)...)
}

// Error 记录 error 事件；code 由 Classify 得出。
func (l *Logger) Error(comp string, err error, durSince *time.Time) {
	fs := []zap.Field{
		zap.String("comp", comp),
		zap.String("stage", "error"),
		zap.String("code", string(Classify(err))),
		zap.Error(err),
	}
	if durSince != nil {
		fs = append(fs, zap.Int64("dur_ms", time.Since(*durSince).Milliseconds()))
	}
	l.Zap().Error("first error", fs...)
}

// Close 刷新并关闭文件 sink。
func (l *Logger) Close() error {
	if l == nil {
		return nil
	}
	_ = l.z.Sync()
	if l.sink != nil {
		return l.sink.Close()
	}
	return nil
}

// Timer 用于 start→finish 计时。
type Timer struct {
	l    *Logger
	comp string
	t0   time.Time
}

// Finish 记录 finish 事件，附带 dur_ms。
func (t *Timer) Finish(msg string, fields ...zap.Field) {
	if t == nil || t.l == nil {
		return
	}
	fs := []zap.Field{
		zap.String("comp", t.comp),
		zap.String("stage", "finish"),
		zap.Int64("dur_ms", time.Since(t.t0).Milliseconds()),
	}
	t.l.Zap().Info(msg, append(fs, fields...)...)
}
