package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"uniqwin/internal/bench"
	cfgpkg "uniqwin/internal/config"
	"uniqwin/internal/diag"
	"uniqwin/internal/input"
	"uniqwin/internal/report"
)

var (
	benchRun           = bench.Run
	stdout   io.Writer = os.Stdout
	stderr   io.Writer = os.Stderr
)

// 无旗标、无环境变量：读取 ./input.txt 首行，依次运行全部策略并输出结果与耗时。
// 退出码：0 成功；1 输入不可用或运行失败；3 配置/装配失败。
func main() {
	os.Exit(run())
}

func run() int {
	start := time.Now()
	cfg := cfgpkg.Defaults()
	if err := cfgpkg.Validate(cfg); err != nil {
		fprintf(stderr, "配置校验失败: %v\n", err)
		return 3
	}
	logger := diag.NewLogger(genCorrID(), cfg.Logging.Level, cfg.Logging.Dir)
	defer logger.Close()
	logger.Debug("config", "effective", zap.Any("config", cfg))

	entries, err := cfgpkg.Assemble(cfg)
	if err != nil {
		fprintf(stderr, "装配失败: %v\n", err)
		logger.Error("config", err, &start)
		diag.IncError("config", diag.Classify(err))
		return 3
	}

	line, err := input.ReadFirstLine(cfg.Input)
	if err != nil {
		fprintf(stderr, "Error opening the file! %v\n", err)
		logger.Error("input", err, &start)
		diag.IncError("input", diag.Classify(err))
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	t := logger.Start("cmd", "run", zap.Int("input_len", len(line)))
	results, err := benchRun(ctx, line, cfg.Window, entries, logger)
	if err != nil {
		logger.Error("bench", err, &start)
		if !errors.Is(err, context.Canceled) {
			fprintf(stderr, "运行失败: %v\n", err)
		}
		return 1
	}
	// 结果不一致仅告警：bitmask 在前置条件不成立时可能漏判
	if err := bench.Agree(results); err != nil {
		logger.Warn("bench", "strategies disagree", zap.Error(err))
	}
	if err := report.Write(stdout, results); err != nil {
		logger.Error("report", err, &start)
		fprintf(stderr, "输出失败: %v\n", err)
		return 1
	}
	t.Finish("run", zap.Int("results", len(results)))
	return 0
}

func fprintf(w io.Writer, format string, a ...any) { _, _ = fmt.Fprintf(w, format, a...) }

func genCorrID() string {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		return ""
	}
	return hex.EncodeToString(b[:])
}
