// Package bench 为计时编排：对同一输入依次运行各策略并记录耗时。
//
// 单线程、同步执行；输入只读，策略间无共享可变状态。
// 计时仅用于诊断，不影响结果。
package bench

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"uniqwin/internal/diag"
	"uniqwin/pkg/contract"
)

// Entry: 待运行的命名策略。
type Entry struct {
	Name    string
	Scanner contract.Scanner
}

// Result: 单个策略的结果与耗时。
type Result struct {
	Name    string
	Offset  int
	Elapsed time.Duration
}

// Micros 返回耗时（整微秒）。
func (r Result) Micros() int64 { return r.Elapsed.Microseconds() }

// Found 报告是否找到窗口。
func (r Result) Found() bool { return r.Offset != contract.NotFound }

// Run 依次运行 entries，返回与 entries 等长、同序的结果。
// 每个策略开始前检查 ctx；取消时返回已完成部分与 ctx 错误。
func Run(ctx context.Context, input []byte, window int, entries []Entry, logger *diag.Logger) ([]Result, error) {
	if err := contract.CheckWindow(window); err != nil {
		return nil, err
	}
	t := logger.Start("bench", "run",
		zap.Int("strategies", len(entries)),
		zap.Int("input_len", len(input)),
		zap.Int("window", window))
	results := make([]Result, 0, len(entries))
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			diag.IncError("bench", diag.Classify(err))
			return results, errors.Wrap(err, "bench")
		}
		r, err := runOne(input, window, e)
		if err != nil {
			diag.IncScan(e.Name, "error")
			diag.IncError("bench", diag.Classify(err))
			return results, errors.WithMessagef(err, "strategy %s", e.Name)
		}
		logger.Debug("bench", "scan",
			zap.String("strategy", r.Name),
			zap.Int("offset", r.Offset),
			zap.Int64("elapsed_us", r.Micros()))
		results = append(results, r)
	}
	t.Finish("run", zap.Int("results", len(results)))
	return results, nil
}

func runOne(input []byte, window int, e Entry) (Result, error) {
	t0 := time.Now()
	off, err := e.Scanner.Find(input, window)
	elapsed := time.Since(t0)
	if err != nil {
		return Result{}, err
	}
	diag.ObserveScan(e.Name, elapsed)
	res := "found"
	if off == contract.NotFound {
		res = "not_found"
	}
	diag.IncScan(e.Name, res)
	return Result{Name: e.Name, Offset: off, Elapsed: elapsed}, nil
}

// Agree 报告第一处与首个结果不一致的策略；全部一致返回 nil。
func Agree(results []Result) error {
	for i := 1; i < len(results); i++ {
		if results[i].Offset != results[0].Offset {
			return errors.Errorf("bench: %s=%d disagrees with %s=%d",
				results[i].Name, results[i].Offset, results[0].Name, results[0].Offset)
		}
	}
	return nil
}
