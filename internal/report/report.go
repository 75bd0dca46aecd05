package report

import (
	"fmt"
	"io"

	"uniqwin/internal/bench"
)

// Write 按固定格式输出结果（每个策略三行）：
//
//	<name> ans:  <offset>
//	<name> took: <µs> µs
//	<空行>
//
// 标签按最长策略名右填充，使数值列对齐。
func Write(w io.Writer, results []bench.Result) error {
	width := 0
	for _, r := range results {
		if l := len(r.Name) + len(" took: "); l > width {
			width = l
		}
	}
	for _, r := range results {
		if _, err := fmt.Fprintf(w, "%-*s%d\n", width, r.Name+" ans:", r.Offset); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%-*s%d µs\n\n", width, r.Name+" took:", r.Micros()); err != nil {
			return err
		}
	}
	return nil
}
