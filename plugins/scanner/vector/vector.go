package vector

import (
	"slices"

	"uniqwin/pkg/contract"
)

// Options 为 vector 策略的配置（当前无可选项）。
type Options struct{}

// Scanner 与 hashset 控制流相同，但见证结构为容量 L 的切片，按线性比较去重。
// L 较小时线性扫描快于哈希。
type Scanner struct{}

// New 创建 vector Scanner。
func New(_ *Options) *Scanner { return &Scanner{} }

// Find 实现 contract.Scanner。
func (s *Scanner) Find(input []byte, window int) (int, error) {
	if err := contract.CheckWindow(window); err != nil {
		return contract.NotFound, err
	}
	if contract.Short(input, window) {
		return contract.NotFound, nil
	}
	// 相异符号至多 AlphabetSize 个，容量不必超过该值
	buf := make([]byte, 0, min(window, contract.AlphabetSize))
	for i := 0; i+window <= len(input); i++ {
		buf = buf[:0]
		for _, c := range input[i : i+window] {
			if slices.Contains(buf, c) {
				break
			}
			buf = append(buf, c)
		}
		if len(buf) == window {
			return i + window, nil
		}
	}
	return contract.NotFound, nil
}

var _ contract.Scanner = (*Scanner)(nil)
