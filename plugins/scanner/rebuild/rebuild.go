package rebuild

import (
	"github.com/emirpasic/gods/sets/hashset"

	"uniqwin/pkg/contract"
)

// Options 为 rebuild 策略的配置（当前无可选项）。
type Options struct{}

// Scanner 对每个候选起点重建一个哈希集合，集合大小等于窗口长度即命中。
// 基线实现：每个窗口 O(L) 次装箱与哈希，外加一次集合分配。
type Scanner struct{}

// New 创建 rebuild Scanner。
func New(_ *Options) *Scanner { return &Scanner{} }

// Find 实现 contract.Scanner。
func (s *Scanner) Find(input []byte, window int) (int, error) {
	if err := contract.CheckWindow(window); err != nil {
		return contract.NotFound, err
	}
	if contract.Short(input, window) {
		return contract.NotFound, nil
	}
	for i := 0; i+window <= len(input); i++ {
		set := hashset.New()
		for _, c := range input[i : i+window] {
			set.Add(c)
		}
		if set.Size() == window {
			return i + window, nil
		}
	}
	return contract.NotFound, nil
}

var _ contract.Scanner = (*Scanner)(nil)
