package hashset

import (
	"github.com/dolthub/swiss"

	"uniqwin/pkg/contract"
)

// Options 为 hashset 策略的可选配置。
type Options struct {
	// Fresh: 每个候选起点分配新集合；默认 false 时复用并 Clear。
	Fresh bool `json:"fresh"`
}

// Scanner 逐个插入符号，遇到重复立即放弃当前起点（早退）。
type Scanner struct {
	fresh bool
}

// New 创建 hashset Scanner。
func New(opts *Options) *Scanner {
	s := &Scanner{}
	if opts != nil {
		s.fresh = opts.Fresh
	}
	return s
}

// Find 实现 contract.Scanner。
func (s *Scanner) Find(input []byte, window int) (int, error) {
	if err := contract.CheckWindow(window); err != nil {
		return contract.NotFound, err
	}
	if contract.Short(input, window) {
		return contract.NotFound, nil
	}
	size := uint32(min(window, contract.AlphabetSize))
	seen := swiss.NewMap[byte, struct{}](size)
	for i := 0; i+window <= len(input); i++ {
		if s.fresh {
			seen = swiss.NewMap[byte, struct{}](size)
		} else {
			seen.Clear()
		}
		n := 0
		for _, c := range input[i : i+window] {
			if seen.Has(c) {
				break
			}
			seen.Put(c, struct{}{})
			n++
		}
		if n == window {
			return i + window, nil
		}
	}
	return contract.NotFound, nil
}

var _ contract.Scanner = (*Scanner)(nil)
