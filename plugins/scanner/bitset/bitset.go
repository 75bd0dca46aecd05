package bitset

import (
	bbs "github.com/bits-and-blooms/bitset"

	"uniqwin/pkg/contract"
)

// Options 为 bitset 策略的配置（当前无可选项）。
type Options struct{}

// Scanner 与 bitmask 相同的滚动 XOR + popcount，但每个字节值独占一位（256 位），
// 不存在同余碰撞，结果对任意字节输入精确。
type Scanner struct{}

// New 创建 bitset Scanner。
func New(_ *Options) *Scanner { return &Scanner{} }

// Find 实现 contract.Scanner。
func (s *Scanner) Find(input []byte, window int) (int, error) {
	if err := contract.CheckWindow(window); err != nil {
		return contract.NotFound, err
	}
	if contract.Short(input, window) || window > contract.AlphabetSize {
		return contract.NotFound, nil
	}
	mask := bbs.New(contract.AlphabetSize)
	for _, c := range input[:window-1] {
		mask.Flip(uint(c))
	}
	for i := 0; i+window <= len(input); i++ {
		mask.Flip(uint(input[i+window-1]))
		if int(mask.Count()) == window {
			return i + window, nil
		}
		mask.Flip(uint(input[i]))
	}
	return contract.NotFound, nil
}

var _ contract.Scanner = (*Scanner)(nil)
