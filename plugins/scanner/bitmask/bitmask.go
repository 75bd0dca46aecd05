package bitmask

import (
	"math/bits"

	"github.com/pkg/errors"

	"uniqwin/pkg/contract"
)

// Options 为 bitmask 策略的可选配置。
type Options struct {
	// Width: 掩码位宽 B，取 32 或 64；0 使用 32。
	Width int `json:"width"`
}

// Scanner 为滚动 XOR 掩码 + popcount 的近似过滤器。
//
// 符号 c 映射到第 c%B 位；窗口滑动时对进入与离开的符号各做一次 XOR。
// popcount 等于 L 即判定为相异。
//
// 前置条件：L <= B，且输入中任意两个不同符号模 B 不同余。
// 满足时结果精确（奇数次出现的符号数为 L 当且仅当每个符号恰好出现一次）；
// 不满足时同余的两个符号互相抵消，可能漏判。小写 ASCII 在 B=32 下满足该条件。
// 可用 Sound 检查；需要任意字节输入时改用 bitset 或 counting 策略。
type Scanner struct {
	width int
}

// New 创建 bitmask Scanner。
func New(opts *Options) (*Scanner, error) {
	w := 32
	if opts != nil && opts.Width != 0 {
		w = opts.Width
	}
	if w != 32 && w != 64 {
		return nil, errors.Errorf("bitmask: width must be 32 or 64, got %d", w)
	}
	return &Scanner{width: w}, nil
}

// Width 返回掩码位宽。
func (s *Scanner) Width() int { return s.width }

// Find 实现 contract.Scanner。
func (s *Scanner) Find(input []byte, window int) (int, error) {
	if err := contract.CheckWindow(window); err != nil {
		return contract.NotFound, err
	}
	// popcount 不可能超过位宽
	if contract.Short(input, window) || window > s.width {
		return contract.NotFound, nil
	}
	if s.width == 64 {
		return find64(input, window), nil
	}
	return find32(input, window), nil
}

func find32(input []byte, window int) int {
	var mask uint32
	for _, c := range input[:window-1] {
		mask ^= 1 << (c % 32)
	}
	for i := 0; i+window <= len(input); i++ {
		mask ^= 1 << (input[i+window-1] % 32)
		if bits.OnesCount32(mask) == window {
			return i + window
		}
		mask ^= 1 << (input[i] % 32)
	}
	return contract.NotFound
}

func find64(input []byte, window int) int {
	var mask uint64
	for _, c := range input[:window-1] {
		mask ^= 1 << (c % 64)
	}
	for i := 0; i+window <= len(input); i++ {
		mask ^= 1 << (input[i+window-1] % 64)
		if bits.OnesCount64(mask) == window {
			return i + window
		}
		mask ^= 1 << (input[i] % 64)
	}
	return contract.NotFound
}

// Sound 报告在给定输入与窗口下结果是否可信（前置条件是否成立）。
func (s *Scanner) Sound(input []byte, window int) bool {
	if window > s.width {
		return false
	}
	var present [contract.AlphabetSize]bool
	for _, c := range input {
		present[c] = true
	}
	var used [64]bool
	for c, ok := range present {
		if !ok {
			continue
		}
		r := c % s.width
		if used[r] {
			return false
		}
		used[r] = true
	}
	return true
}

var _ contract.Scanner = (*Scanner)(nil)
