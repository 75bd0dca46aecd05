package contract

import "github.com/pkg/errors"

// NotFound: 未找到全相异窗口时的哨兵结果。
const NotFound = -1

// DefaultWindow: CLI 使用的固定窗口长度。
const DefaultWindow = 14

// AlphabetSize: 符号取值范围（单字节 0..255）。
const AlphabetSize = 256

// Scanner: 在输入中寻找第一个 window 个符号两两相异的连续窗口。
// 约束：
//  1. 返回值为窗口末端偏移 i+window（自 1 计数的已消费符号数）；
//  2. 不存在时返回 NotFound；len(input) < window 亦返回 NotFound，且不报错；
//  3. window <= 0 时返回 ErrInvalidWindow；
//  4. 纯函数：不修改 input，不保留跨调用状态。
type Scanner interface {
	Find(input []byte, window int) (int, error)
}

// CheckWindow 校验窗口长度（fail-fast）。
func CheckWindow(window int) error {
	if window <= 0 {
		return errors.Wrapf(ErrInvalidWindow, "window=%d", window)
	}
	return nil
}

// Short 报告输入是否短于窗口（此时结果恒为 NotFound）。
func Short(input []byte, window int) bool { return len(input) < window }

// Distinct 为参考判定：窗口内符号是否两两相异。
func Distinct(window []byte) bool {
	var seen [AlphabetSize]bool
	for _, c := range window {
		if seen[c] {
			return false
		}
		seen[c] = true
	}
	return true
}

// FindReference 为逐窗口的参考实现，仅依赖 Distinct；用于测试核对。
func FindReference(input []byte, window int) (int, error) {
	if err := CheckWindow(window); err != nil {
		return NotFound, err
	}
	for i := 0; i+window <= len(input); i++ {
		if Distinct(input[i : i+window]) {
			return i + window, nil
		}
	}
	return NotFound, nil
}
