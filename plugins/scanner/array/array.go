package array

import "uniqwin/pkg/contract"

// Options 为 array 策略的配置（当前无可选项）。
type Options struct{}

// Scanner 使用栈上定长数组作为见证结构，线性比较去重。
type Scanner struct{}

// New 创建 array Scanner。
func New(_ *Options) *Scanner { return &Scanner{} }

// Find 实现 contract.Scanner。
func (s *Scanner) Find(input []byte, window int) (int, error) {
	if err := contract.CheckWindow(window); err != nil {
		return contract.NotFound, err
	}
	// 窗口长于字母表时不可能两两相异
	if contract.Short(input, window) || window > contract.AlphabetSize {
		return contract.NotFound, nil
	}
	var chars [contract.AlphabetSize]byte
	for i := 0; i+window <= len(input); i++ {
		n := 0
		unique := true
		for _, c := range input[i : i+window] {
			for k := 0; k < n; k++ {
				if chars[k] == c {
					unique = false
					break
				}
			}
			if !unique {
				break
			}
			chars[n] = c
			n++
		}
		if unique {
			return i + window, nil
		}
	}
	return contract.NotFound, nil
}

var _ contract.Scanner = (*Scanner)(nil)
