package counting

import "uniqwin/pkg/contract"

// Options 为 counting 策略的配置（当前无可选项）。
type Options struct{}

// Scanner 维护按符号索引的频次数组与“恰好出现一次”的符号数，
// 每步 O(1)，对任意字节输入精确。
type Scanner struct{}

// New 创建 counting Scanner。
func New(_ *Options) *Scanner { return &Scanner{} }

// tally: 滚动窗口的频次统计。
type tally struct {
	freq [contract.AlphabetSize]int
	once int
}

func (t *tally) add(c byte) {
	t.freq[c]++
	switch t.freq[c] {
	case 1:
		t.once++
	case 2:
		t.once--
	}
}

func (t *tally) remove(c byte) {
	t.freq[c]--
	switch t.freq[c] {
	case 0:
		t.once--
	case 1:
		t.once++
	}
}

// Find 实现 contract.Scanner。
func (s *Scanner) Find(input []byte, window int) (int, error) {
	if err := contract.CheckWindow(window); err != nil {
		return contract.NotFound, err
	}
	if contract.Short(input, window) {
		return contract.NotFound, nil
	}
	var t tally
	for _, c := range input[:window-1] {
		t.add(c)
	}
	for i := 0; i+window <= len(input); i++ {
		t.add(input[i+window-1])
		if t.once == window {
			return i + window, nil
		}
		t.remove(input[i])
	}
	return contract.NotFound, nil
}

var _ contract.Scanner = (*Scanner)(nil)
