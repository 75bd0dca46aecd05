// Package scannertest 提供 contract.Scanner 实现共用的一致性测试。
// 各策略包在自身 _test.go 中调用 Run / RunExact。
package scannertest

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"uniqwin/pkg/contract"
)

// Scenario 为固定输入与期望结果。
type Scenario struct {
	Name   string
	Input  string
	Window int
	Want   int
}

// Scenarios: 已知答案的样例（含边界）。
var Scenarios = []Scenario{
	{"sample-1", "mjqjpqmgbljsphdztnvjfqwrcgsmlb", 14, 19},
	{"sample-2", "bvwbjplbgvbhsrlpgdmjqwftvncz", 14, 23},
	{"sample-3", "nppdvjthqldpwncqszvftbrmjlhg", 14, 23},
	{"sample-1-w4", "mjqjpqmgbljsphdztnvjfqwrcgsmlb", 4, 7},
	{"sample-2-w4", "bvwbjplbgvbhsrlpgdmjqwftvncz", 4, 5},
	{"exact-len-distinct", "abcdefghijklmn", 14, 14},
	{"exact-len-dup", "abcdefghijklma", 14, contract.NotFound},
	{"shorter", "abcdefghijklm", 14, contract.NotFound},
	{"empty", "", 14, contract.NotFound},
	{"window-1", "zzz", 1, 1},
	{"all-same", "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", 2, contract.NotFound},
	{"tail", "aaaaaaaaaaaaaaaaabcdefghijklmnopq", 14, 30},
}

// Run 校验场景、边界、非法窗口与幂等性，并在小写字母随机输入上与参考实现对比。
func Run(t *testing.T, s contract.Scanner) {
	t.Helper()
	t.Run("scenarios", func(t *testing.T) {
		for _, sc := range Scenarios {
			got, err := s.Find([]byte(sc.Input), sc.Window)
			require.NoError(t, err, sc.Name)
			require.Equal(t, sc.Want, got, sc.Name)
		}
	})
	t.Run("invalid-window", func(t *testing.T) {
		for _, w := range []int{0, -1} {
			_, err := s.Find([]byte("abc"), w)
			require.ErrorIs(t, err, contract.ErrInvalidWindow)
		}
	})
	t.Run("idempotent", func(t *testing.T) {
		in := []byte(Scenarios[0].Input)
		first, err := s.Find(in, contract.DefaultWindow)
		require.NoError(t, err)
		for i := 0; i < 3; i++ {
			again, err := s.Find(in, contract.DefaultWindow)
			require.NoError(t, err)
			require.Equal(t, first, again)
		}
		require.Equal(t, Scenarios[0].Input, string(in), "输入不可被修改")
	})
	t.Run("random-lowercase", func(t *testing.T) {
		r := rand.New(rand.NewSource(6))
		for n := 0; n < 300; n++ {
			in := RandomInput(r, r.Intn(120), 10+r.Intn(17))
			for _, w := range []int{1, 4, 14, 26} {
				checkAgainstReference(t, s, in, w)
			}
		}
	})
}

// RunExact 在 Run 基础上追加任意字节输入的对比（仅对无碰撞实现适用）。
func RunExact(t *testing.T, s contract.Scanner) {
	t.Helper()
	Run(t, s)
	t.Run("random-bytes", func(t *testing.T) {
		r := rand.New(rand.NewSource(256))
		for n := 0; n < 200; n++ {
			in := make([]byte, r.Intn(400))
			alpha := 1 + r.Intn(contract.AlphabetSize)
			for i := range in {
				in[i] = byte(r.Intn(alpha))
			}
			for _, w := range []int{1, 14, 33, 64} {
				checkAgainstReference(t, s, in, w)
			}
		}
	})
	t.Run("full-alphabet", func(t *testing.T) {
		in := make([]byte, 0, 2*contract.AlphabetSize)
		in = append(in, 0)
		for c := 0; c < contract.AlphabetSize; c++ {
			in = append(in, byte(c))
		}
		got, err := s.Find(in, contract.AlphabetSize)
		require.NoError(t, err)
		require.Equal(t, contract.AlphabetSize+1, got)
		got, err = s.Find(in, contract.AlphabetSize+1)
		require.NoError(t, err)
		require.Equal(t, contract.NotFound, got)
	})
}

// RandomInput 生成取自前 alpha 个小写字母的随机输入（alpha <= 26）。
func RandomInput(r *rand.Rand, n, alpha int) []byte {
	if alpha > 26 {
		alpha = 26
	}
	out := make([]byte, n)
	for i := range out {
		out[i] = 'a' + byte(r.Intn(alpha))
	}
	return out
}

func checkAgainstReference(t *testing.T, s contract.Scanner, in []byte, w int) {
	t.Helper()
	want, err := contract.FindReference(in, w)
	require.NoError(t, err)
	got, err := s.Find(in, w)
	require.NoError(t, err)
	require.Equal(t, want, got, "输入 %q 窗口 %d", in, w)
	if got != contract.NotFound {
		require.True(t, contract.Distinct(in[got-w:got]))
	}
}
