package array

import (
	"testing"

	"github.com/stretchr/testify/require"

	"uniqwin/pkg/contract"
	"uniqwin/plugins/scanner/scannertest"
)

func TestContract(t *testing.T) {
	scannertest.RunExact(t, New(nil))
}

// 窗口长于字母表直接返回 NotFound，不越界。
func TestWindowBeyondAlphabet(t *testing.T) {
	in := make([]byte, 2*contract.AlphabetSize)
	for i := range in {
		in[i] = byte(i)
	}
	got, err := New(nil).Find(in, contract.AlphabetSize+1)
	require.NoError(t, err)
	require.Equal(t, contract.NotFound, got)
}
