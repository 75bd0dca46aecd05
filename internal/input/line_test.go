package input

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/require"

	"uniqwin/pkg/contract"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestReadFirstLine(t *testing.T) {
	cases := map[string]string{
		"abc\n":              "abc",
		"abc":                "abc",
		"abc\r\n":            "abc",
		"abc\ndef\nghi\n":    "abc",
		"":                   "",
		"\n":                 "",
		"mjqjpqmgbljsphdz\n": "mjqjpqmgbljsphdz",
	}
	for content, want := range cases {
		got, err := ReadFirstLine(writeFile(t, content))
		require.NoError(t, err, "%q", content)
		require.Equal(t, want, string(got), "%q", content)
	}
}

func TestReadFirstLineLong(t *testing.T) {
	long := strings.Repeat("abcdefghijklm", 20000) // 超过缓冲区大小
	got, err := ReadFirstLine(writeFile(t, long+"\nrest"))
	require.NoError(t, err)
	require.Equal(t, long, string(got))
}

func TestReadFirstLineMissing(t *testing.T) {
	_, err := ReadFirstLine(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	require.ErrorIs(t, err, contract.ErrInputUnavailable)
	require.ErrorIs(t, err, os.ErrNotExist)
	var perr *os.PathError
	require.True(t, errors.As(err, &perr))
}

func TestFirstLineReadError(t *testing.T) {
	boom := errors.New("boom")
	_, err := FirstLine(iotest.ErrReader(boom))
	require.ErrorIs(t, err, contract.ErrInputUnavailable)
	require.ErrorIs(t, err, boom)
}
