package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"uniqwin/internal/bench"
	"uniqwin/internal/diag"
	"uniqwin/pkg/registry"
)

// chdirTemp 切换到临时工作目录，并捕获 stdout/stderr。
func chdirTemp(t *testing.T) (dir string, out, errOut *bytes.Buffer) {
	t.Helper()
	dir = t.TempDir()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	out, errOut = &bytes.Buffer{}, &bytes.Buffer{}
	oldOut, oldErr := stdout, stderr
	stdout, stderr = out, errOut
	t.Cleanup(func() { stdout, stderr = oldOut, oldErr })
	return dir, out, errOut
}

func TestRunSuccess(t *testing.T) {
	dir, out, _ := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "input.txt"), []byte("mjqjpqmgbljsphdztnvjfqwrcgsmlb\nignored\n"), 0o644))

	require.Equal(t, 0, run())
	text := out.String()
	for _, name := range registry.Names() {
		require.Contains(t, text, name+" ans:")
		require.Contains(t, text, name+" took:")
	}
	require.Equal(t, len(registry.Names()), strings.Count(text, " 19\n"), "每个策略均应输出 19:\n%s", text)
	require.Equal(t, len(registry.Names()), strings.Count(text, " µs\n"))

	// 日志写入 logs/ 而非 stdout
	_, err := os.Stat(filepath.Join(dir, "logs", "uniqwin-current.log"))
	require.NoError(t, err)
	require.NotContains(t, text, `"level"`)
}

func TestRunMissingInput(t *testing.T) {
	_, out, errOut := chdirTemp(t)
	called := false
	orig := benchRun
	benchRun = func(ctx context.Context, in []byte, w int, e []bench.Entry, l *diag.Logger) ([]bench.Result, error) {
		called = true
		return nil, nil
	}
	defer func() { benchRun = orig }()

	require.Equal(t, 1, run())
	require.False(t, called, "输入不可用时不得执行扫描")
	require.Empty(t, out.String())
	require.Contains(t, errOut.String(), "Error opening the file!")
}

func TestRunNotFound(t *testing.T) {
	dir, out, _ := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "input.txt"), []byte("abc"), 0o644))
	require.Equal(t, 0, run())
	require.Equal(t, len(registry.Names()), strings.Count(out.String(), " -1\n"))
}

func TestRunBenchError(t *testing.T) {
	dir, out, errOut := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "input.txt"), []byte("abc"), 0o644))
	orig := benchRun
	benchRun = func(ctx context.Context, in []byte, w int, e []bench.Entry, l *diag.Logger) ([]bench.Result, error) {
		return nil, errors.New("boom")
	}
	defer func() { benchRun = orig }()

	require.Equal(t, 1, run())
	require.Empty(t, out.String())
	require.Contains(t, errOut.String(), "boom")
}

// 结果不一致只告警，仍正常输出并返回 0。
func TestRunDisagreementIsNotFatal(t *testing.T) {
	dir, out, _ := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "input.txt"), []byte("abc"), 0o644))
	orig := benchRun
	benchRun = func(ctx context.Context, in []byte, w int, e []bench.Entry, l *diag.Logger) ([]bench.Result, error) {
		return []bench.Result{{Name: "a", Offset: 2}, {Name: "b", Offset: -1}}, nil
	}
	defer func() { benchRun = orig }()

	require.Equal(t, 0, run())
	require.Contains(t, out.String(), "a ans:  2\n")
	require.Contains(t, out.String(), "b ans:  -1\n")
}

func TestGenCorrID(t *testing.T) {
	id := genCorrID()
	require.Len(t, id, 32)
	require.NotEqual(t, id, genCorrID())
}
