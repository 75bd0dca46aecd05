package input

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"uniqwin/pkg/contract"
)

const defaultBuf = 64 * 1024

// ReadFirstLine 读取 path 的首行（不含 \n 与可选的 \r）。
// 空文件返回空序列；打开/读取失败包装为 ErrInputUnavailable，保留底层 *os.PathError。
func ReadFirstLine(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, unavailable(err)
	}
	defer f.Close()
	return FirstLine(f)
}

// FirstLine 从 r 读取首行，其余内容忽略。
func FirstLine(r io.Reader) ([]byte, error) {
	br := bufio.NewReaderSize(r, defaultBuf)
	line, err := br.ReadBytes('\n')
	if err != nil && err != io.EOF {
		return nil, unavailable(err)
	}
	line = bytes.TrimSuffix(line, []byte("\n"))
	line = bytes.TrimSuffix(line, []byte("\r"))
	return line, nil
}

// unavailable 同时保留哨兵与底层错误：errors.Is/As 对两者均可命中。
func unavailable(err error) error {
	return fmt.Errorf("%w: %w", contract.ErrInputUnavailable, err)
}
