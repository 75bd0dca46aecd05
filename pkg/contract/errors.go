package contract

import "errors"

// 最小错误分类。
var (
	// ErrInvalidWindow: 窗口长度非正（调用方前置条件违例）。
	ErrInvalidWindow = errors.New("invalid window")
	// ErrInputUnavailable: 输入文件无法打开或读取。
	ErrInputUnavailable = errors.New("input unavailable")
	// ErrUnknownStrategy: 注册表中不存在的策略名。
	ErrUnknownStrategy = errors.New("unknown strategy")
)
