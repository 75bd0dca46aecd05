package config

import (
	"encoding/json"
)

// Config: 运行期只读配置（编译期默认值，运行期不变）。
// JSON 标签仅用于调试输出（debug 日志中的有效配置）。
type Config struct {
	// Input: 输入文件路径（相对工作目录）。
	Input string `json:"input"`
	// Window: 窗口长度 L。
	Window int `json:"window"`
	// Strategies: 运行顺序（注册表中的实现名）。
	Strategies []string `json:"strategies"`
	// Options: 各策略的原样 JSON Options，按策略名索引；缺省为零值选项。
	Options map[string]json.RawMessage `json:"options"`
	Logging Logging                    `json:"logging"`
}

// Logging: 日志等级与输出目录（轮转策略为固定默认）。
type Logging struct {
	Level string `json:"level"`
	Dir   string `json:"dir"`
}
