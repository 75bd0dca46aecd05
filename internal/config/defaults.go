package config

import (
	"encoding/json"

	"uniqwin/pkg/contract"
	"uniqwin/pkg/registry"
)

// Defaults 返回编译期固定的配置。
func Defaults() Config {
	return Config{
		Input:      "input.txt",
		Window:     contract.DefaultWindow,
		Strategies: registry.Names(),
		Options: map[string]json.RawMessage{
			"bitmask": json.RawMessage(`{"width":32}`),
		},
		Logging: Logging{Level: "info", Dir: "logs"},
	}
}
