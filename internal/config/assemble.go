package config

import (
	"strings"

	"github.com/pkg/errors"

	"uniqwin/internal/bench"
	"uniqwin/pkg/contract"
	"uniqwin/pkg/registry"
)

// Validate 对最小必要边界做静态校验。
func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.Input) == "" {
		return errors.New("config: input path cannot be empty")
	}
	if err := contract.CheckWindow(cfg.Window); err != nil {
		return errors.WithMessage(err, "config")
	}
	if len(cfg.Strategies) == 0 {
		return errors.New("config: strategies empty")
	}
	seen := make(map[string]struct{}, len(cfg.Strategies))
	for _, name := range cfg.Strategies {
		if registry.Scanner[name] == nil {
			return errors.Wrapf(contract.ErrUnknownStrategy, "config: strategy %q not registered", name)
		}
		if _, dup := seen[name]; dup {
			return errors.Errorf("config: strategy %q listed twice", name)
		}
		seen[name] = struct{}{}
	}
	for name := range cfg.Options {
		if _, ok := seen[name]; !ok {
			return errors.Errorf("config: options for unlisted strategy %q", name)
		}
	}
	return nil
}

// Assemble 按 Strategies 顺序构造 bench.Entry。
// 严格 Options 解析在 registry（工厂）层进行；此处只传 raw JSON。
func Assemble(cfg Config) ([]bench.Entry, error) {
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	entries := make([]bench.Entry, 0, len(cfg.Strategies))
	for _, name := range cfg.Strategies {
		s, err := registry.New(name, cfg.Options[name])
		if err != nil {
			return nil, err
		}
		entries = append(entries, bench.Entry{Name: name, Scanner: s})
	}
	return entries, nil
}
