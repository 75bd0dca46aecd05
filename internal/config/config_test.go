package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"uniqwin/pkg/contract"
	"uniqwin/pkg/registry"
)

func TestDefaults(t *testing.T) {
	d := Defaults()
	require.Equal(t, "input.txt", d.Input)
	require.Equal(t, 14, d.Window)
	require.Equal(t, registry.Names(), d.Strategies)
	require.Equal(t, "info", d.Logging.Level)
	require.NoError(t, Validate(d))
}

func TestAssembleDefaults(t *testing.T) {
	entries, err := Assemble(Defaults())
	require.NoError(t, err)
	require.Len(t, entries, len(registry.Names()))
	for i, e := range entries {
		require.Equal(t, registry.Names()[i], e.Name)
		got, err := e.Scanner.Find([]byte("bvwbjplbgvbhsrlpgdmjqwftvncz"), contract.DefaultWindow)
		require.NoError(t, err)
		require.Equal(t, 23, got, e.Name)
	}
}

// Validate 错误分支
func TestValidateErrors(t *testing.T) {
	cases := map[string]func(c *Config){
		"empty input":      func(c *Config) { c.Input = "  " },
		"zero window":      func(c *Config) { c.Window = 0 },
		"no strategies":    func(c *Config) { c.Strategies = nil },
		"unknown strategy": func(c *Config) { c.Strategies = []string{"rebuild", "nope"} },
		"duplicate":        func(c *Config) { c.Strategies = []string{"array", "array"} },
		"orphan options":   func(c *Config) { c.Strategies = []string{"array"} },
	}
	for name, mutate := range cases {
		cfg := Defaults()
		mutate(&cfg)
		require.Error(t, Validate(cfg), name)
		_, err := Assemble(cfg)
		require.Error(t, err, name)
	}

	cfg := Defaults()
	cfg.Window = -3
	require.ErrorIs(t, Validate(cfg), contract.ErrInvalidWindow)
	cfg = Defaults()
	cfg.Strategies = append(cfg.Strategies, "nope")
	require.ErrorIs(t, Validate(cfg), contract.ErrUnknownStrategy)
}

func TestAssembleBadOptions(t *testing.T) {
	cfg := Defaults()
	cfg.Options["bitmask"] = json.RawMessage(`{"width":12}`)
	_, err := Assemble(cfg)
	require.Error(t, err)

	cfg = Defaults()
	cfg.Options["array"] = json.RawMessage(`{"unknown":true}`)
	_, err = Assemble(cfg)
	require.Error(t, err)
}

func TestAssembleSubset(t *testing.T) {
	cfg := Defaults()
	cfg.Strategies = []string{"counting", "bitmask"}
	cfg.Options["bitmask"] = json.RawMessage(`{"width":64}`)
	entries, err := Assemble(cfg)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "counting", entries[0].Name)
	require.Equal(t, "bitmask", entries[1].Name)
}
