package registry

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"

	"uniqwin/pkg/contract"
	sarr "uniqwin/plugins/scanner/array"
	sbm "uniqwin/plugins/scanner/bitmask"
	sbs "uniqwin/plugins/scanner/bitset"
	scnt "uniqwin/plugins/scanner/counting"
	shs "uniqwin/plugins/scanner/hashset"
	srb "uniqwin/plugins/scanner/rebuild"
	svec "uniqwin/plugins/scanner/vector"
)

// strictUnmarshal: 使用 DisallowUnknownFields 严格解码，拒绝未知字段。
func strictUnmarshal(raw json.RawMessage, v any) error {
	if len(raw) == 0 {
		// 保持零值（默认选项）
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// NewScanner 工厂签名：接收原样 JSON Options。
type NewScanner func(raw json.RawMessage) (contract.Scanner, error)

// Scanner 工厂注册表（显式、零反射）。
var Scanner = map[string]NewScanner{
	// rebuild: 每个窗口重建哈希集合
	"rebuild": func(raw json.RawMessage) (contract.Scanner, error) {
		var opts srb.Options
		if err := strictUnmarshal(raw, &opts); err != nil {
			return nil, err
		}
		return srb.New(&opts), nil
	},
	// hashset: 增量插入 + 早退（swiss map）
	"hashset": func(raw json.RawMessage) (contract.Scanner, error) {
		var opts shs.Options
		if err := strictUnmarshal(raw, &opts); err != nil {
			return nil, err
		}
		return shs.New(&opts), nil
	},
	// vector: 容量 L 的切片 + 线性去重
	"vector": func(raw json.RawMessage) (contract.Scanner, error) {
		var opts svec.Options
		if err := strictUnmarshal(raw, &opts); err != nil {
			return nil, err
		}
		return svec.New(&opts), nil
	},
	// array: 栈上定长数组 + 线性去重
	"array": func(raw json.RawMessage) (contract.Scanner, error) {
		var opts sarr.Options
		if err := strictUnmarshal(raw, &opts); err != nil {
			return nil, err
		}
		return sarr.New(&opts), nil
	},
	// bitmask: 滚动 XOR 掩码（模 B 近似，见包文档前置条件）
	"bitmask": func(raw json.RawMessage) (contract.Scanner, error) {
		var opts sbm.Options
		if err := strictUnmarshal(raw, &opts); err != nil {
			return nil, err
		}
		return sbm.New(&opts)
	},
	// bitset: 滚动 XOR，256 位无碰撞
	"bitset": func(raw json.RawMessage) (contract.Scanner, error) {
		var opts sbs.Options
		if err := strictUnmarshal(raw, &opts); err != nil {
			return nil, err
		}
		return sbs.New(&opts), nil
	},
	// counting: 频次数组 + 恰好一次计数
	"counting": func(raw json.RawMessage) (contract.Scanner, error) {
		var opts scnt.Options
		if err := strictUnmarshal(raw, &opts); err != nil {
			return nil, err
		}
		return scnt.New(&opts), nil
	},
}

// order: 默认计时输出顺序。
var order = []string{"rebuild", "hashset", "vector", "array", "bitmask", "bitset", "counting"}

// Names 返回默认运行顺序（副本）。
func Names() []string {
	out := make([]string, len(order))
	copy(out, order)
	return out
}

// New 按名称构造 Scanner；未注册返回 ErrUnknownStrategy。
func New(name string, raw json.RawMessage) (contract.Scanner, error) {
	f, ok := Scanner[name]
	if !ok {
		return nil, errors.Wrapf(contract.ErrUnknownStrategy, "strategy %q", name)
	}
	s, err := f(raw)
	if err != nil {
		return nil, errors.WithMessagef(err, "strategy %q options", name)
	}
	return s, nil
}
