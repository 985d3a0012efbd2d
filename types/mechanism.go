package types

import "strings"

// mechanism.go
// 共识机制枚举定义

// Mechanism 共识机制类型枚举
type Mechanism int

const (
	// PoW 工作量证明 - 矿工以算力竞争出块权
	PoW Mechanism = iota
	// PoS 权益证明 - 按质押权重加权随机选择
	PoS
	// DPoS 委托权益证明 - 得票最高的代理出块
	DPoS
)

// String 实现Stringer接口
func (m Mechanism) String() string {
	switch m {
	case PoW:
		return "PoW"
	case PoS:
		return "PoS"
	case DPoS:
		return "DPoS"
	default:
		return "Unknown"
	}
}

// MarshalText JSON/CSV导出时使用机制名而不是数字
func (m Mechanism) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText 解析机制名(JSON反序列化时使用)
func (m *Mechanism) UnmarshalText(text []byte) error {
	parsed, err := ParseMechanism(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// ParseMechanism 字符串转Mechanism(不区分大小写)
func ParseMechanism(s string) (Mechanism, error) {
	switch strings.ToLower(s) {
	case "pow":
		return PoW, nil
	case "pos":
		return PoS, nil
	case "dpos":
		return DPoS, nil
	default:
		return Mechanism(-1), NewInvalidConfig("未知的共识机制: %q", s)
	}
}

// AllMechanisms 返回全部机制(按枚举顺序)
func AllMechanisms() []Mechanism {
	return []Mechanism{PoW, PoS, DPoS}
}
