package types

import "fmt"

// validator.go
// 验证者数据结构定义(三种机制各自的变体)

// Validator 验证者统一接口
// 三种变体的属性集互不相交, 只共享身份标识和机制标签
type Validator interface {
	// GetID 获取唯一标识符(创建时分配, 不可变)
	GetID() string

	// GetMechanism 获取所属共识机制
	GetMechanism() Mechanism
}

// ================================
// PoW 矿工
// ================================

// PoWMiner 工作量证明矿工
type PoWMiner struct {
	ID string `json:"id"`

	HashPowerMHs           float64 `json:"hash_power_mhs"`            // 算力(MH/s), 范围50-200
	ElectricityCostPerHash float64 `json:"electricity_cost_per_hash"` // 每哈希电力成本
}

// GetID 获取唯一标识符
func (m PoWMiner) GetID() string { return m.ID }

// GetMechanism 获取所属共识机制
func (m PoWMiner) GetMechanism() Mechanism { return PoW }

// String 实现Stringer接口
func (m PoWMiner) String() string {
	return fmt.Sprintf("PoW矿工 %s (算力: %.1f MH/s, 电力成本: %.3f/哈希)",
		m.ID, m.HashPowerMHs, m.ElectricityCostPerHash)
}

// ================================
// PoS 质押者
// ================================

// PoSStaker 权益证明质押者
type PoSStaker struct {
	ID string `json:"id"`

	StakeAmount  int     `json:"stake_amount"`   // 质押代币数量, 范围10000-50000
	StakeAgeDays int     `json:"stake_age_days"` // 质押天数(≥0)
	SlashingRisk float64 `json:"slashing_risk"`  // 作恶被罚没的风险系数
}

// GetID 获取唯一标识符
func (s PoSStaker) GetID() string { return s.ID }

// GetMechanism 获取所属共识机制
func (s PoSStaker) GetMechanism() Mechanism { return PoS }

// String 实现Stringer接口
func (s PoSStaker) String() string {
	return fmt.Sprintf("PoS质押者 %s (质押: %d 代币, 时长: %d 天)",
		s.ID, s.StakeAmount, s.StakeAgeDays)
}

// ================================
// DPoS 代理
// ================================

// DPoSDelegate 委托权益证明代理
type DPoSDelegate struct {
	ID string `json:"id"`

	VoteCount       int     `json:"vote_count"`       // 得票数(代币加权, 非负)
	ReputationScore int     `json:"reputation_score"` // 声誉分, 生成范围70-95, 上限100
	CommissionRate  float64 `json:"commission_rate"`  // 佣金比例(1%-10%)
}

// GetID 获取唯一标识符
func (d DPoSDelegate) GetID() string { return d.ID }

// GetMechanism 获取所属共识机制
func (d DPoSDelegate) GetMechanism() Mechanism { return DPoS }

// String 实现Stringer接口
func (d DPoSDelegate) String() string {
	return fmt.Sprintf("DPoS代理 %s (得票: %d, 声誉: %d/100, 佣金: %.1f%%)",
		d.ID, d.VoteCount, d.ReputationScore, d.CommissionRate*100)
}
