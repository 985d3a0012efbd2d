package types

// outcome.go
// 轮次结果与对比报告数据结构

// RoundOutcome 单轮选择结果
// 带轮次序号, 因此聚合顺序不影响正确性
type RoundOutcome struct {
	Mechanism     Mechanism `json:"mechanism"`      // 所属机制
	WinnerID      string    `json:"winner_id"`      // 胜出验证者ID
	WinningMetric float64   `json:"winning_metric"` // 决定胜出的指标(尝试次数/有效权重/得票数)
	RoundIndex    int       `json:"round_index"`    // 轮次序号(从0开始)
}

// QualitativeLevel 定性评级
type QualitativeLevel string

const (
	LevelVeryLow QualitativeLevel = "Very Low"
	LevelLow     QualitativeLevel = "Low"
	LevelMedium  QualitativeLevel = "Medium"
	LevelHigh    QualitativeLevel = "High"
)

// MechanismProfile 机制的静态标注
// 固定查表常量, 不由模拟数据计算得出
type MechanismProfile struct {
	EnergyUse        QualitativeLevel `json:"energy_use"`       // 能耗水平
	SecurityLevel    QualitativeLevel `json:"security_level"`   // 安全水平
	Decentralization QualitativeLevel `json:"decentralization"` // 去中心化程度
	BlockReward      float64          `json:"block_reward"`     // 每块固定奖励(模拟值)
}

// MechanismStats 单机制聚合统计
type MechanismStats struct {
	Mechanism        Mechanism          `json:"mechanism"`
	Rounds           int                `json:"rounds"`             // 参与聚合的轮数
	WinCounts        map[string]int     `json:"win_counts"`         // 验证者ID -> 获胜次数
	AvgWinningMetric float64            `json:"avg_winning_metric"` // 获胜指标的算术平均
	RewardsEarned    map[string]float64 `json:"rewards_earned"`     // 验证者ID -> 累计奖励(获胜次数×固定块奖励)
	Profile          MechanismProfile   `json:"profile"`            // 静态标注
}

// ComparisonReport 多机制对比报告
// 纯归约结果, 只读, 渲染后即丢弃
type ComparisonReport struct {
	PerMechanism map[Mechanism]*MechanismStats `json:"per_mechanism"`
}

// GetStats 获取指定机制的统计(不存在返回nil)
func (r *ComparisonReport) GetStats(m Mechanism) *MechanismStats {
	return r.PerMechanism[m]
}

// TopWinner 获胜次数最多的验证者ID
// 次数相同时取ID更小者, 保证确定性
func (s *MechanismStats) TopWinner() string {
	top := ""
	for id, wins := range s.WinCounts {
		if top == "" || wins > s.WinCounts[top] ||
			(wins == s.WinCounts[top] && id < top) {
			top = id
		}
	}
	return top
}
