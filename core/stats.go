package core

import (
	"iter"

	"consensim/config"
	"consensim/types"
)

// stats.go
// 轮次结果聚合

// mechanismProfiles 机制静态标注查表
// 定性评级是固定常量, 不由模拟数据计算
var mechanismProfiles = map[types.Mechanism]types.MechanismProfile{
	types.PoW: {
		EnergyUse:        types.LevelHigh,
		SecurityLevel:    types.LevelHigh,
		Decentralization: types.LevelMedium,
		BlockReward:      config.PoWBlockReward,
	},
	types.PoS: {
		EnergyUse:        types.LevelLow,
		SecurityLevel:    types.LevelHigh,
		Decentralization: types.LevelHigh,
		BlockReward:      config.PoSBlockReward,
	},
	types.DPoS: {
		EnergyUse:        types.LevelVeryLow,
		SecurityLevel:    types.LevelMedium,
		Decentralization: types.LevelMedium,
		BlockReward:      config.DPoSBlockReward,
	},
}

// ProfileFor 获取机制的静态标注
func ProfileFor(m types.Mechanism) types.MechanismProfile {
	return mechanismProfiles[m]
}

// Aggregate 把轮次结果归约为对比报告
// 纯函数: 没有隐藏状态, 同一输入序列聚合两次结果完全一致
// 流式消费, 大轮数下不需要物化全部结果
func Aggregate(outcomes iter.Seq[types.RoundOutcome]) (*types.ComparisonReport, error) {
	report := &types.ComparisonReport{
		PerMechanism: make(map[types.Mechanism]*types.MechanismStats),
	}
	metricSums := make(map[types.Mechanism]float64)
	total := 0

	for outcome := range outcomes {
		total++

		stats, ok := report.PerMechanism[outcome.Mechanism]
		if !ok {
			stats = &types.MechanismStats{
				Mechanism:     outcome.Mechanism,
				WinCounts:     make(map[string]int),
				RewardsEarned: make(map[string]float64),
				Profile:       ProfileFor(outcome.Mechanism),
			}
			report.PerMechanism[outcome.Mechanism] = stats
		}

		stats.Rounds++
		stats.WinCounts[outcome.WinnerID]++
		metricSums[outcome.Mechanism] += outcome.WinningMetric
	}

	if total == 0 {
		return nil, types.NewInvalidConfig("结果序列为空, 无法聚合")
	}

	for mechanism, stats := range report.PerMechanism {
		stats.AvgWinningMetric = metricSums[mechanism] / float64(stats.Rounds)

		// 奖励 = 获胜次数 × 该机制的固定块奖励
		for id, wins := range stats.WinCounts {
			stats.RewardsEarned[id] = float64(wins) * stats.Profile.BlockReward
		}
	}

	return report, nil
}
