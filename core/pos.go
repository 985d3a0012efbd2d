package core

import (
	"math/rand"

	"consensim/config"
	"consensim/types"
)

// pos.go
// PoS策略: 按有效质押权重加权随机选择

// PoSStrategy 权益证明选择策略
type PoSStrategy struct{}

// NewPoSStrategy 创建PoS策略
func NewPoSStrategy() PoSStrategy { return PoSStrategy{} }

// GetMechanism 策略对应的共识机制
func (PoSStrategy) GetMechanism() types.Mechanism { return types.PoS }

// StakeWeight 计算质押者的有效选择权重
// 权重 = 质押量 × (1 + 时长加成)
func StakeWeight(staker types.PoSStaker) float64 {
	return float64(staker.StakeAmount) * (1 + ageBonusFactor(staker.StakeAgeDays))
}

// ageBonusFactor 质押时长加成系数
// 随天数线性增长, 到AgeBonusFullDays封顶于AgeBonusCap
func ageBonusFactor(ageDays int) float64 {
	if ageDays <= 0 {
		return 0
	}
	bonus := float64(ageDays) / config.AgeBonusFullDays
	if bonus > config.AgeBonusCap {
		return config.AgeBonusCap
	}
	return bonus
}

// Validate 校验种群
// 全零权重无法归一化, 在入口直接拒绝
func (s PoSStrategy) Validate(pool *types.Population[types.PoSStaker]) error {
	if err := validatePool(pool, types.PoS); err != nil {
		return err
	}
	if totalStakeWeight(pool.Members) <= 0 {
		return types.NewInvalidConfig("全部质押权重为零, 无法归一化")
	}
	return nil
}

// SelectWinner 执行一次加权随机选择
// 对[0, 总权重)做一次均匀采样, 落入谁的累积区间谁胜出
// 记录的获胜指标是胜者的有效权重(不是原始质押量)
func (s PoSStrategy) SelectWinner(pool *types.Population[types.PoSStaker], rng *rand.Rand) (types.RoundOutcome, error) {
	if err := s.Validate(pool); err != nil {
		return types.RoundOutcome{}, err
	}
	return s.pick(pool, ensureRNG(rng)), nil
}

func (s PoSStrategy) pick(pool *types.Population[types.PoSStaker], rng *rand.Rand) types.RoundOutcome {
	total := totalStakeWeight(pool.Members)
	draw := rng.Float64() * total

	// 浮点累加的兜底: 没有命中任何区间时取最后一个
	winner := pool.Members[len(pool.Members)-1]
	metric := StakeWeight(winner)

	cumulative := 0.0
	for _, staker := range pool.Members {
		weight := StakeWeight(staker)
		cumulative += weight
		if draw < cumulative {
			winner = staker
			metric = weight
			break
		}
	}

	return types.RoundOutcome{
		Mechanism:     types.PoS,
		WinnerID:      winner.ID,
		WinningMetric: metric,
	}
}

// totalStakeWeight 种群总有效权重
func totalStakeWeight(stakers []types.PoSStaker) float64 {
	total := 0.0
	for _, staker := range stakers {
		total += StakeWeight(staker)
	}
	return total
}
