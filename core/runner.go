package core

import (
	"iter"
	"math/rand"
	"slices"

	"consensim/types"
)

// runner.go
// 多轮模拟执行器
// 每轮是对不可变输入的独立纯计算, 轮间没有共享可变状态

// RunRounds 对同一种群执行roundCount轮独立选择
// 返回惰性序列: 消费多少计算多少, 重新调用即可重放
// 第i轮使用由主种子和轮次序号推导的独立随机源,
// 因此部分消费、乱序聚合乃至并行消费都不影响可复现性
func RunRounds[V types.Validator](strategy Strategy[V], pool *types.Population[V], roundCount int, masterSeed int64) (iter.Seq[types.RoundOutcome], error) {
	if roundCount < 1 {
		return nil, types.NewInvalidConfig("轮数必须不小于1, 实际: %d", roundCount)
	}
	// 所有配置错误在入口同步检出, 序列本身不会中途失败
	if err := strategy.Validate(pool); err != nil {
		return nil, err
	}

	return func(yield func(types.RoundOutcome) bool) {
		for i := 0; i < roundCount; i++ {
			rng := roundRNG(masterSeed, i)
			outcome := strategy.pick(pool, rng)
			outcome.RoundIndex = i
			if !yield(outcome) {
				return
			}
		}
	}, nil
}

// RunRerollRounds DPoS专用: 每轮重新模拟选民投票后再选择
// 弥补DPoS在固定种群下每轮结果相同的固有限制
// 每轮基于原种群重建一个新种群, 原种群自始至终不变
func RunRerollRounds(pool *types.Population[types.DPoSDelegate], roundCount int, masterSeed int64) (iter.Seq[types.RoundOutcome], error) {
	strategy := NewDPoSStrategy()
	if roundCount < 1 {
		return nil, types.NewInvalidConfig("轮数必须不小于1, 实际: %d", roundCount)
	}
	if err := strategy.Validate(pool); err != nil {
		return nil, err
	}

	return func(yield func(types.RoundOutcome) bool) {
		for i := 0; i < roundCount; i++ {
			rng := roundRNG(masterSeed, i)
			rerolled, err := RerollVotes(pool, rng)
			if err != nil {
				// 入口已校验种群, 不可达
				return
			}
			outcome := strategy.pick(rerolled, rng)
			outcome.RoundIndex = i
			if !yield(outcome) {
				return
			}
		}
	}, nil
}

// roundRNG 由主种子和轮次序号推导该轮的独立随机源
func roundRNG(masterSeed int64, roundIndex int) *rand.Rand {
	return rand.New(rand.NewSource(masterSeed + int64(roundIndex)))
}

// CollectRounds 物化惰性序列(小轮数场景下方便多次聚合)
func CollectRounds(outcomes iter.Seq[types.RoundOutcome]) []types.RoundOutcome {
	return slices.Collect(outcomes)
}
