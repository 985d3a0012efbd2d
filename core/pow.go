package core

import (
	"math/rand"

	"consensim/config"
	"consensim/types"
)

// pow.go
// PoW策略: 模拟算力竞争
// 每个矿工抽取一个与算力成正比的"尝试次数", 最高者胜出

// PoWStrategy 工作量证明选择策略
type PoWStrategy struct{}

// NewPoWStrategy 创建PoW策略
func NewPoWStrategy() PoWStrategy { return PoWStrategy{} }

// GetMechanism 策略对应的共识机制
func (PoWStrategy) GetMechanism() types.Mechanism { return types.PoW }

// Validate 校验种群
func (s PoWStrategy) Validate(pool *types.Population[types.PoWMiner]) error {
	return validatePool(pool, types.PoW)
}

// SelectWinner 模拟一轮挖矿竞争
// 记录的获胜指标是尝试次数; 能耗/安全属于聚合器的静态标注, 这里不计算
func (s PoWStrategy) SelectWinner(pool *types.Population[types.PoWMiner], rng *rand.Rand) (types.RoundOutcome, error) {
	if err := s.Validate(pool); err != nil {
		return types.RoundOutcome{}, err
	}
	return s.pick(pool, ensureRNG(rng)), nil
}

func (s PoWStrategy) pick(pool *types.Population[types.PoWMiner], rng *rand.Rand) types.RoundOutcome {
	attempts := make([]float64, pool.Size())
	for i, miner := range pool.Members {
		attempts[i] = simulateAttempts(miner, rng)
	}

	winner, metric := pickHighestAttempts(pool.Members, attempts)

	return types.RoundOutcome{
		Mechanism:     types.PoW,
		WinnerID:      winner.ID,
		WinningMetric: metric,
	}
}

// simulateAttempts 抽取一轮的模拟尝试次数
// 期望值与算力成正比, 运气乘数在[1, AttemptLuckMax]内离散取值
func simulateAttempts(miner types.PoWMiner, rng *rand.Rand) float64 {
	luck := 1 + rng.Intn(config.AttemptLuckMax)
	return miner.HashPowerMHs * float64(luck)
}

// pickHighestAttempts 选出尝试次数严格最高的矿工
// 打平时(离散乘数下算力相同的矿工可能打平)取ID更小者, 保证确定性
func pickHighestAttempts(miners []types.PoWMiner, attempts []float64) (types.PoWMiner, float64) {
	best := 0
	for i := 1; i < len(miners); i++ {
		if attempts[i] > attempts[best] ||
			(attempts[i] == attempts[best] && miners[i].ID < miners[best].ID) {
			best = i
		}
	}
	return miners[best], attempts[best]
}
