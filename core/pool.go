package core

import (
	"fmt"
	"math/rand"
	"time"

	"consensim/config"
	"consensim/types"
)

// pool.go
// 验证者种群生成
// 属性在构建时从文档范围内均匀随机生成一次, 之后不再变化

// ensureRNG rng为空时退化为进程级时间种子
// 注入rng是为了测试可复现, 省略则使用一次性随机源
func ensureRNG(rng *rand.Rand) *rand.Rand {
	if rng == nil {
		return rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return rng
}

// uniformFloat [min,max)内均匀随机浮点
func uniformFloat(rng *rand.Rand, min, max float64) float64 {
	return min + rng.Float64()*(max-min)
}

// uniformInt [min,max]内均匀随机整数
func uniformInt(rng *rand.Rand, min, max int) int {
	return min + rng.Intn(max-min+1)
}

// validatePoolSize 种群大小入口校验
func validatePoolSize(size int) error {
	if size < 1 {
		return types.NewInvalidConfig("种群大小必须不小于1, 实际: %d", size)
	}
	return nil
}

// ================================
// PoW 种群
// ================================

// BuildPoWPool 生成PoW矿工种群
func BuildPoWPool(size int, rng *rand.Rand) (*types.Population[types.PoWMiner], error) {
	if err := validatePoolSize(size); err != nil {
		return nil, err
	}
	rng = ensureRNG(rng)

	miners := make([]types.PoWMiner, size)
	for i := range miners {
		miners[i] = types.PoWMiner{
			ID:                     fmt.Sprintf("POW%03d", i+1),
			HashPowerMHs:           uniformFloat(rng, config.HashPowerMin, config.HashPowerMax),
			ElectricityCostPerHash: uniformFloat(rng, config.ElectricityCostMin, config.ElectricityCostMax),
		}
	}

	return types.NewPopulation(types.PoW, miners), nil
}

// BuildPoWPoolFromSeed 用固定种子生成PoW种群(可复现)
func BuildPoWPoolFromSeed(size int, seed int64) (*types.Population[types.PoWMiner], error) {
	return BuildPoWPool(size, rand.New(rand.NewSource(seed)))
}

// ================================
// PoS 种群
// ================================

// BuildPoSPool 生成PoS质押者种群
func BuildPoSPool(size int, rng *rand.Rand) (*types.Population[types.PoSStaker], error) {
	if err := validatePoolSize(size); err != nil {
		return nil, err
	}
	rng = ensureRNG(rng)

	stakers := make([]types.PoSStaker, size)
	for i := range stakers {
		stakers[i] = types.PoSStaker{
			ID:           fmt.Sprintf("POS%03d", i+1),
			StakeAmount:  uniformInt(rng, config.StakeMin, config.StakeMax),
			StakeAgeDays: rng.Intn(config.StakeAgeMaxDays + 1),
			SlashingRisk: config.SlashingRisk,
		}
	}

	return types.NewPopulation(types.PoS, stakers), nil
}

// BuildPoSPoolFromSeed 用固定种子生成PoS种群(可复现)
func BuildPoSPoolFromSeed(size int, seed int64) (*types.Population[types.PoSStaker], error) {
	return BuildPoSPool(size, rand.New(rand.NewSource(seed)))
}

// ================================
// DPoS 种群
// ================================

// BuildDPoSPool 生成DPoS代理种群
// 得票数不是直接随机, 而是由模拟选民投票产生(见electorate.go)
func BuildDPoSPool(size int, rng *rand.Rand) (*types.Population[types.DPoSDelegate], error) {
	if err := validatePoolSize(size); err != nil {
		return nil, err
	}
	rng = ensureRNG(rng)

	delegates := make([]types.DPoSDelegate, size)
	for i := range delegates {
		delegates[i] = types.DPoSDelegate{
			ID:              fmt.Sprintf("DPOS%03d", i+1),
			ReputationScore: clampReputation(uniformInt(rng, config.ReputationMin, config.ReputationMax)),
			CommissionRate:  uniformFloat(rng, config.CommissionRateMin, config.CommissionRateMax),
		}
	}

	// 模拟一轮选民投票填充得票数
	electorate := NewElectorate(rng)
	votes := electorate.CastVotes(size, rng)
	for i := range delegates {
		delegates[i].VoteCount = votes[i]
	}

	return types.NewPopulation(types.DPoS, delegates), nil
}

// BuildDPoSPoolFromSeed 用固定种子生成DPoS种群(可复现)
func BuildDPoSPoolFromSeed(size int, seed int64) (*types.Population[types.DPoSDelegate], error) {
	return BuildDPoSPool(size, rand.New(rand.NewSource(seed)))
}

// clampReputation 声誉分截断到[0, ReputationCap]
func clampReputation(score int) int {
	if score < 0 {
		return 0
	}
	if score > config.ReputationCap {
		return config.ReputationCap
	}
	return score
}
