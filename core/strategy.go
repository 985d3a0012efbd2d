package core

import (
	"math/rand"

	"consensim/types"
)

// strategy.go
// 胜者选择策略统一接口

// Strategy 单一机制的胜者选择策略
// 每个实现只消费与之匹配的验证者变体, 属性集互不相交
type Strategy[V types.Validator] interface {
	// GetMechanism 策略对应的共识机制
	GetMechanism() types.Mechanism

	// Validate 同步校验种群是否可用于本策略
	// 所有InvalidConfig都在这里检出, 选择过程本身不会失败
	Validate(pool *types.Population[V]) error

	// SelectWinner 执行一轮选择
	// 随机性全部来自注入的rng, 保证可复现; rng为空时使用时间种子
	SelectWinner(pool *types.Population[V], rng *rand.Rand) (types.RoundOutcome, error)

	// pick 在已通过校验的种群上执行选择
	// 仅供包内RoundRunner在入口校验后逐轮调用
	pick(pool *types.Population[V], rng *rand.Rand) types.RoundOutcome
}

// validatePool 策略通用的种群校验
func validatePool[V types.Validator](pool *types.Population[V], want types.Mechanism) error {
	if pool == nil || pool.Size() < 1 {
		return types.NewInvalidConfig("种群为空")
	}
	if pool.Mechanism != want {
		return types.NewInvalidConfig("种群机制不匹配: 期望 %s, 实际 %s", want, pool.Mechanism)
	}
	return nil
}
