package core

import (
	"math/rand"
	"sort"

	"consensim/types"
)

// dpos.go
// DPoS策略: 得票最高的代理当选
// 固定输入下完全确定, 不消耗随机数

// DPoSStrategy 委托权益证明选择策略
type DPoSStrategy struct{}

// NewDPoSStrategy 创建DPoS策略
func NewDPoSStrategy() DPoSStrategy { return DPoSStrategy{} }

// GetMechanism 策略对应的共识机制
func (DPoSStrategy) GetMechanism() types.Mechanism { return types.DPoS }

// Validate 校验种群
func (s DPoSStrategy) Validate(pool *types.Population[types.DPoSDelegate]) error {
	return validatePool(pool, types.DPoS)
}

// SelectWinner 选出得票最高的代理
// 同一种群每轮结果相同; 轮间变化需要重建选民投票(见RerollVotes)
// 记录的获胜指标是得票数
func (s DPoSStrategy) SelectWinner(pool *types.Population[types.DPoSDelegate], rng *rand.Rand) (types.RoundOutcome, error) {
	if err := s.Validate(pool); err != nil {
		return types.RoundOutcome{}, err
	}
	return s.pick(pool, rng), nil
}

func (s DPoSStrategy) pick(pool *types.Population[types.DPoSDelegate], _ *rand.Rand) types.RoundOutcome {
	winner := rankDelegates(pool.Members)[0]

	return types.RoundOutcome{
		Mechanism:     types.DPoS,
		WinnerID:      winner.ID,
		WinningMetric: float64(winner.VoteCount),
	}
}

// rankDelegates 按当选优先级排序代理
// 排序键: 得票数 → 声誉分 → ID(保证确定性, 从不随意取舍)
func rankDelegates(delegates []types.DPoSDelegate) []types.DPoSDelegate {
	ranked := make([]types.DPoSDelegate, len(delegates))
	copy(ranked, delegates)

	sort.Slice(ranked, func(i, j int) bool {
		// 优先按得票数排序
		if ranked[i].VoteCount != ranked[j].VoteCount {
			return ranked[i].VoteCount > ranked[j].VoteCount
		}
		// 得票相同时按声誉分排序
		if ranked[i].ReputationScore != ranked[j].ReputationScore {
			return ranked[i].ReputationScore > ranked[j].ReputationScore
		}
		// 最后按ID排序(保证所有调用结果一致)
		return ranked[i].ID < ranked[j].ID
	})

	return ranked
}
