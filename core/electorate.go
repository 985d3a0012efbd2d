package core

import (
	"fmt"
	"math/rand"

	"consensim/config"
	"consensim/types"
)

// electorate.go
// DPoS选民模拟
// 持币者把全部余额投给某个代理, 代理得票数 = 收到的余额之和

// Voter 持币选民
type Voter struct {
	ID      string // 选民标识
	Balance int    // 持币量, 投票时全额计权
}

// Electorate 一次投票的选民集合
// 普通选民若干加一个大户, 模拟持币分布的不均衡
type Electorate struct {
	Voters []Voter
}

// NewElectorate 生成默认规模的选民集合
func NewElectorate(rng *rand.Rand) Electorate {
	rng = ensureRNG(rng)

	voters := make([]Voter, 0, config.ElectorateSize+1)
	for i := 0; i < config.ElectorateSize; i++ {
		voters = append(voters, Voter{
			ID:      fmt.Sprintf("HOLDER%03d", i+1),
			Balance: uniformInt(rng, config.VoterBalanceMin, config.VoterBalanceMax),
		})
	}

	// 大户
	voters = append(voters, Voter{
		ID:      "WHALE001",
		Balance: uniformInt(rng, config.WhaleBalanceMin, config.WhaleBalanceMax),
	})

	return Electorate{Voters: voters}
}

// TotalBalance 选民总持币量
func (e Electorate) TotalBalance() int {
	total := 0
	for _, voter := range e.Voters {
		total += voter.Balance
	}
	return total
}

// CastVotes 每个选民把全部余额投给均匀随机选中的代理
// 返回与代理数量等长的得票数组, 总和等于TotalBalance
func (e Electorate) CastVotes(delegateCount int, rng *rand.Rand) []int {
	rng = ensureRNG(rng)

	votes := make([]int, delegateCount)
	for _, voter := range e.Voters {
		votes[rng.Intn(delegateCount)] += voter.Balance
	}
	return votes
}

// RerollVotes 保留代理身份, 重新模拟一轮选民投票
// 返回全新的种群, 原种群保持不变(重掷=重建, 不是原地修改)
// DPoS在固定种群下每轮结果相同, 轮间变化依赖本函数
func RerollVotes(pool *types.Population[types.DPoSDelegate], rng *rand.Rand) (*types.Population[types.DPoSDelegate], error) {
	if pool == nil || pool.Size() < 1 {
		return nil, types.NewInvalidConfig("无法对空种群重掷投票")
	}
	if pool.Mechanism != types.DPoS {
		return nil, types.NewInvalidConfig("重掷投票只适用于DPoS种群, 实际: %s", pool.Mechanism)
	}
	rng = ensureRNG(rng)

	electorate := NewElectorate(rng)
	votes := electorate.CastVotes(pool.Size(), rng)

	delegates := make([]types.DPoSDelegate, pool.Size())
	for i, delegate := range pool.Members {
		delegate.VoteCount = votes[i]
		delegates[i] = delegate
	}

	return types.NewPopulation(types.DPoS, delegates), nil
}
