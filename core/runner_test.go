package core

import (
	"testing"

	"github.com/stretchr/testify/require"

	"consensim/types"
)

// runner_test.go
// 多轮执行器测试

func TestRunRoundsProducesIndexedOutcomes(t *testing.T) {
	pool, err := BuildPoWPoolFromSeed(4, 17)
	require.NoError(t, err)

	seq, err := RunRounds(NewPoWStrategy(), pool, 20, 100)
	require.NoError(t, err)

	outcomes := CollectRounds(seq)
	require.Len(t, outcomes, 20)

	for i, outcome := range outcomes {
		require.Equal(t, i, outcome.RoundIndex)
		require.Equal(t, types.PoW, outcome.Mechanism)
		require.True(t, pool.Contains(outcome.WinnerID))
	}
}

func TestRunRoundsRejectsInvalidRoundCount(t *testing.T) {
	pool, err := BuildPoWPoolFromSeed(4, 17)
	require.NoError(t, err)

	_, err = RunRounds(NewPoWStrategy(), pool, 0, 100)
	require.True(t, types.IsInvalidConfig(err))

	_, err = RunRounds(NewPoWStrategy(), pool, -5, 100)
	require.True(t, types.IsInvalidConfig(err))
}

func TestRunRoundsValidatesPoolAtEntry(t *testing.T) {
	// 种群校验在入口完成, 而不是首次消费时
	_, err := RunRounds(NewPoWStrategy(), nil, 10, 100)
	require.True(t, types.IsInvalidConfig(err))

	zeroWeights := posPool(types.PoSStaker{ID: "POS001", StakeAmount: 0})
	_, err = RunRounds(NewPoSStrategy(), zeroWeights, 10, 100)
	require.True(t, types.IsInvalidConfig(err))
}

func TestRunRoundsReproducibleUnderSeed(t *testing.T) {
	pool, err := BuildPoSPoolFromSeed(4, 17)
	require.NoError(t, err)

	first, err := RunRounds(NewPoSStrategy(), pool, 50, 7)
	require.NoError(t, err)
	second, err := RunRounds(NewPoSStrategy(), pool, 50, 7)
	require.NoError(t, err)

	// 同一主种子重放得到逐轮一致的结果
	require.Equal(t, CollectRounds(first), CollectRounds(second))
}

func TestRunRoundsLazyPartialConsumption(t *testing.T) {
	pool, err := BuildPoSPoolFromSeed(4, 17)
	require.NoError(t, err)

	seq, err := RunRounds(NewPoSStrategy(), pool, 1000, 7)
	require.NoError(t, err)

	// 只消费前3轮
	partial := make([]types.RoundOutcome, 0, 3)
	for outcome := range seq {
		partial = append(partial, outcome)
		if len(partial) == 3 {
			break
		}
	}
	require.Len(t, partial, 3)

	// 每轮随机源由主种子+轮次序号独立推导,
	// 部分消费得到的前缀与完整运行一致
	full, err := RunRounds(NewPoSStrategy(), pool, 1000, 7)
	require.NoError(t, err)
	require.Equal(t, CollectRounds(full)[:3], partial)
}

func TestRunRoundsDPoSFixedPoolIsConstant(t *testing.T) {
	pool, err := BuildDPoSPoolFromSeed(4, 17)
	require.NoError(t, err)

	seq, err := RunRounds(NewDPoSStrategy(), pool, 10, 7)
	require.NoError(t, err)

	outcomes := CollectRounds(seq)
	// 固定种群下DPoS每轮胜者和指标完全相同(已知限制)
	for _, outcome := range outcomes {
		require.Equal(t, outcomes[0].WinnerID, outcome.WinnerID)
		require.Equal(t, outcomes[0].WinningMetric, outcome.WinningMetric)
	}
}

func TestRunRerollRounds(t *testing.T) {
	pool, err := BuildDPoSPoolFromSeed(4, 17)
	require.NoError(t, err)

	originalVotes := make([]int, pool.Size())
	for i, delegate := range pool.Members {
		originalVotes[i] = delegate.VoteCount
	}

	seq, err := RunRerollRounds(pool, 30, 7)
	require.NoError(t, err)

	outcomes := CollectRounds(seq)
	require.Len(t, outcomes, 30)
	for i, outcome := range outcomes {
		require.Equal(t, i, outcome.RoundIndex)
		require.True(t, pool.Contains(outcome.WinnerID))
	}

	// 原种群自始至终不变
	for i, delegate := range pool.Members {
		require.Equal(t, originalVotes[i], delegate.VoteCount)
	}

	// 同一主种子重放一致
	replay, err := RunRerollRounds(pool, 30, 7)
	require.NoError(t, err)
	require.Equal(t, outcomes, CollectRounds(replay))

	_, err = RunRerollRounds(pool, 0, 7)
	require.True(t, types.IsInvalidConfig(err))
}

// 端到端场景: 固定种子构建的DPoS种群得票确定,
// 同一种群对象上的选择可复现
func TestEndToEndDeterministicDPoSScenario(t *testing.T) {
	pool, err := BuildDPoSPoolFromSeed(3, 1)
	require.NoError(t, err)
	require.Equal(t, 3, pool.Size())

	rebuilt, err := BuildDPoSPoolFromSeed(3, 1)
	require.NoError(t, err)
	require.Equal(t, pool.Members, rebuilt.Members)

	strategy := NewDPoSStrategy()
	first, err := strategy.SelectWinner(pool, nil)
	require.NoError(t, err)
	second, err := strategy.SelectWinner(pool, nil)
	require.NoError(t, err)
	require.Equal(t, first, second)
}
