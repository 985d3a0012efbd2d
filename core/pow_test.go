package core

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"consensim/types"
)

// pow_test.go
// PoW策略测试

func powPool(miners ...types.PoWMiner) *types.Population[types.PoWMiner] {
	return types.NewPopulation(types.PoW, miners)
}

func TestPoWWinnerBelongsToPool(t *testing.T) {
	pool, err := BuildPoWPoolFromSeed(5, 99)
	require.NoError(t, err)

	strategy := NewPoWStrategy()
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 100; i++ {
		outcome, err := strategy.SelectWinner(pool, rng)
		require.NoError(t, err)
		require.True(t, pool.Contains(outcome.WinnerID))
		require.Equal(t, types.PoW, outcome.Mechanism)
		require.Positive(t, outcome.WinningMetric)
	}
}

func TestPoWHigherHashPowerWinsMoreOften(t *testing.T) {
	pool := powPool(
		types.PoWMiner{ID: "POW001", HashPowerMHs: 50},
		types.PoWMiner{ID: "POW002", HashPowerMHs: 200},
	)

	strategy := NewPoWStrategy()
	rng := rand.New(rand.NewSource(7))

	wins := make(map[string]int)
	for i := 0; i < 10000; i++ {
		outcome, err := strategy.SelectWinner(pool, rng)
		require.NoError(t, err)
		wins[outcome.WinnerID]++
	}

	// 算力200的矿工必须严格赢得更多轮次
	require.Greater(t, wins["POW002"], wins["POW001"])
}

func TestPoWTieBreakPrefersLowerID(t *testing.T) {
	miners := []types.PoWMiner{
		{ID: "POW003", HashPowerMHs: 100},
		{ID: "POW001", HashPowerMHs: 100},
		{ID: "POW002", HashPowerMHs: 100},
	}

	// 尝试次数全部打平时ID最小者胜出
	winner, metric := pickHighestAttempts(miners, []float64{500, 500, 500})
	require.Equal(t, "POW001", winner.ID)
	require.Equal(t, 500.0, metric)

	// 严格更高者优先于ID
	winner, metric = pickHighestAttempts(miners, []float64{500, 500, 600})
	require.Equal(t, "POW002", winner.ID)
	require.Equal(t, 600.0, metric)
}

func TestPoWAttemptsProportionalToHashPower(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	miner := types.PoWMiner{ID: "POW001", HashPowerMHs: 80}

	for i := 0; i < 1000; i++ {
		attempts := simulateAttempts(miner, rng)
		// 运气乘数在[1, 10]内, 尝试次数落在[算力, 算力×10]
		require.GreaterOrEqual(t, attempts, miner.HashPowerMHs)
		require.LessOrEqual(t, attempts, miner.HashPowerMHs*10)
	}
}

func TestPoWRejectsInvalidPool(t *testing.T) {
	strategy := NewPoWStrategy()

	_, err := strategy.SelectWinner(nil, nil)
	require.True(t, types.IsInvalidConfig(err))

	_, err = strategy.SelectWinner(powPool(), nil)
	require.True(t, types.IsInvalidConfig(err))

	// 机制标签不匹配的种群同样被拒绝
	mismatched := types.NewPopulation(types.PoS, []types.PoWMiner{{ID: "POW001", HashPowerMHs: 100}})
	_, err = strategy.SelectWinner(mismatched, nil)
	require.True(t, types.IsInvalidConfig(err))
}
