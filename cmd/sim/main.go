package main

import (
	"flag"
	"fmt"
	"os"
	"slices"
	"sort"
	"time"

	"consensim/config"
	"consensim/core"
	"consensim/report"
	"consensim/types"
	"consensim/utils"
)

var (
	// ================================
	// 模拟配置
	// ================================
	mechanismFlag = flag.String("mechanism", "all", "共识机制: pow|pos|dpos|all")
	poolSize      = flag.Int("validators", config.DefaultPoolSize, "每个种群的验证者数量")
	rounds        = flag.Int("rounds", config.DefaultRounds, "模拟轮数")
	seed          = flag.Int64("seed", 0, "随机种子(0表示使用当前时间)")
	reroll        = flag.Bool("reroll", false, "DPoS每轮重新模拟选民投票")

	// ================================
	// 输出配置
	// ================================
	outputDir = flag.String("output", "", "结果导出目录(留空则不导出)")
	logLevel  = flag.Int("log", config.LogLevel, "日志级别: 0=ERROR, 1=WARN, 2=INFO, 3=DEBUG")
)

func main() {
	flag.Parse()

	logger := utils.NewLoggerWithLevel("sim", utils.LogLevel(*logLevel))

	masterSeed := *seed
	if masterSeed == 0 {
		masterSeed = time.Now().UnixNano()
	}

	mechanisms, err := parseMechanisms(*mechanismFlag)
	if err != nil {
		logger.Error("%v", err)
		flag.Usage()
		os.Exit(1)
	}

	logger.LogSection("共识机制模拟器")
	logger.Info("机制: %s", *mechanismFlag)
	logger.Info("验证者数量: %d", *poolSize)
	logger.Info("模拟轮数: %d", *rounds)
	logger.Info("随机种子: %d", masterSeed)

	// ================================
	// 逐机制模拟
	// ================================
	allOutcomes := make([]types.RoundOutcome, 0, len(mechanisms)*(*rounds))
	for _, mechanism := range mechanisms {
		// 各机制使用互不相关的派生种子
		subSeed := masterSeed + int64(mechanism)*1000003

		outcomes, err := runMechanism(logger, mechanism, *poolSize, *rounds, subSeed)
		if err != nil {
			logger.Error("%s 模拟失败: %v", mechanism, err)
			os.Exit(1)
		}
		allOutcomes = append(allOutcomes, outcomes...)
	}

	// ================================
	// 聚合与渲染
	// ================================
	comparison, err := core.Aggregate(slices.Values(allOutcomes))
	if err != nil {
		logger.Error("聚合失败: %v", err)
		os.Exit(1)
	}

	printReport(comparison, *rounds)

	// ================================
	// 结果导出
	// ================================
	if *outputDir != "" {
		exporter := report.NewExporter(*outputDir, logger)
		if _, err := exporter.ExportOutcomes(allOutcomes); err != nil {
			logger.Error("导出轮次结果失败: %v", err)
			os.Exit(1)
		}
		if _, err := exporter.ExportReport(comparison); err != nil {
			logger.Error("导出对比报告失败: %v", err)
			os.Exit(1)
		}
	}

	logger.Info("✓ 模拟完成")
}

// parseMechanisms 解析机制选项
func parseMechanisms(s string) ([]types.Mechanism, error) {
	if s == "all" {
		return types.AllMechanisms(), nil
	}
	mechanism, err := types.ParseMechanism(s)
	if err != nil {
		return nil, err
	}
	return []types.Mechanism{mechanism}, nil
}

// runMechanism 构建种群并执行多轮模拟
func runMechanism(logger *utils.Logger, mechanism types.Mechanism, size, roundCount int, subSeed int64) ([]types.RoundOutcome, error) {
	switch mechanism {
	case types.PoW:
		pool, err := core.BuildPoWPoolFromSeed(size, subSeed)
		if err != nil {
			return nil, err
		}
		logger.LogSubsection("PoW 矿工种群")
		for _, miner := range pool.Members {
			fmt.Printf("  %s\n", miner)
		}
		seq, err := core.RunRounds(core.NewPoWStrategy(), pool, roundCount, subSeed+1)
		if err != nil {
			return nil, err
		}
		return core.CollectRounds(seq), nil

	case types.PoS:
		pool, err := core.BuildPoSPoolFromSeed(size, subSeed)
		if err != nil {
			return nil, err
		}
		logger.LogSubsection("PoS 质押者种群")
		for _, staker := range pool.Members {
			fmt.Printf("  %s (有效权重: %.0f)\n", staker, core.StakeWeight(staker))
		}
		seq, err := core.RunRounds(core.NewPoSStrategy(), pool, roundCount, subSeed+1)
		if err != nil {
			return nil, err
		}
		return core.CollectRounds(seq), nil

	case types.DPoS:
		pool, err := core.BuildDPoSPoolFromSeed(size, subSeed)
		if err != nil {
			return nil, err
		}
		logger.LogSubsection("DPoS 代理种群")
		for _, delegate := range pool.Members {
			fmt.Printf("  %s\n", delegate)
		}
		if !*reroll {
			logger.Info("提示: 固定种群下DPoS每轮胜者相同, 使用 -reroll 让投票逐轮变化")
			seq, err := core.RunRounds(core.NewDPoSStrategy(), pool, roundCount, subSeed+1)
			if err != nil {
				return nil, err
			}
			return core.CollectRounds(seq), nil
		}
		seq, err := core.RunRerollRounds(pool, roundCount, subSeed+1)
		if err != nil {
			return nil, err
		}
		return core.CollectRounds(seq), nil

	default:
		return nil, types.NewInvalidConfig("未知的共识机制: %d", mechanism)
	}
}

// printReport 渲染对比报告
func printReport(comparison *types.ComparisonReport, roundCount int) {
	fmt.Println("\n=================================================")
	fmt.Printf("  %d 轮模拟对比报告\n", roundCount)
	fmt.Println("=================================================")

	for _, mechanism := range types.AllMechanisms() {
		stats := comparison.GetStats(mechanism)
		if stats == nil {
			continue
		}

		fmt.Printf("\n--- %s ---\n", mechanism)
		fmt.Printf("轮数: %d | 平均获胜指标: %.2f\n", stats.Rounds, stats.AvgWinningMetric)
		fmt.Printf("能耗: %s | 安全: %s | 去中心化: %s | 块奖励: %.2f\n",
			stats.Profile.EnergyUse,
			stats.Profile.SecurityLevel,
			stats.Profile.Decentralization,
			stats.Profile.BlockReward)

		// 按ID排序输出获胜分布
		ids := make([]string, 0, len(stats.WinCounts))
		for id := range stats.WinCounts {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		for _, id := range ids {
			wins := stats.WinCounts[id]
			fmt.Printf("  %s: %d/%d 块 (%.1f%%), 累计奖励 %.2f\n",
				id, wins, stats.Rounds,
				float64(wins)/float64(stats.Rounds)*100,
				stats.RewardsEarned[id])
		}
	}
	fmt.Println()
}
