package config

// constants.go
// 共识机制模拟器配置参数

// ================================
// PoW 矿工配置
// ================================

const (
	// HashPowerMin/HashPowerMax 算力生成范围(MH/s)
	HashPowerMin = 50.0
	HashPowerMax = 200.0

	// ElectricityCostMin/ElectricityCostMax 每哈希电力成本范围
	ElectricityCostMin = 0.05
	ElectricityCostMax = 0.15

	// AttemptLuckMax 挖矿运气乘数上限
	// 一轮的尝试次数 = 算力 × [1, AttemptLuckMax]内的随机整数
	// 乘数离散取值, 算力相同的矿工可能打平
	AttemptLuckMax = 10
)

// ================================
// PoS 质押配置
// ================================

const (
	// StakeMin/StakeMax 质押量生成范围(代币)
	StakeMin = 10000
	StakeMax = 50000

	// StakeAgeMaxDays 质押天数生成上限
	StakeAgeMaxDays = 365

	// AgeBonusCap 质押时长加成上限
	// 有效权重 = 质押量 × (1 + min(天数/AgeBonusFullDays, AgeBonusCap))
	// 封顶避免超长质押无限膨胀
	AgeBonusCap = 0.5

	// AgeBonusFullDays 加成线性增长的分母(天)
	AgeBonusFullDays = 365

	// SlashingRisk 作恶被罚没的风险系数
	SlashingRisk = 0.01
)

// ================================
// DPoS 代理配置
// ================================

const (
	// ReputationMin/ReputationMax 声誉分生成范围
	ReputationMin = 70
	ReputationMax = 95

	// ReputationCap 声誉分绝对上限
	ReputationCap = 100

	// CommissionRateMin/CommissionRateMax 代理佣金比例范围
	CommissionRateMin = 0.01
	CommissionRateMax = 0.10
)

// ================================
// DPoS 选民配置
// ================================

const (
	// ElectorateSize 普通持币选民数量(不含大户)
	ElectorateSize = 5

	// VoterBalanceMin/VoterBalanceMax 普通选民持币范围
	VoterBalanceMin = 1000
	VoterBalanceMax = 10000

	// WhaleBalanceMin/WhaleBalanceMax 大户持币范围
	WhaleBalanceMin = 50000
	WhaleBalanceMax = 100000
)

// ================================
// 奖励配置
// ================================

const (
	// PoWBlockReward PoW固定出块奖励
	PoWBlockReward = 6.25

	// PoSBlockReward PoS出块奖励(交易手续费, 模拟固定值)
	PoSBlockReward = 0.3

	// DPoSBlockReward DPoS出块奖励(与投票者分成前, 模拟固定值)
	DPoSBlockReward = 0.5
)

// ================================
// 系统配置
// ================================

const (
	// DefaultPoolSize 默认种群大小
	DefaultPoolSize = 4

	// DefaultRounds 默认模拟轮数
	DefaultRounds = 5

	// LogLevel 默认日志级别
	// 0: ERROR, 1: WARN, 2: INFO, 3: DEBUG
	LogLevel = 2
)
