package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"consensim/types"
	"consensim/utils"
)

// export.go
// 模拟结果导出(CSV + JSON)

// Exporter 结果导出器
// 每个导出会话带唯一ID, 多次运行写同一目录也不会互相覆盖
type Exporter struct {
	OutputDir string
	SessionID string
	Logger    *utils.Logger
}

// NewExporter 创建导出器
func NewExporter(outputDir string, logger *utils.Logger) *Exporter {
	return &Exporter{
		OutputDir: outputDir,
		SessionID: uuid.New().String(),
		Logger:    logger,
	}
}

// ExportOutcomes 逐轮结果写入CSV
// 返回生成的文件路径
func (e *Exporter) ExportOutcomes(outcomes []types.RoundOutcome) (string, error) {
	if len(outcomes) == 0 {
		return "", types.NewInvalidConfig("没有可导出的轮次结果")
	}
	if err := os.MkdirAll(e.OutputDir, 0755); err != nil {
		return "", fmt.Errorf("创建输出目录失败: %w", err)
	}

	filename := filepath.Join(e.OutputDir, fmt.Sprintf("轮次结果_%s.csv", e.SessionID))
	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("创建轮次结果文件失败: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"轮次", "机制", "胜者ID", "获胜指标"}
	writer.Write(header)

	for _, outcome := range outcomes {
		row := []string{
			fmt.Sprintf("%d", outcome.RoundIndex),
			outcome.Mechanism.String(),
			outcome.WinnerID,
			fmt.Sprintf("%.2f", outcome.WinningMetric),
		}
		writer.Write(row)
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("写入轮次结果失败: %w", err)
	}

	if e.Logger != nil {
		e.Logger.Info("✓ 轮次结果: %s", filename)
	}
	return filename, nil
}

// reportEnvelope 报告JSON的外层元数据
type reportEnvelope struct {
	SessionID   string                  `json:"session_id"`
	GeneratedAt time.Time               `json:"generated_at"`
	Report      *types.ComparisonReport `json:"report"`
}

// ExportReport 对比报告写入JSON
// 返回生成的文件路径
func (e *Exporter) ExportReport(rep *types.ComparisonReport) (string, error) {
	if rep == nil || len(rep.PerMechanism) == 0 {
		return "", types.NewInvalidConfig("没有可导出的对比报告")
	}
	if err := os.MkdirAll(e.OutputDir, 0755); err != nil {
		return "", fmt.Errorf("创建输出目录失败: %w", err)
	}

	envelope := reportEnvelope{
		SessionID:   e.SessionID,
		GeneratedAt: utils.TimeNow(),
		Report:      rep,
	}

	data, err := json.MarshalIndent(envelope, "", "  ")
	if err != nil {
		return "", fmt.Errorf("序列化对比报告失败: %w", err)
	}

	filename := filepath.Join(e.OutputDir, fmt.Sprintf("对比报告_%s.json", e.SessionID))
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", fmt.Errorf("写入对比报告失败: %w", err)
	}

	if e.Logger != nil {
		e.Logger.Info("✓ 对比报告: %s", filename)
	}
	return filename, nil
}
