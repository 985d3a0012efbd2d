package report

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"consensim/core"
	"consensim/types"
)

// export_test.go

func sampleOutcomes() []types.RoundOutcome {
	return []types.RoundOutcome{
		{Mechanism: types.PoW, WinnerID: "POW001", WinningMetric: 400, RoundIndex: 0},
		{Mechanism: types.PoW, WinnerID: "POW002", WinningMetric: 800, RoundIndex: 1},
		{Mechanism: types.DPoS, WinnerID: "DPOS001", WinningMetric: 50000, RoundIndex: 0},
	}
}

func TestExportOutcomesWritesCSV(t *testing.T) {
	exporter := NewExporter(t.TempDir(), nil)

	path, err := exporter.ExportOutcomes(sampleOutcomes())
	require.NoError(t, err)
	require.FileExists(t, path)

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)

	// 表头 + 每轮一行
	require.Len(t, rows, 4)
	require.Equal(t, []string{"轮次", "机制", "胜者ID", "获胜指标"}, rows[0])
	require.Equal(t, []string{"0", "PoW", "POW001", "400.00"}, rows[1])
	require.Equal(t, []string{"0", "DPoS", "DPOS001", "50000.00"}, rows[3])
}

func TestExportReportWritesJSON(t *testing.T) {
	rep, err := core.Aggregate(slices.Values(sampleOutcomes()))
	require.NoError(t, err)

	exporter := NewExporter(t.TempDir(), nil)
	path, err := exporter.ExportReport(rep)
	require.NoError(t, err)
	require.FileExists(t, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded reportEnvelope
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, exporter.SessionID, decoded.SessionID)
	require.Equal(t, rep, decoded.Report)
}

func TestExporterSessionIDInFilenames(t *testing.T) {
	dir := t.TempDir()

	// 两个会话写同一目录, 文件互不覆盖
	first := NewExporter(dir, nil)
	second := NewExporter(dir, nil)
	require.NotEqual(t, first.SessionID, second.SessionID)

	_, err := first.ExportOutcomes(sampleOutcomes())
	require.NoError(t, err)
	_, err = second.ExportOutcomes(sampleOutcomes())
	require.NoError(t, err)

	matches, err := filepath.Glob(filepath.Join(dir, "轮次结果_*.csv"))
	require.NoError(t, err)
	require.Len(t, matches, 2)
}

func TestExportRejectsEmptyInput(t *testing.T) {
	exporter := NewExporter(t.TempDir(), nil)

	_, err := exporter.ExportOutcomes(nil)
	require.True(t, types.IsInvalidConfig(err))

	_, err = exporter.ExportReport(nil)
	require.True(t, types.IsInvalidConfig(err))
}
