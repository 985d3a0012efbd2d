package types

import (
	"errors"
	"fmt"
)

// errors.go
// 模拟器错误定义

// InvalidConfigError 配置无效错误
// 统一覆盖所有入参校验失败: 种群大小、轮数、全零权重分布、空结果序列
// 全部在操作入口同步检测, 不存在运行中途的可恢复失败
type InvalidConfigError struct {
	Reason string
}

// Error 实现error接口
func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config: %s", e.Reason)
}

// NewInvalidConfig 创建配置无效错误
func NewInvalidConfig(format string, args ...interface{}) error {
	return &InvalidConfigError{Reason: fmt.Sprintf(format, args...)}
}

// IsInvalidConfig 判断错误是否为配置无效
func IsInvalidConfig(err error) bool {
	var target *InvalidConfigError
	return errors.As(err, &target)
}
