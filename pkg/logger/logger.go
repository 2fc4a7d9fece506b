package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"course-planner/config"
)

// NewLogger 根据配置初始化 Zap 日志实例
// 所有日志带 app 字段，时间统一为 ISO8601
func NewLogger(cfg *config.LogConfig) (*zap.Logger, error) {
	var zapCfg zap.Config

	switch cfg.Format {
	case "console":
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	default:
		zapCfg = zap.NewProductionConfig()
		zapCfg.EncoderConfig.TimeKey = "time"
	}
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("无效的日志级别 %q: %w", cfg.Level, err)
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	if len(cfg.Output) > 0 {
		zapCfg.OutputPaths = cfg.Output
	}

	logger, err := zapCfg.Build(zap.Fields(zap.String("app", "course-planner")))
	if err != nil {
		return nil, fmt.Errorf("初始化日志器失败: %w", err)
	}

	return logger.Named("planner"), nil
}

// ForSession 为选课会话附加快照存储信息，业务日志据此区分不同部署的记录
func ForSession(logger *zap.Logger, storage *config.StorageConfig) *zap.Logger {
	return logger.With(
		zap.String("storage_driver", storage.Driver),
		zap.String("storage_key", storage.Key),
	)
}
