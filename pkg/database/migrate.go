package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// 课程快照表的迁移记录单独存放，与同库其他应用的 schema_migrations 互不干扰
const migrationsTable = "planner_schema_migrations"

// RunMigrations 执行数据库迁移，应用所有未执行的迁移并返回当前版本
// 不关闭传入的 db：迁移实例的 Close 会连带关闭 *sql.DB
func RunMigrations(db *sql.DB, logger *zap.Logger) (uint, error) {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return 0, fmt.Errorf("加载迁移文件失败: %w", err)
	}
	defer source.Close()

	driver, err := postgres.WithInstance(db, &postgres.Config{MigrationsTable: migrationsTable})
	if err != nil {
		return 0, fmt.Errorf("创建迁移驱动失败: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return 0, fmt.Errorf("初始化迁移实例失败: %w", err)
	}
	m.Log = newMigrateLogger(logger)

	start := time.Now()
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return 0, fmt.Errorf("执行迁移失败: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return 0, fmt.Errorf("读取迁移版本失败: %w", err)
	}
	if dirty {
		return version, fmt.Errorf("数据库迁移处于 dirty 状态 (version=%d)，需人工修复", version)
	}

	logger.Info("数据库迁移完成",
		zap.Uint("version", version),
		zap.String("table", migrationsTable),
		zap.Duration("elapsed", time.Since(start)),
	)
	return version, nil
}

// migrateLogger 将 golang-migrate 的日志转发到 zap
type migrateLogger struct {
	logger  *zap.Logger
	verbose bool
}

func newMigrateLogger(logger *zap.Logger) *migrateLogger {
	return &migrateLogger{
		logger:  logger.Named("migrate"),
		verbose: logger.Core().Enabled(zap.DebugLevel),
	}
}

// Printf 实现 migrate.Logger
func (l *migrateLogger) Printf(format string, v ...interface{}) {
	l.logger.Info(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

// Verbose 实现 migrate.Logger，仅在 debug 级别输出逐条迁移日志
func (l *migrateLogger) Verbose() bool {
	return l.verbose
}
