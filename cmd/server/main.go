package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"course-planner/config"
	"course-planner/internal/api/handler"
	"course-planner/internal/api/router"
	"course-planner/internal/repository"
	"course-planner/internal/service"
	"course-planner/pkg/database"
	applogger "course-planner/pkg/logger"
	"course-planner/pkg/redis"
)

func main() {
	configPath := flag.String("config", "", "配置文件路径（默认查找 ./config/config.yaml）")
	flag.Parse()

	// 1. 加载配置
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	// 2. 初始化日志
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("应用启动中...",
		zap.Int("port", cfg.Server.Port),
		zap.String("storage_driver", cfg.Storage.Driver),
		zap.String("storage_key", cfg.Storage.Key),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. 连接 Redis（可选：连接失败时降级运行，不中断启动；redis 存储驱动下为必需）
	var rdb *redis.Client
	rdb, err = redis.NewClient(&cfg.Redis, logger)
	if err != nil {
		if cfg.Storage.Driver == config.StorageDriverRedis {
			logger.Fatal("Redis 连接失败", zap.Error(err))
		}
		logger.Warn("Redis 连接失败，限流功能将不可用", zap.Error(err))
		rdb = nil
	}

	// 4. 初始化快照存储
	var db *gorm.DB
	var snapshotRepo repository.SnapshotRepository
	switch cfg.Storage.Driver {
	case config.StorageDriverRedis:
		snapshotRepo = repository.NewRedisSnapshotRepo(rdb)
	case config.StorageDriverPostgres:
		db, err = database.NewDB(&cfg.Database, cfg.Log.Level, logger)
		if err != nil {
			logger.Fatal("数据库连接失败", zap.Error(err))
		}
		logger.Info("数据库连接成功")

		sqlDB, err := db.DB()
		if err != nil {
			logger.Fatal("获取底层 sql.DB 失败", zap.Error(err))
		}
		if _, err := database.RunMigrations(sqlDB, logger); err != nil {
			logger.Fatal("数据库迁移失败", zap.Error(err))
		}
		snapshotRepo = repository.NewSnapshotRepo(db)
	default:
		snapshotRepo, err = repository.NewFileSnapshotRepo(cfg.Storage.Dir)
		if err != nil {
			logger.Fatal("初始化数据目录失败", zap.String("dir", cfg.Storage.Dir), zap.Error(err))
		}
	}

	// 5. 依赖注入: Repository → Service → Handler
	repo := repository.NewRepository(snapshotRepo)
	svc := service.NewService(cfg, repo, applogger.ForSession(logger, &cfg.Storage))
	h := handler.NewHandler(svc)

	// 5.1 恢复已有计划；为空时导入种子计划
	ctx := context.Background()
	svc.Planner.Load(ctx)
	if cfg.Planner.SeedFile != "" && len(svc.Planner.GetCourses()) == 0 {
		if _, err := svc.Planner.ImportSeed(ctx, cfg.Planner.SeedFile); err != nil {
			logger.Warn("导入种子计划失败", zap.String("path", cfg.Planner.SeedFile), zap.Error(err))
		}
	}

	// 6. 初始化路由
	engine := router.Setup(cfg, h, rdb, logger)

	// 7. 启动 HTTP 服务器（优雅关闭）
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP 服务器已启动", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP 服务器异常", zap.Error(err))
		}
	}()

	// 8. 监听系统信号，优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("收到关闭信号，开始优雅关闭...", zap.String("signal", sig.String()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("服务器关闭异常", zap.Error(err))
	}

	// 关闭数据库连接
	if db != nil {
		if sqlDB, _ := db.DB(); sqlDB != nil {
			sqlDB.Close()
		}
	}

	// 关闭 Redis 连接
	if rdb != nil {
		rdb.Close()
	}

	logger.Info("服务器已关闭")
}
