package app

import (
	"context"
	"fmt"
	"time"

	"github.com/demiurge-app/universe-wiki-service/internal/dao"
	"github.com/demiurge-app/universe-wiki-service/internal/domain"
	"github.com/demiurge-app/universe-wiki-service/internal/service"
	"github.com/demiurge-app/universe-wiki-service/pkg/storage/local_fs"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App 应用容器，封装所有依赖和服务
type App struct {
	// 基础设施（注入的依赖）
	config *AppConfig
	logger *zap.Logger
	db     *gorm.DB
	Dao    *dao.Dao

	// Repository 层
	UniverseRepo domain.UniverseRepository
	EntityRepo   domain.EntityRepository
	TemplateRepo domain.TemplateRepository
	FileStore    domain.FileStore

	// Service 层
	UniverseService *service.Universe
	EntityService   *service.Entity
	TemplateService *service.Template

	// StartTime 进程启动时间，用于健康检查
	StartTime time.Time
}

// NewApp 创建应用容器实例
// 初始化所有依赖并进行依赖注入
// cfg: 应用配置（必须）
// logger: zap 日志器（必须）
// db: 数据库连接（必须）
func NewApp(cfg *AppConfig, logger *zap.Logger, db *gorm.DB) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is required")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if db == nil {
		return nil, fmt.Errorf("database is required")
	}

	a := &App{
		config:    cfg,
		logger:    logger,
		db:        db,
		StartTime: time.Now(),
	}

	// 初始化 DAO（使用依赖注入）
	a.Dao = dao.New(db, context.Background(), dao.WithLogger(logger))

	// 初始化本地文件存储
	store, err := local_fs.NewClient(&cfg.LocalFS)
	if err != nil {
		return nil, fmt.Errorf("init local file store: %w", err)
	}
	a.FileStore = store

	// 初始化 Repository 层
	a.UniverseRepo = dao.NewUniverseRepository(a.Dao)
	a.EntityRepo = dao.NewEntityRepository(a.Dao)
	a.TemplateRepo = dao.NewTemplateRepository(a.Dao)

	// 创建 UploadConfig（从 AppConfig 提取 Service 层需要的配置）
	uploadCfg := service.UploadConfig{
		URLPrefix: cfg.Upload.UrlPrefix,
		MaxSizeMB: cfg.Upload.MaxSizeMB,
		AllowExts: cfg.Upload.AllowExts,
	}

	// 初始化 Service 层（依赖注入）
	a.UniverseService = service.NewUniverse(a.UniverseRepo, a.EntityRepo, a.FileStore, uploadCfg, logger)
	a.EntityService = service.NewEntity(a.EntityRepo, a.UniverseRepo, a.TemplateRepo, a.FileStore, uploadCfg, logger)
	a.TemplateService = service.NewTemplate(a.TemplateRepo, logger)

	logger.Info("App container initialized successfully",
		zap.String("database", cfg.Database.Type),
		zap.String("uploadPath", cfg.LocalFS.SavePath))

	return a, nil
}

// Close 释放应用容器持有的资源
func (a *App) Close() error {
	if a.db != nil {
		sqlDB, err := a.db.DB()
		if err != nil {
			return fmt.Errorf("failed to get sql.DB: %w", err)
		}
		if err := sqlDB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
		a.logger.Info("Database connection closed")
	}
	return nil
}

// Config 获取应用配置
func (a *App) Config() *AppConfig {
	return a.config
}

// Logger 获取日志器
func (a *App) Logger() *zap.Logger {
	return a.logger
}

// DB 获取数据库连接
func (a *App) DB() *gorm.DB {
	return a.db
}

// Version 获取服务版本号
func (a *App) Version() string {
	return Version
}
