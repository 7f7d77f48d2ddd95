// Package dao implements the data access layer on gorm
// Package dao 基于 gorm 实现数据访问层
package dao

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/demiurge-app/universe-wiki-service/internal/model"
	"github.com/demiurge-app/universe-wiki-service/pkg/fileurl"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

// DatabaseConfig database connection configuration
// DatabaseConfig 数据库连接配置
type DatabaseConfig struct {
	// Type database type: sqlite or mysql // 数据库类型
	Type string
	// Path SQLite database file path // SQLite 数据库文件路径
	Path string
	// UserName / Password / Host / Name / Charset are MySQL only
	UserName string
	Password string
	Host     string
	Name     string
	Charset  string
	// TablePrefix table name prefix // 表前缀
	TablePrefix string
	// AutoMigrate run schema migration on startup // 启动时自动迁移
	AutoMigrate bool
	// ParseTime parse MySQL time columns // 是否解析时间
	ParseTime bool
	// MaxIdleConns / MaxOpenConns pool limits // 连接池限制
	MaxIdleConns int
	MaxOpenConns int
	// RunMode gin run mode, debug enables SQL logging // debug 模式输出 SQL 日志
	RunMode string
}

// Dao bundles the gorm handle shared by all repositories
// Dao 汇集所有仓储共享的 gorm 句柄
type Dao struct {
	db     *gorm.DB
	ctx    context.Context
	logger *zap.Logger
}

// Option configures a Dao
type Option func(*Dao)

// WithLogger injects the zap logger
func WithLogger(lg *zap.Logger) Option {
	return func(d *Dao) {
		d.logger = lg
	}
}

// New creates a Dao
func New(db *gorm.DB, ctx context.Context, options ...Option) *Dao {
	d := &Dao{db: db, ctx: ctx}
	for _, opt := range options {
		opt(d)
	}
	return d
}

// DB returns the underlying gorm handle
func (d *Dao) DB() *gorm.DB {
	return d.db
}

// NewDBEngine opens the configured database and applies pool settings
// NewDBEngine 打开配置的数据库并应用连接池设置
func NewDBEngine(c *DatabaseConfig) (*gorm.DB, error) {
	dialector, err := buildDialector(c)
	if err != nil {
		return nil, err
	}

	logMode := logger.Silent
	if c.RunMode == "debug" {
		logMode = logger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logMode),
		NamingStrategy: schema.NamingStrategy{
			TablePrefix:   c.TablePrefix,
			SingularTable: true,
		},
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(c.MaxIdleConns)
	sqlDB.SetMaxOpenConns(c.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(time.Minute * 10)

	if c.AutoMigrate {
		if err := model.AutoMigrate(db, ""); err != nil {
			return nil, fmt.Errorf("auto migrate failed: %w", err)
		}
	}

	return db, nil
}

func buildDialector(c *DatabaseConfig) (gorm.Dialector, error) {
	switch c.Type {
	case "mysql":
		return mysql.Open(fmt.Sprintf("%s:%s@tcp(%s)/%s?charset=%s&parseTime=%t&loc=Local",
			c.UserName,
			c.Password,
			c.Host,
			c.Name,
			c.Charset,
			c.ParseTime,
		)), nil
	case "sqlite":
		if !fileurl.IsExist(c.Path) {
			if err := fileurl.CreatePath(c.Path, os.ModePerm); err != nil {
				return nil, err
			}
		}
		return sqlite.Open(c.Path), nil
	}
	return nil, fmt.Errorf("unsupported database type %q", c.Type)
}
