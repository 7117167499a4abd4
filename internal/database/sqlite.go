package database

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SQLiteConfig SQLite 配置
type SQLiteConfig struct {
	ServiceName string // 服务名称，用于日志标识
	Path        string // 数据库文件路径，空值使用内存库
	LogLevel    string // 日志级别: silent, error, warn, info
}

// InitSQLite 初始化 SQLite 连接
// 开启外键约束以保证级联删除生效；本地嵌入式引擎为单写者模型，
// 连接池限制为单连接，写冲突交由 busy_timeout 处理
func InitSQLite(config *SQLiteConfig) (*gorm.DB, error) {
	if config == nil {
		return nil, fmt.Errorf("配置不能为空")
	}

	setSQLiteDefaults(config)

	if dir := filepath.Dir(config.Path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("创建数据库目录失败: %v", err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", config.Path)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: getLogger(config.LogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取数据库实例失败: %v", err)
	}

	// 单写者模型
	sqlDB.SetMaxOpenConns(1)

	serviceName := config.ServiceName
	if serviceName == "" {
		serviceName = "unknown-service"
	}
	log.Printf("[%s] 数据库连接成功: %s", serviceName, config.Path)
	return db, nil
}

// setSQLiteDefaults 设置默认值
func setSQLiteDefaults(c *SQLiteConfig) {
	if c.Path == "" {
		c.Path = "data/posts.db"
	}
	if c.LogLevel == "" {
		c.LogLevel = "warn"
	}
}

// getLogger 获取日志配置
func getLogger(level string) logger.Interface {
	switch level {
	case "silent":
		return logger.Default.LogMode(logger.Silent)
	case "error":
		return logger.Default.LogMode(logger.Error)
	case "warn":
		return logger.Default.LogMode(logger.Warn)
	case "info":
		return logger.Default.LogMode(logger.Info)
	default:
		return logger.Default.LogMode(logger.Info)
	}
}
