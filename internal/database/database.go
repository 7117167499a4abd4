package database

import (
	"log"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/RoiShukrun1/Social-Media-Posts-Manager/config"
	"github.com/RoiShukrun1/Social-Media-Posts-Manager/internal/model"
)

const serviceName = "posts-manager"

var (
	// DB SQLite 数据库实例
	DB *gorm.DB
	// Redis 缓存客户端，未启用时为 nil
	Redis *redis.Client
)

// InitDatabase 初始化数据库与缓存连接
func InitDatabase() {
	initSQLite()
	initRedis()
}

func initSQLite() {
	databaseConf := config.Conf.Database

	var err error
	DB, err = InitSQLite(&SQLiteConfig{
		ServiceName: serviceName,
		Path:        databaseConf.Path,
		LogLevel:    databaseConf.LogLevel,
	})
	if err != nil {
		panic(err)
	}

	// 初始化数据库表
	if err = model.InitTable(DB); err != nil {
		panic(err)
	}
}

func initRedis() {
	redisConf := config.Conf.Redis
	if !redisConf.Enabled {
		return
	}

	client, err := InitRedis(&RedisConfig{
		ServiceName: serviceName,
		Host:        redisConf.Host,
		Port:        redisConf.Port,
		Password:    redisConf.Password,
		DB:          redisConf.DB,
	})
	if err != nil {
		// 缓存不可用时降级为直接读库，不阻塞启动
		log.Printf("[%s] Redis不可用，缓存已禁用: %v", serviceName, err)
		return
	}
	Redis = client
}

// GetDB 获取数据库实例
func GetDB() *gorm.DB {
	return DB
}
