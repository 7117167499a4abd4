package route

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/RoiShukrun1/Social-Media-Posts-Manager/config"
	"github.com/RoiShukrun1/Social-Media-Posts-Manager/internal/author"
	"github.com/RoiShukrun1/Social-Media-Posts-Manager/internal/cache"
	"github.com/RoiShukrun1/Social-Media-Posts-Manager/internal/database"
	"github.com/RoiShukrun1/Social-Media-Posts-Manager/internal/middleware"
	"github.com/RoiShukrun1/Social-Media-Posts-Manager/internal/post"
	"github.com/RoiShukrun1/Social-Media-Posts-Manager/internal/stats"
	"github.com/RoiShukrun1/Social-Media-Posts-Manager/internal/tag"
)

func initRoute(r *gin.Engine, db *gorm.DB) {
	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	// Swagger 文档路由
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 帖子详情缓存，Redis 未启用时为 nil（直接读库）
	postCache := cache.NewPostCache(database.Redis, time.Duration(config.Conf.Redis.TTL)*time.Second)

	// API 路由组
	api := r.Group("/api")
	{
		post.RegisterRoutes(api, db, postCache)
		author.RegisterRoutes(api, db)
		tag.RegisterRoutes(api, db)
		stats.RegisterRoutes(api, db)
	}
}

func SetupRouter(db *gorm.DB) *gin.Engine {
	if config.Conf.Server.Mode != "" {
		gin.SetMode(config.Conf.Server.Mode)
	}

	r := gin.Default()
	r.Use(middleware.RequestID())

	origin := config.Conf.CORS.Origin
	if envOrigin := os.Getenv("FRONTEND_URL"); envOrigin != "" {
		origin = envOrigin
	}
	if origin == "" {
		origin = "http://localhost:5173" // 默认值
	}

	// 设置跨域请求
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{origin},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
	}))

	initRoute(r, db)

	return r
}
