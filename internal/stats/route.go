package stats

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterRoutes 注册统计相关路由
func RegisterRoutes(r *gin.RouterGroup, db *gorm.DB) {
	statsHandler := NewStatsHandler(db)

	r.GET("/stats", statsHandler.GetStats) // 获取帖子聚合统计
}
