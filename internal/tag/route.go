package tag

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterRoutes 注册标签相关路由
func RegisterRoutes(r *gin.RouterGroup, db *gorm.DB) {
	tagHandler := NewTagHandler(db)

	tags := r.Group("/tags")
	{
		tags.GET("", tagHandler.GetTags) // 获取所有标签
	}
}
