package author

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterRoutes 注册作者相关路由
func RegisterRoutes(r *gin.RouterGroup, db *gorm.DB) {
	authorHandler := NewAuthorHandler(db)

	authors := r.Group("/authors")
	{
		authors.GET("", authorHandler.GetAuthors)       // 获取作者列表
		authors.GET("/:id", authorHandler.GetAuthor)    // 获取作者详情
		authors.POST("", authorHandler.CreateAuthor)    // 创建作者
		authors.PUT("/:id", authorHandler.UpdateAuthor) // 更新作者
	}
}
