package post

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/RoiShukrun1/Social-Media-Posts-Manager/internal/cache"
)

// RegisterRoutes 注册帖子相关路由
func RegisterRoutes(r *gin.RouterGroup, db *gorm.DB, postCache *cache.PostCache) {
	postHandler := NewPostHandler(db, postCache)

	posts := r.Group("/posts")
	{
		posts.GET("", postHandler.GetPosts)          // 获取帖子列表
		posts.GET("/:id", postHandler.GetPost)       // 获取帖子详情
		posts.POST("", postHandler.CreatePost)       // 创建帖子
		posts.PUT("/:id", postHandler.UpdatePost)    // 更新帖子
		posts.DELETE("/:id", postHandler.DeletePost) // 删除帖子
	}
}
