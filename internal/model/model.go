package model

import (
	"gorm.io/gorm"

	"github.com/RoiShukrun1/Social-Media-Posts-Manager/internal/model/author"
	"github.com/RoiShukrun1/Social-Media-Posts-Manager/internal/model/post"
)

// InitTable 自动迁移数据库表结构（幂等）
func InitTable(db *gorm.DB) error {
	err := db.AutoMigrate(
		// 作者模型
		&author.Author{},
		// 帖子相关模型
		&post.Post{},
		&post.Tag{},
		&post.PostTag{},
	)
	if err != nil {
		return err
	}
	return nil
}

// DropTables 按外键依赖顺序删除所有表（幂等）
func DropTables(db *gorm.DB) error {
	return db.Migrator().DropTable(
		&post.PostTag{},
		&post.Tag{},
		&post.Post{},
		&author.Author{},
	)
}
