package post

import "time"

// Tag 标签表
// 标签在首次被帖子引用时惰性创建，除级联外不会被删除
type Tag struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// PostTag 帖子-标签关联表
type PostTag struct {
	PostID    uint      `gorm:"primaryKey;index" json:"post_id"`
	Post      Post      `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
	TagID     uint      `gorm:"primaryKey;index" json:"tag_id"`
	Tag       Tag       `gorm:"foreignKey:TagID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
