// Package post 帖子相关模型
package post

import (
	"time"

	"github.com/RoiShukrun1/Social-Media-Posts-Manager/internal/model/author"
)

// Post 帖子表
// ID 在批量导入时由外部数据给定，其余场景自增分配
type Post struct {
	ID       uint          `gorm:"primaryKey" json:"id"`
	AuthorID uint          `gorm:"not null;index" json:"author_id"`
	Author   author.Author `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"-"`
	Text     string        `gorm:"type:text;not null" json:"text"`
	Date     time.Time     `gorm:"not null;index" json:"date"`
	Likes    int           `gorm:"not null;default:0" json:"likes"`
	Comments int           `gorm:"not null;default:0" json:"comments"`
	Shares   int           `gorm:"not null;default:0" json:"shares"`
	// 内联图片（SVG文本），可为空
	ImageSVG       *string   `gorm:"column:image_svg;type:text" json:"image_svg"`
	Category       string    `gorm:"type:varchar(100);not null;index" json:"category"`
	Location       *string   `gorm:"type:varchar(255)" json:"location"`
	EngagementRate float64   `gorm:"not null;default:0" json:"engagement_rate"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
