// Package author 作者相关模型
package author

import "time"

// Author 作者表
type Author struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	FirstName string `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName  string `gorm:"type:varchar(100);not null" json:"last_name"`
	// 邮箱唯一，同时作为批量导入时的去重键
	Email         string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Company       string    `gorm:"type:varchar(255)" json:"company"`
	JobTitle      string    `gorm:"type:varchar(255)" json:"job_title"`
	Bio           string    `gorm:"type:text" json:"bio"`
	FollowerCount int       `gorm:"not null;default:0" json:"follower_count"`
	Verified      bool      `gorm:"not null;default:false" json:"verified"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
