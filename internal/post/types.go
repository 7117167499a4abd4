package post

import (
	"bytes"
	"encoding/json"
	"time"

	authorModel "github.com/RoiShukrun1/Social-Media-Posts-Manager/internal/model/author"
	postModel "github.com/RoiShukrun1/Social-Media-Posts-Manager/internal/model/post"
)

// 导出默认分页参数，页码或页大小非法时回退到这些值
const (
	DefaultPage  = 1
	DefaultLimit = 20
)

// CreatePostRequest 创建帖子请求
type CreatePostRequest struct {
	AuthorID uint   `json:"author_id" binding:"required"`
	Text     string `json:"text" binding:"required,min=1"`
	Date     string `json:"date" binding:"required"`
	Likes    int    `json:"likes" binding:"omitempty,min=0"`
	Comments int    `json:"comments" binding:"omitempty,min=0"`
	Shares   int    `json:"shares" binding:"omitempty,min=0"`
	ImageSVG *string `json:"image_svg"`
	Category string  `json:"category" binding:"required"`
	Location *string `json:"location"`
	// 省略时按表单约定计算: (likes+comments)/10000*100
	EngagementRate *float64 `json:"engagement_rate" binding:"omitempty,min=0"`
	Tags           []string `json:"tags"`
}

// NullableString 可置空的可选字符串
// 普通 *string 无法区分"键缺省"与"显式传 null"，这里只有键出现时
// Set 才为 true，值为 null 时 Value 为 nil（列写为 NULL）
type NullableString struct {
	Set   bool
	Value *string
}

func (ns *NullableString) UnmarshalJSON(data []byte) error {
	ns.Set = true
	if bytes.Equal(data, []byte("null")) {
		ns.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	ns.Value = &s
	return nil
}

func (ns NullableString) MarshalJSON() ([]byte, error) {
	return json.Marshal(ns.Value)
}

// UpdatePostRequest 更新帖子请求（仅更新出现的字段）
// Tags 为 nil 表示不改动标签关联，空数组表示清空全部标签；
// ImageSVG/Location 显式传 null 时清空该列
type UpdatePostRequest struct {
	AuthorID       *uint          `json:"author_id"`
	Text           *string        `json:"text" binding:"omitempty,min=1"`
	Date           *string        `json:"date"`
	Likes          *int           `json:"likes" binding:"omitempty,min=0"`
	Comments       *int           `json:"comments" binding:"omitempty,min=0"`
	Shares         *int           `json:"shares" binding:"omitempty,min=0"`
	ImageSVG       NullableString `json:"image_svg"`
	Category       *string        `json:"category" binding:"omitempty,min=1"`
	Location       NullableString `json:"location"`
	EngagementRate *float64       `json:"engagement_rate" binding:"omitempty,min=0"`
	Tags           *[]string      `json:"tags"`
}

// PostFilters 列表过滤条件，全部为 AND 叠加
type PostFilters struct {
	Category      string
	Search        string // 帖子正文与作者姓名的子串匹配
	DateFrom      *time.Time
	DateTo        *time.Time
	AuthorID      *uint
	Tag           string
	MinLikes      *int
	MinEngagement *float64
}

// PostSort 排序参数，Field 必须在白名单内
type PostSort struct {
	Field string
	Order string // ASC / DESC
}

// PaginationParams 分页参数（页码从1开始）
type PaginationParams struct {
	Page  int
	Limit int
}

// Normalize 非法页码/页大小回退到默认值
func (p *PaginationParams) Normalize() {
	if p.Page <= 0 {
		p.Page = DefaultPage
	}
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
}

// PostDetail 帖子详情（嵌入作者完整信息与字母序标签列表）
type PostDetail struct {
	postModel.Post
	Author authorModel.Author `json:"author"`
	Tags   []string           `json:"tags"`
}

// dateLayouts 接受的日期格式
var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC3339,
}

// ParseDate 按固定格式解析日期字符串，不做隐式兜底
func ParseDate(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
