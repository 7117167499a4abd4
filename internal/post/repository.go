package post

import (
	"time"

	"gorm.io/gorm"

	authorModel "github.com/RoiShukrun1/Social-Media-Posts-Manager/internal/model/author"
	postModel "github.com/RoiShukrun1/Social-Media-Posts-Manager/internal/model/post"
	"github.com/RoiShukrun1/Social-Media-Posts-Manager/internal/tag"
)

// sortColumns 排序字段白名单
// 用户输入只能经由该映射进入 ORDER BY，未知字段回退到默认排序（date）
var sortColumns = map[string]string{
	"date":            "posts.date",
	"likes":           "posts.likes",
	"comments":        "posts.comments",
	"shares":          "posts.shares",
	"engagement_rate": "posts.engagement_rate",
}

const defaultSortColumn = "posts.date"

// PostRepository 帖子仓储层
type PostRepository struct {
	db      *gorm.DB
	tagRepo *tag.TagRepository
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{
		db:      db,
		tagRepo: tag.NewTagRepository(db),
	}
}

// postAuthorRow 帖子连接作者的扫描行
type postAuthorRow struct {
	ID             uint
	AuthorID       uint
	Text           string
	Date           time.Time
	Likes          int
	Comments       int
	Shares         int
	ImageSVG       *string `gorm:"column:image_svg"`
	Category       string
	Location       *string
	EngagementRate float64
	CreatedAt      time.Time
	UpdatedAt      time.Time

	AuthorFirstName     string
	AuthorLastName      string
	AuthorEmail         string
	AuthorCompany       string
	AuthorJobTitle      string
	AuthorBio           string
	AuthorFollowerCount int
	AuthorVerified      bool
	AuthorCreatedAt     time.Time
	AuthorUpdatedAt     time.Time
}

const postAuthorColumns = `posts.id, posts.author_id, posts.text, posts.date,
	posts.likes, posts.comments, posts.shares, posts.image_svg, posts.category,
	posts.location, posts.engagement_rate, posts.created_at, posts.updated_at,
	authors.first_name AS author_first_name,
	authors.last_name AS author_last_name,
	authors.email AS author_email,
	authors.company AS author_company,
	authors.job_title AS author_job_title,
	authors.bio AS author_bio,
	authors.follower_count AS author_follower_count,
	authors.verified AS author_verified,
	authors.created_at AS author_created_at,
	authors.updated_at AS author_updated_at`

func (row *postAuthorRow) toDetail(tags []string) PostDetail {
	if tags == nil {
		tags = []string{}
	}
	return PostDetail{
		Post: postModel.Post{
			ID:             row.ID,
			AuthorID:       row.AuthorID,
			Text:           row.Text,
			Date:           row.Date,
			Likes:          row.Likes,
			Comments:       row.Comments,
			Shares:         row.Shares,
			ImageSVG:       row.ImageSVG,
			Category:       row.Category,
			Location:       row.Location,
			EngagementRate: row.EngagementRate,
			CreatedAt:      row.CreatedAt,
			UpdatedAt:      row.UpdatedAt,
		},
		Author: authorModel.Author{
			ID:            row.AuthorID,
			FirstName:     row.AuthorFirstName,
			LastName:      row.AuthorLastName,
			Email:         row.AuthorEmail,
			Company:       row.AuthorCompany,
			JobTitle:      row.AuthorJobTitle,
			Bio:           row.AuthorBio,
			FollowerCount: row.AuthorFollowerCount,
			Verified:      row.AuthorVerified,
			CreatedAt:     row.AuthorCreatedAt,
			UpdatedAt:     row.AuthorUpdatedAt,
		},
		Tags: tags,
	}
}

// filtered 构造带过滤条件的基础查询（帖子连接作者）
func (r *PostRepository) filtered(f PostFilters) *gorm.DB {
	query := r.db.Model(&postModel.Post{}).
		Joins("JOIN authors ON authors.id = posts.author_id")

	if f.Category != "" {
		query = query.Where("posts.category = ?", f.Category)
	}
	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		query = query.Where(
			"(posts.text LIKE ? OR authors.first_name LIKE ? OR authors.last_name LIKE ?)",
			pattern, pattern, pattern,
		)
	}
	if f.DateFrom != nil {
		query = query.Where("posts.date >= ?", *f.DateFrom)
	}
	if f.DateTo != nil {
		query = query.Where("posts.date <= ?", *f.DateTo)
	}
	if f.AuthorID != nil {
		query = query.Where("posts.author_id = ?", *f.AuthorID)
	}
	if f.Tag != "" {
		query = query.Where(
			"EXISTS (SELECT 1 FROM post_tags JOIN tags ON tags.id = post_tags.tag_id WHERE post_tags.post_id = posts.id AND tags.name = ?)",
			f.Tag,
		)
	}
	if f.MinLikes != nil {
		query = query.Where("posts.likes >= ?", *f.MinLikes)
	}
	if f.MinEngagement != nil {
		query = query.Where("posts.engagement_rate >= ?", *f.MinEngagement)
	}

	return query
}

// List 过滤/排序/分页查询帖子，返回当页数据与匹配总数
// 标签通过一次 IN 批量查询补齐，避免 N+1
func (r *PostRepository) List(f PostFilters, s PostSort, p PaginationParams) ([]PostDetail, int64, error) {
	p.Normalize()

	// 1. 过滤后的总数（与分页无关）
	var total int64
	if err := r.filtered(f).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// 2. 当页数据
	column, ok := sortColumns[s.Field]
	if !ok {
		column = defaultSortColumn
	}
	direction := "DESC"
	if s.Order == "ASC" {
		direction = "ASC"
	}
	offset := (p.Page - 1) * p.Limit

	var rows []postAuthorRow
	err := r.filtered(f).
		Select(postAuthorColumns).
		Order(column + " " + direction).
		Limit(p.Limit).
		Offset(offset).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	// 没有命中则跳过标签批量查询
	if len(rows) == 0 {
		return []PostDetail{}, total, nil
	}

	// 3. 一次查询取回当页所有帖子的标签
	postIDs := make([]uint, 0, len(rows))
	for _, row := range rows {
		postIDs = append(postIDs, row.ID)
	}
	tagsByPost, err := r.tagRepo.GetTagsForPosts(postIDs)
	if err != nil {
		return nil, 0, err
	}

	details := make([]PostDetail, 0, len(rows))
	for i := range rows {
		details = append(details, rows[i].toDetail(tagsByPost[rows[i].ID]))
	}
	return details, total, nil
}

// GetByID 获取单个帖子（含作者与标签）
func (r *PostRepository) GetByID(id uint) (*PostDetail, error) {
	var row postAuthorRow
	result := r.db.Model(&postModel.Post{}).
		Joins("JOIN authors ON authors.id = posts.author_id").
		Select(postAuthorColumns).
		Where("posts.id = ?", id).
		Limit(1).
		Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	tags, err := r.tagRepo.GetPostTags(id)
	if err != nil {
		return nil, err
	}

	detail := row.toDetail(tags)
	return &detail, nil
}

func (r *PostRepository) Create(p *postModel.Post) error {
	return r.db.Create(p).Error
}

// Update 按动态字段表更新，updated_at 由 gorm 自动维护
func (r *PostRepository) Update(id uint, updates map[string]any) error {
	return r.db.Model(&postModel.Post{ID: id}).Updates(updates).Error
}

// Delete 删除帖子，关联行由外键级联清理；返回是否确有删除
func (r *PostRepository) Delete(id uint) (bool, error) {
	result := r.db.Delete(&postModel.Post{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Count 无过滤条件的帖子总数
func (r *PostRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&postModel.Post{}).Count(&count).Error
	return count, err
}
