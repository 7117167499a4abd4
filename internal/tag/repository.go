package tag

import (
	"sort"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/RoiShukrun1/Social-Media-Posts-Manager/internal/model/post"
)

// TagRepository 标签仓储层
// 标签的创建完全由帖子操作驱动（惰性创建），对外只暴露查询
type TagRepository struct {
	db *gorm.DB
}

// NewTagRepository 创建标签仓储，db 可以是事务句柄
func NewTagRepository(db *gorm.DB) *TagRepository {
	return &TagRepository{db: db}
}

// GetAllTags 获取所有标签（按名称排序）
func (r *TagRepository) GetAllTags() ([]post.Tag, error) {
	var tags []post.Tag
	err := r.db.Order("name").Find(&tags).Error
	return tags, err
}

// ===== 标签解析（insert-or-ignore + 回查）=====

// EnsureTag 确保标签存在，返回其ID及本次是否新建
// 先尝试插入（唯一冲突静默忽略），再按名称回查；
// 插入尝试之后回查必然命中，无需 lookup-then-insert 的竞态处理
func (r *TagRepository) EnsureTag(name string) (uint, bool, error) {
	result := r.db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&post.Tag{Name: name})
	if result.Error != nil {
		return 0, false, result.Error
	}

	var tag post.Tag
	if err := r.db.Where("name = ?", name).First(&tag).Error; err != nil {
		return 0, false, err
	}
	return tag.ID, result.RowsAffected > 0, nil
}

// LinkPostTag 建立帖子-标签关联，复合主键冲突静默忽略
// 返回是否实际创建了关联行
func (r *TagRepository) LinkPostTag(postID, tagID uint) (bool, error) {
	result := r.db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&post.PostTag{PostID: postID, TagID: tagID})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// LinkTags 将一组标签名关联到帖子，缺失的标签先创建
// 名称区分大小写，重复名称不会产生重复行
func (r *TagRepository) LinkTags(postID uint, names []string) error {
	for _, name := range names {
		tagID, _, err := r.EnsureTag(name)
		if err != nil {
			return err
		}
		if _, err := r.LinkPostTag(postID, tagID); err != nil {
			return err
		}
	}
	return nil
}

// ReplaceTags 以新列表完整替换帖子的标签关联（非合并）
func (r *TagRepository) ReplaceTags(postID uint, names []string) error {
	if err := r.RemovePostTags(postID); err != nil {
		return err
	}
	if len(names) == 0 {
		return nil
	}
	return r.LinkTags(postID, names)
}

// RemovePostTags 移除帖子的所有标签关联
func (r *TagRepository) RemovePostTags(postID uint) error {
	return r.db.Where("post_id = ?", postID).Delete(&post.PostTag{}).Error
}

// GetPostTags 获取单个帖子的标签名（按字母序）
func (r *TagRepository) GetPostTags(postID uint) ([]string, error) {
	var names []string
	err := r.db.Model(&post.Tag{}).
		Joins("JOIN post_tags ON post_tags.tag_id = tags.id").
		Where("post_tags.post_id = ?", postID).
		Order("tags.name").
		Pluck("tags.name", &names).Error
	if err != nil {
		return nil, err
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}

type postTagRow struct {
	PostID uint
	Name   string
}

// GetTagsForPosts 批量获取一页帖子的标签，单条 IN 查询避免 N+1
func (r *TagRepository) GetTagsForPosts(postIDs []uint) (map[uint][]string, error) {
	tagsByPost := make(map[uint][]string, len(postIDs))
	if len(postIDs) == 0 {
		return tagsByPost, nil
	}

	var rows []postTagRow
	err := r.db.Model(&post.PostTag{}).
		Select("post_tags.post_id, tags.name").
		Joins("JOIN tags ON tags.id = post_tags.tag_id").
		Where("post_tags.post_id IN ?", postIDs).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		tagsByPost[row.PostID] = append(tagsByPost[row.PostID], row.Name)
	}
	for id := range tagsByPost {
		sort.Strings(tagsByPost[id])
	}
	return tagsByPost, nil
}
