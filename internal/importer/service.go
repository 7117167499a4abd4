// Package importer CSV 批量导入
package importer

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/RoiShukrun1/Social-Media-Posts-Manager/internal/author"
	authorModel "github.com/RoiShukrun1/Social-Media-Posts-Manager/internal/model/author"
	postModel "github.com/RoiShukrun1/Social-Media-Posts-Manager/internal/model/post"
	"github.com/RoiShukrun1/Social-Media-Posts-Manager/internal/post"
	"github.com/RoiShukrun1/Social-Media-Posts-Manager/internal/tag"
)

// ImportSummary 导入结果统计
type ImportSummary struct {
	RowsProcessed  int `json:"rows_processed"`
	AuthorsCreated int `json:"authors_created"`
	PostsImported  int `json:"posts_imported"`
	TagsCreated    int `json:"tags_created"`
	LinksCreated   int `json:"links_created"`
}

// requiredColumns CSV 必须包含的列
var requiredColumns = []string{
	"post_id", "author_first_name", "author_last_name", "author_email",
	"author_company", "author_job_title", "author_bio",
	"author_follower_count", "author_verified",
	"post_text", "post_date", "likes", "comments", "shares",
	"post_image_svg", "post_category", "location",
	"engagement_rate", "post_tags",
}

type ImportService struct {
	db *gorm.DB
}

func NewImportService(db *gorm.DB) *ImportService {
	return &ImportService{db: db}
}

// ImportCSV 将 CSV 文件导入数据库，整个导入在单个事务中完成：
// 任意一行的数值字段解析失败都会回滚全部已导入数据。
// 作者按邮箱、标签按名称去重（进程内缓存 + 数据库回查），
// 帖子按外部给定的 id 做 upsert，重复导入不会产生重复行。
// post_tags 字段为 JSON 字符串数组，解析失败仅告警并跳过该行的标签关联。
func (s *ImportService) ImportCSV(path string) (*ImportSummary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("打开CSV文件失败: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("读取CSV表头失败: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("CSV缺少必需的列: %s", name)
		}
	}

	summary := &ImportSummary{}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		authorRepo := author.NewAuthorRepository(tx)
		tagRepo := tag.NewTagRepository(tx)

		// 运行期缓存，避免同一文件内的重复回查
		authorCache := make(map[string]uint)
		tagCache := make(map[string]uint)

		for {
			record, err := reader.Read()
			if err == io.EOF {
				break
			}
			if err != nil {
				return fmt.Errorf("读取CSV记录失败: %w", err)
			}

			row := func(name string) string {
				return strings.TrimSpace(record[columns[name]])
			}

			authorID, err := s.resolveAuthor(authorRepo, authorCache, row, summary)
			if err != nil {
				return err
			}

			postID, err := s.importPost(tx, authorID, row)
			if err != nil {
				return err
			}
			summary.PostsImported++

			if err := s.linkTags(tagRepo, tagCache, postID, row("post_tags"), summary); err != nil {
				return err
			}

			summary.RowsProcessed++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("CSV导入完成: %d 行, %d 位作者, %d 篇帖子, %d 个标签, %d 条关联",
		summary.RowsProcessed, summary.AuthorsCreated, summary.PostsImported,
		summary.TagsCreated, summary.LinksCreated)
	return summary, nil
}

// resolveAuthor 按邮箱解析作者：缓存命中 → 数据库回查 → 新建
func (s *ImportService) resolveAuthor(repo *author.AuthorRepository, cache map[string]uint, row func(string) string, summary *ImportSummary) (uint, error) {
	email := row("author_email")
	if id, ok := cache[email]; ok {
		return id, nil
	}

	if existing, err := repo.GetByEmail(email); err == nil {
		cache[email] = existing.ID
		return existing.ID, nil
	} else if err != gorm.ErrRecordNotFound {
		return 0, err
	}

	followerCount, err := strconv.Atoi(row("author_follower_count"))
	if err != nil {
		return 0, fmt.Errorf("无效的粉丝数 %q: %w", row("author_follower_count"), err)
	}

	a := &authorModel.Author{
		FirstName:     row("author_first_name"),
		LastName:      row("author_last_name"),
		Email:         email,
		Company:       row("author_company"),
		JobTitle:      row("author_job_title"),
		Bio:           row("author_bio"),
		FollowerCount: followerCount,
		Verified:      strings.EqualFold(row("author_verified"), "true"),
	}
	if err := repo.Create(a); err != nil {
		return 0, err
	}
	cache[email] = a.ID
	summary.AuthorsCreated++
	return a.ID, nil
}

// importPost 按外部 id 写入帖子，已存在时整行覆盖
func (s *ImportService) importPost(tx *gorm.DB, authorID uint, row func(string) string) (uint, error) {
	postID, err := strconv.Atoi(row("post_id"))
	if err != nil {
		return 0, fmt.Errorf("无效的帖子ID %q: %w", row("post_id"), err)
	}

	date, err := post.ParseDate(row("post_date"))
	if err != nil {
		return 0, fmt.Errorf("无效的帖子日期 %q: %w", row("post_date"), err)
	}

	likes, err := strconv.Atoi(row("likes"))
	if err != nil {
		return 0, fmt.Errorf("无效的点赞数 %q: %w", row("likes"), err)
	}
	comments, err := strconv.Atoi(row("comments"))
	if err != nil {
		return 0, fmt.Errorf("无效的评论数 %q: %w", row("comments"), err)
	}
	shares, err := strconv.Atoi(row("shares"))
	if err != nil {
		return 0, fmt.Errorf("无效的分享数 %q: %w", row("shares"), err)
	}
	engagementRate, err := strconv.ParseFloat(row("engagement_rate"), 64)
	if err != nil {
		return 0, fmt.Errorf("无效的互动率 %q: %w", row("engagement_rate"), err)
	}

	p := &postModel.Post{
		ID:             uint(postID),
		AuthorID:       authorID,
		Text:           row("post_text"),
		Date:           date,
		Likes:          likes,
		Comments:       comments,
		Shares:         shares,
		ImageSVG:       optional(row("post_image_svg")),
		Category:       row("post_category"),
		Location:       optional(row("location")),
		EngagementRate: engagementRate,
	}

	err = tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(p).Error
	if err != nil {
		return 0, err
	}
	return p.ID, nil
}

// linkTags 解析 post_tags JSON 数组并建立关联，解析失败仅跳过该行
func (s *ImportService) linkTags(tagRepo *tag.TagRepository, cache map[string]uint, postID uint, rawTags string, summary *ImportSummary) error {
	if rawTags == "" {
		return nil
	}

	var names []string
	if err := json.Unmarshal([]byte(rawTags), &names); err != nil {
		log.Printf("警告: 帖子 %d 的标签解析失败, 跳过: %s", postID, rawTags)
		return nil
	}

	for _, name := range names {
		tagID, ok := cache[name]
		if !ok {
			id, created, err := tagRepo.EnsureTag(name)
			if err != nil {
				return err
			}
			tagID = id
			cache[name] = tagID
			if created {
				summary.TagsCreated++
			}
		}

		linked, err := tagRepo.LinkPostTag(postID, tagID)
		if err != nil {
			return err
		}
		if linked {
			summary.LinksCreated++
		}
	}
	return nil
}

// optional 空字符串归一为 NULL
func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
