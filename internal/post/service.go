package post

import (
	"context"
	"errors"
	"net/http"

	"gorm.io/gorm"

	"github.com/RoiShukrun1/Social-Media-Posts-Manager/internal/author"
	"github.com/RoiShukrun1/Social-Media-Posts-Manager/internal/cache"
	postModel "github.com/RoiShukrun1/Social-Media-Posts-Manager/internal/model/post"
	"github.com/RoiShukrun1/Social-Media-Posts-Manager/internal/response"
	"github.com/RoiShukrun1/Social-Media-Posts-Manager/internal/tag"
)

// 表单约定的互动率基准：未显式给出时按 (likes+comments)/10000*100 计算
const (
	engagementFollowerBase = 10000
	engagementPercent      = 100
)

type PostService struct {
	postRepo   *PostRepository
	tagRepo    *tag.TagRepository
	authorRepo *author.AuthorRepository
	postCache  *cache.PostCache
}

func NewPostService(db *gorm.DB, postCache *cache.PostCache) *PostService {
	return &PostService{
		postRepo:   NewPostRepository(db),
		tagRepo:    tag.NewTagRepository(db),
		authorRepo: author.NewAuthorRepository(db),
		postCache:  postCache,
	}
}

// ListResult 列表查询结果
type ListResult struct {
	Posts      []PostDetail
	Pagination *response.Pagination
}

// ListPosts 过滤/排序/分页查询帖子
func (s *PostService) ListPosts(f PostFilters, sort PostSort, p PaginationParams) (*ListResult, *response.BusinessError) {
	p.Normalize()

	posts, total, err := s.postRepo.List(f, sort, p)
	if err != nil {
		return nil, response.NewBusinessError(
			response.WithStatus(http.StatusInternalServerError),
			response.WithErrorMessage("获取帖子列表失败"),
			response.WithError(err),
		)
	}

	return &ListResult{
		Posts:      posts,
		Pagination: response.NewPagination(p.Page, p.Limit, total),
	}, nil
}

// GetPost 获取帖子详情，启用缓存时走旁路缓存
func (s *PostService) GetPost(ctx context.Context, id uint) (*PostDetail, *response.BusinessError) {
	var cached PostDetail
	if s.postCache.Get(ctx, id, &cached) {
		return &cached, nil
	}

	detail, err := s.postRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewBusinessError(
				response.WithStatus(http.StatusNotFound),
				response.WithErrorMessage("帖子不存在"),
			)
		}
		return nil, response.NewBusinessError(
			response.WithStatus(http.StatusInternalServerError),
			response.WithErrorMessage("获取帖子失败"),
			response.WithError(err),
		)
	}

	s.postCache.Set(ctx, id, detail)
	return detail, nil
}

// CreatePost 创建帖子并关联标签
// 帖子插入与标签关联是两条独立语句，不在同一事务内
func (s *PostService) CreatePost(ctx context.Context, req CreatePostRequest) (*PostDetail, *response.BusinessError) {
	date, err := ParseDate(req.Date)
	if err != nil {
		return nil, response.NewBusinessError(
			response.WithStatus(http.StatusBadRequest),
			response.WithErrorMessage("无效的日期格式"),
		)
	}

	// 校验所属作者存在
	exists, err := s.authorRepo.Exists(req.AuthorID)
	if err != nil {
		return nil, response.NewBusinessError(
			response.WithStatus(http.StatusInternalServerError),
			response.WithErrorMessage("创建帖子失败"),
			response.WithError(err),
		)
	}
	if !exists {
		return nil, response.NewBusinessError(
			response.WithStatus(http.StatusNotFound),
			response.WithErrorMessage("作者不存在"),
		)
	}

	p := &postModel.Post{
		AuthorID:       req.AuthorID,
		Text:           req.Text,
		Date:           date,
		Likes:          req.Likes,
		Comments:       req.Comments,
		Shares:         req.Shares,
		ImageSVG:       req.ImageSVG,
		Category:       req.Category,
		Location:       req.Location,
		EngagementRate: resolveEngagementRate(req.EngagementRate, req.Likes, req.Comments),
	}

	if err := s.postRepo.Create(p); err != nil {
		return nil, response.NewBusinessError(
			response.WithStatus(http.StatusInternalServerError),
			response.WithErrorMessage("创建帖子失败"),
			response.WithError(err),
		)
	}

	if len(req.Tags) > 0 {
		if err := s.tagRepo.LinkTags(p.ID, req.Tags); err != nil {
			return nil, response.NewBusinessError(
				response.WithStatus(http.StatusInternalServerError),
				response.WithErrorMessage("关联标签失败"),
				response.WithError(err),
			)
		}
	}

	return s.GetPost(ctx, p.ID)
}

// UpdatePost 部分更新帖子
// Tags 为 nil 时不触碰既有标签关联，非 nil 时整体替换
func (s *PostService) UpdatePost(ctx context.Context, id uint, req UpdatePostRequest) (*PostDetail, *response.BusinessError) {
	if _, err := s.postRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewBusinessError(
				response.WithStatus(http.StatusNotFound),
				response.WithErrorMessage("帖子不存在"),
			)
		}
		return nil, response.NewBusinessError(
			response.WithStatus(http.StatusInternalServerError),
			response.WithErrorMessage("更新帖子失败"),
			response.WithError(err),
		)
	}

	updates, bizErr := s.buildUpdates(req)
	if bizErr != nil {
		return nil, bizErr
	}
	if len(updates) == 0 && req.Tags == nil {
		return nil, response.NewBusinessError(
			response.WithStatus(http.StatusBadRequest),
			response.WithErrorMessage("没有可更新的字段"),
		)
	}

	if len(updates) > 0 {
		if err := s.postRepo.Update(id, updates); err != nil {
			return nil, response.NewBusinessError(
				response.WithStatus(http.StatusInternalServerError),
				response.WithErrorMessage("更新帖子失败"),
				response.WithError(err),
			)
		}
	}

	// 字段更新与标签重建之间存在已知的非原子窗口，行为与原系统保持一致
	if req.Tags != nil {
		if err := s.tagRepo.ReplaceTags(id, *req.Tags); err != nil {
			return nil, response.NewBusinessError(
				response.WithStatus(http.StatusInternalServerError),
				response.WithErrorMessage("更新标签失败"),
				response.WithError(err),
			)
		}
	}

	s.postCache.Invalidate(ctx, id)
	return s.GetPost(ctx, id)
}

// DeletePost 删除帖子（标签关联级联清理）
func (s *PostService) DeletePost(ctx context.Context, id uint) *response.BusinessError {
	deleted, err := s.postRepo.Delete(id)
	if err != nil {
		return response.NewBusinessError(
			response.WithStatus(http.StatusInternalServerError),
			response.WithErrorMessage("删除帖子失败"),
			response.WithError(err),
		)
	}
	if !deleted {
		return response.NewBusinessError(
			response.WithStatus(http.StatusNotFound),
			response.WithErrorMessage("帖子不存在"),
		)
	}

	s.postCache.Invalidate(ctx, id)
	return nil
}

// buildUpdates 构造动态更新字段表
func (s *PostService) buildUpdates(req UpdatePostRequest) (map[string]any, *response.BusinessError) {
	updates := make(map[string]any)

	if req.AuthorID != nil {
		exists, err := s.authorRepo.Exists(*req.AuthorID)
		if err != nil {
			return nil, response.NewBusinessError(
				response.WithStatus(http.StatusInternalServerError),
				response.WithErrorMessage("更新帖子失败"),
				response.WithError(err),
			)
		}
		if !exists {
			return nil, response.NewBusinessError(
				response.WithStatus(http.StatusNotFound),
				response.WithErrorMessage("作者不存在"),
			)
		}
		updates["author_id"] = *req.AuthorID
	}
	if req.Text != nil {
		updates["text"] = *req.Text
	}
	if req.Date != nil {
		date, err := ParseDate(*req.Date)
		if err != nil {
			return nil, response.NewBusinessError(
				response.WithStatus(http.StatusBadRequest),
				response.WithErrorMessage("无效的日期格式"),
			)
		}
		updates["date"] = date
	}
	if req.Likes != nil {
		updates["likes"] = *req.Likes
	}
	if req.Comments != nil {
		updates["comments"] = *req.Comments
	}
	if req.Shares != nil {
		updates["shares"] = *req.Shares
	}
	// 传 null 时 Value 为 nil，列写为 NULL
	if req.ImageSVG.Set {
		updates["image_svg"] = req.ImageSVG.Value
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Location.Set {
		updates["location"] = req.Location.Value
	}
	if req.EngagementRate != nil {
		updates["engagement_rate"] = *req.EngagementRate
	}

	return updates, nil
}

// resolveEngagementRate 互动率未显式给出时按表单约定计算
func resolveEngagementRate(explicit *float64, likes, comments int) float64 {
	if explicit != nil {
		return *explicit
	}
	total := likes + comments
	if total <= 0 {
		return 0
	}
	return float64(total) / engagementFollowerBase * engagementPercent
}
