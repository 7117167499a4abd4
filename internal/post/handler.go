package post

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/RoiShukrun1/Social-Media-Posts-Manager/internal/cache"
	"github.com/RoiShukrun1/Social-Media-Posts-Manager/internal/dto"
	"github.com/RoiShukrun1/Social-Media-Posts-Manager/internal/response"
)

type PostHandler struct {
	postService *PostService
}

func NewPostHandler(db *gorm.DB, postCache *cache.PostCache) *PostHandler {
	return &PostHandler{
		postService: NewPostService(db, postCache),
	}
}

// GetPosts 获取帖子列表
// @Summary 获取帖子列表（过滤/排序/分页）
// @Description 返回当页帖子（含作者与标签）及分页元信息
// @Tags Post
// @Accept json
// @Produce json
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页数量" default(20)
// @Param sortBy query string false "排序字段" Enums(date,likes,comments,shares,engagement_rate)
// @Param order query string false "排序方向" Enums(ASC,DESC)
// @Param category query string false "分类（精确匹配）"
// @Param search query string false "正文与作者姓名子串搜索"
// @Param dateFrom query string false "起始日期（含）"
// @Param dateTo query string false "截止日期（含）"
// @Param authorId query int false "作者ID"
// @Param tag query string false "标签名（精确匹配）"
// @Param minLikes query int false "最小点赞数"
// @Param minEngagement query number false "最小互动率"
// @Success 200 {object} response.Response
// @Router /posts [get]
func (h *PostHandler) GetPosts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	sort := PostSort{
		Field: c.DefaultQuery("sortBy", "date"),
		Order: strings.ToUpper(c.DefaultQuery("order", "DESC")),
	}

	filters, bizErr := parseFilters(c)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	result, bizErr := h.postService.ListPosts(*filters, sort, PaginationParams{Page: page, Limit: limit})
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.PagedResponse(c, result.Posts, result.Pagination)
}

// GetPost 获取帖子详情
// @Summary 获取单个帖子（含作者与标签）
// @Tags Post
// @Accept json
// @Produce json
// @Param id path int true "帖子ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /posts/{id} [get]
func (h *PostHandler) GetPost(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithStatus(http.StatusBadRequest),
			response.WithErrorMessage("无效的帖子ID"),
		))
		return
	}

	detail, bizErr := h.postService.GetPost(c.Request.Context(), uint(id))
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, detail)
}

// CreatePost 创建帖子
// @Summary 创建帖子
// @Description 互动率未显式给出时按 (likes+comments)/10000*100 计算
// @Tags Post
// @Accept json
// @Produce json
// @Param request body CreatePostRequest true "创建帖子请求"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /posts [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	detail, bizErr := h.postService.CreatePost(c.Request.Context(), req)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.CreatedResponse(c, detail)
}

// UpdatePost 更新帖子
// @Summary 部分更新帖子
// @Description tags 字段缺省时保留既有标签关联，传入时整体替换（空数组清空全部）
// @Tags Post
// @Accept json
// @Produce json
// @Param id path int true "帖子ID"
// @Param request body UpdatePostRequest true "更新帖子请求"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /posts/{id} [put]
func (h *PostHandler) UpdatePost(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithStatus(http.StatusBadRequest),
			response.WithErrorMessage("无效的帖子ID"),
		))
		return
	}

	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	detail, bizErr := h.postService.UpdatePost(c.Request.Context(), uint(id), req)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.MessageResponse(c, detail, "帖子更新成功")
}

// DeletePost 删除帖子
// @Summary 删除帖子
// @Tags Post
// @Accept json
// @Produce json
// @Param id path int true "帖子ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /posts/{id} [delete]
func (h *PostHandler) DeletePost(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithStatus(http.StatusBadRequest),
			response.WithErrorMessage("无效的帖子ID"),
		))
		return
	}

	if bizErr := h.postService.DeletePost(c.Request.Context(), uint(id)); bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.MessageResponse(c, nil, "帖子删除成功")
}

// parseFilters 解析查询参数中的过滤条件
func parseFilters(c *gin.Context) (*PostFilters, *response.BusinessError) {
	filters := PostFilters{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Tag:      c.Query("tag"),
	}

	if v := c.Query("dateFrom"); v != "" {
		t, err := ParseDate(v)
		if err != nil {
			return nil, response.NewBusinessError(
				response.WithStatus(http.StatusBadRequest),
				response.WithErrorMessage("无效的起始日期"),
			)
		}
		filters.DateFrom = &t
	}
	if v := c.Query("dateTo"); v != "" {
		t, err := ParseDate(v)
		if err != nil {
			return nil, response.NewBusinessError(
				response.WithStatus(http.StatusBadRequest),
				response.WithErrorMessage("无效的截止日期"),
			)
		}
		filters.DateTo = &t
	}
	if v := c.Query("authorId"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			return nil, response.NewBusinessError(
				response.WithStatus(http.StatusBadRequest),
				response.WithErrorMessage("无效的作者ID"),
			)
		}
		authorID := uint(id)
		filters.AuthorID = &authorID
	}
	if v := c.Query("minLikes"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, response.NewBusinessError(
				response.WithStatus(http.StatusBadRequest),
				response.WithErrorMessage("无效的最小点赞数"),
			)
		}
		filters.MinLikes = &n
	}
	if v := c.Query("minEngagement"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, response.NewBusinessError(
				response.WithStatus(http.StatusBadRequest),
				response.WithErrorMessage("无效的最小互动率"),
			)
		}
		filters.MinEngagement = &f
	}

	return &filters, nil
}
