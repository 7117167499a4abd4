package author

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/RoiShukrun1/Social-Media-Posts-Manager/internal/dto"
	"github.com/RoiShukrun1/Social-Media-Posts-Manager/internal/response"
)

type AuthorHandler struct {
	authorService *AuthorService
}

func NewAuthorHandler(db *gorm.DB) *AuthorHandler {
	return &AuthorHandler{
		authorService: NewAuthorService(db),
	}
}

// GetAuthors 获取作者列表
// @Summary 获取所有作者（按姓、名排序）
// @Tags Author
// @Accept json
// @Produce json
// @Success 200 {object} response.Response
// @Router /authors [get]
func (h *AuthorHandler) GetAuthors(c *gin.Context) {
	authors, err := h.authorService.ListAuthors()
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	dto.SuccessResponse(c, authors)
}

// GetAuthor 获取作者详情
// @Summary 获取单个作者
// @Tags Author
// @Accept json
// @Produce json
// @Param id path int true "作者ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /authors/{id} [get]
func (h *AuthorHandler) GetAuthor(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithStatus(http.StatusBadRequest),
			response.WithErrorMessage("无效的作者ID"),
		))
		return
	}

	a, bizErr := h.authorService.GetAuthor(uint(id))
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, a)
}

// CreateAuthor 创建作者
// @Summary 创建作者
// @Description 邮箱唯一，重复邮箱返回400
// @Tags Author
// @Accept json
// @Produce json
// @Param request body CreateAuthorRequest true "创建作者请求"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /authors [post]
func (h *AuthorHandler) CreateAuthor(c *gin.Context) {
	var req CreateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	a, bizErr := h.authorService.CreateAuthor(req)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.CreatedResponse(c, a)
}

// UpdateAuthor 更新作者
// @Summary 部分更新作者（仅更新请求中出现的字段）
// @Tags Author
// @Accept json
// @Produce json
// @Param id path int true "作者ID"
// @Param request body UpdateAuthorRequest true "更新作者请求"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /authors/{id} [put]
func (h *AuthorHandler) UpdateAuthor(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithStatus(http.StatusBadRequest),
			response.WithErrorMessage("无效的作者ID"),
		))
		return
	}

	var req UpdateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	a, bizErr := h.authorService.UpdateAuthor(uint(id), req)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.MessageResponse(c, a, "作者更新成功")
}
