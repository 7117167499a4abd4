package tag

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/RoiShukrun1/Social-Media-Posts-Manager/internal/dto"
	"github.com/RoiShukrun1/Social-Media-Posts-Manager/internal/response"
)

type TagHandler struct {
	tagRepo *TagRepository
}

func NewTagHandler(db *gorm.DB) *TagHandler {
	return &TagHandler{
		tagRepo: NewTagRepository(db),
	}
}

// GetTags 获取所有标签
// @Summary 获取所有标签（按名称排序）
// @Description 标签由帖子操作自动创建与管理
// @Tags Tag
// @Accept json
// @Produce json
// @Success 200 {object} response.Response
// @Router /tags [get]
func (h *TagHandler) GetTags(c *gin.Context) {
	tags, err := h.tagRepo.GetAllTags()
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithStatus(http.StatusInternalServerError),
			response.WithErrorMessage("获取标签列表失败"),
			response.WithError(err),
		))
		return
	}

	dto.SuccessResponse(c, tags)
}
