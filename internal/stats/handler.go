package stats

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/RoiShukrun1/Social-Media-Posts-Manager/internal/dto"
	"github.com/RoiShukrun1/Social-Media-Posts-Manager/internal/response"
)

type StatsHandler struct {
	statsRepo *StatsRepository
}

func NewStatsHandler(db *gorm.DB) *StatsHandler {
	return &StatsHandler{
		statsRepo: NewStatsRepository(db),
	}
}

// GetStats 获取帖子聚合统计
// @Summary 获取帖子总数、总点赞数、总评论数与平均互动率
// @Tags Stats
// @Accept json
// @Produce json
// @Success 200 {object} response.Response
// @Router /stats [get]
func (h *StatsHandler) GetStats(c *gin.Context) {
	stats, err := h.statsRepo.GetStats()
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithStatus(http.StatusInternalServerError),
			response.WithErrorMessage("获取统计数据失败"),
			response.WithError(err),
		))
		return
	}

	dto.SuccessResponse(c, stats)
}
