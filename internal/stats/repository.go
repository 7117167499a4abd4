package stats

import (
	postModel "github.com/RoiShukrun1/Social-Media-Posts-Manager/internal/model/post"
	"gorm.io/gorm"
)

type StatsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// GetStats 单条聚合查询返回全量统计，空表时各项为零值
func (r *StatsRepository) GetStats() (*Stats, error) {
	var stats Stats
	err := r.db.Model(&postModel.Post{}).
		Select("COUNT(*) AS total_posts, " +
			"COALESCE(SUM(likes), 0) AS total_likes, " +
			"COALESCE(SUM(comments), 0) AS total_comments, " +
			"COALESCE(AVG(engagement_rate), 0) AS avg_engagement_rate").
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
