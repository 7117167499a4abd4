package stats

// Stats 帖子的全局聚合统计
type Stats struct {
	TotalPosts        int64   `json:"totalPosts"`
	TotalLikes        int64   `json:"totalLikes"`
	TotalComments     int64   `json:"totalComments"`
	AvgEngagementRate float64 `json:"avgEngagementRate"`
}
