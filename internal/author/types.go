package author

// CreateAuthorRequest 创建作者请求
type CreateAuthorRequest struct {
	FirstName     string `json:"first_name" binding:"required,min=1,max=100"`
	LastName      string `json:"last_name" binding:"required,min=1,max=100"`
	Email         string `json:"email" binding:"required,email"`
	Company       string `json:"company" binding:"omitempty,max=255"`
	JobTitle      string `json:"job_title" binding:"omitempty,max=255"`
	Bio           string `json:"bio"`
	FollowerCount int    `json:"follower_count" binding:"omitempty,min=0"`
	Verified      bool   `json:"verified"`
}

// UpdateAuthorRequest 更新作者请求（仅更新出现的字段）
type UpdateAuthorRequest struct {
	FirstName     *string `json:"first_name" binding:"omitempty,min=1,max=100"`
	LastName      *string `json:"last_name" binding:"omitempty,min=1,max=100"`
	Email         *string `json:"email" binding:"omitempty,email"`
	Company       *string `json:"company" binding:"omitempty,max=255"`
	JobTitle      *string `json:"job_title" binding:"omitempty,max=255"`
	Bio           *string `json:"bio"`
	FollowerCount *int    `json:"follower_count" binding:"omitempty,min=0"`
	Verified      *bool   `json:"verified"`
}

// fields 构造动态更新字段表，未出现的字段不参与更新
func (req *UpdateAuthorRequest) fields() map[string]any {
	updates := make(map[string]any)
	if req.FirstName != nil {
		updates["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		updates["last_name"] = *req.LastName
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Company != nil {
		updates["company"] = *req.Company
	}
	if req.JobTitle != nil {
		updates["job_title"] = *req.JobTitle
	}
	if req.Bio != nil {
		updates["bio"] = *req.Bio
	}
	if req.FollowerCount != nil {
		updates["follower_count"] = *req.FollowerCount
	}
	if req.Verified != nil {
		updates["verified"] = *req.Verified
	}
	return updates
}
