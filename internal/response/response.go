package response

// Response 统一响应结构
// 成功: {success: true, data, pagination?, message?}
// 失败: {success: false, error, details?}
type Response struct {
	Success    bool        `json:"success"`
	Data       any         `json:"data,omitempty"`
	Message    string      `json:"message,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
	Error      string      `json:"error,omitempty"`
	Details    any         `json:"details,omitempty"`
}

// Pagination 分页元信息
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// NewPagination 计算总页数并构造分页元信息
func NewPagination(page, limit int, total int64) *Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}
	return &Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}

type ResponseOptions func(*Response)

func WithData(data any) ResponseOptions {
	return func(r *Response) {
		r.Data = data
	}
}

func WithMessage(message string) ResponseOptions {
	return func(r *Response) {
		r.Message = message
	}
}

func WithPagination(p *Pagination) ResponseOptions {
	return func(r *Response) {
		r.Pagination = p
	}
}

func CustomResponse(opts ...ResponseOptions) Response {
	response := Response{Success: true}
	for _, opt := range opts {
		opt(&response)
	}
	return response
}

func SuccessResponse(data any) Response {
	return Response{
		Success: true,
		Data:    data,
	}
}

func PagedResponse(data any, p *Pagination) Response {
	return Response{
		Success:    true,
		Data:       data,
		Pagination: p,
	}
}

func ErrorResponse(msg string, details any) Response {
	return Response{
		Success: false,
		Error:   msg,
		Details: details,
	}
}
