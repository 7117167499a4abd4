package author

import (
	"errors"
	"net/http"

	"gorm.io/gorm"

	"github.com/RoiShukrun1/Social-Media-Posts-Manager/internal/database"
	authorModel "github.com/RoiShukrun1/Social-Media-Posts-Manager/internal/model/author"
	"github.com/RoiShukrun1/Social-Media-Posts-Manager/internal/response"
)

type AuthorService struct {
	authorRepo *AuthorRepository
}

func NewAuthorService(db *gorm.DB) *AuthorService {
	return &AuthorService{
		authorRepo: NewAuthorRepository(db),
	}
}

// ListAuthors 获取所有作者
func (s *AuthorService) ListAuthors() ([]authorModel.Author, *response.BusinessError) {
	authors, err := s.authorRepo.GetAll()
	if err != nil {
		return nil, response.NewBusinessError(
			response.WithStatus(http.StatusInternalServerError),
			response.WithErrorMessage("获取作者列表失败"),
			response.WithError(err),
		)
	}
	return authors, nil
}

// GetAuthor 获取单个作者
func (s *AuthorService) GetAuthor(id uint) (*authorModel.Author, *response.BusinessError) {
	a, err := s.authorRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewBusinessError(
				response.WithStatus(http.StatusNotFound),
				response.WithErrorMessage("作者不存在"),
			)
		}
		return nil, response.NewBusinessError(
			response.WithStatus(http.StatusInternalServerError),
			response.WithErrorMessage("获取作者失败"),
			response.WithError(err),
		)
	}
	return a, nil
}

// CreateAuthor 创建作者，邮箱唯一
func (s *AuthorService) CreateAuthor(req CreateAuthorRequest) (*authorModel.Author, *response.BusinessError) {
	// 1. 预检查邮箱是否已被占用
	if _, err := s.authorRepo.GetByEmail(req.Email); err == nil {
		return nil, response.NewBusinessError(
			response.WithStatus(http.StatusBadRequest),
			response.WithErrorMessage("该邮箱已存在对应作者"),
		)
	}

	a := &authorModel.Author{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		Company:       req.Company,
		JobTitle:      req.JobTitle,
		Bio:           req.Bio,
		FollowerCount: req.FollowerCount,
		Verified:      req.Verified,
	}

	// 2. 插入；预检查与插入之间的竞态由唯一索引兜底
	if err := s.authorRepo.Create(a); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, response.NewBusinessError(
				response.WithStatus(http.StatusBadRequest),
				response.WithErrorMessage("该邮箱已存在对应作者"),
			)
		}
		return nil, response.NewBusinessError(
			response.WithStatus(http.StatusInternalServerError),
			response.WithErrorMessage("创建作者失败"),
			response.WithError(err),
		)
	}

	return a, nil
}

// UpdateAuthor 部分更新作者
func (s *AuthorService) UpdateAuthor(id uint, req UpdateAuthorRequest) (*authorModel.Author, *response.BusinessError) {
	existing, bizErr := s.GetAuthor(id)
	if bizErr != nil {
		return nil, bizErr
	}

	updates := req.fields()
	if len(updates) == 0 {
		return nil, response.NewBusinessError(
			response.WithStatus(http.StatusBadRequest),
			response.WithErrorMessage("没有可更新的字段"),
		)
	}

	// 邮箱变更时检查是否与其他作者冲突
	if req.Email != nil && *req.Email != existing.Email {
		if other, err := s.authorRepo.GetByEmail(*req.Email); err == nil && other.ID != id {
			return nil, response.NewBusinessError(
				response.WithStatus(http.StatusBadRequest),
				response.WithErrorMessage("该邮箱已被其他作者使用"),
			)
		}
	}

	if err := s.authorRepo.Update(id, updates); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, response.NewBusinessError(
				response.WithStatus(http.StatusBadRequest),
				response.WithErrorMessage("该邮箱已被其他作者使用"),
			)
		}
		return nil, response.NewBusinessError(
			response.WithStatus(http.StatusInternalServerError),
			response.WithErrorMessage("更新作者失败"),
			response.WithError(err),
		)
	}

	return s.GetAuthor(id)
}
