package author

import (
	"gorm.io/gorm"

	authorModel "github.com/RoiShukrun1/Social-Media-Posts-Manager/internal/model/author"
)

// AuthorRepository 作者仓储层
type AuthorRepository struct {
	db *gorm.DB
}

func NewAuthorRepository(db *gorm.DB) *AuthorRepository {
	return &AuthorRepository{db: db}
}

// GetAll 获取所有作者，按姓、名排序
func (r *AuthorRepository) GetAll() ([]authorModel.Author, error) {
	var authors []authorModel.Author
	err := r.db.Order("last_name, first_name").Find(&authors).Error
	return authors, err
}

func (r *AuthorRepository) GetByID(id uint) (*authorModel.Author, error) {
	var a authorModel.Author
	err := r.db.First(&a, id).Error
	return &a, err
}

// GetByEmail 按邮箱精确查找（区分大小写）
func (r *AuthorRepository) GetByEmail(email string) (*authorModel.Author, error) {
	var a authorModel.Author
	err := r.db.Where("email = ?", email).First(&a).Error
	return &a, err
}

func (r *AuthorRepository) Create(a *authorModel.Author) error {
	return r.db.Create(a).Error
}

// Update 按动态字段表更新，updated_at 由 gorm 自动维护
func (r *AuthorRepository) Update(id uint, updates map[string]any) error {
	return r.db.Model(&authorModel.Author{ID: id}).Updates(updates).Error
}

// Exists 判断作者是否存在
func (r *AuthorRepository) Exists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&authorModel.Author{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
