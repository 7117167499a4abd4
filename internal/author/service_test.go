package author

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authorModel "github.com/RoiShukrun1/Social-Media-Posts-Manager/internal/model/author"
	"github.com/RoiShukrun1/Social-Media-Posts-Manager/internal/testutils"
)

func TestCreateAuthor(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewAuthorService(db)

	a, bizErr := service.CreateAuthor(CreateAuthorRequest{
		FirstName:     "Jane",
		LastName:      "Doe",
		Email:         "jane@example.com",
		FollowerCount: 500,
		Verified:      true,
	})
	require.Nil(t, bizErr)
	assert.NotZero(t, a.ID)
	assert.Equal(t, "jane@example.com", a.Email)
	assert.True(t, a.Verified)
}

func TestCreateAuthor_DuplicateEmail(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewAuthorService(db)

	req := CreateAuthorRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "dup@example.com",
	}
	_, bizErr := service.CreateAuthor(req)
	require.Nil(t, bizErr)

	// 重复邮箱返回 400，且不会写入第二行
	_, bizErr = service.CreateAuthor(req)
	require.NotNil(t, bizErr)
	assert.Equal(t, http.StatusBadRequest, bizErr.Status)

	var count int64
	require.NoError(t, db.Model(&authorModel.Author{}).Where("email = ?", "dup@example.com").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestGetAuthor_NotFound(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewAuthorService(db)

	_, bizErr := service.GetAuthor(99999)
	require.NotNil(t, bizErr)
	assert.Equal(t, http.StatusNotFound, bizErr.Status)
}

func TestListAuthors_SortedByName(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewAuthorService(db)

	testutils.CreateTestAuthor(db, testutils.WithName("Zoe", "Brown"))
	testutils.CreateTestAuthor(db, testutils.WithName("Amy", "Adams"))
	testutils.CreateTestAuthor(db, testutils.WithName("Ben", "Brown"))

	authors, bizErr := service.ListAuthors()
	require.Nil(t, bizErr)
	require.Len(t, authors, 3)

	// 按姓、名排序
	assert.Equal(t, "Adams", authors[0].LastName)
	assert.Equal(t, "Ben", authors[1].FirstName)
	assert.Equal(t, "Zoe", authors[2].FirstName)
}

func TestUpdateAuthor_PartialUpdate(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewAuthorService(db)
	existing := testutils.CreateTestAuthor(db, testutils.WithName("Old", "Name"), testutils.WithFollowerCount(100))

	newCount := 2000
	updated, bizErr := service.UpdateAuthor(existing.ID, UpdateAuthorRequest{FollowerCount: &newCount})
	require.Nil(t, bizErr)

	// 仅更新出现的字段
	assert.Equal(t, 2000, updated.FollowerCount)
	assert.Equal(t, "Old", updated.FirstName)
	assert.Equal(t, existing.Email, updated.Email)
}

func TestUpdateAuthor_NoFields(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewAuthorService(db)
	existing := testutils.CreateTestAuthor(db)

	_, bizErr := service.UpdateAuthor(existing.ID, UpdateAuthorRequest{})
	require.NotNil(t, bizErr)
	assert.Equal(t, http.StatusBadRequest, bizErr.Status)
}

func TestUpdateAuthor_EmailConflict(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewAuthorService(db)

	first := testutils.CreateTestAuthor(db, testutils.WithEmail("first@example.com"))
	second := testutils.CreateTestAuthor(db, testutils.WithEmail("second@example.com"))

	// 改成他人邮箱返回 400
	conflict := first.Email
	_, bizErr := service.UpdateAuthor(second.ID, UpdateAuthorRequest{Email: &conflict})
	require.NotNil(t, bizErr)
	assert.Equal(t, http.StatusBadRequest, bizErr.Status)

	// 改回自己的邮箱是允许的
	own := second.Email
	updated, bizErr := service.UpdateAuthor(second.ID, UpdateAuthorRequest{Email: &own})
	require.Nil(t, bizErr)
	assert.Equal(t, second.Email, updated.Email)
}

func TestUpdateAuthor_NotFound(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewAuthorService(db)

	name := "x"
	_, bizErr := service.UpdateAuthor(99999, UpdateAuthorRequest{FirstName: &name})
	require.NotNil(t, bizErr)
	assert.Equal(t, http.StatusNotFound, bizErr.Status)
}
