package post

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RoiShukrun1/Social-Media-Posts-Manager/internal/tag"
	"github.com/RoiShukrun1/Social-Media-Posts-Manager/internal/testutils"
)

func TestListPosts_NormalizesPagination(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewPostService(db, nil)
	a := testutils.CreateTestAuthor(db)
	testutils.CreateTestPost(db, a.ID)

	// 非法页码/页大小回退到 1/20，并回显在分页元信息中
	result, bizErr := service.ListPosts(PostFilters{},
		PostSort{Field: "date", Order: "DESC"},
		PaginationParams{Page: 0, Limit: -1})
	require.Nil(t, bizErr)

	assert.Equal(t, 1, result.Pagination.Page)
	assert.Equal(t, 20, result.Pagination.Limit)
	assert.EqualValues(t, 1, result.Pagination.Total)
	assert.Equal(t, 1, result.Pagination.TotalPages)
	assert.Len(t, result.Posts, 1)
}

func TestListPosts_TotalPagesRoundsUp(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewPostService(db, nil)
	a := testutils.CreateTestAuthor(db)

	for i := 0; i < 7; i++ {
		testutils.CreateTestPost(db, a.ID)
	}

	// 7 行、每页 3 行：总页数向上取整为 3
	result, bizErr := service.ListPosts(PostFilters{},
		PostSort{Field: "date", Order: "DESC"},
		PaginationParams{Page: 2, Limit: 3})
	require.Nil(t, bizErr)

	assert.Equal(t, 2, result.Pagination.Page)
	assert.Equal(t, 3, result.Pagination.Limit)
	assert.EqualValues(t, 7, result.Pagination.Total)
	assert.Equal(t, 3, result.Pagination.TotalPages)
	assert.Len(t, result.Posts, 3)

	// 行数恰好整除时不多出空页
	result, bizErr = service.ListPosts(PostFilters{},
		PostSort{Field: "date", Order: "DESC"},
		PaginationParams{Page: 1, Limit: 7})
	require.Nil(t, bizErr)
	assert.Equal(t, 1, result.Pagination.TotalPages)
}

func TestCreatePost_WithTags(t *testing.T) {
	db := testutils.SetupTestDB(t)
	// 缓存未启用（nil 安全），直接读库
	service := NewPostService(db, nil)
	a := testutils.CreateTestAuthor(db)

	detail, bizErr := service.CreatePost(context.Background(), CreatePostRequest{
		AuthorID: a.ID,
		Text:     "hello world",
		Date:     "2024-06-15 12:00:00",
		Likes:    3,
		Category: "Technology",
		Tags:     []string{"web", "api", "web"},
	})
	require.Nil(t, bizErr)
	assert.Equal(t, "hello world", detail.Text)
	assert.Equal(t, a.ID, detail.Author.ID)
	// 标签去重且按字母序返回
	assert.Equal(t, []string{"api", "web"}, detail.Tags)
}

func TestCreatePost_EngagementRateConvention(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewPostService(db, nil)
	a := testutils.CreateTestAuthor(db)

	// 未显式给出时按 (likes+comments)/10000*100 计算
	detail, bizErr := service.CreatePost(context.Background(), CreatePostRequest{
		AuthorID: a.ID,
		Text:     "computed rate",
		Date:     "2024-06-15",
		Likes:    10,
		Comments: 5,
		Category: "Technology",
	})
	require.Nil(t, bizErr)
	assert.InDelta(t, 0.15, detail.EngagementRate, 1e-9)

	// 显式给出的值原样保留，包括 0
	zero := 0.0
	detail, bizErr = service.CreatePost(context.Background(), CreatePostRequest{
		AuthorID:       a.ID,
		Text:           "explicit zero",
		Date:           "2024-06-15",
		Likes:          10,
		Comments:       5,
		Category:       "Technology",
		EngagementRate: &zero,
	})
	require.Nil(t, bizErr)
	assert.Zero(t, detail.EngagementRate)
}

func TestCreatePost_InvalidDate(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewPostService(db, nil)
	a := testutils.CreateTestAuthor(db)

	_, bizErr := service.CreatePost(context.Background(), CreatePostRequest{
		AuthorID: a.ID,
		Text:     "bad date",
		Date:     "15/06/2024",
		Category: "Technology",
	})
	require.NotNil(t, bizErr)
	assert.Equal(t, http.StatusBadRequest, bizErr.Status)
}

func TestCreatePost_UnknownAuthor(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewPostService(db, nil)

	_, bizErr := service.CreatePost(context.Background(), CreatePostRequest{
		AuthorID: 99999,
		Text:     "orphan",
		Date:     "2024-06-15",
		Category: "Technology",
	})
	require.NotNil(t, bizErr)
	assert.Equal(t, http.StatusNotFound, bizErr.Status)
}

func TestUpdatePost_TagSemantics(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewPostService(db, nil)
	tagRepo := tag.NewTagRepository(db)
	a := testutils.CreateTestAuthor(db)
	p := testutils.CreateTestPost(db, a.ID)
	require.NoError(t, tagRepo.LinkTags(p.ID, []string{"keep", "me"}))

	ctx := context.Background()

	// tags 缺省：字段更新，标签关联保持不变
	newText := "updated text"
	detail, bizErr := service.UpdatePost(ctx, p.ID, UpdatePostRequest{Text: &newText})
	require.Nil(t, bizErr)
	assert.Equal(t, "updated text", detail.Text)
	assert.Equal(t, []string{"keep", "me"}, detail.Tags)

	// tags 非空：整体替换
	newTags := []string{"replaced"}
	detail, bizErr = service.UpdatePost(ctx, p.ID, UpdatePostRequest{Tags: &newTags})
	require.Nil(t, bizErr)
	assert.Equal(t, []string{"replaced"}, detail.Tags)

	// tags 为空数组：清空全部关联
	empty := []string{}
	detail, bizErr = service.UpdatePost(ctx, p.ID, UpdatePostRequest{Tags: &empty})
	require.Nil(t, bizErr)
	assert.Empty(t, detail.Tags)
}

func TestUpdatePost_NullClearsOptionalColumns(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewPostService(db, nil)
	a := testutils.CreateTestAuthor(db)
	p := testutils.CreateTestPost(db, a.ID,
		testutils.WithImageSVG("<svg/>"),
		testutils.WithLocation("Berlin"))

	ctx := context.Background()

	// 键缺省：两列保持原值
	var req UpdatePostRequest
	require.NoError(t, json.Unmarshal([]byte(`{"text":"still here"}`), &req))
	detail, bizErr := service.UpdatePost(ctx, p.ID, req)
	require.Nil(t, bizErr)
	require.NotNil(t, detail.ImageSVG)
	assert.Equal(t, "<svg/>", *detail.ImageSVG)
	require.NotNil(t, detail.Location)
	assert.Equal(t, "Berlin", *detail.Location)

	// 显式传 null：两列清空
	var clearReq UpdatePostRequest
	require.NoError(t, json.Unmarshal([]byte(`{"image_svg":null,"location":null}`), &clearReq))
	detail, bizErr = service.UpdatePost(ctx, p.ID, clearReq)
	require.Nil(t, bizErr)
	assert.Nil(t, detail.ImageSVG)
	assert.Nil(t, detail.Location)

	// 传新值：正常覆盖
	var setReq UpdatePostRequest
	require.NoError(t, json.Unmarshal([]byte(`{"location":"Lisbon"}`), &setReq))
	detail, bizErr = service.UpdatePost(ctx, p.ID, setReq)
	require.Nil(t, bizErr)
	require.NotNil(t, detail.Location)
	assert.Equal(t, "Lisbon", *detail.Location)
}

func TestUpdatePost_NoFields(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewPostService(db, nil)
	a := testutils.CreateTestAuthor(db)
	p := testutils.CreateTestPost(db, a.ID)

	_, bizErr := service.UpdatePost(context.Background(), p.ID, UpdatePostRequest{})
	require.NotNil(t, bizErr)
	assert.Equal(t, http.StatusBadRequest, bizErr.Status)
}

func TestUpdatePost_NotFound(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewPostService(db, nil)

	text := "x"
	_, bizErr := service.UpdatePost(context.Background(), 99999, UpdatePostRequest{Text: &text})
	require.NotNil(t, bizErr)
	assert.Equal(t, http.StatusNotFound, bizErr.Status)
}

func TestUpdatePost_UnknownAuthor(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewPostService(db, nil)
	a := testutils.CreateTestAuthor(db)
	p := testutils.CreateTestPost(db, a.ID)

	badAuthor := uint(99999)
	_, bizErr := service.UpdatePost(context.Background(), p.ID, UpdatePostRequest{AuthorID: &badAuthor})
	require.NotNil(t, bizErr)
	assert.Equal(t, http.StatusNotFound, bizErr.Status)
}

func TestDeletePost(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewPostService(db, nil)
	a := testutils.CreateTestAuthor(db)
	p := testutils.CreateTestPost(db, a.ID)

	ctx := context.Background()
	require.Nil(t, service.DeletePost(ctx, p.ID))

	_, bizErr := service.GetPost(ctx, p.ID)
	require.NotNil(t, bizErr)
	assert.Equal(t, http.StatusNotFound, bizErr.Status)

	// 重复删除返回 404
	bizErr = service.DeletePost(ctx, p.ID)
	require.NotNil(t, bizErr)
	assert.Equal(t, http.StatusNotFound, bizErr.Status)
}

func TestResolveEngagementRate(t *testing.T) {
	rate := 2.5
	assert.Equal(t, 2.5, resolveEngagementRate(&rate, 100, 100))
	assert.InDelta(t, 0.15, resolveEngagementRate(nil, 10, 5), 1e-9)
	assert.Zero(t, resolveEngagementRate(nil, 0, 0))
}

func TestParseDate(t *testing.T) {
	for _, valid := range []string{"2024-06-15 12:00:00", "2024-06-15", "2024-06-15T12:00:00Z"} {
		_, err := ParseDate(valid)
		assert.NoError(t, err, valid)
	}
	for _, invalid := range []string{"", "15/06/2024", "not a date"} {
		_, err := ParseDate(invalid)
		assert.Error(t, err, invalid)
	}
}
