package importer

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authorModel "github.com/RoiShukrun1/Social-Media-Posts-Manager/internal/model/author"
	postModel "github.com/RoiShukrun1/Social-Media-Posts-Manager/internal/model/post"
	"github.com/RoiShukrun1/Social-Media-Posts-Manager/internal/tag"
	"github.com/RoiShukrun1/Social-Media-Posts-Manager/internal/testutils"
)

var csvHeader = []string{
	"post_id", "author_first_name", "author_last_name", "author_email",
	"author_company", "author_job_title", "author_bio",
	"author_follower_count", "author_verified",
	"post_text", "post_date", "likes", "comments", "shares",
	"post_image_svg", "post_category", "location",
	"engagement_rate", "post_tags",
}

// writeCSV 将若干数据行写成临时CSV文件
func writeCSV(t *testing.T, rows [][]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "posts.csv")

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	w := csv.NewWriter(f)
	require.NoError(t, w.Write(csvHeader))
	require.NoError(t, w.WriteAll(rows))
	w.Flush()
	require.NoError(t, w.Error())

	return path
}

func sampleRows() [][]string {
	return [][]string{
		{"1", "Alice", "Smith", "alice@example.com", "Acme", "Engineer", "bio a", "1200", "TRUE",
			"First post", "2024-01-10 08:30:00", "10", "5", "2", "", "Technology", "Berlin", "1.5", `["golang","web"]`},
		{"2", "Alice", "Smith", "alice@example.com", "Acme", "Engineer", "bio a", "1200", "TRUE",
			"Second post", "2024-02-11 09:00:00", "20", "3", "1", "", "Technology", "", "0.8", `["golang"]`},
		{"3", "Bob", "Jones", "bob@example.com", "Globex", "Writer", "bio b", "300", "false",
			"Travel notes", "2024-03-12 10:15:00", "7", "1", "0", "<svg/>", "Travel", "Lisbon", "2.1", ""},
	}
}

func TestImportCSV(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewImportService(db)

	summary, err := service.ImportCSV(writeCSV(t, sampleRows()))
	require.NoError(t, err)

	assert.Equal(t, 3, summary.RowsProcessed)
	assert.Equal(t, 2, summary.AuthorsCreated)
	assert.Equal(t, 3, summary.PostsImported)
	assert.Equal(t, 2, summary.TagsCreated)
	assert.Equal(t, 3, summary.LinksCreated)

	// 同一邮箱的多行合并为一位作者
	var alice authorModel.Author
	require.NoError(t, db.Where("email = ?", "alice@example.com").First(&alice).Error)
	assert.True(t, alice.Verified)
	assert.Equal(t, 1200, alice.FollowerCount)

	// 帖子使用外部给定的ID
	var p postModel.Post
	require.NoError(t, db.First(&p, 3).Error)
	assert.Equal(t, "Travel notes", p.Text)
	require.NotNil(t, p.ImageSVG)
	assert.Equal(t, "<svg/>", *p.ImageSVG)

	// 空字段归一为 NULL
	var p2 postModel.Post
	require.NoError(t, db.First(&p2, 2).Error)
	assert.Nil(t, p2.Location)

	names, err := tag.NewTagRepository(db).GetPostTags(1)
	require.NoError(t, err)
	assert.Equal(t, []string{"golang", "web"}, names)
}

func TestImportCSV_ReimportIsIdempotent(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewImportService(db)

	rows := sampleRows()
	_, err := service.ImportCSV(writeCSV(t, rows))
	require.NoError(t, err)

	// 第二次导入同一文件：作者、标签、帖子行数均不变
	rows[0][9] = "First post (edited)" // post_text
	summary, err := service.ImportCSV(writeCSV(t, rows))
	require.NoError(t, err)
	assert.Zero(t, summary.AuthorsCreated)
	assert.Zero(t, summary.TagsCreated)
	assert.Zero(t, summary.LinksCreated)

	var authorCount, postCount, tagCount int64
	require.NoError(t, db.Model(&authorModel.Author{}).Count(&authorCount).Error)
	require.NoError(t, db.Model(&postModel.Post{}).Count(&postCount).Error)
	require.NoError(t, db.Model(&postModel.Tag{}).Count(&tagCount).Error)
	assert.EqualValues(t, 2, authorCount)
	assert.EqualValues(t, 3, postCount)
	assert.EqualValues(t, 2, tagCount)

	// 同ID的帖子被整行覆盖而非报错
	var p postModel.Post
	require.NoError(t, db.First(&p, 1).Error)
	assert.Equal(t, "First post (edited)", p.Text)
}

func TestImportCSV_MalformedTagJSONSkipsLinking(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewImportService(db)

	rows := sampleRows()
	rows[0][18] = `[golang, web` // 非法JSON

	summary, err := service.ImportCSV(writeCSV(t, rows))
	require.NoError(t, err)

	// 帖子本身照常导入，仅跳过该行的标签关联
	assert.Equal(t, 3, summary.PostsImported)
	names, err := tag.NewTagRepository(db).GetPostTags(1)
	require.NoError(t, err)
	assert.Empty(t, names)

	names, err = tag.NewTagRepository(db).GetPostTags(2)
	require.NoError(t, err)
	assert.Equal(t, []string{"golang"}, names)
}

func TestImportCSV_MalformedNumericRollsBackEverything(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewImportService(db)

	rows := sampleRows()
	rows[2][11] = "many" // likes

	_, err := service.ImportCSV(writeCSV(t, rows))
	require.Error(t, err)

	// 整个导入回滚，前两行也不落库
	var authorCount, postCount int64
	require.NoError(t, db.Model(&authorModel.Author{}).Count(&authorCount).Error)
	require.NoError(t, db.Model(&postModel.Post{}).Count(&postCount).Error)
	assert.Zero(t, authorCount)
	assert.Zero(t, postCount)
}

func TestImportCSV_MissingColumn(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewImportService(db)

	path := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("post_id,author_email\n1,a@b.c\n"), 0o644))

	_, err := service.ImportCSV(path)
	assert.Error(t, err)
}

func TestImportCSV_FileNotFound(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewImportService(db)

	_, err := service.ImportCSV(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}
