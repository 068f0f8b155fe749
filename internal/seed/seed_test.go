package seed

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"bulletin/internal/database"
	"bulletin/internal/models"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func TestRun(t *testing.T) {
	db := setupDB(t)

	err := Run(context.Background(), db, Options{Posts: 3, CommentsPerPost: 2})
	require.NoError(t, err)

	var postCount, commentCount int64
	require.NoError(t, db.Model(&models.Post{}).Count(&postCount).Error)
	require.NoError(t, db.Model(&models.PostComment{}).Count(&commentCount).Error)
	assert.EqualValues(t, 3, postCount)
	assert.EqualValues(t, 6, commentCount)

	var post models.Post
	require.NoError(t, db.First(&post).Error)
	assert.NotEmpty(t, post.Title)
	assert.NotEmpty(t, post.AuthorID)
	assert.True(t, strings.HasPrefix(post.Password, "$2"), "seeded password is a bcrypt hash")
	assert.NotEqual(t, SeedPassword, post.Password)

	var comment models.PostComment
	require.NoError(t, db.First(&comment).Error)
	assert.NotZero(t, comment.PostID)
}

func TestRun_ZeroPostsIsNoop(t *testing.T) {
	db := setupDB(t)

	require.NoError(t, Run(context.Background(), db, Options{}))

	var count int64
	require.NoError(t, db.Model(&models.Post{}).Count(&count).Error)
	assert.Zero(t, count)
}
